// Package cli provides helpers for interactive mode detection.
package cli

import "os"

// IsNonInteractive reports whether interactive views must not be started.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("MODERN_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}
