// Package cli provides user-facing error formatting.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

// PreflightError is a failure the user can fix, with a hint and a next step.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

func (e *PreflightError) Error() string {
	return e.Message
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

func formatError(err error) string {
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		return fmt.Sprintf("Error: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", preflight.Message)
	if preflight.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", preflight.Hint)
	}
	if preflight.NextStep != "" {
		fmt.Fprintf(&b, "\nNext: %s", preflight.NextStep)
	}
	return b.String()
}

// argumentError wraps a parse failure of a positional argument or flag.
func argumentError(what string, err error, nextStep string) error {
	return &PreflightError{
		Message:  fmt.Sprintf("invalid %s: %v", what, err),
		Hint:     "Names are case-insensitive; underscores and dashes are interchangeable",
		NextStep: nextStep,
		Err:      err,
	}
}
