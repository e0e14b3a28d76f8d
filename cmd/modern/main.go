// Command modern resolves and previews the Modern widget styles.
package main

import (
	"os"

	"github.com/opencode-ai/modern/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
