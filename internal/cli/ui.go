// Package cli provides TUI launch commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/modern/internal/logging"
	"github.com/opencode-ai/modern/internal/theme"
	"github.com/opencode-ai/modern/internal/tui"
)

var uiStatus string

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiStatus, "status", "active", "initial interaction status")
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the widget gallery",
	Long:  "Launch the interactive terminal gallery that previews every widget style in light and dark mode.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// launchTUI starts the gallery. Tests replace it.
var launchTUI = tui.RunWithConfig

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the gallery requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the resolve and palette commands",
			NextStep: "modern resolve --help",
		}
	}

	status, err := theme.ParseStatus(uiStatus)
	if err != nil {
		return argumentError("status", err, "modern ui --status hovered")
	}
	mode, err := resolvedMode()
	if err != nil {
		return err
	}

	logger := logging.Component("cli")
	logger.Debug().Str("mode", mode.String()).Str("status", status.String()).Msg("starting gallery")
	return launchTUI(tui.Config{Mode: mode, Status: status})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
