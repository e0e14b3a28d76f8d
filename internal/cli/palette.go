// Package cli provides the palette command.
package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/modern/internal/theme"
)

var paletteAll bool

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().BoolVar(&paletteAll, "all", false, "show light and dark side by side")
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the palette colors",
	Long:  "Show every semantic palette color for the active mode, or for both modes with --all.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPalette(cmd.OutOrStdout())
	},
}

// PaletteOutput is the structured form of the palette command.
type PaletteOutput struct {
	Mode    string               `json:"mode" yaml:"mode"`
	Entries []theme.PaletteEntry `json:"entries" yaml:"entries"`
}

func runPalette(out io.Writer) error {
	modes := theme.Modes()
	if !paletteAll {
		mode, err := resolvedMode()
		if err != nil {
			return err
		}
		modes = []theme.Mode{mode}
	}

	if IsStructuredOutput() {
		payload := make([]PaletteOutput, 0, len(modes))
		for _, mode := range modes {
			payload = append(payload, PaletteOutput{Mode: mode.String(), Entries: theme.PaletteFor(mode).Entries()})
		}
		if len(payload) == 1 {
			return WriteOutput(out, payload[0])
		}
		return WriteOutput(out, payload)
	}

	headers := []any{"NAME"}
	palettes := make([][]theme.PaletteEntry, 0, len(modes))
	for _, mode := range modes {
		headers = append(headers, strings.ToUpper(mode.String()))
		palettes = append(palettes, theme.PaletteFor(mode).Entries())
	}

	tw := newTable(out, headers...)
	for i, entry := range palettes[0] {
		row := []any{entry.Name}
		for m, entries := range palettes {
			backdrop := theme.PaletteFor(modes[m]).Background
			row = append(row, swatch(entries[i].Color, backdrop))
		}
		tw.AppendRow(row)
	}
	tw.Render()
	return nil
}
