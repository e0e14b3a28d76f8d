// Package cli provides table helpers for human-readable output.
package cli

import (
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(out io.Writer, headers ...any) prettytable.Writer {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(prettytable.StyleLight)
	tw.Style().Options.SeparateRows = false
	if len(headers) > 0 {
		tw.AppendHeader(prettytable.Row(headers))
	}
	return tw
}

func writeTable(out io.Writer, headers []string, rows [][]string) {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw := newTable(out, header...)
	for _, row := range rows {
		cells := make(prettytable.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}
	tw.Render()
}

func alignRight(columns ...int) []prettytable.ColumnConfig {
	configs := make([]prettytable.ColumnConfig, 0, len(columns))
	for _, number := range columns {
		configs = append(configs, prettytable.ColumnConfig{Number: number, Align: text.AlignRight})
	}
	return configs
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
