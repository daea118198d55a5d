package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/spf13/cobra"
)

const columnGap = 2

func newKindsCmd(cfg *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List exception kinds with their parent and description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tax, err := cfg.taxonomy()
			if err != nil {
				return err
			}
			rows := [][]string{{bold("KIND"), bold("PARENT"), bold("DESCRIPTION")}}
			for _, k := range exception.Kinds() {
				parent := "-"
				if p, ok := tax.Parent(k); ok {
					parent = p.String()
				}
				rows = append(rows, []string{k.String(), parent, k.Describe()})
			}
			rows = append(rows, []string{exception.Any.String(), "-", faint("catches every kind")})
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}
}

// writeTable prints rows as left-aligned columns. Widths are measured on
// the rendered cells, so styled text lines up with plain text.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if n := lipgloss.Width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(padRight(cell, widths[i]+columnGap))
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
