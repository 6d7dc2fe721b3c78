package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprint(w, pad(header, colWidths[i]), "\t")
	}
	fmt.Fprintln(w)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(w, pad(cell, colWidths[i]), "\t")
		}
		fmt.Fprintln(w)
	}

	if len(footers) == 0 {
		return
	}

	// print footer, blank cells keep the column aligned
	for i, footer := range footers {
		fmt.Fprint(w, pad(footer, colWidths[i]), "\t")
	}
	fmt.Fprintln(w)
}

// pad left-aligns s in a cell of display width n.
func pad(s string, n int) string {
	if gap := n - lipgloss.Width(s); gap > 0 {
		return s + fmt.Sprintf("%*s", gap, "")
	}
	return s
}
