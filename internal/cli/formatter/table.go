package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls how a table column pads its cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders a simple aligned table with a header separator line.
// Columns are padded to the widest visible cell, headers included.
func RenderTable(headers []string, rows [][]string) string {
	return RenderAlignedTable(headers, rows, nil)
}

// RenderAlignedTable is RenderTable with per-column alignment. Columns past
// the end of aligns are left aligned.
func RenderAlignedTable(headers []string, rows [][]string, aligns []Align) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	alignOf := func(i int) Align {
		if i < len(aligns) {
			return aligns[i]
		}
		return AlignLeft
	}

	const colGap = 2

	var b strings.Builder
	writeCell := func(i int, cell, styled string) {
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if alignOf(i) == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(styled)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			return
		}
		b.WriteString(styled)
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range headers {
		writeCell(i, h, StyleHeader.Render(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}
