package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Marker string // styled glyph before the title, optional
	Badge  string // styled, right-aligned
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree using box-drawing connectors.
// Badges are right-aligned to the widest line.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = StyleDim.Render(strings.Repeat(treePipe, item.Level-1))
			if item.IsLast {
				prefix += StyleDim.Render(treeCorner)
			} else {
				prefix += StyleDim.Render(treeBranch)
			}
		}

		content := prefix
		if item.Marker != "" {
			content += item.Marker + " "
		}
		content += item.Title
		contents[idx] = content

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for idx, content := range contents {
		badge := items[idx].Badge
		if badge == "" {
			b.WriteString(content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(content)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(content + strings.Repeat(" ", pad) + "  " + badge + "\n")
	}

	return b.String()
}
