package cli

import (
	"strings"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewProduct
	ViewPicker
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

// renderTabs renders a one-line tab strip with the active tab highlighted.
func renderTabs(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			parts = append(parts, activeTabStyle.Render(l))
		} else {
			parts = append(parts, inactiveTabStyle.Render(l))
		}
	}
	return strings.Join(parts, formatter.Dim("  │  "))
}

// nextTab cycles i by delta within n tabs.
func nextTab(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// tabKey returns the tab movement for a key press, or 0 when the key does
// not switch tabs.
func tabKey(msg tea.KeyMsg) int {
	switch msg.String() {
	case "right", "l", "tab":
		return 1
	case "left", "h", "shift+tab":
		return -1
	}
	return 0
}

// scrollKeyMap leaves letter keys free for view shortcuts.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}
