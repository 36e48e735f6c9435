package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorOrange
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleUnknown marks enum values outside the known set.
	StyleUnknown = lipgloss.NewStyle().Foreground(ColorFg).Italic(true)
)

// HorizonStyle returns the accent style for a product horizon. Values
// outside the enum render in StyleUnknown.
func HorizonStyle(h domain.Horizon) lipgloss.Style {
	switch h {
	case domain.HorizonIdea:
		return StyleBlue
	case domain.HorizonEvaluation:
		return StyleYellow
	case domain.HorizonEmerging:
		return StyleGreen
	case domain.HorizonInvesting:
		return StylePurple
	case domain.HorizonExtracting:
		return StyleOrange
	case domain.HorizonRetiring:
		return StyleDim
	default:
		return StyleUnknown
	}
}

func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityCritical:
		return StyleRed
	case domain.SeverityHigh:
		return StyleOrange
	case domain.SeverityMedium:
		return StyleYellow
	case domain.SeverityLow:
		return StyleGreen
	default:
		return StyleUnknown
	}
}

func ProbabilityStyle(p domain.Probability) lipgloss.Style {
	switch p {
	case domain.ProbabilityHigh:
		return StyleRed
	case domain.ProbabilityMedium:
		return StyleYellow
	case domain.ProbabilityLow:
		return StyleGreen
	default:
		return StyleUnknown
	}
}

func MilestoneStyle(s domain.MilestoneStatus) lipgloss.Style {
	switch s {
	case domain.MilestoneCompleted:
		return StyleGreen
	case domain.MilestoneAtRisk:
		return StyleRed
	case domain.MilestoneInProgress:
		return StyleBlue
	case domain.MilestoneNotStarted:
		return StyleDim
	default:
		return StyleUnknown
	}
}

func RACIStyle(r domain.RACIRole) lipgloss.Style {
	switch r {
	case domain.RACIResponsible:
		return StyleBlue
	case domain.RACIAccountable:
		return StylePurple
	case domain.RACIConsulted:
		return StyleGreen
	case domain.RACIInformed:
		return StyleDim
	default:
		return StyleUnknown
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
