package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueLabel renders a milestone due date as "Mar 15, 2024 (3mo ago)". Open
// milestones past their date are highlighted; unparseable dates are shown
// verbatim.
func DueLabel(m domain.Milestone, now time.Time) string {
	due, ok := m.Due()
	if !ok {
		if m.DueDate == "" {
			return Dim("no due date")
		}
		return StyleFg.Render(m.DueDate)
	}
	date := due.Format("Jan 2, 2006")
	rel := Dim("(" + RelativeDateFrom(due, now) + ")")
	if m.Status != domain.MilestoneCompleted && due.Before(now) {
		return StyleRed.Render(date) + " " + rel
	}
	return date + " " + rel
}

// HorizonBadge renders the horizon name in its accent color.
func HorizonBadge(h domain.Horizon) string {
	return HorizonStyle(h).Render(string(h))
}

// HorizonCode renders a two-letter horizon code, unique per horizon, as used
// in compact product rows and the portfolio tree.
func HorizonCode(h domain.Horizon) string {
	var code string
	switch h {
	case domain.HorizonIdea:
		code = "Id"
	case domain.HorizonEvaluation:
		code = "Ev"
	case domain.HorizonEmerging:
		code = "Em"
	case domain.HorizonInvesting:
		code = "In"
	case domain.HorizonExtracting:
		code = "Ex"
	case domain.HorizonRetiring:
		code = "Re"
	default:
		return StyleDim.Render("??")
	}
	return HorizonStyle(h).Bold(true).Render(code)
}

// MilestonePill returns a colored status indicator such as "✔ Completed".
func MilestonePill(s domain.MilestoneStatus) string {
	var icon string
	switch s {
	case domain.MilestoneCompleted:
		icon = "✔"
	case domain.MilestoneInProgress:
		icon = "●"
	case domain.MilestoneAtRisk:
		icon = "▲"
	case domain.MilestoneNotStarted:
		icon = "○"
	default:
		icon = "?"
	}
	return MilestoneStyle(s).Render(icon + " " + string(s))
}

func SeverityBadge(s domain.Severity) string {
	return SeverityStyle(s).Bold(s.IsHigh()).Render(string(s))
}

func ProbabilityLabel(p domain.Probability) string {
	return ProbabilityStyle(p).Render(string(p) + " probability")
}

func RACIBadge(r domain.RACIRole) string {
	return RACIStyle(r).Render(string(r))
}

// RACILetter renders the single-letter RACI code.
func RACILetter(r domain.RACIRole) string {
	if r == "" {
		return StyleDim.Render("-")
	}
	return RACIStyle(r).Bold(true).Render(string(r)[:1])
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Plural returns "1 risk" or "3 risks".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
