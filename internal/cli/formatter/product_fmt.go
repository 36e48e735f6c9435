package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ProductSection names one tab of the product detail page.
type ProductSection int

const (
	SectionMilestones ProductSection = iota
	SectionRisks
	SectionStakeholders
	SectionRACI
)

// ProductSections lists the tabs in display order.
func ProductSections() []ProductSection {
	return []ProductSection{SectionMilestones, SectionRisks, SectionStakeholders, SectionRACI}
}

func (s ProductSection) String() string {
	switch s {
	case SectionMilestones:
		return "Roadmap"
	case SectionRisks:
		return "Risks"
	case SectionStakeholders:
		return "Stakeholders"
	case SectionRACI:
		return "RACI Matrix"
	default:
		return "Unknown"
	}
}

// ProductHeader renders the product title line with its stream and horizon.
func ProductHeader(d *app.ProductDetail) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(d.Product.Name) + "  " + HorizonBadge(d.Product.Horizon))
	if d.AtRisk {
		b.WriteString("  " + StyleRed.Render("▲ at risk"))
	}
	b.WriteString("\n")
	if d.ValueStreamName != "" {
		b.WriteString(Dim(d.ValueStreamName) + "\n")
	}
	if d.Product.Description != "" {
		b.WriteString(d.Product.Description + "\n")
	}
	return b.String()
}

// ProductMetrics renders the four product figures side by side.
func ProductMetrics(d *app.ProductDetail) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		MetricCard("Estimated Benefit", Millions(d.Product.EstimatedBenefit), "Annual value"),
		MetricCard("Cloud Costs", Thousands(d.Product.CloudCosts), "Monthly spend"),
		MetricCard("Milestones", fmt.Sprintf("%d", len(d.Product.Milestones)),
			fmt.Sprintf("%d completed", d.CompletedMilestones)),
		MetricCard("Risks", fmt.Sprintf("%d", len(d.Product.Risks)),
			fmt.Sprintf("%d high/critical", d.HighSeverityRisks)),
	)
}

// FormatSection renders a single product tab body.
func FormatSection(d *app.ProductDetail, s ProductSection, now time.Time) string {
	switch s {
	case SectionMilestones:
		return FormatMilestones(d.Product.Milestones, now)
	case SectionRisks:
		return FormatRisks(d.Product.Risks)
	case SectionStakeholders:
		return FormatStakeholders(d.Product.Stakeholders)
	case SectionRACI:
		return FormatRACI(d.Product.Stakeholders)
	default:
		return ""
	}
}

// FormatProductDetail renders the full product page with every section.
func FormatProductDetail(d *app.ProductDetail, now time.Time) string {
	var b strings.Builder
	b.WriteString(ProductHeader(d))
	b.WriteString("\n")
	b.WriteString(ProductMetrics(d))
	b.WriteString("\n\n")
	for _, s := range ProductSections() {
		b.WriteString(Header(s.String()) + "\n")
		b.WriteString(FormatSection(d, s, now))
		b.WriteString("\n")
	}
	return b.String()
}

func FormatMilestones(ms []domain.Milestone, now time.Time) string {
	if len(ms) == 0 {
		return Dim("No milestones defined yet") + "\n"
	}
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(m.Title), MilestonePill(m.Status))
		if m.Description != "" {
			b.WriteString("  " + Dim(m.Description) + "\n")
		}
		line := "  " + DueLabel(m, now)
		if m.Owner != "" {
			line += Dim("  ·  Owner: ") + m.Owner
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func FormatRisks(risks []domain.Risk) string {
	if len(risks) == 0 {
		return Dim("No risks identified") + "\n"
	}
	var b strings.Builder
	for i, r := range risks {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", StyleBold.Render(r.Title), SeverityBadge(r.Severity), ProbabilityLabel(r.Probability))
		if r.Description != "" {
			b.WriteString("  " + r.Description + "\n")
		}
		if r.Mitigation != "" {
			b.WriteString("  " + Dim("Mitigation: ") + r.Mitigation + "\n")
		}
		if r.Owner != "" {
			b.WriteString("  " + Dim("Owner: "+r.Owner) + "\n")
		}
	}
	return b.String()
}

func FormatStakeholders(ss []domain.Stakeholder) string {
	if len(ss) == 0 {
		return Dim("No stakeholders defined") + "\n"
	}
	var b strings.Builder
	for _, s := range ss {
		fmt.Fprintf(&b, "%s %s  %s\n", RACILetter(s.RACIRole), StyleBold.Render(s.Name), RACIBadge(s.RACIRole))
		fmt.Fprintf(&b, "  %s\n", s.Role)
		if s.Email != "" {
			fmt.Fprintf(&b, "  %s\n", Dim(s.Email))
		}
	}
	return b.String()
}

// FormatRACI renders the responsibility matrix followed by its legend.
func FormatRACI(ss []domain.Stakeholder) string {
	if len(ss) == 0 {
		return Dim("No RACI matrix defined") + "\n"
	}
	rows := make([][]string, 0, len(ss))
	for _, s := range ss {
		rows = append(rows, []string{s.Name, s.Role, RACIBadge(s.RACIRole), Dim(s.Email)})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"Stakeholder", "Role", "RACI Role", "Contact"}, rows))
	b.WriteString("\n")
	b.WriteString(RACILegend())
	return b.String()
}

func RACILegend() string {
	descriptions := map[domain.RACIRole]string{
		domain.RACIResponsible: "Does the work",
		domain.RACIAccountable: "Signs off",
		domain.RACIConsulted:   "Provides input",
		domain.RACIInformed:    "Kept in the loop",
	}
	var b strings.Builder
	for _, r := range domain.AllRACIRoles() {
		fmt.Fprintf(&b, "%s %s\n", RACILetter(r), Dim(string(r)+" - "+descriptions[r]))
	}
	return b.String()
}
