package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/charmbracelet/lipgloss"
)

const streamCardWidth = 44

// FormatValueStreamCard renders the compact executive card for one stream.
func FormatValueStreamCard(vs *app.ValueStreamSummary) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(vs.Name) + "\n")
	b.WriteString(Dim("PM: "+ManagerName(vs.Manager)) + "\n\n")

	rows := [][2]string{
		{"Products", fmt.Sprintf("%d", vs.ProductCount)},
		{"Total Benefit", Millions(vs.TotalBenefit)},
		{"Cloud Costs", Thousands(vs.MonthlyCloudCost)},
		{"At Risk", atRiskValue(vs.AtRiskCount)},
	}
	for _, r := range rows {
		b.WriteString(labelValue(r[0], r[1], streamCardWidth-4) + "\n")
	}

	if len(vs.Horizons) > 0 {
		b.WriteString("\n")
		badges := make([]string, 0, len(vs.Horizons))
		for _, s := range vs.Horizons {
			badges = append(badges, HorizonStyle(s.Horizon).Render(fmt.Sprintf("%s: %d", s.Horizon, s.Count)))
		}
		b.WriteString(strings.Join(badges, "  ") + "\n")
	}

	if len(vs.TopProducts) > 0 {
		b.WriteString("\n" + Dim("Top products") + "\n")
		for _, p := range vs.TopProducts {
			fmt.Fprintf(&b, "%s %s %s\n", HorizonCode(p.Horizon), p.Name, Dim(Millions(p.EstimatedBenefit)))
		}
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(streamCardWidth)
	return card.Render(strings.TrimRight(b.String(), "\n"))
}

// ValueStreamHeader renders a stream's name, manager, figures and horizon
// shares.
func ValueStreamHeader(vs *app.ValueStreamSummary) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(vs.Name))
	b.WriteString("  " + Dim("PM: "+ManagerName(vs.Manager)) + "\n")
	if vs.Description != "" {
		b.WriteString(Dim(vs.Description) + "\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s   %s %s   %s %s\n",
		Dim("Products"), StyleBold.Render(fmt.Sprintf("%d", vs.ProductCount)),
		Dim("Benefit"), StyleBold.Render(Millions(vs.TotalBenefit)),
		Dim("Cloud Costs"), StyleBold.Render(PerMonth(vs.MonthlyCloudCost)),
		Dim("ROI"), StyleBold.Render(ROI(vs.ROI)),
		Dim("At Risk"), atRiskValue(vs.AtRiskCount),
	)
	b.WriteString("\n")

	if len(vs.Horizons) > 0 {
		b.WriteString(FormatHorizons(vs.Horizons))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatValueStreamDetail renders the expanded stream block: figures,
// horizon shares and one line per product.
func FormatValueStreamDetail(vs *app.ValueStreamSummary) string {
	var b strings.Builder
	b.WriteString(ValueStreamHeader(vs))

	if len(vs.Products) == 0 {
		b.WriteString(Dim("No products in this value stream") + "\n")
		return b.String()
	}

	b.WriteString(ProductTable(vs.Products, -1))
	return b.String()
}

// ProductTable renders one row per product. The row at selected, if any,
// is marked with a cursor.
func ProductTable(products []app.ProductSummary, selected int) string {
	rows := make([][]string, 0, len(products))
	for i, ps := range products {
		row := productRow(ps)
		if selected >= 0 {
			marker := " "
			if i == selected {
				marker = StyleOrange.Render("▸")
				row[0] = StyleBold.Render(row[0])
			}
			row = append([]string{marker}, row...)
		}
		rows = append(rows, row)
	}
	headers := []string{"Product", "Horizon", "Benefit", "Cloud Cost", "Risks", ""}
	aligns := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft}
	if selected >= 0 {
		headers = append([]string{""}, headers...)
		aligns = append([]Align{AlignLeft}, aligns...)
	}
	return RenderAlignedTable(headers, rows, aligns)
}

func productRow(ps app.ProductSummary) []string {
	flag := ""
	if ps.AtRisk {
		flag = StyleRed.Render("▲ at risk")
	}
	risks := Dim("-")
	if n := len(ps.Product.Risks); n > 0 {
		risks = Plural(n, "risk")
		if ps.HighSeverityRisks > 0 {
			risks = StyleOrange.Render(risks)
		}
	}
	return []string{
		ps.Product.Name,
		HorizonBadge(ps.Product.Horizon),
		Millions(ps.Product.EstimatedBenefit),
		PerMonth(ps.Product.CloudCosts),
		risks,
		flag,
	}
}

func atRiskValue(n int) string {
	if n == 0 {
		return StyleGreen.Render("0 products")
	}
	return StyleRed.Render(Plural(n, "product"))
}

// labelValue left-aligns label and right-aligns value within width.
func labelValue(label, value string, width int) string {
	pad := width - lipgloss.Width(label) - lipgloss.Width(value)
	if pad < 1 {
		pad = 1
	}
	return Dim(label) + strings.Repeat(" ", pad) + value
}
