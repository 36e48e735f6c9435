package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/app"
)

// FormatImportResult summarizes a completed import.
func FormatImportResult(r *app.ImportResult, dbPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Imported %s\n", StyleGreen.Render("✔"), StyleBold.Render(r.Source))
	if dbPath != "" {
		fmt.Fprintf(&b, "  %s\n", Dim("into "+dbPath))
	}
	b.WriteString("\n")
	rows := [][]string{
		{"Product managers", fmt.Sprintf("%d", r.ManagerCount)},
		{"Value streams", fmt.Sprintf("%d", r.ValueStreamCount)},
		{"Products", fmt.Sprintf("%d", r.ProductCount)},
		{"Milestones", fmt.Sprintf("%d", r.MilestoneCount)},
		{"Risks", fmt.Sprintf("%d", r.RiskCount)},
		{"Stakeholders", fmt.Sprintf("%d", r.StakeholderCount)},
	}
	b.WriteString(RenderAlignedTable([]string{"Entity", "Count"}, rows, []Align{AlignLeft, AlignRight}))
	return b.String()
}
