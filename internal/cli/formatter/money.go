package formatter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/portfolio"
)

// Unassigned labels a value stream whose product manager is unknown.
const Unassigned = "Unassigned"

// Millions formats an amount as "$1.5M".
func Millions(v float64) string {
	return fmt.Sprintf("$%.1fM", v/1_000_000)
}

// Thousands formats an amount as "$45K".
func Thousands(v float64) string {
	return fmt.Sprintf("$%.0fK", v/1_000)
}

// PerMonth formats a monthly amount as "$45K/mo".
func PerMonth(v float64) string {
	return Thousands(v) + "/mo"
}

// ROI formats a benefit-to-cost ratio as "4.68x" with trailing zeros
// dropped. Non-finite ratios render as "N/A".
func ROI(v float64) string {
	if !portfolio.ROIAvailable(v) {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "x"
}

// Percent rounds a 0..100 share to a whole-number percentage.
func Percent(pct float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(pct)))
}

// ManagerName returns the manager's name or Unassigned for nil.
func ManagerName(pm *domain.ProductManager) string {
	if pm == nil || pm.Name == "" {
		return Unassigned
	}
	return pm.Name
}
