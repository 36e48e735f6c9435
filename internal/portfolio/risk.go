package portfolio

import "github.com/alexanderramin/horizon/internal/domain"

// IsAtRisk reports whether a product has at least one High or Critical risk,
// or at least one milestone marked At Risk.
func IsAtRisk(p domain.Product) bool {
	return HighSeverityRiskCount(p.Risks) > 0 || hasAtRiskMilestone(p.Milestones)
}

// AtRiskProductCount counts products for which IsAtRisk holds.
func AtRiskProductCount(products []domain.Product) int {
	n := 0
	for _, p := range products {
		if IsAtRisk(p) {
			n++
		}
	}
	return n
}

// CompletedMilestoneCount counts milestones with status Completed.
func CompletedMilestoneCount(milestones []domain.Milestone) int {
	n := 0
	for _, m := range milestones {
		if m.Status == domain.MilestoneCompleted {
			n++
		}
	}
	return n
}

// HighSeverityRiskCount counts risks with severity High or Critical.
func HighSeverityRiskCount(risks []domain.Risk) int {
	n := 0
	for _, r := range risks {
		if r.Severity.IsHigh() {
			n++
		}
	}
	return n
}

func hasAtRiskMilestone(milestones []domain.Milestone) bool {
	for _, m := range milestones {
		if m.Status == domain.MilestoneAtRisk {
			return true
		}
	}
	return false
}

// StakeholdersByRole groups stakeholders by RACI role, preserving input order
// within each role. Roles without stakeholders are absent.
func StakeholdersByRole(stakeholders []domain.Stakeholder) map[domain.RACIRole][]domain.Stakeholder {
	groups := make(map[domain.RACIRole][]domain.Stakeholder)
	for _, s := range stakeholders {
		groups[s.RACIRole] = append(groups[s.RACIRole], s)
	}
	return groups
}
