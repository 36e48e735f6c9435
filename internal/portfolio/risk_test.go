package portfolio

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/fixture"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAtRiskProductCount_MediumRiskOnly(t *testing.T) {
	p := testutil.NewTestProduct("medium", testutil.WithRisk(domain.SeverityMedium))
	assert.False(t, IsAtRisk(p))
	assert.Equal(t, 0, AtRiskProductCount([]domain.Product{p}))
}

func TestAtRiskProductCount_CriticalRisk(t *testing.T) {
	p := testutil.NewTestProduct("critical", testutil.WithRisk(domain.SeverityCritical))
	assert.Equal(t, 1, AtRiskProductCount([]domain.Product{p}))
}

func TestAtRiskProductCount_HighRisk(t *testing.T) {
	p := testutil.NewTestProduct("high", testutil.WithRisk(domain.SeverityLow), testutil.WithRisk(domain.SeverityHigh))
	assert.Equal(t, 1, AtRiskProductCount([]domain.Product{p}))
}

func TestAtRiskProductCount_AtRiskMilestoneOnly(t *testing.T) {
	p := testutil.NewTestProduct("late", testutil.WithMilestone(domain.MilestoneAtRisk))
	assert.Empty(t, p.Risks)
	assert.Equal(t, 1, AtRiskProductCount([]domain.Product{p}))
}

func TestAtRiskProductCount_BothConditionsCountOnce(t *testing.T) {
	p := testutil.NewTestProduct("both",
		testutil.WithRisk(domain.SeverityCritical),
		testutil.WithRisk(domain.SeverityHigh),
		testutil.WithMilestone(domain.MilestoneAtRisk),
	)
	assert.Equal(t, 1, AtRiskProductCount([]domain.Product{p}))
}

func TestAtRiskProductCount_NoRisksNoMilestones(t *testing.T) {
	p := testutil.NewTestProduct("quiet")
	assert.Equal(t, 0, AtRiskProductCount([]domain.Product{p}))
	assert.Equal(t, 0, AtRiskProductCount(nil))
}

func TestAtRiskProductCount_PerStreamFixture(t *testing.T) {
	counts := map[string]int{}
	for _, vs := range fixture.ValueStreams() {
		counts[vs.ID] = AtRiskProductCount(vs.Products)
	}
	assert.Equal(t, map[string]int{"vs1": 1, "vs2": 1, "vs3": 0}, counts)
}

func TestCompletedMilestoneCount(t *testing.T) {
	ms := []domain.Milestone{
		testutil.NewTestMilestone(domain.MilestoneCompleted),
		testutil.NewTestMilestone(domain.MilestoneInProgress),
		testutil.NewTestMilestone(domain.MilestoneCompleted),
		testutil.NewTestMilestone(domain.MilestoneAtRisk),
	}
	assert.Equal(t, 2, CompletedMilestoneCount(ms))
	assert.Equal(t, 0, CompletedMilestoneCount(nil))
}

func TestHighSeverityRiskCount(t *testing.T) {
	risks := []domain.Risk{
		testutil.NewTestRisk(domain.SeverityLow),
		testutil.NewTestRisk(domain.SeverityMedium),
		testutil.NewTestRisk(domain.SeverityHigh),
		testutil.NewTestRisk(domain.SeverityCritical),
	}
	assert.Equal(t, 2, HighSeverityRiskCount(risks))
}

func TestStakeholdersByRole(t *testing.T) {
	a := testutil.NewTestStakeholder(domain.RACIAccountable)
	r1 := testutil.NewTestStakeholder(domain.RACIResponsible)
	r2 := testutil.NewTestStakeholder(domain.RACIResponsible)

	groups := StakeholdersByRole([]domain.Stakeholder{r1, a, r2})

	assert.Equal(t, []domain.Stakeholder{r1, r2}, groups[domain.RACIResponsible])
	assert.Equal(t, []domain.Stakeholder{a}, groups[domain.RACIAccountable])
	_, ok := groups[domain.RACIInformed]
	assert.False(t, ok)
}
