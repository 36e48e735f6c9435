package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/google/uuid"
)

var testIDCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%03d", prefix, testIDCounter.Add(1))
}

// Product options
type ProductOption func(*domain.Product)

func WithProductID(id string) ProductOption {
	return func(p *domain.Product) {
		p.ID = id
	}
}

func WithHorizon(h domain.Horizon) ProductOption {
	return func(p *domain.Product) {
		p.Horizon = h
	}
}

func WithBenefit(v float64) ProductOption {
	return func(p *domain.Product) {
		p.EstimatedBenefit = v
	}
}

func WithCloudCosts(v float64) ProductOption {
	return func(p *domain.Product) {
		p.CloudCosts = v
	}
}

func WithRisk(sev domain.Severity) ProductOption {
	return func(p *domain.Product) {
		p.Risks = append(p.Risks, NewTestRisk(sev))
	}
}

func WithMilestone(status domain.MilestoneStatus) ProductOption {
	return func(p *domain.Product) {
		p.Milestones = append(p.Milestones, NewTestMilestone(status))
	}
}

func WithStakeholder(role domain.RACIRole) ProductOption {
	return func(p *domain.Product) {
		p.Stakeholders = append(p.Stakeholders, NewTestStakeholder(role))
	}
}

func NewTestProduct(name string, opts ...ProductOption) domain.Product {
	p := domain.Product{
		ID:               nextID("p"),
		Name:             name,
		Description:      name + " description",
		Horizon:          domain.HorizonIdea,
		EstimatedBenefit: 100000,
		CloudCosts:       1000,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func NewTestRisk(sev domain.Severity) domain.Risk {
	return domain.Risk{
		ID:          nextID("r"),
		Title:       string(sev) + " risk",
		Severity:    sev,
		Probability: domain.ProbabilityMedium,
		Mitigation:  "monitor",
		Owner:       "Owner",
	}
}

func NewTestMilestone(status domain.MilestoneStatus) domain.Milestone {
	return domain.Milestone{
		ID:      nextID("m"),
		Title:   string(status) + " milestone",
		DueDate: "2025-06-30",
		Status:  status,
		Owner:   "Owner",
	}
}

func NewTestStakeholder(role domain.RACIRole) domain.Stakeholder {
	id := nextID("s")
	return domain.Stakeholder{
		ID:       id,
		Name:     "Stakeholder " + id,
		Role:     "Engineer",
		Email:    id + "@example.com",
		RACIRole: role,
	}
}

// ValueStream options
type StreamOption func(*streamBuilder)

type streamBuilder struct {
	vs          domain.ValueStream
	storedTotal bool
}

func WithStreamID(id string) StreamOption {
	return func(b *streamBuilder) {
		b.vs.ID = id
	}
}

func WithManager(id string) StreamOption {
	return func(b *streamBuilder) {
		b.vs.ProductManagerID = id
	}
}

func WithStoredTotals(benefit, cloudCosts float64) StreamOption {
	return func(b *streamBuilder) {
		b.vs.TotalBenefit = benefit
		b.vs.TotalCloudCosts = cloudCosts
		b.storedTotal = true
	}
}

func WithProducts(products ...domain.Product) StreamOption {
	return func(b *streamBuilder) {
		b.vs.Products = append(b.vs.Products, products...)
	}
}

// NewTestValueStream builds a stream whose stored totals match its products
// unless WithStoredTotals overrides them. Products are re-parented to the
// stream's ID.
func NewTestValueStream(name string, opts ...StreamOption) domain.ValueStream {
	b := &streamBuilder{vs: domain.ValueStream{
		ID:          uuid.New().String(),
		Name:        name,
		Description: name + " description",
	}}
	for _, opt := range opts {
		opt(b)
	}
	vs := b.vs
	for i := range vs.Products {
		vs.Products[i].ValueStreamID = vs.ID
	}
	if !b.storedTotal {
		for _, p := range vs.Products {
			vs.TotalBenefit += p.EstimatedBenefit
			vs.TotalCloudCosts += p.CloudCosts
		}
	}
	return vs
}

// NewTestSnapshot wraps streams and managers into a snapshot.
func NewTestSnapshot(managers []domain.ProductManager, streams ...domain.ValueStream) *domain.Snapshot {
	return &domain.Snapshot{
		Managers:     managers,
		ValueStreams: streams,
		Source:       "test",
	}
}
