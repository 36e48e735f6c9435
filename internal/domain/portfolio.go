package domain

import "time"

const dueDateLayout = "2006-01-02"

type ProductManager struct {
	ID    string
	Name  string
	Email string
}

// ValueStream groups products under one funding line. TotalBenefit and
// TotalCloudCosts are curated figures supplied with the data; they are not
// derived from Products.
type ValueStream struct {
	ID               string
	Name             string
	Description      string
	ProductManagerID string
	Products         []Product
	TotalBenefit     float64
	TotalCloudCosts  float64
}

// ShortName returns the first word of the stream name, used for tab labels.
func (vs *ValueStream) ShortName() string {
	for i, r := range vs.Name {
		if r == ' ' {
			return vs.Name[:i]
		}
	}
	return vs.Name
}

type Product struct {
	ID               string
	Name             string
	Description      string
	Horizon          Horizon
	EstimatedBenefit float64
	CloudCosts       float64 // monthly
	ValueStreamID    string
	Milestones       []Milestone
	Risks            []Risk
	Stakeholders     []Stakeholder
}

type Milestone struct {
	ID          string
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD
	Status      MilestoneStatus
	Owner       string
}

// Due parses DueDate. The second return value is false when the date is
// empty or malformed.
func (m *Milestone) Due() (time.Time, bool) {
	if m.DueDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dueDateLayout, m.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type Risk struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
	Probability Probability
	Mitigation  string
	Owner       string
}

type Stakeholder struct {
	ID       string
	Name     string
	Role     string
	Email    string
	RACIRole RACIRole
}
