package domain

// Horizon is a product's lifecycle stage.
type Horizon string

const (
	HorizonIdea       Horizon = "Idea"
	HorizonEvaluation Horizon = "Evaluation"
	HorizonEmerging   Horizon = "Emerging"
	HorizonInvesting  Horizon = "Investing"
	HorizonExtracting Horizon = "Extracting"
	HorizonRetiring   Horizon = "Retiring"
)

// AllHorizons returns every horizon in canonical display order.
func AllHorizons() []Horizon {
	return []Horizon{
		HorizonIdea,
		HorizonEvaluation,
		HorizonEmerging,
		HorizonInvesting,
		HorizonExtracting,
		HorizonRetiring,
	}
}

func (h Horizon) Valid() bool {
	switch h {
	case HorizonIdea, HorizonEvaluation, HorizonEmerging,
		HorizonInvesting, HorizonExtracting, HorizonRetiring:
		return true
	}
	return false
}

type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "Not Started"
	MilestoneInProgress MilestoneStatus = "In Progress"
	MilestoneCompleted  MilestoneStatus = "Completed"
	MilestoneAtRisk     MilestoneStatus = "At Risk"
)

func AllMilestoneStatuses() []MilestoneStatus {
	return []MilestoneStatus{MilestoneNotStarted, MilestoneInProgress, MilestoneCompleted, MilestoneAtRisk}
}

func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestoneNotStarted, MilestoneInProgress, MilestoneCompleted, MilestoneAtRisk:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

func AllSeverities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// IsHigh reports whether the severity counts toward the high/critical tallies.
func (s Severity) IsHigh() bool {
	return s == SeverityHigh || s == SeverityCritical
}

type Probability string

const (
	ProbabilityLow    Probability = "Low"
	ProbabilityMedium Probability = "Medium"
	ProbabilityHigh   Probability = "High"
)

func AllProbabilities() []Probability {
	return []Probability{ProbabilityLow, ProbabilityMedium, ProbabilityHigh}
}

func (p Probability) Valid() bool {
	switch p {
	case ProbabilityLow, ProbabilityMedium, ProbabilityHigh:
		return true
	}
	return false
}

type RACIRole string

const (
	RACIResponsible RACIRole = "Responsible"
	RACIAccountable RACIRole = "Accountable"
	RACIConsulted   RACIRole = "Consulted"
	RACIInformed    RACIRole = "Informed"
)

func AllRACIRoles() []RACIRole {
	return []RACIRole{RACIResponsible, RACIAccountable, RACIConsulted, RACIInformed}
}

func (r RACIRole) Valid() bool {
	switch r {
	case RACIResponsible, RACIAccountable, RACIConsulted, RACIInformed:
		return true
	}
	return false
}
