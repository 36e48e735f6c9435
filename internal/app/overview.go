package app

import (
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/portfolio"
)

type OverviewRequest struct {
	TopN                  int
	IncludeReconciliation bool
}

func NewOverviewRequest() OverviewRequest {
	return OverviewRequest{TopN: portfolio.DefaultTopN}
}

type PortfolioOverview struct {
	GeneratedAt      time.Time
	Source           string
	ProductCount     int
	ValueStreamCount int
	TotalBenefit     float64
	MonthlyCloudCost float64
	ROI              float64 // non-finite when there is no cloud cost
	AtRiskCount      int
	Horizons         []portfolio.HorizonShare
	ValueStreams     []ValueStreamSummary
	TopProducts      []domain.Product
	Discrepancies    []portfolio.Discrepancy
	Reconciled       bool
}

// ValueStreamSummary is everything a stream card or stream page shows.
// Manager is nil when the stream references an unknown product manager.
type ValueStreamSummary struct {
	ID               string
	Name             string
	ShortName        string
	Description      string
	Manager          *domain.ProductManager
	TotalBenefit     float64
	MonthlyCloudCost float64
	ROI              float64
	ProductCount     int
	AtRiskCount      int
	Horizons         []portfolio.HorizonShare
	TopProducts      []domain.Product
	Products         []ProductSummary
}

type ProductSummary struct {
	Product             domain.Product
	AtRisk              bool
	CompletedMilestones int
	HighSeverityRisks   int
}

type ProductDetail struct {
	ProductSummary
	ValueStreamID      string
	ValueStreamName    string
	StakeholdersByRole map[domain.RACIRole][]domain.Stakeholder
}
