package app

import (
	"context"

	"github.com/alexanderramin/horizon/internal/domain"
)

type OverviewUseCase interface {
	Overview(ctx context.Context, req OverviewRequest) (*PortfolioOverview, error)
}

type ValueStreamUseCase interface {
	ValueStream(ctx context.Context, id string, topN int) (*ValueStreamSummary, error)
}

type ProductDetailUseCase interface {
	Product(ctx context.Context, id string) (*ProductDetail, error)
}

type ImportResult struct {
	Source           string
	ManagerCount     int
	ValueStreamCount int
	ProductCount     int
	MilestoneCount   int
	RiskCount        int
	StakeholderCount int
}

type ImportSnapshotUseCase interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
}

// SnapshotSource produces the snapshot a process serves for its lifetime.
type SnapshotSource interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}
