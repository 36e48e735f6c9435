package service

import (
	"context"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/importer"
)

// PortfolioService answers every read the dashboard makes against one
// immutable snapshot. Implementations are safe for concurrent use.
type PortfolioService interface {
	app.OverviewUseCase
	app.ValueStreamUseCase
	app.ProductDetailUseCase
	Snapshot() *domain.Snapshot
}

type ImportService interface {
	app.ImportSnapshotUseCase
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema, source string) (*app.ImportResult, error)
}
