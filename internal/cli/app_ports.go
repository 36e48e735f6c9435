package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/service"
)

func (a *App) observers() []service.UseCaseObserver {
	if a.Observer == nil {
		return nil
	}
	return []service.UseCaseObserver{a.Observer}
}

// portfolio returns the preset service or loads the configured snapshot
// once and serves it for the rest of the process.
func (a *App) portfolio(ctx context.Context) (service.PortfolioService, error) {
	if a.Portfolio != nil {
		return a.Portfolio, nil
	}
	loader := service.NewSnapshotLoader(service.SpecFromConfig(a.Config), a.observers()...)
	snap, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	a.Portfolio = service.NewPortfolioService(snap, a.observers()...)
	return a.Portfolio, nil
}

// importer returns the preset import use case or one writing to the
// configured store. The returned close func releases the store.
func (a *App) importer() (app.ImportSnapshotUseCase, func(), error) {
	if a.Import != nil {
		return a.Import, func() {}, nil
	}
	database, err := db.OpenDB(a.Config.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	uow := db.NewSQLiteUnitOfWork(database)
	return service.NewImportService(uow, a.observers()...), func() { database.Close() }, nil
}

func (a *App) overviewRequest(reconcile bool) app.OverviewRequest {
	req := app.NewOverviewRequest()
	if a.Config != nil && a.Config.TopN > 0 {
		req.TopN = a.Config.TopN
	}
	req.IncludeReconciliation = reconcile
	return req
}
