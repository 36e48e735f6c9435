package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/importer"
	"github.com/alexanderramin/horizon/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService stores imported snapshots through uow. Each import
// replaces the stored snapshot in a single transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSnapshotFromSchema(ctx, schema, filePath)
}

func (s *importService) ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema, source string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": source}
	defer observe(ctx, s.observer, UseCaseImportSnapshot, startedAt, fields, &err)

	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	snap := importer.Convert(schema, source)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSnapshotRepo(tx).Replace(ctx, snap); err != nil {
			return fmt.Errorf("storing snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = summarizeImport(snap)
	fields["value_streams"] = result.ValueStreamCount
	fields["products"] = result.ProductCount
	return result, nil
}

func summarizeImport(snap *domain.Snapshot) *app.ImportResult {
	res := &app.ImportResult{
		Source:           snap.Source,
		ManagerCount:     len(snap.Managers),
		ValueStreamCount: len(snap.ValueStreams),
	}
	for _, vs := range snap.ValueStreams {
		res.ProductCount += len(vs.Products)
		for _, p := range vs.Products {
			res.MilestoneCount += len(p.Milestones)
			res.RiskCount += len(p.Risks)
			res.StakeholderCount += len(p.Stakeholders)
		}
	}
	return res
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
