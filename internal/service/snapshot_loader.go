package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/config"
	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/fixture"
	"github.com/alexanderramin/horizon/internal/importer"
	"github.com/alexanderramin/horizon/internal/repository"
)

// SnapshotSpec selects where the process snapshot comes from.
type SnapshotSpec struct {
	Source   config.Source
	DataPath string
	DBPath   string
}

// SpecFromConfig extracts the snapshot selection from cfg.
func SpecFromConfig(cfg *config.Config) SnapshotSpec {
	return SnapshotSpec{Source: cfg.Source, DataPath: cfg.DataPath, DBPath: cfg.DBPath}
}

// SnapshotLoader builds the snapshot once per call from the configured
// source. It implements app.SnapshotSource.
type SnapshotLoader struct {
	spec     SnapshotSpec
	observer UseCaseObserver
}

func NewSnapshotLoader(spec SnapshotSpec, observers ...UseCaseObserver) *SnapshotLoader {
	return &SnapshotLoader{
		spec:     spec,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (l *SnapshotLoader) Load(ctx context.Context) (snap *domain.Snapshot, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": string(l.spec.Source)}
	defer observe(ctx, l.observer, UseCaseLoadSnapshot, startedAt, fields, &err)

	switch l.spec.Source {
	case config.SourceFixture, "":
		snap = fixture.Snapshot()
	case config.SourceFile:
		snap, err = loadFile(l.spec.DataPath)
	case config.SourceSQLite:
		snap, err = loadStore(ctx, l.spec.DBPath)
	default:
		return nil, fmt.Errorf("unknown snapshot source %q", l.spec.Source)
	}
	if err != nil {
		return nil, err
	}
	fields["value_streams"] = len(snap.ValueStreams)
	return snap, nil
}

func loadFile(path string) (*domain.Snapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("file source requires a data path")
	}
	schema, err := importer.LoadSnapshotSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	return importer.Convert(schema, path), nil
}

func loadStore(ctx context.Context, path string) (*domain.Snapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite source requires a database path")
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	snap, err := repository.NewSQLiteSnapshotRepo(database).Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyStore) {
			return nil, fmt.Errorf("no snapshot stored in %s, run 'horizon import <file>' first: %w", path, err)
		}
		return nil, fmt.Errorf("loading stored snapshot: %w", err)
	}
	snap.Source = "sqlite:" + path
	return snap, nil
}
