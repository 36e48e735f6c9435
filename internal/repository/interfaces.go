package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// ErrEmptyStore is returned by Load when nothing has been imported yet.
var ErrEmptyStore = errors.New("snapshot store is empty")

// SnapshotMeta describes the snapshot currently held by a store.
type SnapshotMeta struct {
	Source     string
	ImportedAt time.Time
}

// SnapshotRepo persists a whole portfolio snapshot. Replace swaps the stored
// graph for a new one; there is no per-entity mutation.
type SnapshotRepo interface {
	Replace(ctx context.Context, snap *domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
	Meta(ctx context.Context) (*SnapshotMeta, error)
}
