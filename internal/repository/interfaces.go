package repository

import (
	"context"

	"github.com/TechnicalShree/doorflow/internal/domain"
)

// SnapshotRepository owns the current committed snapshot of the tenant tree.
// Readers get the committed pointer; writers go through Update, which applies
// a transition atomically and commits only when it returns a new snapshot
// without error.
type SnapshotRepository interface {
	// Snapshot returns the most recently committed snapshot.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)

	// Update runs apply against the current snapshot and commits its result.
	// Returning the current snapshot unchanged is a valid no-op. When apply
	// fails nothing is committed and the error is returned.
	Update(ctx context.Context, apply func(*domain.Snapshot) (*domain.Snapshot, error)) (*domain.Snapshot, error)
}
