package repository

import (
	"context"
	"sync"

	"github.com/TechnicalShree/doorflow/internal/domain"
)

// MemorySnapshotRepository holds the snapshot in memory. There is a single
// mutating actor in the intended usage pattern, but the lock makes Update
// safe to call from the sync worker and request handlers alike.
type MemorySnapshotRepository struct {
	mu      sync.RWMutex
	current *domain.Snapshot
}

// NewMemorySnapshotRepository creates a repository seeded with the given
// snapshot.
func NewMemorySnapshotRepository(seed *domain.Snapshot) *MemorySnapshotRepository {
	if seed == nil {
		seed = domain.SeedSnapshot()
	}
	return &MemorySnapshotRepository{current: seed}
}

// Snapshot returns the committed snapshot. Snapshots are immutable after
// commit, so callers may read the returned value without further locking.
func (r *MemorySnapshotRepository) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, nil
}

// Update applies a transition against the current snapshot and commits the
// result. The lock is held across apply so transitions observe a stable base.
func (r *MemorySnapshotRepository) Update(ctx context.Context, apply func(*domain.Snapshot) (*domain.Snapshot, error)) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := apply(r.current)
	if err != nil {
		return r.current, err
	}
	if next != nil {
		r.current = next
	}
	return r.current, nil
}
