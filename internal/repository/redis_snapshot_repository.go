package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/TechnicalShree/doorflow/internal/domain"
	"github.com/TechnicalShree/doorflow/pkg/redis"
)

// DefaultSnapshotKey is the fixed key the tenant tree is persisted under.
const DefaultSnapshotKey = "doorflow:tenants"

// PersistedSnapshotRepository decorates a snapshot repository with a Redis
// copy of the tenant tree: one JSON blob under a fixed key, loaded at startup
// and rewritten after every commit. Persistence is best-effort; a write
// failure is logged and never fails the mutation, since the in-memory
// snapshot remains the source of truth for the session.
type PersistedSnapshotRepository struct {
	inner SnapshotRepository
	redis *redis.Client
	key   string
	log   *zap.Logger
}

// NewPersistedSnapshotRepository wraps inner with Redis persistence.
func NewPersistedSnapshotRepository(inner SnapshotRepository, client *redis.Client, key string, log *zap.Logger) *PersistedSnapshotRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &PersistedSnapshotRepository{
		inner: inner,
		redis: client,
		key:   key,
		log:   log,
	}
}

// Load replaces the in-memory snapshot with the persisted one when present.
// A missing key is not an error; a corrupt blob is surfaced so the caller can
// decide to continue from the seed.
func (r *PersistedSnapshotRepository) Load(ctx context.Context) error {
	blob, err := r.redis.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read persisted snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		return fmt.Errorf("failed to decode persisted snapshot: %w", err)
	}

	_, err = r.inner.Update(ctx, func(*domain.Snapshot) (*domain.Snapshot, error) {
		return &snapshot, nil
	})
	return err
}

// Snapshot returns the committed in-memory snapshot.
func (r *PersistedSnapshotRepository) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	return r.inner.Snapshot(ctx)
}

// Update commits through the inner repository, then rewrites the blob.
func (r *PersistedSnapshotRepository) Update(ctx context.Context, apply func(*domain.Snapshot) (*domain.Snapshot, error)) (*domain.Snapshot, error) {
	committed, err := r.inner.Update(ctx, apply)
	if err != nil {
		return committed, err
	}
	r.persist(ctx, committed)
	return committed, nil
}

func (r *PersistedSnapshotRepository) persist(ctx context.Context, snapshot *domain.Snapshot) {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		r.log.Warn("Failed to encode snapshot for persistence", zap.Error(err))
		return
	}
	if err := r.redis.Set(ctx, r.key, blob, 0).Err(); err != nil {
		r.log.Warn("Failed to persist snapshot", zap.String("key", r.key), zap.Error(err))
	}
}
