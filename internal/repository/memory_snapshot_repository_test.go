package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TechnicalShree/doorflow/internal/domain"
)

func TestMemoryRepositorySeedsWhenNil(t *testing.T) {
	repo := NewMemorySnapshotRepository(nil)

	snapshot, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Tenants) != 2 {
		t.Errorf("expected seed tenants, got %d", len(snapshot.Tenants))
	}
	if snapshot.ActiveTenantID != "org-nova" {
		t.Errorf("unexpected active tenant %q", snapshot.ActiveTenantID)
	}
}

func TestMemoryRepositoryUpdateCommits(t *testing.T) {
	repo := NewMemorySnapshotRepository(nil)
	ctx := context.Background()

	committed, err := repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		next, _, err := current.CreateEvent("org-nova", domain.EventDraft{
			Name:     "Launch Night",
			StartsAt: "2026-04-01T19:00",
			Venue:    "Main Hall",
			Capacity: 50,
		}, time.Now().UTC())
		return next, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot, _ := repo.Snapshot(ctx)
	if snapshot != committed {
		t.Error("Snapshot should return the committed value")
	}
	if len(snapshot.FindTenant("org-nova").Events) != 3 {
		t.Error("update was not committed")
	}
}

func TestMemoryRepositoryUpdateRollsBackOnError(t *testing.T) {
	repo := NewMemorySnapshotRepository(nil)
	ctx := context.Background()

	before, _ := repo.Snapshot(ctx)

	sentinel := errors.New("push failed")
	_, err := repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		next, _, err := current.CreateEvent("org-nova", domain.EventDraft{
			Name:     "Doomed",
			StartsAt: "2026-04-01T19:00",
			Venue:    "Main Hall",
			Capacity: 50,
		}, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		_ = next
		return nil, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	after, _ := repo.Snapshot(ctx)
	if after != before {
		t.Error("failed update must not commit")
	}
}
