package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/domain"
	"github.com/TechnicalShree/doorflow/internal/repository"
)

// SyncDefaults fill the gaps in remote records, which often omit venue,
// capacity, and start time.
type SyncDefaults struct {
	TenantID string
	Venue    string
	Capacity int
	StartsAt string
}

// syncService implements SyncService
type syncService struct {
	repo     repository.SnapshotRepository
	remote   catalyst.Client
	defaults SyncDefaults
	log      *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(repo repository.SnapshotRepository, remote catalyst.Client, defaults SyncDefaults, log *zap.Logger) SyncService {
	if log == nil {
		log = zap.NewNop()
	}
	return &syncService{
		repo:     repo,
		remote:   remote,
		defaults: defaults,
		log:      log,
	}
}

// Pull fetches the remote collection and merges it into the store. Remote
// records win on event fields; local attendee rosters and check-ins are kept
// for matched events, and local-only events survive untouched.
func (s *syncService) Pull(ctx context.Context) (int, error) {
	records, err := s.remote.ListEvents(ctx, nil)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	_, err = s.repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		incoming := make(map[string][]*domain.Event)
		for _, rec := range records {
			tenantID := s.attributeTenant(current, rec)
			incoming[tenantID] = append(incoming[tenantID], s.mapRecord(rec))
		}
		return current.MergeEvents(incoming), nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Debug("remote events merged", zap.Int("count", len(records)))
	return len(records), nil
}

// attributeTenant resolves which tenant owns a remote record. Records carry
// the creating tenant's id in created_by_user_id; anything unattributable
// lands on the default tenant.
func (s *syncService) attributeTenant(snapshot *domain.Snapshot, rec *catalyst.RemoteEvent) string {
	if rec.CreatedByUserID != "" && snapshot.FindTenant(rec.CreatedByUserID) != nil {
		return rec.CreatedByUserID
	}
	if snapshot.FindTenant(s.defaults.TenantID) != nil {
		return s.defaults.TenantID
	}
	if len(snapshot.Tenants) > 0 {
		return snapshot.Tenants[0].ID
	}
	return s.defaults.TenantID
}

func (s *syncService) mapRecord(rec *catalyst.RemoteEvent) *domain.Event {
	id := rec.Identifier()
	if id == "" {
		id = domain.NewID("evt")
	}

	slug := rec.Slug
	if slug == "" {
		slug = domain.NormalizeSlug(rec.Name)
	}

	startsAt := rec.StartsAt
	if startsAt == "" {
		startsAt = s.defaults.StartsAt
	}

	venue := rec.Venue
	if venue == "" {
		venue = s.defaults.Venue
	}

	capacity := s.defaults.Capacity
	if n, ok := rec.Capacity.Int(); ok {
		capacity = domain.ClampCapacity(float64(n))
	}

	return &domain.Event{
		ID:        id,
		Slug:      slug,
		Name:      rec.Name,
		StartsAt:  startsAt,
		Venue:     venue,
		Capacity:  capacity,
		CreatedAt: parseRemoteTime(rec.CreatedAt, rec.CreatedTime),
		Attendees: []*domain.Attendee{},
		Checkins:  []*domain.CheckinRecord{},
	}
}

// remoteTimeLayouts covers the timestamp shapes the remote store emits,
// depending on whether the record came from the API or the Catalyst console.
var remoteTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05:000",
	"2006-01-02T15:04",
}

func parseRemoteTime(values ...string) time.Time {
	for _, v := range values {
		if v == "" {
			continue
		}
		for _, layout := range remoteTimeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}
