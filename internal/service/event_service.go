package service

import (
	"context"
	"time"

	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/domain"
	"github.com/TechnicalShree/doorflow/internal/dto"
	"github.com/TechnicalShree/doorflow/internal/repository"
)

// eventService implements EventService
type eventService struct {
	repo   repository.SnapshotRepository
	remote catalyst.Client
}

// NewEventService creates a new EventService
func NewEventService(repo repository.SnapshotRepository, remote catalyst.Client) EventService {
	return &eventService{
		repo:   repo,
		remote: remote,
	}
}

// CreateEvent runs the combined local+remote create: the transition is built
// against the current snapshot, the remote push happens inside the update so
// nothing commits unless the remote acknowledged the write.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, any, error) {
	var (
		created  *domain.Event
		upstream any
	)

	_, err := s.repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		tenantID := req.TenantID
		if tenantID == "" {
			tenantID = current.ActiveTenantID
		}

		next, event, err := current.CreateEvent(tenantID, req.Draft(), time.Now().UTC())
		if err != nil {
			return nil, err
		}

		body, err := s.remote.CreateEvent(ctx, &catalyst.CreateEventPayload{
			ID:              event.ID,
			Slug:            event.Slug,
			Name:            event.Name,
			StartsAt:        event.StartsAt,
			Venue:           event.Venue,
			Capacity:        event.Capacity,
			CreatedByUserID: tenantID,
			CreatedAt:       event.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}

		created = event
		upstream = body
		return next, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, upstream, nil
}

// ListRemoteEvents proxies the remote collection with pagination and search.
func (s *eventService) ListRemoteEvents(ctx context.Context, query *dto.EventListQuery) ([]*catalyst.RemoteEvent, error) {
	filter := &catalyst.ListFilter{}
	if query != nil {
		query.SetDefaults()
		filter.Limit = query.Limit
		filter.Offset = query.Offset
		filter.Search = query.Search
	}
	return s.remote.ListEvents(ctx, filter)
}

// GetRemoteEventBySlug resolves a single remote record.
func (s *eventService) GetRemoteEventBySlug(ctx context.Context, slug string) (*catalyst.RemoteEvent, error) {
	return s.remote.GetEventBySlug(ctx, slug)
}

// Overview returns the committed snapshot.
func (s *eventService) Overview(ctx context.Context) (*domain.Snapshot, error) {
	return s.repo.Snapshot(ctx)
}

// SelectTenant switches the active tenant.
func (s *eventService) SelectTenant(ctx context.Context, tenantID string) (*domain.Snapshot, error) {
	return s.repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		return current.SelectTenant(tenantID)
	})
}

// SelectEvent selects an event within the active tenant.
func (s *eventService) SelectEvent(ctx context.Context, eventID string) (*domain.Snapshot, error) {
	return s.repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		return current.SelectEvent(eventID)
	})
}
