package service

import (
	"context"

	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/domain"
	"github.com/TechnicalShree/doorflow/internal/dto"
)

// EventService owns event records: local creation (pushed to the remote store
// before committing), remote listing for the proxy surface, and selection.
type EventService interface {
	// CreateEvent validates the draft, pushes it to the remote store, and
	// commits locally only after the remote acknowledges the write. Returns
	// the created event and the raw upstream body.
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, any, error)

	// ListRemoteEvents proxies the remote event collection.
	ListRemoteEvents(ctx context.Context, query *dto.EventListQuery) ([]*catalyst.RemoteEvent, error)

	// GetRemoteEventBySlug resolves one remote record; nil when absent.
	GetRemoteEventBySlug(ctx context.Context, slug string) (*catalyst.RemoteEvent, error)

	// Overview returns the committed snapshot.
	Overview(ctx context.Context) (*domain.Snapshot, error)

	// SelectTenant switches the active tenant, resetting the event selection
	// when it does not belong to the tenant.
	SelectTenant(ctx context.Context, tenantID string) (*domain.Snapshot, error)

	// SelectEvent selects an event within the active tenant.
	SelectEvent(ctx context.Context, eventID string) (*domain.Snapshot, error)
}

// AttendeeService owns the registration and check-in flows.
type AttendeeService interface {
	// Register adds an attendee unless the email is already registered, in
	// which case the outcome carries the existing attendee's ticket code.
	Register(ctx context.Context, eventID string, req *dto.RegisterAttendeeRequest) (*domain.RegistrationOutcome, error)

	// Checkin records a check-in by ticket code; repeat check-ins are
	// idempotent no-ops reported through the outcome.
	Checkin(ctx context.Context, eventID string, req *dto.CheckinRequest) (*domain.CheckinOutcome, error)

	// Roster returns the event and its attendees filtered by the query.
	Roster(ctx context.Context, eventID, query string) (*domain.Event, []*domain.Attendee, error)
}

// SyncService reconciles the local store with the remote event collection.
type SyncService interface {
	// Pull fetches the remote collection and merges it into the store,
	// returning the number of remote records merged.
	Pull(ctx context.Context) (int, error)
}
