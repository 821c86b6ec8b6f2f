package dto

import (
	"time"

	"github.com/TechnicalShree/doorflow/internal/domain"
)

// CreateEventRequest is the organizer input for POST /api/event. Slug may be
// blank, in which case it derives from the name.
type CreateEventRequest struct {
	TenantID string  `json:"tenantId"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	StartsAt string  `json:"startsAt"`
	Venue    string  `json:"venue"`
	Capacity float64 `json:"capacity"`
}

// Draft converts the request into a store draft.
func (r *CreateEventRequest) Draft() domain.EventDraft {
	return domain.EventDraft{
		Name:     r.Name,
		Slug:     r.Slug,
		StartsAt: r.StartsAt,
		Venue:    r.Venue,
		Capacity: r.Capacity,
	}
}

// EventResponse is the API shape of a stored event, including the derived
// counters the dashboard renders.
type EventResponse struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	StartsAt         string `json:"startsAt"`
	Venue            string `json:"venue"`
	Capacity         int    `json:"capacity"`
	CreatedAt        string `json:"createdAt"`
	AttendeeCount    int    `json:"attendeeCount"`
	CheckedInCount   int    `json:"checkedInCount"`
	PendingCount     int    `json:"pendingCount"`
	OccupancyPercent int    `json:"occupancyPercent"`
}

// CreateEventResponse is the success envelope for POST /api/event.
type CreateEventResponse struct {
	OK       bool           `json:"ok"`
	Event    *EventResponse `json:"event"`
	Upstream any            `json:"upstream,omitempty"`
}

// EventListQuery holds the optional query params passed through to the remote
// list endpoint.
type EventListQuery struct {
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
	Search string `form:"search"`
	Slug   string `form:"slug"`
}

// SetDefaults sets default values for pagination
func (q *EventListQuery) SetDefaults() {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// ToEventResponse converts a domain event to its response DTO.
func ToEventResponse(event *domain.Event) *EventResponse {
	return &EventResponse{
		ID:               event.ID,
		Slug:             event.Slug,
		Name:             event.Name,
		StartsAt:         event.StartsAt,
		Venue:            event.Venue,
		Capacity:         event.Capacity,
		CreatedAt:        event.CreatedAt.Format(time.RFC3339),
		AttendeeCount:    len(event.Attendees),
		CheckedInCount:   event.CheckedInCount(),
		PendingCount:     event.PendingCount(),
		OccupancyPercent: event.OccupancyPercent(),
	}
}
