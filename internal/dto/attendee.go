package dto

import (
	"time"

	"github.com/TechnicalShree/doorflow/internal/domain"
)

// RegisterAttendeeRequest is the input for POST /api/events/:id/attendees.
type RegisterAttendeeRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Draft converts the request into a store draft.
func (r *RegisterAttendeeRequest) Draft() domain.RegistrationDraft {
	return domain.RegistrationDraft{
		FullName: r.FullName,
		Email:    r.Email,
	}
}

// AttendeeResponse is the API shape of an attendee.
type AttendeeResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	TicketCode string `json:"ticketCode"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// RegistrationResponse reports a registration. Duplicate registrations are a
// non-fatal warning carrying the existing ticket code, not an HTTP error.
type RegistrationResponse struct {
	Duplicate  bool              `json:"duplicate"`
	TicketCode string            `json:"ticketCode"`
	Attendee   *AttendeeResponse `json:"attendee"`
	Message    string            `json:"message"`
}

// RosterEntry is one attendee row with its check-in state.
type RosterEntry struct {
	Attendee    *AttendeeResponse `json:"attendee"`
	CheckedIn   bool              `json:"checkedIn"`
	CheckedInAt string            `json:"checkedInAt,omitempty"`
	CheckedInBy string            `json:"checkedInBy,omitempty"`
	Source      string            `json:"source,omitempty"`
}

// RosterResponse is the filtered roster plus the door counters.
type RosterResponse struct {
	Event     *EventResponse `json:"event"`
	Query     string         `json:"query,omitempty"`
	Attendees []*RosterEntry `json:"attendees"`
}

// ToAttendeeResponse converts a domain attendee to its response DTO.
func ToAttendeeResponse(a *domain.Attendee) *AttendeeResponse {
	return &AttendeeResponse{
		ID:         a.ID,
		FullName:   a.FullName,
		Email:      a.Email,
		TicketCode: a.TicketCode,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

// ToRosterEntry pairs an attendee with its check-in record, if any.
func ToRosterEntry(a *domain.Attendee, checkin *domain.CheckinRecord) *RosterEntry {
	entry := &RosterEntry{Attendee: ToAttendeeResponse(a)}
	if checkin != nil {
		entry.CheckedIn = true
		entry.CheckedInAt = checkin.CheckedInAt.Format(time.RFC3339)
		entry.CheckedInBy = checkin.CheckedInBy
		entry.Source = checkin.Source
	}
	return entry
}
