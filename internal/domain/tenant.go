package domain

import (
	"strings"
	"time"
)

// Tenant is an organizing entity that owns a set of events.
type Tenant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ShortCode string   `json:"shortCode"`
	City      string   `json:"city"`
	Events    []*Event `json:"events"`
}

// Event is a single scheduled occasion owned by one tenant. Attendee and
// check-in lists are insertion-ordered, newest first.
type Event struct {
	ID        string           `json:"id"`
	Slug      string           `json:"slug"`
	Name      string           `json:"name"`
	StartsAt  string           `json:"startsAt"`
	Venue     string           `json:"venue"`
	Capacity  int              `json:"capacity"`
	CreatedAt time.Time        `json:"createdAt"`
	Attendees []*Attendee      `json:"attendees"`
	Checkins  []*CheckinRecord `json:"checkins"`
}

// Attendee is a person registered for an event, holding a unique ticket code.
type Attendee struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	TicketCode string    `json:"ticketCode"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Attendee status constants. No operation in the store currently sets
// cancelled; the state is declared but unreachable.
const (
	AttendeeStatusRegistered = "registered"
	AttendeeStatusCancelled  = "cancelled"
)

// CheckinRecord is evidence that an attendee checked in to an event. It
// references the attendee by id; removing one never cascades to the other.
type CheckinRecord struct {
	ID          string    `json:"id"`
	AttendeeID  string    `json:"attendeeId"`
	CheckedInAt time.Time `json:"checkedInAt"`
	CheckedInBy string    `json:"checkedInBy"`
	Source      string    `json:"source"`
}

// Check-in source constants
const (
	CheckinSourceSearch = "search"
	CheckinSourceCode   = "code"
	CheckinSourceScan   = "scan"
)

// FindAttendeeByEmail returns the attendee whose email matches
// case-insensitively, or nil.
func (e *Event) FindAttendeeByEmail(email string) *Attendee {
	for _, a := range e.Attendees {
		if strings.EqualFold(a.Email, email) {
			return a
		}
	}
	return nil
}

// FindAttendeeByCode returns the attendee whose ticket code matches
// case-insensitively, or nil.
func (e *Event) FindAttendeeByCode(code string) *Attendee {
	for _, a := range e.Attendees {
		if strings.EqualFold(a.TicketCode, code) {
			return a
		}
	}
	return nil
}

// CheckinFor returns the check-in record for an attendee id, or nil.
func (e *Event) CheckinFor(attendeeID string) *CheckinRecord {
	for _, c := range e.Checkins {
		if c.AttendeeID == attendeeID {
			return c
		}
	}
	return nil
}

// HasSlug reports whether any event in the tenant already uses the slug.
func (t *Tenant) HasSlug(slug string) bool {
	for _, e := range t.Events {
		if e.Slug == slug {
			return true
		}
	}
	return false
}

// FindEvent returns the tenant's event with the given id, or nil.
func (t *Tenant) FindEvent(id string) *Event {
	for _, e := range t.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}
