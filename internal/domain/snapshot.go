package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Snapshot is one immutable state of the tenant tree plus the current
// selection. Transitions return a new snapshot with structural sharing; a
// committed snapshot is never mutated, so readers need no locking once they
// hold one. When a transition is a no-op it returns the receiver unchanged.
type Snapshot struct {
	Tenants         []*Tenant `json:"tenants"`
	ActiveTenantID  string    `json:"activeTenantId"`
	SelectedEventID string    `json:"selectedEventId"`
}

// EventDraft is the organizer input for creating an event. Capacity arrives as
// a JSON number; non-finite or sub-1 values are clamped to 1.
type EventDraft struct {
	Name     string
	Slug     string
	StartsAt string
	Venue    string
	Capacity float64
}

// RegistrationDraft is the attendee input for registration.
type RegistrationDraft struct {
	FullName string
	Email    string
}

// RegistrationOutcome reports the result of a registration. When the email is
// already registered, Attendee is the existing record and no mutation occurred.
type RegistrationOutcome struct {
	Attendee          *Attendee
	AlreadyRegistered bool
}

// CheckinOutcome reports the result of a check-in. When the attendee already
// holds a check-in record, Record is the existing one and no mutation occurred.
type CheckinOutcome struct {
	Attendee         *Attendee
	Record           *CheckinRecord
	AlreadyCheckedIn bool
}

// FindTenant returns the tenant with the given id, or nil.
func (s *Snapshot) FindTenant(id string) *Tenant {
	for _, t := range s.Tenants {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindEvent returns the owning tenant and the event with the given id.
func (s *Snapshot) FindEvent(id string) (*Tenant, *Event) {
	for _, t := range s.Tenants {
		if e := t.FindEvent(id); e != nil {
			return t, e
		}
	}
	return nil, nil
}

// ActiveTenant returns the currently selected tenant, or nil.
func (s *Snapshot) ActiveTenant() *Tenant {
	return s.FindTenant(s.ActiveTenantID)
}

// SelectedEvent resolves the effective selected event for the active tenant:
// the selected id when it belongs to the tenant, otherwise the tenant's first
// event, otherwise nil.
func (s *Snapshot) SelectedEvent() *Event {
	tenant := s.ActiveTenant()
	if tenant == nil {
		return nil
	}
	if e := tenant.FindEvent(s.SelectedEventID); e != nil {
		return e
	}
	if len(tenant.Events) > 0 {
		return tenant.Events[0]
	}
	return nil
}

// CreateEvent validates the draft and returns a new snapshot with the event
// prepended to the tenant's list and selected. The receiver is untouched on
// any failure.
func (s *Snapshot) CreateEvent(tenantID string, draft EventDraft, now time.Time) (*Snapshot, *Event, error) {
	tenant := s.FindTenant(tenantID)
	if tenant == nil {
		return s, nil, ErrTenantNotFound
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return s, nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	venue := strings.TrimSpace(draft.Venue)
	if venue == "" {
		return s, nil, fmt.Errorf("%w: venue", ErrMissingField)
	}

	// Slug input falls back to the event name.
	slugSource := draft.Slug
	if strings.TrimSpace(slugSource) == "" {
		slugSource = draft.Name
	}
	slug := NormalizeSlug(slugSource)
	if slug == "" {
		return s, nil, ErrInvalidSlug
	}

	if draft.StartsAt == "" {
		return s, nil, ErrMissingStartTime
	}
	if tenant.HasSlug(slug) {
		return s, nil, ErrDuplicateSlug
	}

	event := &Event{
		ID:        NewID("evt"),
		Slug:      slug,
		Name:      name,
		StartsAt:  draft.StartsAt,
		Venue:     venue,
		Capacity:  ClampCapacity(draft.Capacity),
		CreatedAt: now,
		Attendees: []*Attendee{},
		Checkins:  []*CheckinRecord{},
	}

	next := s.withTenant(tenant.ID, func(t *Tenant) {
		t.Events = prependEvent(t.Events, event)
	})
	next.SelectedEventID = event.ID
	return next, event, nil
}

// RegisterAttendee adds an attendee to the event unless the email is already
// registered (case-insensitive), in which case the existing attendee is
// returned and the snapshot is unchanged.
func (s *Snapshot) RegisterAttendee(eventID string, draft RegistrationDraft, now time.Time) (*Snapshot, *RegistrationOutcome, error) {
	tenant, event := s.FindEvent(eventID)
	if event == nil {
		return s, nil, ErrEventNotFound
	}

	fullName := strings.TrimSpace(draft.FullName)
	email := strings.ToLower(strings.TrimSpace(draft.Email))
	if fullName == "" {
		return s, nil, fmt.Errorf("%w: fullName", ErrMissingField)
	}
	if email == "" {
		return s, nil, fmt.Errorf("%w: email", ErrMissingField)
	}

	if existing := event.FindAttendeeByEmail(email); existing != nil {
		return s, &RegistrationOutcome{Attendee: existing, AlreadyRegistered: true}, nil
	}

	existingCodes := make(map[string]struct{}, len(event.Attendees))
	for _, a := range event.Attendees {
		existingCodes[a.TicketCode] = struct{}{}
	}
	code, err := NewTicketCode(event.Slug, existingCodes)
	if err != nil {
		return s, nil, err
	}

	attendee := &Attendee{
		ID:         NewID("att"),
		FullName:   fullName,
		Email:      email,
		TicketCode: code,
		Status:     AttendeeStatusRegistered,
		CreatedAt:  now,
	}

	next := s.withEvent(tenant.ID, event.ID, func(e *Event) {
		e.Attendees = prependAttendee(e.Attendees, attendee)
	})
	return next, &RegistrationOutcome{Attendee: attendee}, nil
}

// CheckinAttendee records a check-in for the attendee holding the ticket code.
// Checking in an already-checked-in attendee is an idempotent no-op reported
// through the outcome.
func (s *Snapshot) CheckinAttendee(eventID, rawCode, checkedInBy, source string, now time.Time) (*Snapshot, *CheckinOutcome, error) {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return s, nil, ErrMissingCode
	}

	tenant, event := s.FindEvent(eventID)
	if event == nil {
		return s, nil, ErrEventNotFound
	}

	attendee := event.FindAttendeeByCode(code)
	if attendee == nil {
		return s, nil, ErrTicketNotFound
	}

	if existing := event.CheckinFor(attendee.ID); existing != nil {
		return s, &CheckinOutcome{Attendee: attendee, Record: existing, AlreadyCheckedIn: true}, nil
	}

	if source == "" {
		source = CheckinSourceCode
	}
	record := &CheckinRecord{
		ID:          NewID("chk"),
		AttendeeID:  attendee.ID,
		CheckedInAt: now,
		CheckedInBy: checkedInBy,
		Source:      source,
	}

	next := s.withEvent(tenant.ID, event.ID, func(e *Event) {
		e.Checkins = prependCheckin(e.Checkins, record)
	})
	return next, &CheckinOutcome{Attendee: attendee, Record: record}, nil
}

// SelectTenant switches the active tenant. When the current event selection
// does not belong to the tenant, it resets to the tenant's first event.
func (s *Snapshot) SelectTenant(tenantID string) (*Snapshot, error) {
	tenant := s.FindTenant(tenantID)
	if tenant == nil {
		return s, ErrTenantNotFound
	}

	next := s.shallowClone()
	next.ActiveTenantID = tenantID
	if tenant.FindEvent(next.SelectedEventID) == nil {
		next.SelectedEventID = ""
		if len(tenant.Events) > 0 {
			next.SelectedEventID = tenant.Events[0].ID
		}
	}
	return next, nil
}

// SelectEvent selects an event belonging to the active tenant.
func (s *Snapshot) SelectEvent(eventID string) (*Snapshot, error) {
	tenant := s.ActiveTenant()
	if tenant == nil || tenant.FindEvent(eventID) == nil {
		return s, ErrEventNotFound
	}

	next := s.shallowClone()
	next.SelectedEventID = eventID
	return next, nil
}

// ClampCapacity coerces a capacity input to an integer of at least 1.
func ClampCapacity(capacity float64) int {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 1 {
		return 1
	}
	return int(math.Floor(capacity))
}

// --- copy-on-write helpers ---

func (s *Snapshot) shallowClone() *Snapshot {
	clone := *s
	clone.Tenants = make([]*Tenant, len(s.Tenants))
	copy(clone.Tenants, s.Tenants)
	return &clone
}

// withTenant clones the snapshot and the targeted tenant, applies mutate to
// the clone, and shares everything else with the receiver.
func (s *Snapshot) withTenant(tenantID string, mutate func(*Tenant)) *Snapshot {
	next := s.shallowClone()
	for i, t := range next.Tenants {
		if t.ID != tenantID {
			continue
		}
		clone := *t
		clone.Events = make([]*Event, len(t.Events))
		copy(clone.Events, t.Events)
		mutate(&clone)
		next.Tenants[i] = &clone
		break
	}
	return next
}

// withEvent clones down to the targeted event before applying mutate.
func (s *Snapshot) withEvent(tenantID, eventID string, mutate func(*Event)) *Snapshot {
	return s.withTenant(tenantID, func(t *Tenant) {
		for i, e := range t.Events {
			if e.ID != eventID {
				continue
			}
			clone := *e
			clone.Attendees = make([]*Attendee, len(e.Attendees))
			copy(clone.Attendees, e.Attendees)
			clone.Checkins = make([]*CheckinRecord, len(e.Checkins))
			copy(clone.Checkins, e.Checkins)
			mutate(&clone)
			t.Events[i] = &clone
			break
		}
	})
}

func prependEvent(events []*Event, e *Event) []*Event {
	out := make([]*Event, 0, len(events)+1)
	out = append(out, e)
	return append(out, events...)
}

func prependAttendee(attendees []*Attendee, a *Attendee) []*Attendee {
	out := make([]*Attendee, 0, len(attendees)+1)
	out = append(out, a)
	return append(out, attendees...)
}

func prependCheckin(checkins []*CheckinRecord, c *CheckinRecord) []*CheckinRecord {
	out := make([]*CheckinRecord, 0, len(checkins)+1)
	out = append(out, c)
	return append(out, checkins...)
}
