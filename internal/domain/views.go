package domain

import (
	"math"
	"strings"
)

// Derived views are recomputed from the snapshot on every read; snapshots are
// immutable once committed, so no caching or invalidation is needed.

// CheckedInCount returns the number of distinct attendees with a check-in.
func (e *Event) CheckedInCount() int {
	seen := make(map[string]struct{}, len(e.Checkins))
	for _, c := range e.Checkins {
		seen[c.AttendeeID] = struct{}{}
	}
	return len(seen)
}

// PendingCount returns the number of registered attendees not yet checked in.
func (e *Event) PendingCount() int {
	pending := len(e.Attendees) - e.CheckedInCount()
	if pending < 0 {
		return 0
	}
	return pending
}

// OccupancyPercent returns checked-in count over capacity, rounded to the
// nearest whole percent. Zero when capacity is zero.
func (e *Event) OccupancyPercent() int {
	if e.Capacity == 0 {
		return 0
	}
	return int(math.Round(float64(e.CheckedInCount()) / float64(e.Capacity) * 100))
}

// FilterAttendees returns attendees whose name, email, or ticket code contains
// the query case-insensitively. An empty query returns the full list.
func (e *Event) FilterAttendees(query string) []*Attendee {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return e.Attendees
	}

	var matched []*Attendee
	for _, a := range e.Attendees {
		if strings.Contains(strings.ToLower(a.FullName), q) ||
			strings.Contains(strings.ToLower(a.Email), q) ||
			strings.Contains(strings.ToLower(a.TicketCode), q) {
			matched = append(matched, a)
		}
	}
	return matched
}
