package domain

import (
	"testing"
	"time"
)

func TestMergeEventsReplacesMatchedKeepingRoster(t *testing.T) {
	s := SeedSnapshot()

	remote := &Event{
		ID:        "evt-nova-1",
		Slug:      "founder-breakfast",
		Name:      "Founder Breakfast (Updated)",
		StartsAt:  "2026-03-06T10:00",
		Venue:     "Lakeside Hall, Austin",
		Capacity:  200,
		CreatedAt: time.Date(2026, 2, 20, 10, 12, 0, 0, time.UTC),
		Attendees: []*Attendee{},
		Checkins:  []*CheckinRecord{},
	}

	next := s.MergeEvents(map[string][]*Event{"org-nova": {remote}})

	_, merged := next.FindEvent("evt-nova-1")
	if merged == nil {
		t.Fatal("merged event missing")
	}
	if merged.Name != "Founder Breakfast (Updated)" {
		t.Errorf("remote fields should win, got name %q", merged.Name)
	}
	if merged.Capacity != 200 {
		t.Errorf("remote capacity should win, got %d", merged.Capacity)
	}
	if len(merged.Attendees) != 3 || len(merged.Checkins) != 1 {
		t.Error("local roster and check-ins should be kept")
	}

	// Local-only event survives
	if _, kept := next.FindEvent("evt-nova-2"); kept == nil {
		t.Error("local-only event was dropped")
	}

	// Receiver untouched
	_, original := s.FindEvent("evt-nova-1")
	if original.Name != "Founder Breakfast Meetup" {
		t.Error("original snapshot was mutated")
	}
}

func TestMergeEventsMatchesBySlug(t *testing.T) {
	s := SeedSnapshot()

	remote := &Event{
		ID:        "row-9001",
		Slug:      "career-day",
		Name:      "Career Day 2026",
		StartsAt:  "2026-03-10T11:00",
		Venue:     "Innovation Block B",
		Capacity:  220,
		CreatedAt: time.Date(2026, 2, 21, 11, 20, 0, 0, time.UTC),
	}

	next := s.MergeEvents(map[string][]*Event{"org-campus": {remote}})

	// The local id wins on a slug match so selections stay valid
	_, merged := next.FindEvent("evt-campus-1")
	if merged == nil {
		t.Fatal("expected slug match to keep the local id")
	}
	if len(merged.Attendees) != 1 {
		t.Error("local roster should be kept on slug match")
	}
	if _, ghost := next.FindEvent("row-9001"); ghost != nil {
		t.Error("remote id should not appear for a matched event")
	}
}

func TestMergeEventsAddsNewAndSorts(t *testing.T) {
	s := SeedSnapshot()

	newest := &Event{
		ID:        "evt-remote-1",
		Slug:      "demo-day",
		Name:      "Demo Day",
		StartsAt:  "2026-04-01T09:00",
		Capacity:  50,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	oldest := &Event{
		ID:        "evt-remote-2",
		Slug:      "retro",
		Name:      "Retro",
		StartsAt:  "2026-01-05T09:00",
		Capacity:  50,
		CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}

	next := s.MergeEvents(map[string][]*Event{"org-nova": {oldest, newest}})

	tenant := next.FindTenant("org-nova")
	if len(tenant.Events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(tenant.Events))
	}
	if tenant.Events[0].ID != "evt-remote-1" {
		t.Errorf("expected newest first, got %q", tenant.Events[0].ID)
	}
	if tenant.Events[3].ID != "evt-remote-2" {
		t.Errorf("expected oldest last, got %q", tenant.Events[3].ID)
	}
}

func TestMergeEventsEmptyInput(t *testing.T) {
	s := SeedSnapshot()
	if next := s.MergeEvents(nil); next != s {
		t.Error("expected receiver unchanged for empty input")
	}
}
