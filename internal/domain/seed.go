package domain

import "time"

// SeedSnapshot returns the initial tenant set loaded at startup when no
// persisted snapshot exists. Tenants are never created or destroyed at
// runtime.
func SeedSnapshot() *Snapshot {
	tenants := []*Tenant{
		{
			ID:        "org-nova",
			Name:      "Nova Events Collective",
			ShortCode: "NOVA",
			City:      "Austin",
			Events: []*Event{
				{
					ID:        "evt-nova-1",
					Slug:      "founder-breakfast",
					Name:      "Founder Breakfast Meetup",
					StartsAt:  "2026-03-06T09:30",
					Venue:     "Lakeside Hall, Austin",
					Capacity:  180,
					CreatedAt: time.Date(2026, 2, 20, 10, 12, 0, 0, time.UTC),
					Attendees: []*Attendee{
						{
							ID:         "att-nova-1",
							FullName:   "Alex Rivera",
							Email:      "alex.rivera@example.com",
							TicketCode: "FOUN-7R4K",
							Status:     AttendeeStatusRegistered,
							CreatedAt:  time.Date(2026, 2, 22, 14, 0, 0, 0, time.UTC),
						},
						{
							ID:         "att-nova-2",
							FullName:   "Dina Park",
							Email:      "dina.park@example.com",
							TicketCode: "FOUN-9M1D",
							Status:     AttendeeStatusRegistered,
							CreatedAt:  time.Date(2026, 2, 23, 10, 15, 0, 0, time.UTC),
						},
						{
							ID:         "att-nova-3",
							FullName:   "Marco Allen",
							Email:      "marco.allen@example.com",
							TicketCode: "FOUN-P4B2",
							Status:     AttendeeStatusRegistered,
							CreatedAt:  time.Date(2026, 2, 24, 9, 45, 0, 0, time.UTC),
						},
					},
					Checkins: []*CheckinRecord{
						{
							ID:          "chk-nova-1",
							AttendeeID:  "att-nova-1",
							CheckedInAt: time.Date(2026, 3, 6, 9, 5, 0, 0, time.UTC),
							CheckedInBy: "Maya (Gate A)",
							Source:      CheckinSourceCode,
						},
					},
				},
				{
					ID:        "evt-nova-2",
					Slug:      "ops-workshop",
					Name:      "Ops Design Workshop",
					StartsAt:  "2026-03-08T14:00",
					Venue:     "Warehouse Studio",
					Capacity:  80,
					CreatedAt: time.Date(2026, 2, 19, 8, 40, 0, 0, time.UTC),
					Attendees: []*Attendee{},
					Checkins:  []*CheckinRecord{},
				},
			},
		},
		{
			ID:        "org-campus",
			Name:      "Campus Circle",
			ShortCode: "CAMP",
			City:      "San Jose",
			Events: []*Event{
				{
					ID:        "evt-campus-1",
					Slug:      "career-day",
					Name:      "Career Day 2026",
					StartsAt:  "2026-03-10T11:00",
					Venue:     "Innovation Block B",
					Capacity:  220,
					CreatedAt: time.Date(2026, 2, 21, 11, 20, 0, 0, time.UTC),
					Attendees: []*Attendee{
						{
							ID:         "att-campus-1",
							FullName:   "Taylor Kim",
							Email:      "taylor.kim@example.com",
							TicketCode: "CARE-K2P7",
							Status:     AttendeeStatusRegistered,
							CreatedAt:  time.Date(2026, 2, 24, 16, 22, 0, 0, time.UTC),
						},
					},
					Checkins: []*CheckinRecord{},
				},
			},
		},
	}

	return &Snapshot{
		Tenants:         tenants,
		ActiveTenantID:  tenants[0].ID,
		SelectedEventID: tenants[0].Events[0].ID,
	}
}
