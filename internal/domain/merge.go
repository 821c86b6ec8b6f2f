package domain

import "sort"

// MergeEvents reconciles externally sourced event records into the snapshot.
// incoming maps tenant id to mapped records. A record replaces the matching
// local event (by id, then slug) while keeping the local id, attendee roster,
// and check-ins; local events with no counterpart survive. Tenant event lists
// end up sorted newest first.
func (s *Snapshot) MergeEvents(incoming map[string][]*Event) *Snapshot {
	if len(incoming) == 0 {
		return s
	}

	next := s.shallowClone()
	for i, t := range next.Tenants {
		remote := incoming[t.ID]
		if len(remote) == 0 {
			continue
		}
		clone := *t
		clone.Events = mergeEventLists(t.Events, remote)
		next.Tenants[i] = &clone
	}
	return next
}

func mergeEventLists(local, remote []*Event) []*Event {
	merged := make([]*Event, 0, len(local)+len(remote))
	replaced := make(map[string]struct{}, len(local))

	for _, r := range remote {
		match := matchEvent(local, r)
		if match == nil {
			merged = append(merged, r)
			continue
		}
		replaced[match.ID] = struct{}{}

		clone := *r
		clone.ID = match.ID
		clone.Attendees = match.Attendees
		clone.Checkins = match.Checkins
		merged = append(merged, &clone)
	}

	for _, l := range local {
		if _, ok := replaced[l.ID]; !ok {
			merged = append(merged, l)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}

func matchEvent(local []*Event, r *Event) *Event {
	if r.ID != "" {
		for _, l := range local {
			if l.ID == r.ID {
				return l
			}
		}
	}
	for _, l := range local {
		if l.Slug == r.Slug {
			return l
		}
	}
	return nil
}
