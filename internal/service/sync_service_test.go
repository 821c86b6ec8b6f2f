package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/repository"
)

func testSyncDefaults() SyncDefaults {
	return SyncDefaults{
		TenantID: "org-nova",
		Venue:    "TBD Location",
		Capacity: 120,
		StartsAt: "2026-03-12T10:00",
	}
}

func TestSyncServicePullMergesAndAttributes(t *testing.T) {
	repo := repository.NewMemorySnapshotRepository(nil)
	remote := new(MockRemoteClient)
	svc := NewSyncService(repo, remote, testSyncDefaults(), nil)

	remote.On("ListEvents", mock.Anything, (*catalyst.ListFilter)(nil)).Return([]*catalyst.RemoteEvent{
		{
			// Matches a seeded event by id; remote fields win
			ID:       "evt-nova-1",
			Name:     "Founder Breakfast (Remote)",
			Slug:     "founder-breakfast",
			StartsAt: "2026-03-06T09:30",
			Venue:    "Lakeside Hall, Austin",
			Capacity: "250",
		},
		{
			// Attributed to org-campus via the creator field
			RowID:           "9001",
			Name:            "Hack Night",
			Slug:            "hack-night",
			StartsAt:        "2026-05-01T18:00",
			Venue:           "Block C",
			Capacity:        "60",
			CreatedByUserID: "org-campus",
			CreatedAt:       "2026-04-01T08:00:00Z",
		},
		{
			// Unattributable and sparse; defaults fill the gaps
			RowID: "9002",
			Name:  "Mystery Meetup",
		},
	}, nil)

	merged, err := svc.Pull(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, merged)

	snapshot, _ := repo.Snapshot(context.Background())

	_, updated := snapshot.FindEvent("evt-nova-1")
	assert.Equal(t, "Founder Breakfast (Remote)", updated.Name)
	assert.Equal(t, 250, updated.Capacity)
	assert.Len(t, updated.Attendees, 3, "local roster survives the merge")
	assert.Len(t, updated.Checkins, 1)

	campusTenant, hackNight := snapshot.FindEvent("9001")
	assert.Equal(t, "org-campus", campusTenant.ID)
	assert.Equal(t, "hack-night", hackNight.Slug)
	assert.Equal(t, 60, hackNight.Capacity)

	novaTenant, mystery := snapshot.FindEvent("9002")
	assert.Equal(t, "org-nova", novaTenant.ID, "unattributable records land on the default tenant")
	assert.Equal(t, "TBD Location", mystery.Venue)
	assert.Equal(t, 120, mystery.Capacity)
	assert.Equal(t, "2026-03-12T10:00", mystery.StartsAt)
	assert.Equal(t, "mystery-meetup", mystery.Slug)
}

func TestSyncServicePullEmptyCollection(t *testing.T) {
	repo := repository.NewMemorySnapshotRepository(nil)
	remote := new(MockRemoteClient)
	svc := NewSyncService(repo, remote, testSyncDefaults(), nil)

	remote.On("ListEvents", mock.Anything, (*catalyst.ListFilter)(nil)).Return([]*catalyst.RemoteEvent{}, nil)

	before, _ := repo.Snapshot(context.Background())

	merged, err := svc.Pull(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, merged)

	after, _ := repo.Snapshot(context.Background())
	assert.Same(t, before, after)
}

func TestSyncServicePullRemoteFailure(t *testing.T) {
	repo := repository.NewMemorySnapshotRepository(nil)
	remote := new(MockRemoteClient)
	svc := NewSyncService(repo, remote, testSyncDefaults(), nil)

	remote.On("ListEvents", mock.Anything, (*catalyst.ListFilter)(nil)).
		Return(nil, &catalyst.RemoteError{Kind: catalyst.KindUnavailable, Message: "down"})

	before, _ := repo.Snapshot(context.Background())

	_, err := svc.Pull(context.Background())
	assert.Error(t, err)

	after, _ := repo.Snapshot(context.Background())
	assert.Same(t, before, after, "a failed pull must leave the store untouched")
}
