package meetingrepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/reawakn/matchengine/internal/domain/scheduling"
)

func TestMemoryRepositoryListsBothSides(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	host, guest, other := uuid.New(), uuid.New(), uuid.New()
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, scheduling.ExistingMeeting{
		HostID:   host,
		GuestID:  guest,
		StartUTC: start,
		EndUTC:   start.Add(time.Hour),
	}))

	for _, userID := range []uuid.UUID{host, guest} {
		meetings, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, meetings, 1)
	}

	meetings, err := repo.ListByUser(ctx, other)
	require.NoError(t, err)
	require.Empty(t, meetings)
}

func TestMemoryRepositoryDefaultsMissingEnd(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	host := uuid.New()
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, scheduling.ExistingMeeting{
		HostID:   host,
		GuestID:  uuid.New(),
		StartUTC: start,
	}))

	meetings, err := repo.ListByUser(ctx, host)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	require.Equal(t, start.Add(time.Hour), meetings[0].EndUTC)
	require.NotEqual(t, uuid.Nil, meetings[0].ID)
}
