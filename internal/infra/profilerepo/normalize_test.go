package profilerepo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/reawakn/matchengine/internal/domain/scheduling"
)

func TestResolveTimezoneAliases(t *testing.T) {
	require.Equal(t, "America/Los_Angeles", ResolveTimezone("Pacific Time (PT)"))
	require.Equal(t, "America/New_York", ResolveTimezone("Eastern Time (ET)"))
	require.Equal(t, "Asia/Tokyo", ResolveTimezone("Asia/Tokyo"))
	require.Equal(t, "", ResolveTimezone(""))
}

func TestNormalizeAvailabilityPassesClockRanges(t *testing.T) {
	out := NormalizeAvailability([]string{"09:00 - 12:00", "18:30 - 20:00"}, "UTC")
	require.Equal(t, []string{"09:00 - 12:00", "18:30 - 20:00"}, out)
}

func TestNormalizeAvailabilityConverts12HourRanges(t *testing.T) {
	out := NormalizeAvailability([]string{"6:00 AM - 9:00 AM"}, "Pacific Time (PT)")
	require.Equal(t, []string{"14:00 - 17:00"}, out)
}

func TestNormalizeAvailabilityEveningSplitsAtMidnight(t *testing.T) {
	out := NormalizeAvailability([]string{"5:00 PM - 8:00 PM"}, "Eastern Time (ET)")
	require.Equal(t, []string{"22:00 - 24:00", "00:00 - 01:00"}, out)
}

func TestNormalizeAvailabilityWrapEndingAtMidnight(t *testing.T) {
	// 3:00 PM - 4:00 PM PT is 23:00 - 24:00 UTC; nothing spills past midnight.
	out := NormalizeAvailability([]string{"3:00 PM - 4:00 PM"}, "Pacific Time (PT)")
	require.Equal(t, []string{"23:00 - 24:00"}, out)
}

func TestNormalizeAvailabilityDropsUnparseable(t *testing.T) {
	out := NormalizeAvailability([]string{"whenever", "9:00 AM to 10:00 AM", "09:00 - 10:00"}, "UTC")
	require.Equal(t, []string{"09:00 - 10:00"}, out)
}

func TestNormalizeAvailabilityNoOffsetForUnknownZone(t *testing.T) {
	out := NormalizeAvailability([]string{"6:00 AM - 9:00 AM"}, "Europe/Berlin")
	require.Equal(t, []string{"06:00 - 09:00"}, out)
}

func TestMemoryRepositoryNormalizesOnRead(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	err := repo.Put(ctx, userID, "Pacific Time (PT)", scheduling.ChronotypeNightOwl, []string{"6:00 AM - 9:00 AM"})
	require.NoError(t, err)

	schedule, found, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "America/Los_Angeles", schedule.Timezone)
	require.Equal(t, scheduling.ChronotypeNightOwl, schedule.Chronotype)
	require.Equal(t, []string{"14:00 - 17:00"}, schedule.Availability)
}

func TestMemoryRepositoryMissingProfile(t *testing.T) {
	repo := NewMemoryRepository()
	_, found, err := repo.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	require.False(t, found)
}
