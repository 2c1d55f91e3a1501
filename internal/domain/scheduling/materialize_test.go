package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func TestMaterializeSkipsWeekends(t *testing.T) {
	windows := []Window{{Start: 540, End: 600}} // one slot per weekday
	slots := Materialize(windows, monday, 6, time.UTC)

	require.Len(t, slots, 5)
	for _, slot := range slots {
		wd := slot.StartUTC.Weekday()
		require.NotEqual(t, time.Saturday, wd)
		require.NotEqual(t, time.Sunday, wd)
	}
}

func TestMaterializeHourAlignment(t *testing.T) {
	windows := []Window{{Start: 540, End: 690}} // 09:00 - 11:30
	slots := Materialize(windows, monday, 0, time.UTC)

	require.Len(t, slots, 2)
	require.Equal(t, monday.Add(9*time.Hour), slots[0].StartUTC)
	require.Equal(t, monday.Add(10*time.Hour), slots[0].EndUTC)
	require.Equal(t, monday.Add(10*time.Hour), slots[1].StartUTC)
}

func TestMaterializeShortWindowYieldsNothing(t *testing.T) {
	windows := []Window{{Start: 540, End: 570}} // 30 minutes
	require.Empty(t, Materialize(windows, monday, 5, time.UTC))
}

func TestMaterializeEmptyInputs(t *testing.T) {
	require.Empty(t, Materialize(nil, monday, 5, time.UTC))
	require.Empty(t, Materialize([]Window{{Start: 540, End: 720}}, monday, -1, time.UTC))
}

func TestFilterConflictsDropsOverlaps(t *testing.T) {
	slots := []CandidateSlot{
		{StartUTC: monday.Add(9 * time.Hour), EndUTC: monday.Add(10 * time.Hour)},
		{StartUTC: monday.Add(10 * time.Hour), EndUTC: monday.Add(11 * time.Hour)},
		{StartUTC: monday.Add(11 * time.Hour), EndUTC: monday.Add(12 * time.Hour)},
	}
	existing := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: monday.Add(9 * time.Hour),
		EndUTC:   monday.Add(10 * time.Hour),
	}}

	out := FilterConflicts(slots, existing)
	require.Len(t, out, 2)
	require.Equal(t, monday.Add(10*time.Hour), out[0].StartUTC)
}

func TestFilterConflictsAdjacentSlotSurvives(t *testing.T) {
	slots := []CandidateSlot{
		{StartUTC: monday.Add(10 * time.Hour), EndUTC: monday.Add(11 * time.Hour)},
	}
	existing := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: monday.Add(9 * time.Hour),
		EndUTC:   monday.Add(10 * time.Hour),
	}}

	require.Len(t, FilterConflicts(slots, existing), 1)
}

func TestFilterConflictsPartialOverlapDropped(t *testing.T) {
	slots := []CandidateSlot{
		{StartUTC: monday.Add(10 * time.Hour), EndUTC: monday.Add(11 * time.Hour)},
	}
	existing := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: monday.Add(10*time.Hour + 30*time.Minute),
		EndUTC:   monday.Add(11*time.Hour + 30*time.Minute),
	}}

	require.Empty(t, FilterConflicts(slots, existing))
}
