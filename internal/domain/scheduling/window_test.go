package scheduling

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/reawakn/matchengine/pkg/errors"
)

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("09:00 - 12:30")
	require.NoError(t, err)
	require.Equal(t, 9*60, w.Start)
	require.Equal(t, 12*60+30, w.End)
}

func TestParseWindowWithoutSpaces(t *testing.T) {
	w, err := ParseWindow("09:00-12:00")
	require.NoError(t, err)
	require.Equal(t, Window{Start: 540, End: 720}, w)
}

func TestParseWindowRejectsInvertedRange(t *testing.T) {
	_, err := ParseWindow("14:00 - 09:00")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestParseWindowRejectsMalformedClock(t *testing.T) {
	for _, input := range []string{"", "morning", "9 - 12", "25:00 - 26:00", "09:61 - 10:00"} {
		_, err := ParseWindow(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestParseWindowsDropsMalformedEntries(t *testing.T) {
	windows := ParseWindows([]string{"09:00 - 12:00", "garbage", "18:00 - 20:00"})
	require.Len(t, windows, 2)
	require.Equal(t, Window{Start: 540, End: 720}, windows[0])
	require.Equal(t, Window{Start: 1080, End: 1200}, windows[1])
}

func TestIntersectWindowsOverlap(t *testing.T) {
	a := []Window{{Start: 540, End: 720}}  // 09:00 - 12:00
	b := []Window{{Start: 660, End: 780}}  // 11:00 - 13:00
	out := IntersectWindows(a, b)
	require.Equal(t, []Window{{Start: 660, End: 720}}, out)
}

func TestIntersectWindowsDisjoint(t *testing.T) {
	a := []Window{{Start: 540, End: 600}}
	b := []Window{{Start: 720, End: 780}}
	require.Empty(t, IntersectWindows(a, b))
}

func TestIntersectWindowsTouchingBoundaries(t *testing.T) {
	a := []Window{{Start: 540, End: 660}}
	b := []Window{{Start: 660, End: 780}}
	require.Empty(t, IntersectWindows(a, b))
}

func TestIntersectWindowsMultipleOverlaps(t *testing.T) {
	a := []Window{{Start: 480, End: 600}, {Start: 840, End: 960}}
	b := []Window{{Start: 540, End: 900}}
	out := IntersectWindows(a, b)
	require.Equal(t, []Window{{Start: 540, End: 600}, {Start: 840, End: 900}}, out)
}
