package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testRankConfig() RankConfig {
	return RankConfig{
		TimeGapWeight:    0.4,
		ChronotypeWeight: 0.3,
		DensityWeight:    0.3,
		HalfLife:         72 * time.Hour,
		MaxLead:          14 * 24 * time.Hour,
		IdealGapMinutes:  120,
		ClampGapMinutes:  240,
		OpenGapMinutes:   480,
		DecayGapMinutes:  240,
	}
}

func TestScoreTimeGapBoundaries(t *testing.T) {
	cfg := testRankConfig()
	now := monday.Add(12 * time.Hour)

	require.Zero(t, scoreTimeGap(cfg, now, now))
	require.Zero(t, scoreTimeGap(cfg, now.Add(-time.Hour), now))
	require.Zero(t, scoreTimeGap(cfg, now.Add(15*24*time.Hour), now))
}

func TestScoreTimeGapHalfLife(t *testing.T) {
	cfg := testRankConfig()
	now := monday

	atHalfLife := scoreTimeGap(cfg, now.Add(72*time.Hour), now)
	require.InDelta(t, 0.5, atHalfLife, 1e-9)

	near := scoreTimeGap(cfg, now.Add(time.Hour), now)
	far := scoreTimeGap(cfg, now.Add(100*time.Hour), now)
	require.Greater(t, near, far)
	require.Greater(t, near, 0.99)
}

func TestChronotypeHourScoreEarlyBird(t *testing.T) {
	require.InDelta(t, 1.0, chronotypeHourScore(ChronotypeEarlyBird, 9), 1e-9)
	require.InDelta(t, 1.0/3, chronotypeHourScore(ChronotypeEarlyBird, 7), 1e-9)
	require.Zero(t, chronotypeHourScore(ChronotypeEarlyBird, 5))
	require.Zero(t, chronotypeHourScore(ChronotypeEarlyBird, 12))
	require.Zero(t, chronotypeHourScore(ChronotypeEarlyBird, 13))
}

func TestChronotypeHourScoreNightOwl(t *testing.T) {
	require.InDelta(t, 1.0, chronotypeHourScore(ChronotypeNightOwl, 21), 1e-9)
	require.InDelta(t, 0.5, chronotypeHourScore(ChronotypeNightOwl, 20), 1e-9)
	require.Zero(t, chronotypeHourScore(ChronotypeNightOwl, 18))
	require.Zero(t, chronotypeHourScore(ChronotypeNightOwl, 9))
}

func TestScoreChronotypeBoostWhenIdealForBoth(t *testing.T) {
	host := Participant{Location: time.UTC, Chronotype: ChronotypeEarlyBird}
	guest := Participant{Location: time.UTC, Chronotype: ChronotypeEarlyBird}
	at9 := monday.Add(9 * time.Hour)

	score := scoreChronotype(host, guest, at9)
	require.InDelta(t, 1.0, score, 1e-9)
}

func TestScoreChronotypeRespectsTimezones(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	host := Participant{Location: time.UTC, Chronotype: ChronotypeEarlyBird}
	guest := Participant{Location: tokyo, Chronotype: ChronotypeNightOwl}

	// 12:00 UTC is 21:00 in Tokyo: a zero hour for the host, peak for the guest.
	at12 := monday.Add(12 * time.Hour)
	score := scoreChronotype(host, guest, at12)
	require.InDelta(t, 0.5, score, 1e-9)
}

func TestScoreDensityNoMeetings(t *testing.T) {
	cfg := testRankConfig()
	slot := CandidateSlot{StartUTC: monday.Add(9 * time.Hour), EndUTC: monday.Add(10 * time.Hour)}
	require.InDelta(t, 0.5, scoreDensity(cfg, slot, nil, nil), 1e-9)
}

func TestScoreDensityFreeDayAroundSlot(t *testing.T) {
	cfg := testRankConfig()
	slot := CandidateSlot{StartUTC: monday.Add(9 * time.Hour), EndUTC: monday.Add(10 * time.Hour)}
	farAway := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: monday.AddDate(0, 0, 7).Add(9 * time.Hour),
		EndUTC:   monday.AddDate(0, 0, 7).Add(10 * time.Hour),
	}}

	// The only meeting sits a week after the slot, so nothing precedes it
	// and the following gap clamps to the maximum.
	score := scoreDensity(cfg, slot, farAway, nil)
	before := gapScore(cfg, cfg.ClampGapMinutes)
	after := gapScore(cfg, cfg.ClampGapMinutes)
	require.InDelta(t, (before+after)/2, score, 1e-9)
}

func TestScoreDensityIgnoresSlotItself(t *testing.T) {
	cfg := testRankConfig()
	slot := CandidateSlot{StartUTC: monday.Add(9 * time.Hour), EndUTC: monday.Add(10 * time.Hour)}
	self := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: slot.StartUTC,
		EndUTC:   slot.EndUTC,
	}}

	require.InDelta(t, 1.0, scoreDensity(cfg, slot, self, nil), 1e-9)
}

func TestScoreDensityIdealGapBeatsBackToBack(t *testing.T) {
	cfg := testRankConfig()
	slot := CandidateSlot{StartUTC: monday.Add(12 * time.Hour), EndUTC: monday.Add(13 * time.Hour)}

	idealBefore := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: monday.Add(9 * time.Hour),
		EndUTC:   monday.Add(10 * time.Hour), // 120 minutes before the slot
	}}
	backToBack := []ExistingMeeting{{
		ID:       uuid.New(),
		StartUTC: monday.Add(11 * time.Hour),
		EndUTC:   monday.Add(12 * time.Hour), // zero minutes before the slot
	}}

	require.Greater(t,
		scoreDensity(cfg, slot, idealBefore, nil),
		scoreDensity(cfg, slot, backToBack, nil))
}

func TestGapScoreShape(t *testing.T) {
	cfg := testRankConfig()

	require.Zero(t, gapScore(cfg, 0))
	require.InDelta(t, 0.2, gapScore(cfg, 60), 1e-9)  // (0.5)^2 * 0.8
	require.InDelta(t, 1.0, gapScore(cfg, 120), 1e-9) // at the ideal gap
	require.InDelta(t, 0.5, gapScore(cfg, 240), 1e-9) // halfway down the decay
}

func TestGapScoreDecaySpanConfigurable(t *testing.T) {
	cfg := testRankConfig()
	cfg.DecayGapMinutes = 120

	require.InDelta(t, 0.5, gapScore(cfg, 180), 1e-9)
	require.Zero(t, gapScore(cfg, 240))
}

func TestRankSlotsSortedDescending(t *testing.T) {
	cfg := testRankConfig()
	now := monday
	host := Participant{Location: time.UTC, Chronotype: ChronotypeEarlyBird}
	guest := Participant{Location: time.UTC, Chronotype: ChronotypeEarlyBird}

	slots := []CandidateSlot{
		{StartUTC: monday.AddDate(0, 0, 10).Add(15 * time.Hour), EndUTC: monday.AddDate(0, 0, 10).Add(16 * time.Hour)},
		{StartUTC: monday.AddDate(0, 0, 1).Add(9 * time.Hour), EndUTC: monday.AddDate(0, 0, 1).Add(10 * time.Hour)},
		{StartUTC: monday.AddDate(0, 0, 5).Add(9 * time.Hour), EndUTC: monday.AddDate(0, 0, 5).Add(10 * time.Hour)},
	}

	ranked := RankSlots(cfg, host, guest, slots, now)
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	// The soon, chronotype-aligned slot wins.
	require.Equal(t, slots[1].StartUTC, ranked[0].StartUTC)
}

func TestRankSlotsComponentsInRange(t *testing.T) {
	cfg := testRankConfig()
	host := Participant{Location: time.UTC, Chronotype: ChronotypeNightOwl}
	guest := Participant{Location: time.UTC, Chronotype: ChronotypeEarlyBird}

	slots := Materialize([]Window{{Start: 8 * 60, End: 22 * 60}}, monday, 5, time.UTC)
	ranked := RankSlots(cfg, host, guest, slots, monday)

	for _, s := range ranked {
		require.GreaterOrEqual(t, s.Components.TimeGap, 0.0)
		require.LessOrEqual(t, s.Components.TimeGap, 1.0)
		require.GreaterOrEqual(t, s.Components.Chronotype, 0.0)
		require.LessOrEqual(t, s.Components.Chronotype, 1.0)
		require.GreaterOrEqual(t, s.Components.Density, 0.0)
		require.LessOrEqual(t, s.Components.Density, 1.0)
		require.GreaterOrEqual(t, s.Score, 0.0)
		require.LessOrEqual(t, s.Score, 1.0)
	}
}
