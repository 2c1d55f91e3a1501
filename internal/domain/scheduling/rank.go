package scheduling

import (
	"math"
	"sort"
	"time"
)

// RankConfig holds the empirically chosen ranking constants. They are
// configuration, not law; defaults live in the config package.
type RankConfig struct {
	TimeGapWeight    float64
	ChronotypeWeight float64
	DensityWeight    float64

	// HalfLife controls the exponential decay of the lead-time score.
	HalfLife time.Duration
	// MaxLead categorically rejects slots further out than this.
	MaxLead time.Duration

	// IdealGapMinutes is the preferred spacing to an adjacent meeting.
	IdealGapMinutes float64
	// ClampGapMinutes caps measured gaps before scoring.
	ClampGapMinutes float64
	// OpenGapMinutes substitutes for a side with no adjacent meeting.
	OpenGapMinutes float64
	// DecayGapMinutes is how far past the ideal gap the score takes to
	// fall to zero.
	DecayGapMinutes float64
}

// Participant is one side of a pairing as the ranker sees it: a resolved
// timezone, a chronotype, and the participant's booked meetings.
type Participant struct {
	Location   *time.Location
	Chronotype Chronotype
	Meetings   []ExistingMeeting
}

// RankSlots scores every candidate on lead time, chronotype fit, and
// calendar density, and returns the results sorted by score descending.
// It is deterministic, never mutates its inputs, and has no side effects.
func RankSlots(cfg RankConfig, host, guest Participant, slots []CandidateSlot, now time.Time) []ScoredSlot {
	ranked := make([]ScoredSlot, 0, len(slots))
	for _, slot := range slots {
		components := ScoreComponents{
			TimeGap:    scoreTimeGap(cfg, slot.StartUTC, now),
			Chronotype: scoreChronotype(host, guest, slot.StartUTC),
			Density:    scoreDensity(cfg, slot, host.Meetings, guest.Meetings),
		}
		score := cfg.TimeGapWeight*components.TimeGap +
			cfg.ChronotypeWeight*components.Chronotype +
			cfg.DensityWeight*components.Density
		ranked = append(ranked, ScoredSlot{
			CandidateSlot: slot,
			Score:         score,
			Components:    components,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// scoreTimeGap rewards near-term but not immediate slots: zero for past
// slots and anything beyond MaxLead, exponential half-life decay between.
func scoreTimeGap(cfg RankConfig, start, now time.Time) float64 {
	lead := start.Sub(now).Minutes()
	if lead <= 0 || lead > cfg.MaxLead.Minutes() {
		return 0
	}
	return math.Exp(-lead * math.Ln2 / cfg.HalfLife.Minutes())
}

// chronotypeHourScore scores one user's local start hour against their
// declared activity peak.
func chronotypeHourScore(c Chronotype, hour int) float64 {
	switch c {
	case ChronotypeEarlyBird:
		if hour < 6 || hour >= 12 {
			return 0
		}
		return math.Max(0, 1-math.Abs(float64(hour)-9)/3)
	case ChronotypeNightOwl:
		if hour < 19 || hour >= 24 {
			return 0
		}
		return math.Max(0, 1-math.Abs(float64(hour)-21)/2)
	}
	return 0
}

// scoreChronotype averages both participants' individual hour scores and
// adds a capped bonus when the slot is simultaneously ideal for both, not
// merely good on average.
func scoreChronotype(host, guest Participant, startUTC time.Time) float64 {
	hostScore := chronotypeHourScore(host.Chronotype, localHour(startUTC, host.Location))
	guestScore := chronotypeHourScore(guest.Chronotype, localHour(startUTC, guest.Location))
	base := (hostScore + guestScore) / 2
	if hostScore >= 0.9 && guestScore >= 0.9 {
		base = math.Min(1, base+0.1)
	}
	return base
}

func localHour(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Hour()
}

// scoreDensity scores the slot's spacing against the pooled meetings of
// both participants. No meetings at all is a neutral 0.5 (no information);
// a non-empty pool with nothing adjacent on either side is maximally free.
func scoreDensity(cfg RankConfig, slot CandidateSlot, hostMeetings, guestMeetings []ExistingMeeting) float64 {
	pool := make([]ExistingMeeting, 0, len(hostMeetings)+len(guestMeetings))
	pool = append(pool, hostMeetings...)
	pool = append(pool, guestMeetings...)
	if len(pool) == 0 {
		return 0.5
	}

	minBefore, minAfter := math.Inf(1), math.Inf(1)
	for _, m := range pool {
		// A meeting identical to the proposed slot is the slot itself.
		if m.StartUTC.Equal(slot.StartUTC) && m.EndUTC.Equal(slot.EndUTC) {
			continue
		}
		if m.EndUTC.Before(slot.StartUTC) || m.EndUTC.Equal(slot.StartUTC) {
			if gap := slot.StartUTC.Sub(m.EndUTC).Minutes(); gap < minBefore {
				minBefore = gap
			}
		}
		if m.StartUTC.After(slot.EndUTC) || m.StartUTC.Equal(slot.EndUTC) {
			if gap := m.StartUTC.Sub(slot.EndUTC).Minutes(); gap < minAfter {
				minAfter = gap
			}
		}
	}
	if math.IsInf(minBefore, 1) && math.IsInf(minAfter, 1) {
		return 1.0
	}
	if math.IsInf(minBefore, 1) {
		minBefore = cfg.OpenGapMinutes
	}
	if math.IsInf(minAfter, 1) {
		minAfter = cfg.OpenGapMinutes
	}

	before := gapScore(cfg, math.Min(minBefore, cfg.ClampGapMinutes))
	after := gapScore(cfg, math.Min(minAfter, cfg.ClampGapMinutes))
	return (before + after) / 2
}

// gapScore ramps up quadratically to 0.8 at the ideal gap and decays
// linearly to zero past it.
func gapScore(cfg RankConfig, gap float64) float64 {
	if gap < cfg.IdealGapMinutes {
		ratio := gap / cfg.IdealGapMinutes
		return ratio * ratio * 0.8
	}
	return math.Max(0, 1-(gap-cfg.IdealGapMinutes)/cfg.DecayGapMinutes)
}
