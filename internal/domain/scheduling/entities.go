package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chronotype is a user's self-declared preference for morning or evening
// activity.
type Chronotype string

const (
	ChronotypeEarlyBird Chronotype = "early_bird"
	ChronotypeNightOwl  Chronotype = "night_owl"
)

// UserSchedule is the scheduling-relevant slice of a user profile. The
// availability strings are recurring weekly windows in "HH:MM - HH:MM"
// UTC clock-offset form, normalized by the profile adapter before they
// reach this package.
type UserSchedule struct {
	UserID       uuid.UUID  `json:"userId"`
	Timezone     string     `json:"timezone"`
	Chronotype   Chronotype `json:"chronotype"`
	Availability []string   `json:"availability"`
}

// Window is a same-day clock-time interval in minutes since midnight.
// Invariant: 0 <= Start < End <= 24h.
type Window struct {
	Start int
	End   int
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}

// CandidateSlot is a concrete one-hour UTC interval where both users are
// nominally free. Duration is always exactly one hour, aligned to the
// source window's start.
type CandidateSlot struct {
	StartUTC time.Time `json:"startUTC"`
	EndUTC   time.Time `json:"endUTC"`
}

// ExistingMeeting is a booked meeting, immutable from this package's
// perspective and used only as a conflict filter and density signal.
type ExistingMeeting struct {
	ID        uuid.UUID `json:"id"`
	HostID    uuid.UUID `json:"hostId"`
	GuestID   uuid.UUID `json:"guestId"`
	Title     string    `json:"title,omitempty"`
	StartUTC  time.Time `json:"startUTC"`
	EndUTC    time.Time `json:"endUTC"`
	Confirmed bool      `json:"confirmed"`
}

// ScoreComponents breaks a slot score into its independently computed parts.
type ScoreComponents struct {
	TimeGap    float64 `json:"timeGap"`
	Chronotype float64 `json:"chronotype"`
	Density    float64 `json:"density"`
}

// ScoredSlot is a candidate slot with its desirability score in [0,1].
// Created fresh on every ranking call and never mutated afterwards.
type ScoredSlot struct {
	CandidateSlot
	Score      float64         `json:"score"`
	Components ScoreComponents `json:"components"`
}

// PlannedSlot annotates a selected slot with its selection rank (1-based).
type PlannedSlot struct {
	ScoredSlot
	Rank int `json:"rank"`
}

// RankedPlan is the ordered output of spaced selection. Order reflects
// selection rank, not chronology.
type RankedPlan []PlannedSlot

// Proposal is the full outcome of the pairing pipeline.
type Proposal struct {
	LearnScore   float64    `json:"learnScore"`
	TeachScore   float64    `json:"teachScore"`
	MatchWorthy  bool       `json:"matchWorthy"`
	Skill        string     `json:"skill,omitempty"`
	SessionCount int        `json:"sessionCount,omitempty"`
	Slots        RankedPlan `json:"slots"`
}
