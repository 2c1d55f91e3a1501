package scheduling

import "time"

// Materialize turns recurring clock-time windows into concrete one-hour
// candidate slots over the horizon, skipping Saturdays and Sundays. Wall
// clock times are interpreted in loc; the returned instants are UTC. The
// standard library's zone database handles DST transitions.
func Materialize(windows []Window, from time.Time, horizonDays int, loc *time.Location) []CandidateSlot {
	if len(windows) == 0 || horizonDays <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var slots []CandidateSlot
	start := from.In(loc)
	for offset := 0; offset <= horizonDays; offset++ {
		day := start.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		year, month, date := day.Date()
		for _, w := range windows {
			windowStart := time.Date(year, month, date, w.Start/60, w.Start%60, 0, 0, loc)
			windowEnd := time.Date(year, month, date, w.End/60, w.End%60, 0, 0, loc)
			for cur := windowStart; !cur.Add(time.Hour).After(windowEnd); cur = cur.Add(time.Hour) {
				slots = append(slots, CandidateSlot{
					StartUTC: cur.UTC(),
					EndUTC:   cur.Add(time.Hour).UTC(),
				})
			}
		}
	}
	return slots
}

// FilterConflicts drops candidate slots that overlap any existing meeting.
// Overlap uses the half-open interval test, so a slot starting exactly at a
// meeting's end survives.
func FilterConflicts(slots []CandidateSlot, existing []ExistingMeeting) []CandidateSlot {
	if len(existing) == 0 {
		return slots
	}
	out := make([]CandidateSlot, 0, len(slots))
	for _, slot := range slots {
		if !hasConflict(slot, existing) {
			out = append(out, slot)
		}
	}
	return out
}

func hasConflict(slot CandidateSlot, existing []ExistingMeeting) bool {
	for _, m := range existing {
		if slot.StartUTC.Before(m.EndUTC) && m.StartUTC.Before(slot.EndUTC) {
			return true
		}
	}
	return false
}
