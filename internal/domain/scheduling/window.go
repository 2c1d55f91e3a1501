package scheduling

import (
	"strconv"
	"strings"

	apperrors "github.com/reawakn/matchengine/pkg/errors"
)

const minutesPerDay = 24 * 60

// ParseWindow parses a "HH:MM - HH:MM" clock range. The separator may carry
// surrounding spaces or not.
func ParseWindow(s string) (Window, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Window{}, apperrors.Wrap("invalid_input", "availability window must contain two clock times", nil)
	}
	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return Window{}, err
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return Window{}, err
	}
	if start >= end {
		return Window{}, apperrors.Wrap("invalid_input", "availability window start must precede end", nil)
	}
	return Window{Start: start, End: end}, nil
}

// ParseWindows parses a user's availability strings, silently dropping
// malformed entries. A user with no parseable availability simply yields
// zero windows, never an error.
func ParseWindows(raw []string) []Window {
	var windows []Window
	for _, s := range raw {
		w, err := ParseWindow(s)
		if err != nil {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, apperrors.Wrap("invalid_input", "clock time must be HH:MM", nil)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 24 {
		return 0, apperrors.Wrap("invalid_input", "clock hour out of range", err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, apperrors.Wrap("invalid_input", "clock minute out of range", err)
	}
	total := hours*60 + minutes
	if total > minutesPerDay {
		return 0, apperrors.Wrap("invalid_input", "clock time exceeds one day", nil)
	}
	return total, nil
}

// IntersectWindows computes the pairwise overlap of two window sets,
// keeping only non-empty ranges. Inputs and outputs are same-day clock
// ranges, independent of the calendar day they land on.
func IntersectWindows(a, b []Window) []Window {
	var out []Window
	for _, wa := range a {
		for _, wb := range b {
			start := max(wa.Start, wb.Start)
			end := min(wa.End, wb.End)
			if start < end {
				out = append(out, Window{Start: start, End: end})
			}
		}
	}
	return out
}
