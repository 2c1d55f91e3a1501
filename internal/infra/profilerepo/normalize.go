package profilerepo

import (
	"fmt"
	"strconv"
	"strings"
)

// Older profiles carry display timezone names instead of IANA identifiers.
var timezoneAliases = map[string]string{
	"Pacific Time (PT)":  "America/Los_Angeles",
	"Mountain Time (MT)": "America/Denver",
	"Central Time (CT)":  "America/Chicago",
	"Eastern Time (ET)":  "America/New_York",
	"Atlantic Time (AT)": "America/Halifax",
	"Hawaii Time (HT)":   "Pacific/Honolulu",
	"Alaska Time (AKT)":  "America/Anchorage",
}

// The same older profiles store availability as 12-hour local ranges; the
// conversion to UTC clock form uses the fixed standard-time offsets the
// display names imply.
var timezoneHourOffsets = map[string]int{
	"Pacific Time (PT)":  8,
	"Mountain Time (MT)": 7,
	"Central Time (CT)":  6,
	"Eastern Time (ET)":  5,
	"Atlantic Time (AT)": 4,
	"Alaska Time (AKT)":  9,
	"Hawaii Time (HT)":   10,
}

// ResolveTimezone maps a display timezone name to its IANA identifier,
// passing through anything already in IANA form.
func ResolveTimezone(tz string) string {
	if iana, ok := timezoneAliases[tz]; ok {
		return iana
	}
	return tz
}

// NormalizeAvailability brings stored availability windows into the
// "HH:MM - HH:MM" UTC clock-offset form the scheduling engine expects.
// Windows already in that form pass through; 12-hour local ranges like
// "6:00 AM - 9:00 AM" are shifted by the profile's display-timezone
// offset. A shifted range that crosses midnight splits into two same-day
// windows so evening availability in western timezones survives. Entries
// that fit neither shape are dropped.
func NormalizeAvailability(windows []string, tz string) []string {
	offset, hasOffset := timezoneHourOffsets[tz]

	var out []string
	for _, w := range windows {
		if isClockRange(w) {
			out = append(out, w)
			continue
		}
		start, end, ok := parse12HourRange(w)
		if !ok {
			continue
		}
		if hasOffset {
			start = (start + offset) % 24
			end = (end + offset) % 24
		}
		switch {
		case start < end:
			out = append(out, fmt.Sprintf("%02d:00 - %02d:00", start, end))
		case start > end:
			out = append(out, fmt.Sprintf("%02d:00 - 24:00", start))
			if end > 0 {
				out = append(out, fmt.Sprintf("00:00 - %02d:00", end))
			}
		}
	}
	return out
}

func isClockRange(s string) bool {
	if strings.ContainsAny(s, "APap") {
		return false
	}
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return false
	}
	return strings.Contains(start, ":") && strings.Contains(end, ":")
}

func parse12HourRange(s string) (start, end int, ok bool) {
	left, right, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	start, ok = parse12Hour(strings.TrimSpace(left))
	if !ok {
		return 0, 0, false
	}
	end, ok = parse12Hour(strings.TrimSpace(right))
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parse12Hour(s string) (int, bool) {
	clock, meridiem, found := strings.Cut(s, " ")
	if !found {
		return 0, false
	}
	hh, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 1 || hours > 12 {
		return 0, false
	}
	if hours == 12 {
		hours = 0
	}
	switch strings.ToUpper(meridiem) {
	case "AM":
		return hours, true
	case "PM":
		return hours + 12, true
	}
	return 0, false
}
