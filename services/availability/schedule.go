package availability

import (
	"strconv"
	"strings"
)

// segment is a same-day open range in whole hours: start inclusive, end
// exclusive. An end of 24 runs to the end of the local day.
type segment struct {
	start int
	end   int
}

// parseSchedule reduces an operating-hours string to whole open/close
// hours. Minute components present in the text are discarded. Empty
// strings, non-stop aliases and anything that fails to parse all map to
// (0, 24): stations are created with a validated schedule, but evaluation
// must degrade to always-open over bad historical data rather than fail
// the whole availability query.
func parseSchedule(s string) (int, int) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, 24
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "non") && strings.Contains(lower, "stop") {
		return 0, 24
	}
	parts := strings.SplitN(trimmed, "-", 2)
	if len(parts) != 2 {
		return 0, 24
	}
	open, okOpen := parseHour(parts[0])
	close, okClose := parseHour(parts[1])
	if !okOpen || !okClose {
		return 0, 24
	}
	return open, close
}

// parseHour extracts the hour component of one side of "HH:MM - HH:MM".
// 24 is accepted so that "00:00 - 24:00" reads as continuous operation.
func parseHour(part string) (int, bool) {
	hh, _, _ := strings.Cut(strings.TrimSpace(part), ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	return h, true
}

// openSegments expands operating hours into the day's open segments.
// A schedule crossing midnight contributes two segments; equal open and
// close hours mean round-the-clock operation. Total for all inputs.
func openSegments(openHour, closeHour int) []segment {
	switch {
	case openHour < closeHour:
		return []segment{{openHour, closeHour}}
	case openHour > closeHour:
		return []segment{{0, closeHour}, {openHour, 24}}
	default:
		return []segment{{0, 24}}
	}
}
