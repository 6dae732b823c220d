package availability

import "time"

// normalizeWindow decides whether the station is open at windowStart and
// produces the instant the scan should start from plus the closing hour in
// effect. Segment starts are inclusive and ends exclusive: exactly at
// opening counts as open, exactly at closing counts as closed.
//
// When the station is closed, the scan start snaps forward to the earliest
// segment still opening later on windowStart's local calendar day. If no
// segment opens later that day, ok is false and the result is empty.
//
// activeClose is fixed here for the entire scan; it is not re-derived when
// the cursor later crosses into another segment or calendar day. A horizon
// spanning more than the first open segment will therefore clip at that
// first segment's close.
func normalizeWindow(windowStart time.Time, segs []segment, loc *time.Location) (time.Time, int, bool) {
	local := windowStart.In(loc)
	hour := float64(local.Hour()) + float64(local.Minute())/60

	for _, seg := range segs {
		if float64(seg.start) <= hour && hour < float64(seg.end) {
			return windowStart, seg.end, true
		}
	}

	nextOpen := -1
	activeClose := 24
	for _, seg := range segs {
		if float64(seg.start) > hour && (nextOpen == -1 || seg.start < nextOpen) {
			nextOpen = seg.start
			activeClose = seg.end
		}
	}
	if nextOpen == -1 {
		return time.Time{}, 0, false
	}

	adjusted := time.Date(local.Year(), local.Month(), local.Day(), nextOpen, 0, 0, 0, loc)
	return adjusted.UTC(), activeClose, true
}

// closingInstant returns the clip boundary for a gap starting at instant:
// the active closing hour on instant's own local calendar day, converted
// back to UTC. A close of 24 means continuous operation, so the window end
// is returned unclipped.
func closingInstant(instant, windowEnd time.Time, activeClose int, loc *time.Location) time.Time {
	if activeClose == 24 {
		return windowEnd
	}
	local := instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), activeClose, 0, 0, 0, loc).UTC()
}
