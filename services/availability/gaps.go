package availability

import (
	"fmt"
	"sort"
	"time"

	"quickwash/models"
)

// Engine computes free intervals for a single bay. It is a pure
// computation with no I/O and no shared state: one engine value can serve
// any number of bays concurrently with no coordination.
type Engine struct {
	loc *time.Location
}

// NewEngine builds an engine for a deployment region with the given fixed
// UTC offset in hours. The fixed offset stands in for a full timezone
// database; the deployment region is assumed to have no DST.
func NewEngine(offsetHours int) Engine {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	return Engine{loc: time.FixedZone(name, offsetHours*3600)}
}

// FreeIntervals returns the ordered free time ranges of length at least
// minDurationMinutes within [windowStart, windowEnd), clipped to the
// station's operating hours. The result is never an error: malformed
// schedules fall back to always-open, malformed reservations are dropped,
// and an empty or inverted window yields an empty result. Reservations
// sharing a start instant keep their input order.
func (e Engine) FreeIntervals(windowStart, windowEnd time.Time, reservations []models.Reservation, minDurationMinutes int, schedule string) []models.FreeInterval {
	if !windowStart.Before(windowEnd) {
		return nil
	}
	if minDurationMinutes < 0 {
		minDurationMinutes = 0
	}

	segs := openSegments(parseSchedule(schedule))
	cursor, activeClose, ok := normalizeWindow(windowStart, segs, e.loc)
	if !ok || !cursor.Before(windowEnd) {
		return nil
	}

	sorted := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		// The repository pre-filters to active rows; guard anyway so a
		// stray finalized or inverted row cannot poison the scan.
		if r.Status != models.ReservationStatusActive || !r.IsWellFormed() {
			continue
		}
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var free []models.FreeInterval
	for _, r := range sorted {
		if r.Start.After(cursor) {
			end := r.Start
			if boundary := closingInstant(cursor, windowEnd, activeClose, e.loc); boundary.Before(end) {
				end = boundary
			}
			free = appendQualifying(free, cursor, end, minDurationMinutes)
		}
		if r.End.After(cursor) {
			cursor = r.End
		}
	}

	if cursor.Before(windowEnd) {
		end := windowEnd
		if boundary := closingInstant(cursor, windowEnd, activeClose, e.loc); boundary.Before(end) {
			end = boundary
		}
		free = appendQualifying(free, cursor, end, minDurationMinutes)
	}
	return free
}

// appendQualifying appends [start, end) when it is a real gap at least
// minMinutes long. MinutesAvailable is the floor of the elapsed minutes.
func appendQualifying(free []models.FreeInterval, start, end time.Time, minMinutes int) []models.FreeInterval {
	if !end.After(start) {
		return free
	}
	minutes := int(end.Sub(start) / time.Minute)
	if minutes < minMinutes {
		return free
	}
	return append(free, models.FreeInterval{Start: start, End: end, MinutesAvailable: minutes})
}
