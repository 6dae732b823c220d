package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickwash/models"
)

func utcTime(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func activeReservation(start, end time.Time) models.Reservation {
	return models.Reservation{
		ID:     "res",
		Start:  start,
		End:    end,
		Status: models.ReservationStatusActive,
	}
}

func TestFreeIntervals_OpenNowWithReservation(t *testing.T) {
	// Window 10:00-12:00 UTC is local 12:00-14:00 at +2, well inside
	// 08:00-20:00. One reservation splits the window in two.
	engine := NewEngine(2)
	got := engine.FreeIntervals(
		utcTime(10, 0), utcTime(12, 0),
		[]models.Reservation{activeReservation(utcTime(10, 30), utcTime(11, 0))},
		15, "08:00 - 20:00",
	)
	require.Len(t, got, 2)
	assert.Equal(t, utcTime(10, 0), got[0].Start)
	assert.Equal(t, utcTime(10, 30), got[0].End)
	assert.Equal(t, 30, got[0].MinutesAvailable)
	assert.Equal(t, utcTime(11, 0), got[1].Start)
	assert.Equal(t, utcTime(12, 0), got[1].End)
	assert.Equal(t, 60, got[1].MinutesAvailable)
}

func TestFreeIntervals_OvernightScheduleLateEvening(t *testing.T) {
	// 22:00-06:00 schedule, evaluated at local 23:00 (21:00 UTC at +2).
	// The active segment is [22, 24), whose close of 24 means no clip, so
	// the whole 2h horizon is free.
	engine := NewEngine(2)
	start := utcTime(21, 0)
	end := start.Add(2 * time.Hour)
	got := engine.FreeIntervals(start, end, nil, 30, "22:00 - 06:00")
	require.Len(t, got, 1)
	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, end, got[0].End)
	assert.Equal(t, 120, got[0].MinutesAvailable)
}

func TestFreeIntervals_OvernightScheduleAfterMidnight(t *testing.T) {
	// Same schedule evaluated at local 01:00 (23:00 UTC the previous
	// local day). Now the [0, 6) segment is active and the gap clips at
	// 06:00 local even though the horizon runs past it.
	engine := NewEngine(2)
	start := utcTime(23, 0) // local 2026-03-11 01:00
	end := start.Add(8 * time.Hour)
	got := engine.FreeIntervals(start, end, nil, 30, "22:00 - 06:00")
	require.Len(t, got, 1)
	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, time.Date(2026, 3, 11, 4, 0, 0, 0, time.UTC), got[0].End) // 06:00 local
	assert.Equal(t, 300, got[0].MinutesAvailable)
}

func TestFreeIntervals_BeforeOpeningShortHorizon(t *testing.T) {
	// Local 08:00 with a 10:00-18:00 schedule: the adjusted start (10:00
	// local) lands beyond the 1h horizon, so nothing is free.
	engine := NewEngine(2)
	start := utcTime(6, 0) // local 08:00
	got := engine.FreeIntervals(start, start.Add(time.Hour), nil, 15, "10:00 - 18:00")
	assert.Empty(t, got)
}

func TestFreeIntervals_BeforeOpeningLongHorizon(t *testing.T) {
	// Same setup with a 4h horizon: the free time starts at opening, not
	// at the window start.
	engine := NewEngine(2)
	start := utcTime(6, 0)
	end := start.Add(4 * time.Hour)
	got := engine.FreeIntervals(start, end, nil, 15, "10:00 - 18:00")
	require.Len(t, got, 1)
	assert.Equal(t, utcTime(8, 0), got[0].Start) // local 10:00
	assert.Equal(t, end, got[0].End)
	assert.Equal(t, 120, got[0].MinutesAvailable)
}

func TestFreeIntervals_NoLaterOpeningToday(t *testing.T) {
	// Local 21:00 with an 08:00-20:00 schedule: closed, and no segment
	// opens later on this calendar day.
	engine := NewEngine(2)
	start := utcTime(19, 0) // local 21:00
	got := engine.FreeIntervals(start, start.Add(6*time.Hour), nil, 15, "08:00 - 20:00")
	assert.Empty(t, got)
}

func TestFreeIntervals_MalformedScheduleAlwaysOpen(t *testing.T) {
	engine := NewEngine(2)
	start := utcTime(1, 0)
	end := utcTime(3, 0)
	got := engine.FreeIntervals(start, end, nil, 30, "garbage")
	require.Len(t, got, 1)
	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, end, got[0].End)
}

func TestFreeIntervals_ClipsAtClosing(t *testing.T) {
	// Window runs to 13:00 local but the station closes at 12:00 local.
	engine := NewEngine(2)
	start := utcTime(8, 0) // local 10:00
	got := engine.FreeIntervals(start, utcTime(11, 0), nil, 15, "08:00 - 12:00")
	require.Len(t, got, 1)
	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, utcTime(10, 0), got[0].End) // local 12:00
	assert.Equal(t, 120, got[0].MinutesAvailable)
}

func TestFreeIntervals_ExactlyAtOpenAndClose(t *testing.T) {
	engine := NewEngine(2)

	// Exactly at opening (local 08:00) counts as open.
	atOpen := utcTime(6, 0)
	got := engine.FreeIntervals(atOpen, atOpen.Add(time.Hour), nil, 15, "08:00 - 20:00")
	require.Len(t, got, 1)
	assert.Equal(t, atOpen, got[0].Start)

	// Exactly at closing (local 20:00) counts as closed.
	atClose := utcTime(18, 0)
	got = engine.FreeIntervals(atClose, atClose.Add(time.Hour), nil, 15, "08:00 - 20:00")
	assert.Empty(t, got)
}

func TestFreeIntervals_FullyBookedWindow(t *testing.T) {
	engine := NewEngine(2)
	start := utcTime(10, 0)
	end := utcTime(12, 0)
	reservations := []models.Reservation{
		activeReservation(start, utcTime(11, 0)),
		activeReservation(utcTime(11, 0), end),
	}
	got := engine.FreeIntervals(start, end, reservations, 15, "00:00 - 24:00")
	assert.Empty(t, got)
}

func TestFreeIntervals_GapsBelowMinimumFiltered(t *testing.T) {
	// Two reservations leave a 10-minute gap between them; only the
	// trailing gap qualifies at 30 minutes minimum.
	engine := NewEngine(2)
	start := utcTime(10, 0)
	end := utcTime(12, 0)
	reservations := []models.Reservation{
		activeReservation(start, utcTime(10, 50)),
		activeReservation(utcTime(11, 0), utcTime(11, 30)),
	}
	got := engine.FreeIntervals(start, end, reservations, 30, "00:00 - 24:00")
	require.Len(t, got, 1)
	assert.Equal(t, utcTime(11, 30), got[0].Start)
	assert.Equal(t, end, got[0].End)
}

func TestFreeIntervals_IgnoresFinalizedAndMalformedRows(t *testing.T) {
	engine := NewEngine(2)
	start := utcTime(10, 0)
	end := utcTime(12, 0)
	reservations := []models.Reservation{
		{Start: utcTime(10, 30), End: utcTime(11, 0), Status: models.ReservationStatusFinalized},
		{Start: utcTime(11, 30), End: utcTime(11, 0), Status: models.ReservationStatusActive}, // inverted
	}
	got := engine.FreeIntervals(start, end, reservations, 15, "00:00 - 24:00")
	require.Len(t, got, 1)
	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, end, got[0].End)
	assert.Equal(t, 120, got[0].MinutesAvailable)
}

func TestFreeIntervals_InvertedOrEmptyWindow(t *testing.T) {
	engine := NewEngine(2)
	assert.Empty(t, engine.FreeIntervals(utcTime(12, 0), utcTime(10, 0), nil, 15, "00:00 - 24:00"))
	assert.Empty(t, engine.FreeIntervals(utcTime(10, 0), utcTime(10, 0), nil, 15, "00:00 - 24:00"))
}

func TestFreeIntervals_NegativeMinDurationTreatedAsZero(t *testing.T) {
	engine := NewEngine(2)
	start := utcTime(10, 0)
	end := utcTime(10, 5)
	got := engine.FreeIntervals(start, end, nil, -10, "00:00 - 24:00")
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].MinutesAvailable)
}

func TestFreeIntervals_UnsortedInputOrderedOutput(t *testing.T) {
	engine := NewEngine(2)
	start := utcTime(8, 0)
	end := utcTime(14, 0)
	reservations := []models.Reservation{
		activeReservation(utcTime(12, 0), utcTime(12, 30)),
		activeReservation(utcTime(9, 0), utcTime(9, 30)),
		activeReservation(utcTime(10, 30), utcTime(11, 0)),
	}
	got := engine.FreeIntervals(start, end, reservations, 1, "00:00 - 24:00")
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].End.Before(got[i].Start) || got[i-1].End.Equal(got[i].Start),
			"intervals must be non-overlapping and ascending")
	}
	for _, iv := range got {
		assert.True(t, iv.Start.Before(iv.End))
		assert.GreaterOrEqual(t, iv.MinutesAvailable, 1)
	}
}

func TestFreeIntervals_ContainedReservationDoesNotRewindCursor(t *testing.T) {
	// A reservation fully inside an earlier one must not move the cursor
	// backwards or produce an overlapping gap.
	engine := NewEngine(2)
	start := utcTime(8, 0)
	end := utcTime(12, 0)
	reservations := []models.Reservation{
		activeReservation(utcTime(9, 0), utcTime(11, 0)),
		activeReservation(utcTime(9, 30), utcTime(10, 0)),
	}
	got := engine.FreeIntervals(start, end, reservations, 15, "00:00 - 24:00")
	require.Len(t, got, 2)
	assert.Equal(t, utcTime(8, 0), got[0].Start)
	assert.Equal(t, utcTime(9, 0), got[0].End)
	assert.Equal(t, utcTime(11, 0), got[1].Start)
	assert.Equal(t, utcTime(12, 0), got[1].End)
}

func TestFreeIntervals_Deterministic(t *testing.T) {
	engine := NewEngine(2)
	start := utcTime(8, 0)
	end := utcTime(14, 0)
	reservations := []models.Reservation{
		activeReservation(utcTime(9, 0), utcTime(9, 45)),
		activeReservation(utcTime(12, 0), utcTime(13, 0)),
	}
	first := engine.FreeIntervals(start, end, reservations, 20, "08:00 - 20:00")
	second := engine.FreeIntervals(start, end, reservations, 20, "08:00 - 20:00")
	assert.Equal(t, first, second)
}
