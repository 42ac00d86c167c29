package engine

import (
	"math"
	"time"
)

// DayStart normalizes t to midnight UTC. Check-in and check-out dates are
// day-granularity values; comparing normalized days avoids timezone-dependent
// hour arithmetic.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// Nights returns the number of billable nights between checkIn and checkOut
// using a calendar-day ceiling, so a stay ending mid-day never under-counts a
// night. Returns 0 when checkOut is not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A checkout on day X and a check-in on day X do
// not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
