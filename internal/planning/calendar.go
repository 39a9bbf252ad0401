// Package planning implements the occupancy engine of the residence: the
// room/stay grid, availability resolution, occupancy and period statistics,
// and the calendar view math. Everything operates on calendar dates pinned to
// UTC midnight so day arithmetic is immune to daylight-saving drift.
package planning

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" string into a UTC-midnight date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date back to ISO "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Normalize truncates a timestamp to its UTC-midnight calendar date.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week containing t, at UTC midnight.
// Idempotent: StartOfWeek(StartOfWeek(t)) == StartOfWeek(t).
func StartOfWeek(t time.Time) time.Time {
	d := Normalize(t)
	// time.Weekday numbers Sunday as 0; shift so Monday is the origin.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// DayDiff returns the whole-day count from a to b.
// DayDiff(a, a) == 0 and DayDiff(a, b) == -DayDiff(b, a).
func DayDiff(a, b time.Time) int {
	ua := Normalize(a)
	ub := Normalize(b)
	return int(ub.Sub(ua).Hours() / 24)
}

// RangesOverlap reports whether [startA, endA) and [startB, endB) intersect.
// The comparison is strict, so a departure on another stay's arrival day does
// not overlap: same-day checkout/checkin is allowed. Occupancy counting uses
// the inclusive Contains predicate instead; the two are deliberately distinct.
func RangesOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// Contains reports whether day falls inside [start, end], inclusive on both
// ends: a room counts as occupied on its arrival day and its departure day.
func Contains(start, end, day time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

// WeekBounds returns the Monday and Sunday of the week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfWeek(t)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// YearBounds returns January 1st and December 31st of the year containing t.
func YearBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return first, time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}
