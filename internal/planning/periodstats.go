package planning

import (
	"math"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
)

// PeriodCounts arrivals and departures inside one statistics window.
type PeriodCounts struct {
	Arrivals   int `json:"arrivals"`
	Departures int `json:"departures"`
}

// PeriodStats arrival/departure counts for the day, week and month containing
// today.
type PeriodStats struct {
	Daily   PeriodCounts `json:"daily"`
	Weekly  PeriodCounts `json:"weekly"`
	Monthly PeriodCounts `json:"monthly"`
}

// CountArrivalsDepartures buckets each resident's arrival and departure date
// into the windows anchored at today: [today, today], the Monday-Sunday week,
// and the calendar month, all bounds inclusive.
func CountArrivalsDepartures(residents []domain.Resident, today time.Time) PeriodStats {
	day := Normalize(today)
	weekStart, weekEnd := WeekBounds(day)
	monthStart, monthEnd := MonthBounds(day)

	var stats PeriodStats
	for _, r := range residents {
		if arrival, err := ParseDate(r.Arrival); err == nil {
			if arrival.Equal(day) {
				stats.Daily.Arrivals++
			}
			if Contains(weekStart, weekEnd, arrival) {
				stats.Weekly.Arrivals++
			}
			if Contains(monthStart, monthEnd, arrival) {
				stats.Monthly.Arrivals++
			}
		}
		if departure, err := ParseDate(r.Departure); err == nil {
			if departure.Equal(day) {
				stats.Daily.Departures++
			}
			if Contains(weekStart, weekEnd, departure) {
				stats.Weekly.Departures++
			}
			if Contains(monthStart, monthEnd, departure) {
				stats.Monthly.Departures++
			}
		}
	}
	return stats
}

// AverageGIR computes the arithmetic mean of the valid care-level codes,
// rounded to 2 decimal places. ok is false when no resident carries a valid
// code, in which case the dashboard shows "N/A".
func AverageGIR(residents []domain.Resident) (float64, bool) {
	sum, count := 0, 0
	for _, r := range residents {
		if v, valid := domain.GIRValue(r.GIR); valid {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	mean := float64(sum) / float64(count)
	return math.Round(mean*100) / 100, true
}
