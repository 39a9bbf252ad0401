package planning

import (
	"math"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
)

// LowOccupancyThreshold percent under which a period is flagged as low.
const LowOccupancyThreshold = 80

// Alert occupancy alert state for the watched peak month.
type Alert struct {
	Triggered bool `json:"triggered"`
	Rate      int  `json:"rate"`
}

// OccupancyPoint a single day of the projected occupancy series.
type OccupancyPoint struct {
	Date      time.Time `json:"date"`
	Occupancy int       `json:"occupancy"`
}

// LowWindow a contiguous forward run of days under the threshold.
type LowWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// occupiedOn counts residents whose stay covers day, inclusive on both the
// arrival and the departure day. This is the occupancy predicate; it is wider
// than the strict overlap test used by the availability resolver.
func occupiedOn(residents []domain.Resident, day time.Time) int {
	count := 0
	for _, r := range residents {
		start, err := ParseDate(r.Arrival)
		if err != nil {
			continue
		}
		end, err := ParseDate(r.Departure)
		if err != nil {
			continue
		}
		if Contains(start, end, day) {
			count++
		}
	}
	return count
}

// ceilPercent rounds occupied/possible up to a whole percent. Ceiling keeps
// the displayed number consistent with the alert threshold comparison.
func ceilPercent(occupied, possible int) int {
	if possible == 0 {
		return 0
	}
	return int(math.Ceil(float64(occupied) / float64(possible) * 100))
}

// rateOverDays averages occupancy over every day of [start, end]:
// (occupied room-days) / (days x totalRooms). This average-over-days model is
// authoritative for week/month rates; a "residents active today" count is not
// a substitute.
func rateOverDays(residents []domain.Resident, start, end time.Time, totalRooms int) int {
	days := DayDiff(start, end) + 1
	if days <= 0 {
		return 0
	}
	occupied := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		occupied += occupiedOn(residents, d)
	}
	return ceilPercent(occupied, days*totalRooms)
}

// Rate computes the occupancy rate in [0, 100] for the period containing
// today. Daily is the share of rooms occupied today; weekly and monthly
// average the per-day counts over the Monday-Sunday week and the calendar
// month respectively.
func Rate(residents []domain.Resident, period Period, today time.Time, totalRooms int) int {
	day := Normalize(today)
	switch period {
	case PeriodDaily:
		return ceilPercent(occupiedOn(residents, day), totalRooms)
	case PeriodWeekly:
		start, end := WeekBounds(day)
		return rateOverDays(residents, start, end, totalRooms)
	case PeriodYearly:
		start, end := YearBounds(day)
		return rateOverDays(residents, start, end, totalRooms)
	default:
		start, end := MonthBounds(day)
		return rateOverDays(residents, start, end, totalRooms)
	}
}

// MonthRate computes the occupancy rate for one specific calendar month,
// typically the seasonal peak month watched by the alert.
func MonthRate(residents []domain.Resident, year int, month time.Month, totalRooms int) int {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return rateOverDays(residents, start, end, totalRooms)
}

// PeakMonthAlert flags the watched month when its projected rate falls under
// the threshold.
func PeakMonthAlert(residents []domain.Resident, year int, month time.Month, totalRooms int) Alert {
	rate := MonthRate(residents, year, month, totalRooms)
	return Alert{Triggered: rate < LowOccupancyThreshold, Rate: rate}
}

// DailySeries projects the per-day occupancy rate for days consecutive days
// starting at from. The horizon is the caller's choice; the aggregator itself
// has no opinion on how far bookings are known.
func DailySeries(residents []domain.Resident, from time.Time, days int, totalRooms int) []OccupancyPoint {
	start := Normalize(from)
	points := make([]OccupancyPoint, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		points = append(points, OccupancyPoint{
			Date:      d,
			Occupancy: ceilPercent(occupiedOn(residents, d), totalRooms),
		})
	}
	return points
}

// LowOccupancyWindow scans the series forward from today and returns the
// first contiguous run of days under the threshold. Points before today are
// skipped; the scan stops as soon as the run ends. ok is false when no day
// within the series dips under the threshold.
func LowOccupancyWindow(points []OccupancyPoint, today time.Time) (LowWindow, bool) {
	day := Normalize(today)
	var win LowWindow
	found := false
	for _, p := range points {
		d := Normalize(p.Date)
		if d.Before(day) {
			continue
		}
		if p.Occupancy < LowOccupancyThreshold {
			if !found {
				win.Start = d
				found = true
			}
			win.End = d
		} else if found {
			break
		}
	}
	return win, found
}
