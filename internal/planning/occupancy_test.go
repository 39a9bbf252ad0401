package planning_test

import (
	"testing"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	"github.com/jthmssse/saisonnales-app-v2/internal/planning"

	"github.com/stretchr/testify/require"
)

func TestRate_Daily(t *testing.T) {
	residents := []domain.Resident{
		{ID: 1, Room: "1", Arrival: "2025-07-01", Departure: "2025-07-31"},
		{ID: 2, Room: "2", Arrival: "2025-07-01", Departure: "2025-07-31"},
	}
	today := date(2025, time.July, 15)

	// 2 of 24 rooms: 8.33% rounds up to 9.
	require.Equal(t, 9, planning.Rate(residents, planning.PeriodDaily, today, 24))

	// Arrival and departure days both count as occupied.
	require.Equal(t, 9, planning.Rate(residents, planning.PeriodDaily, date(2025, time.July, 1), 24))
	require.Equal(t, 9, planning.Rate(residents, planning.PeriodDaily, date(2025, time.July, 31), 24))
	require.Equal(t, 0, planning.Rate(residents, planning.PeriodDaily, date(2025, time.August, 1), 24))
}

func TestRate_MonthlyAverageOverDays(t *testing.T) {
	// One resident covering every day of July in a 24-room facility:
	// 31 occupied room-days over 31*24 possible = 4.17%, ceil to 5.
	residents := []domain.Resident{
		{ID: 1, Room: "1", Arrival: "2025-07-01", Departure: "2025-07-31"},
	}
	require.Equal(t, 5, planning.Rate(residents, planning.PeriodMonthly, date(2025, time.July, 15), 24))
}

func TestRate_WeeklyWindow(t *testing.T) {
	// Stay covers exactly the Monday-Sunday week of July 7-13.
	residents := []domain.Resident{
		{ID: 1, Room: "1", Arrival: "2025-07-07", Departure: "2025-07-13"},
	}
	// 7 room-days over 7*24: 4.17% -> 5.
	require.Equal(t, 5, planning.Rate(residents, planning.PeriodWeekly, date(2025, time.July, 9), 24))
	// The week before sees nothing.
	require.Equal(t, 0, planning.Rate(residents, planning.PeriodWeekly, date(2025, time.July, 2), 24))
}

func TestRate_FullHouse(t *testing.T) {
	residents := make([]domain.Resident, 0, 24)
	for i := 1; i <= 24; i++ {
		residents = append(residents, domain.Resident{
			ID: i, Room: "1", Arrival: "2025-07-01", Departure: "2025-07-31",
		})
	}
	require.Equal(t, 100, planning.Rate(residents, planning.PeriodMonthly, date(2025, time.July, 15), 24))
}

func TestRate_Monotonic(t *testing.T) {
	today := date(2025, time.July, 15)
	var residents []domain.Resident
	prev := 0
	for i := 1; i <= 24; i++ {
		residents = append(residents, domain.Resident{
			ID: i, Room: "1", Arrival: "2025-07-01", Departure: "2025-07-31",
		})
		rate := planning.Rate(residents, planning.PeriodDaily, today, 24)
		require.GreaterOrEqual(t, rate, prev)
		require.LessOrEqual(t, rate, 100)
		prev = rate
	}
}

func TestRate_ZeroRooms(t *testing.T) {
	require.Equal(t, 0, planning.Rate(nil, planning.PeriodDaily, date(2025, time.July, 15), 0))
}

func TestMonthRate(t *testing.T) {
	residents := []domain.Resident{
		{ID: 1, Room: "1", Arrival: "2025-08-01", Departure: "2025-08-31"},
	}
	require.Equal(t, 5, planning.MonthRate(residents, 2025, time.August, 24))
	require.Equal(t, 0, planning.MonthRate(residents, 2025, time.July, 24))
}

func TestPeakMonthAlert(t *testing.T) {
	// Nearly empty August triggers the alert.
	residents := []domain.Resident{
		{ID: 1, Room: "1", Arrival: "2025-08-01", Departure: "2025-08-31"},
	}
	alert := planning.PeakMonthAlert(residents, 2025, time.August, 24)
	require.True(t, alert.Triggered)
	require.Equal(t, 5, alert.Rate)

	// Full house does not.
	full := make([]domain.Resident, 0, 24)
	for i := 1; i <= 24; i++ {
		full = append(full, domain.Resident{
			ID: i, Room: "1", Arrival: "2025-08-01", Departure: "2025-08-31",
		})
	}
	alert = planning.PeakMonthAlert(full, 2025, time.August, 24)
	require.False(t, alert.Triggered)
	require.Equal(t, 100, alert.Rate)
}

func TestDailySeries(t *testing.T) {
	residents := []domain.Resident{
		{ID: 1, Room: "1", Arrival: "2025-07-01", Departure: "2025-07-05"},
	}
	points := planning.DailySeries(residents, date(2025, time.July, 1), 10, 24)
	require.Len(t, points, 10)
	require.Equal(t, date(2025, time.July, 1), points[0].Date)
	require.Equal(t, date(2025, time.July, 10), points[9].Date)

	// Occupied through July 5 inclusive, zero after.
	require.Equal(t, 5, points[0].Occupancy)
	require.Equal(t, 5, points[4].Occupancy)
	require.Equal(t, 0, points[5].Occupancy)
}

func TestLowOccupancyWindow(t *testing.T) {
	today := date(2025, time.July, 1)
	mk := func(occupancies ...int) []planning.OccupancyPoint {
		points := make([]planning.OccupancyPoint, len(occupancies))
		for i, o := range occupancies {
			points[i] = planning.OccupancyPoint{Date: today.AddDate(0, 0, i), Occupancy: o}
		}
		return points
	}

	// First contiguous low run only: days 2-3.
	win, ok := planning.LowOccupancyWindow(mk(90, 85, 70, 60, 95, 50), today)
	require.True(t, ok)
	require.Equal(t, today.AddDate(0, 0, 2), win.Start)
	require.Equal(t, today.AddDate(0, 0, 3), win.End)

	// No dip, no window.
	_, ok = planning.LowOccupancyWindow(mk(90, 85, 100), today)
	require.False(t, ok)

	// Exactly at the threshold is not low.
	_, ok = planning.LowOccupancyWindow(mk(80, 80), today)
	require.False(t, ok)

	// Points before today are skipped.
	win, ok = planning.LowOccupancyWindow(mk(10, 20, 90, 40), today.AddDate(0, 0, 2))
	require.True(t, ok)
	require.Equal(t, today.AddDate(0, 0, 3), win.Start)
	require.Equal(t, today.AddDate(0, 0, 3), win.End)
}
