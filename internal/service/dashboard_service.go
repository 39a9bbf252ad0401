package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/config"
	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	"github.com/jthmssse/saisonnales-app-v2/internal/planning"
	"github.com/jthmssse/saisonnales-app-v2/internal/repository"

	"go.uber.org/zap"
)

// DashboardService read-only aggregations over the resident collection:
// occupancy rates, period statistics, the forecast and the planning grid.
type DashboardService interface {
	Occupancy(ctx context.Context, req OccupancyRequest) (*OccupancyResponse, error)
	Stats(ctx context.Context) (*StatsResponse, error)
	Forecast(ctx context.Context) (*ForecastResponse, error)
	Planning(ctx context.Context, req PlanningRequest) (*PlanningResponse, error)
}

type dashboardService struct {
	store    *repository.ResidentStore
	facility config.FacilityConfig
	logger   *zap.Logger
	now      func() time.Time
}

func NewDashboardService(store *repository.ResidentStore, facility config.FacilityConfig, logger *zap.Logger) DashboardService {
	return &dashboardService{
		store:    store,
		facility: facility,
		logger:   logger,
		now:      time.Now,
	}
}

type OccupancyRequest struct {
	Period string // daily (default), weekly, monthly, yearly
}

type OccupancyResponse struct {
	Period string         `json:"period"`
	Rate   int            `json:"rate"`
	Alert  planning.Alert `json:"alert"`
}

type StatsResponse struct {
	Stats         planning.PeriodStats `json:"stats"`
	AverageGIR    float64              `json:"averageGir"`
	AverageGIROK  bool                 `json:"averageGirOk"`
	OccupancyRate int                  `json:"occupancyRate"`
	PeakAlert     planning.Alert       `json:"peakAlert"`
	TotalRooms    int                  `json:"totalRooms"`
}

type ForecastResponse struct {
	Points    []planning.OccupancyPoint `json:"points"`
	LowWindow *planning.LowWindow       `json:"lowWindow,omitempty"`
}

type PlanningRequest struct {
	View   string // week, month (default), year
	Anchor string // YYYY-MM-DD; empty means the season start
	Search string // resident filter applied before bucketing
}

// PlanningRoom one grid row: the room plus the bar geometry of every visible
// stay in it.
type PlanningRoom struct {
	Number int                   `json:"number"`
	Name   string                `json:"name"`
	Stays  []planning.StayLayout `json:"stays"`
}

type PlanningResponse struct {
	View      string         `json:"view"`
	Title     string         `json:"title"`
	Anchor    string         `json:"anchor"`
	Days      []string       `json:"days"`
	DayLabels []string       `json:"dayLabels"`
	Rooms     []PlanningRoom `json:"rooms"`
}

// peakMonth parses the configured "YYYY-MM" watch month. Falls back to
// August of the current year when misconfigured.
func (s *dashboardService) peakMonth() (int, time.Month) {
	t, err := time.Parse("2006-01", s.facility.PeakMonth)
	if err != nil {
		s.logger.Warn("invalid peak month configuration, defaulting to August",
			zap.String("peak_month", s.facility.PeakMonth))
		return s.now().Year(), time.August
	}
	return t.Year(), t.Month()
}

func (s *dashboardService) Occupancy(ctx context.Context, req OccupancyRequest) (*OccupancyResponse, error) {
	period := planning.PeriodDaily
	if req.Period != "" {
		p, err := planning.ParsePeriod(req.Period)
		if err != nil {
			return nil, err
		}
		period = p
	}

	residents := s.store.Snapshot()
	year, month := s.peakMonth()
	return &OccupancyResponse{
		Period: period.String(),
		Rate:   planning.Rate(residents, period, s.now(), s.facility.TotalRooms),
		Alert:  planning.PeakMonthAlert(residents, year, month, s.facility.TotalRooms),
	}, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*StatsResponse, error) {
	residents := s.store.Snapshot()
	today := s.now()

	avg, ok := planning.AverageGIR(residents)
	year, month := s.peakMonth()
	return &StatsResponse{
		Stats:         planning.CountArrivalsDepartures(residents, today),
		AverageGIR:    avg,
		AverageGIROK:  ok,
		OccupancyRate: planning.Rate(residents, planning.PeriodDaily, today, s.facility.TotalRooms),
		PeakAlert:     planning.PeakMonthAlert(residents, year, month, s.facility.TotalRooms),
		TotalRooms:    s.facility.TotalRooms,
	}, nil
}

// Forecast projects the daily occupancy series over the configured horizon
// and reports the first upcoming low-occupancy window, if any.
func (s *dashboardService) Forecast(ctx context.Context) (*ForecastResponse, error) {
	residents := s.store.Snapshot()
	today := s.now()

	points := planning.DailySeries(residents, today, s.facility.ForecastDays, s.facility.TotalRooms)
	resp := &ForecastResponse{Points: points}
	if win, ok := planning.LowOccupancyWindow(points, today); ok {
		resp.LowWindow = &win
	}
	return resp, nil
}

// Planning renders one window of the planning grid: the day axis plus a row
// per room with the clipped stay bars.
func (s *dashboardService) Planning(ctx context.Context, req PlanningRequest) (*PlanningResponse, error) {
	view := planning.ViewMonth
	if req.View != "" {
		v, err := planning.ParseView(req.View)
		if err != nil {
			return nil, err
		}
		view = v
	}

	anchorStr := req.Anchor
	if anchorStr == "" {
		anchorStr = s.facility.SeasonStart
	}
	anchor, err := planning.ParseDate(anchorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor date %q: %w", anchorStr, err)
	}

	residents := s.store.Snapshot()
	if req.Search != "" {
		filtered := make([]domain.Resident, 0, len(residents))
		for _, r := range residents {
			if matchesSearch(r, req.Search) {
				filtered = append(filtered, r)
			}
		}
		residents = filtered
	}

	cal := planning.NewCalendar(anchor)
	cal.SetView(view)

	days := cal.Days()
	dayStrs := make([]string, len(days))
	labels := make([]string, len(days))
	for i, d := range days {
		dayStrs[i] = planning.FormatDate(d)
		labels[i] = planning.DayLabel(d)
	}

	rooms := planning.BuildRooms(residents, s.facility.TotalRooms)
	out := make([]PlanningRoom, 0, len(rooms))
	for _, room := range rooms {
		row := PlanningRoom{Number: room.Number, Name: room.Name, Stays: []planning.StayLayout{}}
		for _, stay := range room.Stays {
			if layout, ok := cal.Layout(stay); ok {
				row.Stays = append(row.Stays, layout)
			}
		}
		out = append(out, row)
	}

	return &PlanningResponse{
		View:      view.String(),
		Title:     cal.Title(),
		Anchor:    planning.FormatDate(cal.Anchor()),
		Days:      dayStrs,
		DayLabels: labels,
		Rooms:     out,
	}, nil
}
