package planning

import "fmt"

// Period aggregation granularity, anchored at "today" for statistics and at a
// navigable date for the calendar view.
type Period int

const (
	PeriodDaily Period = iota
	PeriodWeekly
	PeriodMonthly
	PeriodYearly
)

func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "daily"
	case PeriodWeekly:
		return "weekly"
	case PeriodMonthly:
		return "monthly"
	case PeriodYearly:
		return "yearly"
	}
	return "unknown"
}

// ParsePeriod maps an API query value to a Period.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "daily":
		return PeriodDaily, nil
	case "weekly":
		return PeriodWeekly, nil
	case "monthly":
		return PeriodMonthly, nil
	case "yearly":
		return PeriodYearly, nil
	}
	return 0, fmt.Errorf("invalid period %q", s)
}
