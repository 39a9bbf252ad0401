package planning

import (
	"fmt"
	"time"
)

// View calendar rendering granularity.
type View int

const (
	ViewWeek View = iota
	ViewMonth
	ViewYear
)

func (v View) String() string {
	switch v {
	case ViewWeek:
		return "week"
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	}
	return "unknown"
}

// ParseView maps an API query value to a View.
func ParseView(s string) (View, error) {
	switch s {
	case "week":
		return ViewWeek, nil
	case "month":
		return ViewMonth, nil
	case "year":
		return ViewYear, nil
	}
	return 0, fmt.Errorf("invalid view %q", s)
}

// Display labels match the front end, which renders in French.
var monthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

var dayNames = [7]string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."}

// DayLabel returns the short French weekday label for a date.
func DayLabel(t time.Time) string {
	return dayNames[(int(t.Weekday())+6)%7]
}

// Calendar the planning view state machine: a granularity plus a navigation
// anchor. Switching granularity keeps the anchor; Next/Previous shift it by
// one unit of the current granularity.
type Calendar struct {
	view   View
	anchor time.Time
}

// NewCalendar opens on month view at the given anchor, typically the first
// day of the current operating season.
func NewCalendar(anchor time.Time) *Calendar {
	return &Calendar{view: ViewMonth, anchor: Normalize(anchor)}
}

func (c *Calendar) View() View        { return c.view }
func (c *Calendar) Anchor() time.Time { return c.anchor }

// SetView changes the granularity without moving the anchor.
func (c *Calendar) SetView(v View) { c.view = v }

// Next advances the anchor by one week, month or year.
func (c *Calendar) Next() {
	switch c.view {
	case ViewWeek:
		c.anchor = c.anchor.AddDate(0, 0, 7)
	case ViewYear:
		c.anchor = c.anchor.AddDate(1, 0, 0)
	default:
		c.anchor = c.anchor.AddDate(0, 1, 0)
	}
}

// Previous moves the anchor back by one week, month or year.
func (c *Calendar) Previous() {
	switch c.view {
	case ViewWeek:
		c.anchor = c.anchor.AddDate(0, 0, -7)
	case ViewYear:
		c.anchor = c.anchor.AddDate(-1, 0, 0)
	default:
		c.anchor = c.anchor.AddDate(0, -1, 0)
	}
}

// Days returns the ordered calendar days of the visible window: the
// Monday-Sunday week, every day of the anchor's month, or every day of the
// anchor's year.
func (c *Calendar) Days() []time.Time {
	var start, end time.Time
	switch c.view {
	case ViewWeek:
		start, end = WeekBounds(c.anchor)
	case ViewYear:
		start, end = YearBounds(c.anchor)
	default:
		start, end = MonthBounds(c.anchor)
	}
	n := DayDiff(start, end) + 1
	days := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Window returns the first and last visible day.
func (c *Calendar) Window() (time.Time, time.Time) {
	switch c.view {
	case ViewWeek:
		return WeekBounds(c.anchor)
	case ViewYear:
		return YearBounds(c.anchor)
	default:
		return MonthBounds(c.anchor)
	}
}

// Title renders the human-readable window title: "Juillet 2025" for a month,
// "7 Juillet - 13 Juillet 2025" for a week (the start year only appears when
// the week straddles New Year), "2025" for a year.
func (c *Calendar) Title() string {
	switch c.view {
	case ViewWeek:
		start, end := WeekBounds(c.anchor)
		title := fmt.Sprintf("%d %s", start.Day(), monthNames[start.Month()-1])
		if start.Year() != end.Year() {
			title += fmt.Sprintf(" %d", start.Year())
		}
		return title + fmt.Sprintf(" - %d %s %d", end.Day(), monthNames[end.Month()-1], end.Year())
	case ViewYear:
		return fmt.Sprintf("%d", c.anchor.Year())
	default:
		return fmt.Sprintf("%s %d", monthNames[c.anchor.Month()-1], c.anchor.Year())
	}
}

// StayLayout the geometry of one stay bar inside the visible window, as
// percentages of the window width.
type StayLayout struct {
	StayID        int     `json:"stayId"`
	ResidentID    int     `json:"residentId"`
	OffsetPercent float64 `json:"offsetPercent"`
	WidthPercent  float64 `json:"widthPercent"`
}

// Layout clips a stay to the visible window and converts it to bar geometry.
// The bar runs from the (clipped) arrival day to the left edge of the
// departure day: the departure day itself carries no width, matching the
// checkout-morning convention of the front end. Stays entirely outside the
// window, or whose clipped duration is not positive, are omitted.
func (c *Calendar) Layout(s Stay) (StayLayout, bool) {
	days := c.Days()
	first := days[0]
	last := days[len(days)-1]
	n := len(days)

	if !s.End.After(first) || s.Start.After(last) {
		return StayLayout{}, false
	}

	effStart := s.Start
	if effStart.Before(first) {
		effStart = first
	}
	effEnd := s.End
	if effEnd.After(last) {
		effEnd = last
	}

	duration := DayDiff(effStart, effEnd)
	if duration <= 0 {
		return StayLayout{}, false
	}
	offset := DayDiff(first, effStart)

	return StayLayout{
		StayID:        s.ID,
		ResidentID:    s.ResidentID,
		OffsetPercent: float64(offset) / float64(n) * 100,
		WidthPercent:  float64(duration) / float64(n) * 100,
	}, true
}
