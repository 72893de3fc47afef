package models

import (
	"errors"
	"time"
)

// ErrInvalidMonth is returned when a month selector does not parse as YYYY-MM.
var ErrInvalidMonth = errors.New("invalid month selector, expected YYYY-MM")

// MonthWindow is the UTC calendar-month interval used to scope monthly
// reports: first day 00:00:00 through last day 23:59:59, inclusive.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// CurrentMonthWindow returns the window covering the month containing now.
func CurrentMonthWindow(now time.Time) MonthWindow {
	return windowFor(now.UTC())
}

// ParseMonthWindow resolves an optional YYYY-MM selector. An empty selector
// resolves to the month containing now.
func ParseMonthWindow(selector string, now time.Time) (MonthWindow, error) {
	if selector == "" {
		return CurrentMonthWindow(now), nil
	}
	t, err := time.ParseInLocation("2006-01", selector, time.UTC)
	if err != nil {
		return MonthWindow{}, ErrInvalidMonth
	}
	return windowFor(t), nil
}

func windowFor(t time.Time) MonthWindow {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Second),
	}
}

// Label returns the resolved YYYY-MM label for the window.
func (w MonthWindow) Label() string {
	return w.Start.Format("2006-01")
}
