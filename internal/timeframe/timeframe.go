// Package timeframe resolves period keywords into calendar date ranges for
// spending comparisons.
package timeframe

import (
	"fmt"
	"time"

	"github.com/joshsymonds/saffron/internal/common"
)

// Period is a named calendar granularity used for range comparisons.
type Period string

// Supported periods.
const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod validates a period keyword from a request.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("%w: unknown period %q", common.ErrValidation, s)
}

// Range is an inclusive calendar date range. Start and End are normalized
// to midnight in the reference time's location.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range (date granularity).
func (r Range) Contains(t time.Time) bool {
	d := midnight(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Current returns the range for the period containing now. Weeks start on
// Monday; months, quarters and years use calendar lengths.
func Current(p Period, now time.Time) Range {
	today := midnight(now)

	switch p {
	case PeriodWeek:
		start := today.AddDate(0, 0, -mondayOffset(today))
		return Range{Start: start, End: start.AddDate(0, 0, 6)}
	case PeriodQuarter:
		qm := time.Month((int(today.Month())-1)/3*3 + 1)
		start := time.Date(today.Year(), qm, 1, 0, 0, 0, 0, today.Location())
		return Range{Start: start, End: start.AddDate(0, 3, -1)}
	case PeriodYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Range{Start: start, End: start.AddDate(1, 0, -1)}
	default: // month
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{Start: start, End: start.AddDate(0, 1, -1)}
	}
}

// Previous returns the period immediately preceding Current(p, now).
// The ranges are contiguous: previous.End is exactly one day before
// current.Start.
func Previous(p Period, now time.Time) Range {
	cur := Current(p, now)
	end := cur.Start.AddDate(0, 0, -1)

	switch p {
	case PeriodWeek:
		return Range{Start: cur.Start.AddDate(0, 0, -7), End: end}
	case PeriodQuarter:
		return Range{Start: cur.Start.AddDate(0, -3, 0), End: end}
	case PeriodYear:
		return Range{Start: cur.Start.AddDate(-1, 0, 0), End: end}
	default: // month
		return Range{Start: cur.Start.AddDate(0, -1, 0), End: end}
	}
}

// MonthEnd returns the last day of now's month at midnight.
func MonthEnd(now time.Time) time.Time {
	return Current(PeriodMonth, now).End
}

// DaysElapsedInMonth counts the days of now's month up to and including today.
func DaysElapsedInMonth(now time.Time) int {
	return now.Day()
}

// DaysRemainingInMonth counts the days of now's month after today.
func DaysRemainingInMonth(now time.Time) int {
	return MonthEnd(now).Day() - now.Day()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOffset returns the number of days since the most recent Monday.
func mondayOffset(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
