package timeframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Period
		wantErr bool
	}{
		{name: "week", input: "week", want: PeriodWeek},
		{name: "month", input: "month", want: PeriodMonth},
		{name: "quarter", input: "quarter", want: PeriodQuarter},
		{name: "year", input: "year", want: PeriodYear},
		{name: "unknown keyword", input: "fortnight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "week aligned to monday",
			period:    PeriodWeek,
			now:       date(2025, time.June, 18), // Wednesday
			wantStart: date(2025, time.June, 16),
			wantEnd:   date(2025, time.June, 22),
		},
		{
			name:      "week when today is sunday",
			period:    PeriodWeek,
			now:       date(2025, time.June, 22),
			wantStart: date(2025, time.June, 16),
			wantEnd:   date(2025, time.June, 22),
		},
		{
			name:      "month uses calendar length",
			period:    PeriodMonth,
			now:       date(2025, time.February, 10),
			wantStart: date(2025, time.February, 1),
			wantEnd:   date(2025, time.February, 28),
		},
		{
			name:      "leap february",
			period:    PeriodMonth,
			now:       date(2024, time.February, 29),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "quarter",
			period:    PeriodQuarter,
			now:       date(2025, time.May, 5),
			wantStart: date(2025, time.April, 1),
			wantEnd:   date(2025, time.June, 30),
		},
		{
			name:      "year",
			period:    PeriodYear,
			now:       date(2025, time.July, 4),
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Current(tt.period, tt.now)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
		})
	}
}

func TestPrevious_MonthAcrossYearBoundary(t *testing.T) {
	now := date(2025, time.January, 15)

	cur := Current(PeriodMonth, now)
	prev := Previous(PeriodMonth, now)

	assert.Equal(t, date(2025, time.January, 1), cur.Start)
	assert.Equal(t, date(2025, time.January, 31), cur.End)
	assert.Equal(t, date(2024, time.December, 1), prev.Start)
	assert.Equal(t, date(2024, time.December, 31), prev.End)
}

func TestPrevious_AdjacentToCurrentForAllPeriods(t *testing.T) {
	nows := []time.Time{
		date(2025, time.January, 15),
		date(2025, time.January, 1),
		date(2024, time.February, 29),
		date(2025, time.December, 31),
		date(2025, time.June, 18),
	}

	for _, p := range []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear} {
		for _, now := range nows {
			cur := Current(p, now)
			prev := Previous(p, now)

			assert.Equal(t, cur.Start.AddDate(0, 0, -1), prev.End,
				"period %s at %s: previous must end the day before current starts", p, now)
			assert.False(t, prev.Start.After(prev.End),
				"period %s at %s: range inverted", p, now)
			assert.True(t, cur.Contains(now),
				"period %s at %s: now outside current range", p, now)
			assert.False(t, prev.Contains(now),
				"period %s at %s: now inside previous range", p, now)
		}
	}
}

func TestDaysElapsedAndRemaining(t *testing.T) {
	now := date(2025, time.June, 18)

	assert.Equal(t, 18, DaysElapsedInMonth(now))
	assert.Equal(t, 12, DaysRemainingInMonth(now))
	assert.Equal(t, 30, DaysElapsedInMonth(now)+DaysRemainingInMonth(now))

	lastDay := date(2025, time.June, 30)
	assert.Equal(t, 0, DaysRemainingInMonth(lastDay))
}
