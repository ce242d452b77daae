package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
)

// Wednesday.
var now = time.Date(2024, time.May, 15, 10, 30, 0, 0, time.UTC)

func day(month time.Month, d, hour int) time.Time {
	return time.Date(2024, month, d, hour, 0, 0, 0, time.UTC)
}

func TestParseWindow(t *testing.T) {
	assert.Equal(t, ThisWeek, ParseWindow("thisWeek"))
	assert.Equal(t, Lifetime, ParseWindow(""))
	assert.Equal(t, Lifetime, ParseWindow("lastDecade"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		w     Window
		now   time.Time
		start time.Time
		end   time.Time
	}{
		{"today", Today, now, day(time.May, 15, 0), time.Date(2024, time.May, 15, 23, 59, 59, 0, time.UTC)},
		{"yesterday", Yesterday, now, day(time.May, 14, 0), time.Date(2024, time.May, 14, 23, 59, 59, 0, time.UTC)},
		{"week from wednesday", ThisWeek, now, day(time.May, 13, 0), time.Date(2024, time.May, 19, 23, 59, 59, 0, time.UTC)},
		{"week from sunday", ThisWeek, day(time.May, 19, 8), day(time.May, 13, 0), time.Date(2024, time.May, 19, 23, 59, 59, 0, time.UTC)},
		{"week from monday", ThisWeek, day(time.May, 13, 8), day(time.May, 13, 0), time.Date(2024, time.May, 19, 23, 59, 59, 0, time.UTC)},
		{"month", ThisMonth, now, day(time.May, 1, 0), time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC)},
		{"leap february", ThisMonth, day(time.February, 10, 0), day(time.February, 1, 0), time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)},
		{"year", ThisYear, now, day(time.January, 1, 0), time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Resolve(tt.w, tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
		})
	}

	_, ok := Resolve(Lifetime, now)
	assert.False(t, ok)
}

func TestRangeDays(t *testing.T) {
	r, _ := Resolve(ThisWeek, now)
	days := r.Days()
	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
}

func sessionsAt(dates ...time.Time) []model.StudySession {
	out := make([]model.StudySession, len(dates))
	for i, d := range dates {
		out[i] = model.StudySession{Subject: "Math", Duration: 30, Date: d}
	}
	return out
}

func TestFilterByPeriodToday(t *testing.T) {
	items := sessionsAt(
		day(time.May, 15, 0),
		day(time.May, 15, 9),
		day(time.May, 15, 11), // later today, after now
		day(time.May, 14, 23),
		day(time.May, 16, 9),
	)

	got := FilterByPeriod(items, Today, now)
	require.Len(t, got, 2)
	assert.Equal(t, day(time.May, 15, 0), got[0].Date)
	assert.Equal(t, day(time.May, 15, 9), got[1].Date)
}

func TestFilterByPeriodYesterday(t *testing.T) {
	items := sessionsAt(day(time.May, 14, 0), day(time.May, 14, 23), day(time.May, 15, 0), day(time.May, 13, 23))

	got := FilterByPeriod(items, Yesterday, now)
	assert.Len(t, got, 2)
}

func TestFilterByPeriodLifetimeIsIdentity(t *testing.T) {
	items := sessionsAt(day(time.January, 1, 0), day(time.May, 15, 9), day(time.December, 31, 0))

	once := FilterByPeriod(items, Lifetime, now)
	assert.Equal(t, items, once)
	assert.Equal(t, once, FilterByPeriod(once, Lifetime, now))
}

func TestFilterByPeriodIdempotent(t *testing.T) {
	items := sessionsAt(day(time.May, 1, 0), day(time.May, 13, 5), day(time.April, 30, 23), day(time.May, 15, 10))

	for _, w := range []Window{Today, Yesterday, ThisWeek, ThisMonth, ThisYear} {
		once := FilterByPeriod(items, w, now)
		assert.Equal(t, once, FilterByPeriod(once, w, now), string(w))
	}
}
