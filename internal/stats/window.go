// Package stats holds the pure projections the API derives from a user's rows:
// time windows, period filters, chart series and summary aggregates.
// Nothing here touches the store; callers load rows and pass the current time.
package stats

import "time"

// Window selects a calendar period relative to now.
type Window string

const (
	Today     Window = "today"
	Yesterday Window = "yesterday"
	ThisWeek  Window = "thisWeek"
	ThisMonth Window = "thisMonth"
	ThisYear  Window = "thisYear"
	Lifetime  Window = "lifetime"
)

// ParseWindow maps a query value to a Window. Empty or unknown values mean Lifetime.
func ParseWindow(s string) Window {
	switch w := Window(s); w {
	case Today, Yesterday, ThisWeek, ThisMonth, ThisYear, Lifetime:
		return w
	}
	return Lifetime
}

// Range is a span of whole calendar days. End is 23:59:59 of the last day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on one of the range's calendar days.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.endExclusive())
}

// Days enumerates the midnight of every calendar day in the range, in order.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := startOfDay(r.Start); !d.After(r.End); d = addDays(d, 1) {
		days = append(days, d)
	}
	return days
}

func (r Range) endExclusive() time.Time {
	return addDays(startOfDay(r.End), 1)
}

// Resolve returns the calendar range of w in now's location.
// Lifetime has no fixed range and reports ok=false.
func Resolve(w Window, now time.Time) (r Range, ok bool) {
	today := startOfDay(now)
	switch w {
	case Today:
		return Range{Start: today, End: endOfDay(today)}, true
	case Yesterday:
		y := addDays(today, -1)
		return Range{Start: y, End: endOfDay(y)}, true
	case ThisWeek:
		offset := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			offset = 6
		}
		monday := addDays(today, -offset)
		return Range{Start: monday, End: endOfDay(addDays(monday, 6))}, true
	case ThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return Range{Start: first, End: endOfDay(last)}, true
	case ThisYear:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return Range{Start: first, End: endOfDay(last)}, true
	}
	return Range{}, false
}

// Dated is a row with a calendar date.
type Dated interface {
	EntryDate() time.Time
}

// InPeriod reports whether date lies in w and is not after now.
// Lifetime accepts every date.
func InPeriod(date time.Time, w Window, now time.Time) bool {
	r, ok := Resolve(w, now)
	if !ok {
		return true
	}
	return r.Contains(date) && !date.After(now)
}

// FilterByPeriod keeps the items whose date is in w, preserving order.
// Lifetime returns items unchanged.
func FilterByPeriod[T Dated](items []T, w Window, now time.Time) []T {
	if _, ok := Resolve(w, now); !ok {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if InPeriod(item.EntryDate(), w, now) {
			out = append(out, item)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// addDays moves by calendar days so DST shifts never skip or repeat a day.
func addDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
