// Package schedule answers questions about a user's weekly class timetable.
// The week runs Saturday through Friday.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyhub/internal/model"
)

// DayIndex returns the position of a weekday name in the Saturday-first week, or -1.
func DayIndex(day string) int {
	for i, d := range model.Weekdays {
		if strings.EqualFold(d, day) {
			return i
		}
	}
	return -1
}

// weekdayIndex converts a time.Weekday (Sunday=0) to the Saturday-first index.
func weekdayIndex(wd time.Weekday) int {
	return (int(wd) + 1) % 7
}

// ParseClock parses HH:MM into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

type slot struct {
	class   model.ClassSession
	day     int
	minutes int
}

func slots(classes []model.ClassSession) []slot {
	out := make([]slot, 0, len(classes))
	for _, c := range classes {
		day := DayIndex(c.Day)
		minutes, err := ParseClock(c.Time)
		if day < 0 || err != nil {
			continue
		}
		out = append(out, slot{class: c, day: day, minutes: minutes})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].day != out[j].day {
			return out[i].day < out[j].day
		}
		return out[i].minutes < out[j].minutes
	})
	return out
}

// Sort orders classes by weekday (Saturday first) then start time.
// Entries with an unknown day or malformed time go last, in their original order.
func Sort(classes []model.ClassSession) {
	key := func(c model.ClassSession) (int, int) {
		day := DayIndex(c.Day)
		minutes, err := ParseClock(c.Time)
		if day < 0 || err != nil {
			return 7, 0
		}
		return day, minutes
	}
	sort.SliceStable(classes, func(i, j int) bool {
		di, mi := key(classes[i])
		dj, mj := key(classes[j])
		if di != dj {
			return di < dj
		}
		return mi < mj
	})
}

// Upcoming is the result of a next-class lookup.
type Upcoming struct {
	Class     model.ClassSession `json:"class"`
	Label     string             `json:"label"`
	DaysAhead int                `json:"daysAhead"`
}

// Next finds the first class after now. A class later today is labelled
// "Today", one on the following day "Tomorrow", anything else by its day name.
// When nothing remains this week it wraps to the earliest class of next week.
func Next(classes []model.ClassSession, now time.Time) (Upcoming, bool) {
	sorted := slots(classes)
	if len(sorted) == 0 {
		return Upcoming{}, false
	}

	today := weekdayIndex(now.Weekday())
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, s := range sorted {
		if s.day == today && s.minutes > nowMinutes {
			return upcoming(s, 0), true
		}
	}
	for _, s := range sorted {
		if s.day > today {
			return upcoming(s, s.day-today), true
		}
	}
	first := sorted[0]
	return upcoming(first, first.day-today+7), true
}

func upcoming(s slot, daysAhead int) Upcoming {
	label := s.class.Day
	switch daysAhead {
	case 0:
		label = "Today"
	case 1:
		label = "Tomorrow"
	}
	return Upcoming{Class: s.class, Label: label, DaysAhead: daysAhead}
}

// FindConflict returns the class already occupying (day, time), ignoring the
// class identified by exclude. This is the edit-form pre-check; create and
// update do not enforce it.
func FindConflict(classes []model.ClassSession, day, clock string, exclude uuid.UUID) *model.ClassSession {
	want, err := ParseClock(clock)
	if err != nil {
		return nil
	}
	for i := range classes {
		c := &classes[i]
		if c.ID == exclude && exclude != uuid.Nil {
			continue
		}
		if !strings.EqualFold(c.Day, day) {
			continue
		}
		if minutes, err := ParseClock(c.Time); err == nil && minutes == want {
			return c
		}
	}
	return nil
}
