package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
)

func class(subject, day, clock string) model.ClassSession {
	c := model.ClassSession{Subject: subject, Day: day, Time: clock}
	c.ID = uuid.New()
	return c
}

// 2024-05-13 is a Monday.
func at(weekdayOffset, hour, minute int) time.Time {
	return time.Date(2024, time.May, 13+weekdayOffset, hour, minute, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:5"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestDayIndex(t *testing.T) {
	assert.Equal(t, 0, DayIndex("Saturday"))
	assert.Equal(t, 2, DayIndex("monday"))
	assert.Equal(t, 6, DayIndex("Friday"))
	assert.Equal(t, -1, DayIndex("Someday"))
	assert.Equal(t, 0, weekdayIndex(time.Saturday))
	assert.Equal(t, 1, weekdayIndex(time.Sunday))
	assert.Equal(t, 6, weekdayIndex(time.Friday))
}

func TestNextTomorrow(t *testing.T) {
	classes := []model.ClassSession{class("Math", "Monday", "09:00"), class("Physics", "Wednesday", "14:00")}

	next, ok := Next(classes, at(1, 10, 0)) // Tuesday 10:00

	require.True(t, ok)
	assert.Equal(t, "Physics", next.Class.Subject)
	assert.Equal(t, "Tomorrow", next.Label)
	assert.Equal(t, 1, next.DaysAhead)
}

func TestNextToday(t *testing.T) {
	classes := []model.ClassSession{class("Physics", "Wednesday", "14:00"), class("Math", "Monday", "09:00")}

	next, ok := Next(classes, at(0, 8, 0)) // Monday 08:00

	require.True(t, ok)
	assert.Equal(t, "Math", next.Class.Subject)
	assert.Equal(t, "Today", next.Label)
}

func TestNextLaterInWeekUsesDayName(t *testing.T) {
	classes := []model.ClassSession{class("Math", "Monday", "09:00"), class("Art", "Thursday", "11:15")}

	next, ok := Next(classes, at(0, 10, 0)) // Monday 10:00, Math already started

	require.True(t, ok)
	assert.Equal(t, "Art", next.Class.Subject)
	assert.Equal(t, "Thursday", next.Label)
	assert.Equal(t, 3, next.DaysAhead)
}

func TestNextWrapsToNextWeek(t *testing.T) {
	classes := []model.ClassSession{class("Math", "Monday", "09:00"), class("Art", "Sunday", "11:00")}

	next, ok := Next(classes, at(4, 12, 0)) // Friday 12:00, last day of the week

	require.True(t, ok)
	assert.Equal(t, "Art", next.Class.Subject)
	assert.Equal(t, "Sunday", next.Label)
	assert.Equal(t, 2, next.DaysAhead)
}

func TestNextSameTimeIsNotUpcoming(t *testing.T) {
	classes := []model.ClassSession{class("Math", "Monday", "09:00")}

	next, ok := Next(classes, at(0, 9, 0))

	require.True(t, ok)
	assert.Equal(t, "Monday", next.Label)
	assert.Equal(t, 7, next.DaysAhead)
}

func TestNextEmpty(t *testing.T) {
	_, ok := Next(nil, at(0, 9, 0))
	assert.False(t, ok)
}

func TestSort(t *testing.T) {
	classes := []model.ClassSession{
		class("C", "Monday", "13:00"),
		class("X", "Funday", "08:00"),
		class("A", "Saturday", "10:00"),
		class("B", "Monday", "08:30"),
	}

	Sort(classes)

	got := []string{classes[0].Subject, classes[1].Subject, classes[2].Subject, classes[3].Subject}
	assert.Equal(t, []string{"A", "B", "C", "X"}, got)
}

func TestFindConflict(t *testing.T) {
	existing := class("Math", "Monday", "09:00")
	classes := []model.ClassSession{existing, class("Art", "Tuesday", "09:00")}

	conflict := FindConflict(classes, "Monday", "09:00", uuid.Nil)
	require.NotNil(t, conflict)
	assert.Equal(t, existing.ID, conflict.ID)

	assert.Nil(t, FindConflict(classes, "Monday", "09:00", existing.ID), "editing the same class is not a conflict")
	assert.Nil(t, FindConflict(classes, "Monday", "10:00", uuid.Nil))
	assert.Nil(t, FindConflict(classes, "Wednesday", "09:00", uuid.Nil))
}
