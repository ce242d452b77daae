package stats

import (
	"sort"
	"time"

	"studyhub/internal/model"
)

const dayKey = "2006-01-02"

// ChartBucket is one x-axis point: a calendar day with hours studied per subject.
// Hours are keyed by subject name under their own key, so any subject name is safe.
type ChartBucket struct {
	Day   time.Time          `json:"day"`
	Label string             `json:"date"`
	Hours map[string]float64 `json:"hours"`
}

// StudyChart is a multi-series time chart with one series per subject.
type StudyChart struct {
	ChartData []ChartBucket `json:"chartData"`
	Subjects  []string      `json:"subjects"`
}

// AggregateStudyTime buckets sessions by calendar day over window w and sums hours per subject.
//
// Every day of the window gets a bucket, and every bucket carries every subject
// seen anywhere in sessions, so series stay stable when the window changes.
// Sessions on days outside the window are dropped.
func AggregateStudyTime(sessions []model.StudySession, w Window, now time.Time) StudyChart {
	if len(sessions) == 0 {
		return StudyChart{ChartData: []ChartBucket{}, Subjects: []string{}}
	}

	loc := now.Location()
	r, ok := Resolve(w, now)
	if !ok {
		r = LifetimeRange(sessions, now)
	}

	subjects := distinctSubjects(sessions)
	days := r.Days()
	buckets := make([]ChartBucket, len(days))
	index := make(map[string]int, len(days))
	for i, day := range days {
		hours := make(map[string]float64, len(subjects))
		for _, s := range subjects {
			hours[s] = 0
		}
		buckets[i] = ChartBucket{Day: day, Label: dayLabel(day, w), Hours: hours}
		index[day.Format(dayKey)] = i
	}

	for _, s := range sessions {
		i, ok := index[s.Date.In(loc).Format(dayKey)]
		if !ok {
			continue
		}
		buckets[i].Hours[s.Subject] += float64(s.Duration) / 60
	}

	return StudyChart{ChartData: buckets, Subjects: subjects}
}

// LifetimeRange spans the earliest to the latest session day.
// Without sessions it falls back to the seven days ending today.
func LifetimeRange(sessions []model.StudySession, now time.Time) Range {
	loc := now.Location()
	if len(sessions) == 0 {
		today := startOfDay(now)
		return Range{Start: addDays(today, -6), End: endOfDay(today)}
	}
	first, last := sessions[0].Date.In(loc), sessions[0].Date.In(loc)
	for _, s := range sessions[1:] {
		d := s.Date.In(loc)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	return Range{Start: startOfDay(first), End: endOfDay(last)}
}

func distinctSubjects(sessions []model.StudySession) []string {
	seen := make(map[string]struct{})
	subjects := make([]string, 0)
	for _, s := range sessions {
		if _, ok := seen[s.Subject]; ok {
			continue
		}
		seen[s.Subject] = struct{}{}
		subjects = append(subjects, s.Subject)
	}
	sort.Strings(subjects)
	return subjects
}

func dayLabel(day time.Time, w Window) string {
	switch w {
	case ThisWeek:
		return day.Format("Mon, Jan 2")
	case ThisMonth:
		return day.Format("Jan 2")
	case ThisYear:
		return day.Format("Jan 2006")
	}
	return day.Format("Jan 2, 2006")
}
