package stats

import (
	"sort"
	"time"

	"studyhub/internal/model"
)

// SubjectStat totals the sessions of one subject.
type SubjectStat struct {
	Subject      string `json:"subject"`
	TotalMinutes int    `json:"totalMinutes"`
	SessionCount int    `json:"sessionCount"`
}

// DailyStat totals one calendar day.
type DailyStat struct {
	Date         time.Time `json:"date"`
	TotalMinutes int       `json:"totalMinutes"`
}

// SessionStats summarises study sessions for a window plus a trailing week.
type SessionStats struct {
	TotalMinutes int           `json:"totalMinutes"`
	SessionCount int           `json:"sessionCount"`
	SubjectStats []SubjectStat `json:"subjectStats"`
	DailyStats   []DailyStat   `json:"dailyStats"`
}

// dailyStatDays is the length of the trailing daily series.
const dailyStatDays = 7

// ComputeSessionStats totals the sessions that fall in w. The daily series
// always covers the seven days ending today, whatever the window.
func ComputeSessionStats(sessions []model.StudySession, w Window, now time.Time) SessionStats {
	r, bounded := Resolve(w, now)

	bySubject := make(map[string]*SubjectStat)
	st := SessionStats{SubjectStats: []SubjectStat{}}
	for _, s := range sessions {
		if bounded && !r.Contains(s.Date) {
			continue
		}
		st.TotalMinutes += s.Duration
		st.SessionCount++
		ss, ok := bySubject[s.Subject]
		if !ok {
			ss = &SubjectStat{Subject: s.Subject}
			bySubject[s.Subject] = ss
		}
		ss.TotalMinutes += s.Duration
		ss.SessionCount++
	}
	for _, ss := range bySubject {
		st.SubjectStats = append(st.SubjectStats, *ss)
	}
	sort.Slice(st.SubjectStats, func(i, j int) bool {
		a, b := st.SubjectStats[i], st.SubjectStats[j]
		if a.TotalMinutes != b.TotalMinutes {
			return a.TotalMinutes > b.TotalMinutes
		}
		return a.Subject < b.Subject
	})

	today := startOfDay(now)
	week := Range{Start: addDays(today, -(dailyStatDays - 1)), End: endOfDay(today)}
	days := week.Days()
	st.DailyStats = make([]DailyStat, len(days))
	index := make(map[string]int, len(days))
	for i, d := range days {
		st.DailyStats[i] = DailyStat{Date: d}
		index[d.Format(dayKey)] = i
	}
	for _, s := range sessions {
		if i, ok := index[s.Date.In(now.Location()).Format(dayKey)]; ok {
			st.DailyStats[i].TotalMinutes += s.Duration
		}
	}
	return st
}
