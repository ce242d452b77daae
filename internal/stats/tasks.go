package stats

import (
	"time"

	"studyhub/internal/model"
)

// PriorityCount counts tasks of one priority.
type PriorityCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// TaskStats summarises a user's study tasks.
type TaskStats struct {
	TotalTasks     int                      `json:"totalTasks"`
	CompletedTasks int                      `json:"completedTasks"`
	PendingTasks   int                      `json:"pendingTasks"`
	OverdueTasks   int                      `json:"overdueTasks"`
	CompletionRate float64                  `json:"completionRate"`
	PriorityStats  map[string]PriorityCount `json:"priorityStats"`
}

// ComputeTaskStats counts tasks by status and priority. A task is overdue when
// it is not completed and its deadline is before now.
func ComputeTaskStats(tasks []model.StudyTask, now time.Time) TaskStats {
	st := TaskStats{PriorityStats: make(map[string]PriorityCount)}
	for _, t := range tasks {
		st.TotalTasks++
		pc := st.PriorityStats[string(t.Priority)]
		pc.Total++
		if t.Completed {
			st.CompletedTasks++
			pc.Completed++
		} else if t.Deadline.Before(now) {
			st.OverdueTasks++
		}
		st.PriorityStats[string(t.Priority)] = pc
	}
	st.PendingTasks = st.TotalTasks - st.CompletedTasks
	if st.TotalTasks > 0 {
		st.CompletionRate = float64(st.CompletedTasks) / float64(st.TotalTasks) * 100
	}
	return st
}
