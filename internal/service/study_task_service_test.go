package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
)

func TestStudyTaskService_ToggleTwice(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStudyTaskService(repos.StudyTasks, fixedClock)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.Create(ctx, userID, &model.StudyTask{Title: "Read chapter 3", Subject: "Physics", Deadline: fixedNow.Add(48 * time.Hour)})
	require.NoError(t, err)
	require.False(t, task.Completed)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, 1.0, task.EstimatedHours)

	toggled, err := svc.Toggle(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	require.NotNil(t, toggled.CompletedAt)
	assert.True(t, toggled.CompletedAt.Equal(fixedNow))

	back, err := svc.Toggle(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)
	assert.Nil(t, back.CompletedAt)
}

func TestStudyTaskService_OtherUsersTasksAreNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStudyTaskService(repos.StudyTasks, fixedClock)
	ctx := context.Background()
	owner, intruder := uuid.New(), uuid.New()

	task, err := svc.Create(ctx, owner, &model.StudyTask{Title: "Essay", Subject: "History", Deadline: fixedNow})
	require.NoError(t, err)

	var notFound *apperrors.NotFoundError

	_, err = svc.Toggle(ctx, intruder, task.ID)
	assert.ErrorAs(t, err, &notFound)

	_, err = svc.Update(ctx, intruder, task.ID, &model.StudyTask{Title: "Hijacked", Subject: "History"})
	assert.ErrorAs(t, err, &notFound)

	err = svc.Delete(ctx, intruder, task.ID)
	assert.ErrorAs(t, err, &notFound)

	tasks, err := svc.List(ctx, intruder, TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	tasks, err = svc.List(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Essay", tasks[0].Title)
}

func TestStudyTaskService_DeleteMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStudyTaskService(repos.StudyTasks, fixedClock)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Study task not found", err.Error())
}

func TestStudyTaskService_ListOrderAndFilters(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStudyTaskService(repos.StudyTasks, fixedClock)
	ctx := context.Background()
	userID := uuid.New()

	seed := []model.StudyTask{
		{Title: "low later", Subject: "Math", Priority: model.PriorityLow, Deadline: fixedNow.Add(72 * time.Hour)},
		{Title: "high later", Subject: "Math", Priority: model.PriorityHigh, Deadline: fixedNow.Add(48 * time.Hour)},
		{Title: "high sooner", Subject: "Physics", Priority: model.PriorityHigh, Deadline: fixedNow.Add(24 * time.Hour)},
		{Title: "medium overdue", Subject: "Physics", Priority: model.PriorityMedium, Deadline: fixedNow.Add(-24 * time.Hour)},
	}
	for i := range seed {
		_, err := svc.Create(ctx, userID, &seed[i])
		require.NoError(t, err)
	}

	titles := func(tasks []model.StudyTask) []string {
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.Title
		}
		return out
	}

	all, err := svc.List(ctx, userID, TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"high sooner", "high later", "medium overdue", "low later"}, titles(all))

	math, err := svc.List(ctx, userID, TaskFilter{Subject: "Math"})
	require.NoError(t, err)
	assert.Equal(t, []string{"high later", "low later"}, titles(math))

	overdue, err := svc.List(ctx, userID, TaskFilter{Overdue: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"medium overdue"}, titles(overdue))

	upcoming, err := svc.List(ctx, userID, TaskFilter{Upcoming: true, Priority: model.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, []string{"high sooner", "high later"}, titles(upcoming))

	_, err = svc.Toggle(ctx, userID, all[0].ID)
	require.NoError(t, err)
	done := true
	completed, err := svc.List(ctx, userID, TaskFilter{Completed: &done})
	require.NoError(t, err)
	assert.Equal(t, []string{"high sooner"}, titles(completed))

	st, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, st.TotalTasks)
	assert.Equal(t, 1, st.CompletedTasks)
	assert.Equal(t, 1, st.OverdueTasks)
	assert.Equal(t, 25.0, st.CompletionRate)
	assert.Equal(t, 2, st.PriorityStats["high"].Total)
}

func TestStudyTaskService_Validation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStudyTaskService(repos.StudyTasks, fixedClock)

	tests := []struct {
		name string
		task model.StudyTask
	}{
		{"missing title", model.StudyTask{Subject: "Math"}},
		{"bad priority", model.StudyTask{Title: "x", Subject: "Math", Priority: "urgent"}},
		{"too many hours", model.StudyTask{Title: "x", Subject: "Math", EstimatedHours: 30}},
		{"too few hours", model.StudyTask{Title: "x", Subject: "Math", EstimatedHours: 0.25}},
		{"bad slot", model.StudyTask{Title: "x", Subject: "Math", TimeSlots: []model.TimeSlot{{Day: "Monday", StartTime: "10:00", EndTime: "09:00"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := tt.task
			_, err := svc.Create(context.Background(), uuid.New(), &task)
			var invalid *apperrors.ValidationError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}
