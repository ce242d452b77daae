package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
)

func TestInstructorService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewInstructorService(newTestRepos(t).Instructors)
	user := uuid.New()

	lee, err := svc.Create(ctx, user, &model.Instructor{Name: " Dr. Lee ", Email: "Lee@Uni.EDU"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Lee", lee.Name)
	assert.Equal(t, "lee@uni.edu", lee.Email)

	_, err = svc.Create(ctx, user, &model.Instructor{Name: "Adams"})
	require.NoError(t, err)

	list, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Adams", list[0].Name)

	updated, err := svc.Update(ctx, user, lee.ID, &model.Instructor{Name: "Prof. Lee", Department: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "Physics", updated.Department)
	assert.Empty(t, updated.Email)

	require.NoError(t, svc.Delete(ctx, user, lee.ID))
	err = svc.Delete(ctx, user, lee.ID)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Instructor not found", err.Error())
}

func TestInstructorService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewInstructorService(newTestRepos(t).Instructors)
	user := uuid.New()

	tests := []struct {
		name       string
		instructor model.Instructor
		message    string
	}{
		{name: "blank name", instructor: model.Instructor{Name: "  "}, message: "Instructor name is required"},
		{name: "bad email", instructor: model.Instructor{Name: "Lee", Email: "not-an-email"}, message: "Please enter a valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.instructor
			_, err := svc.Create(ctx, user, &in)
			var invalid *apperrors.ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	_, err := svc.Update(ctx, user, uuid.New(), &model.Instructor{Name: "Ghost"})
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
