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

func TestSubjectService_NamesArePerUserAndCaseInsensitive(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.Subjects)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	created, err := svc.Create(ctx, alice, &model.Subject{Name: "Biology"})
	require.NoError(t, err)
	assert.Equal(t, DefaultSubjectColor, created.Color)

	_, err = svc.Create(ctx, alice, &model.Subject{Name: "  biology "})
	assert.ErrorIs(t, err, apperrors.ErrSubjectExists)

	_, err = svc.Create(ctx, bob, &model.Subject{Name: "Biology"})
	assert.NoError(t, err)
}

func TestSubjectService_Rename(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.Subjects)
	ctx := context.Background()
	userID := uuid.New()

	bio, err := svc.Create(ctx, userID, &model.Subject{Name: "Biology"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, &model.Subject{Name: "Chemistry"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, userID, bio.ID, &model.Subject{Name: "CHEMISTRY"})
	assert.ErrorIs(t, err, apperrors.ErrSubjectExists)

	// Keeping its own name is not a conflict.
	updated, err := svc.Update(ctx, userID, bio.ID, &model.Subject{Name: "biology", Color: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, "biology", updated.Name)
	assert.Equal(t, "#000000", updated.Color)
	assert.Equal(t, bio.CreatedAt.Unix(), updated.CreatedAt.Unix())

	subjects, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Chemistry", subjects[0].Name)
}

func TestSubjectService_DeleteMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.Subjects)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
