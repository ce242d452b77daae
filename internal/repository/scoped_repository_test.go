package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studyhub/internal/db"
	"studyhub/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}

func TestScopedRepositoryIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewScopedRepository[model.Instructor](newTestDB(t))
	alice, bob := uuid.New(), uuid.New()

	in := &model.Instructor{Name: "Dr. Lee"}
	require.NoError(t, repo.Create(ctx, alice, in))
	require.NotEqual(t, uuid.Nil, in.ID)
	assert.Equal(t, alice, in.UserID)

	_, err := repo.FindByID(ctx, bob, in.ID)
	assert.True(t, stderrors.Is(err, gorm.ErrRecordNotFound))

	err = repo.Update(ctx, bob, in.ID, &model.Instructor{Name: "Hijacked"})
	assert.True(t, stderrors.Is(err, gorm.ErrRecordNotFound))

	err = repo.Delete(ctx, bob, in.ID)
	assert.True(t, stderrors.Is(err, gorm.ErrRecordNotFound))

	got, err := repo.FindByID(ctx, alice, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Lee", got.Name)

	bobs, err := repo.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)
}

func TestScopedRepositoryUpdateReplacesFields(t *testing.T) {
	ctx := context.Background()
	repo := NewScopedRepository[model.Instructor](newTestDB(t))
	user := uuid.New()

	in := &model.Instructor{Name: "Dr. Lee", Email: "lee@uni.edu", Phone: "123"}
	require.NoError(t, repo.Create(ctx, user, in))

	require.NoError(t, repo.Update(ctx, user, in.ID, &model.Instructor{Name: "Prof. Lee"}))

	got, err := repo.FindByID(ctx, user, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prof. Lee", got.Name)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.Phone)
	assert.Equal(t, user, got.UserID)
	assert.Equal(t, in.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestScopedRepositoryListScopes(t *testing.T) {
	ctx := context.Background()
	repo := NewScopedRepository[model.Question](newTestDB(t))
	user := uuid.New()

	require.NoError(t, repo.CreateBatch(ctx, user, []model.Question{
		{Subject: "Mathematics", Topic: "Algebra", Type: model.QuestionShortAnswer, Difficulty: model.DifficultyEasy, Question: "1+1?", CorrectAnswer: "2"},
		{Subject: "Physics", Topic: "Motion", Type: model.QuestionShortAnswer, Difficulty: model.DifficultyHard, Question: "F?", CorrectAnswer: "ma"},
	}))

	got, err := repo.List(ctx, user, Contains("subject", "MATH"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Algebra", got[0].Topic)

	got, err = repo.List(ctx, user, Equal("difficulty", model.DifficultyHard))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Physics", got[0].Subject)

	got, err = repo.List(ctx, user, Contains("topic", ""), Equal("type", ""), OrderBy("subject DESC"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Physics", got[0].Subject)
}

func TestSubjectRepositoryFindByName(t *testing.T) {
	ctx := context.Background()
	repo := NewSubjectRepository(newTestDB(t))
	user := uuid.New()

	math := &model.Subject{Name: "Mathematics"}
	require.NoError(t, repo.Create(ctx, user, math))

	found, err := repo.FindByName(ctx, user, "  mathematics ", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, math.ID, found.ID)

	_, err = repo.FindByName(ctx, user, "Mathematics", math.ID)
	assert.True(t, stderrors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindByName(ctx, uuid.New(), "Mathematics", uuid.Nil)
	assert.True(t, stderrors.Is(err, gorm.ErrRecordNotFound))
}

func TestScopedRepositoryNoOpUpdate(t *testing.T) {
	ctx := context.Background()
	repo := &scopedRepository[model.Instructor, *model.Instructor]{db: newTestDB(t)}
	user := uuid.New()

	in := &model.Instructor{Name: "Dr. Lee", Email: "lee@uni.edu"}
	require.NoError(t, repo.Create(ctx, user, in))

	same := *in
	require.NoError(t, repo.Update(ctx, user, in.ID, &same))

	// A write that changes nothing still resolves to an existing row.
	assert.NoError(t, repo.exists(ctx, user, in.ID))
	assert.True(t, stderrors.Is(repo.exists(ctx, uuid.New(), in.ID), gorm.ErrRecordNotFound))
	assert.True(t, stderrors.Is(repo.exists(ctx, user, uuid.New()), gorm.ErrRecordNotFound))
}
