package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/repository"
)

var validate = validator.New()

// Clock returns the current time. Services read "now" through it so tests can pin it.
type Clock func() time.Time

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// resource implements the user-scoped CRUD shared by every owned model.
type resource[T any] struct {
	name string
	repo repository.ScopedRepository[T]
}

func (r resource[T]) list(ctx context.Context, userID uuid.UUID, scopes ...repository.Scope) ([]T, error) {
	items, err := r.repo.List(ctx, userID, scopes...)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r resource[T]) get(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	item, err := r.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, r.mapErr(err)
	}
	return item, nil
}

func (r resource[T]) create(ctx context.Context, userID uuid.UUID, item *T) (*T, error) {
	if err := r.repo.Create(ctx, userID, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r resource[T]) update(ctx context.Context, userID, id uuid.UUID, item *T) (*T, error) {
	if err := r.repo.Update(ctx, userID, id, item); err != nil {
		return nil, r.mapErr(err)
	}
	return r.get(ctx, userID, id)
}

func (r resource[T]) delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.mapErr(r.repo.Delete(ctx, userID, id))
}

func (r resource[T]) mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(r.name)
	}
	return err
}
