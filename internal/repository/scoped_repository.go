package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhub/internal/model"
)

// Scope narrows a query, e.g. a filter or an ordering.
type Scope = func(*gorm.DB) *gorm.DB

// ScopedRepository defines persistence operations for records owned by a single user.
// Every method takes the caller's user id and never touches another user's rows.
type ScopedRepository[T any] interface {
	List(ctx context.Context, userID uuid.UUID, scopes ...Scope) ([]T, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*T, error)
	Create(ctx context.Context, userID uuid.UUID, item *T) error
	CreateBatch(ctx context.Context, userID uuid.UUID, items []T) error
	Update(ctx context.Context, userID, id uuid.UUID, item *T) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ownedPtr[T any] interface {
	*T
	model.Owned
}

type scopedRepository[T any, PT ownedPtr[T]] struct {
	db *gorm.DB
}

// NewScopedRepository builds a GORM-backed repository for one owned model.
func NewScopedRepository[T any, PT ownedPtr[T]](db *gorm.DB) ScopedRepository[T] {
	return &scopedRepository[T, PT]{db: db}
}

func (r *scopedRepository[T, PT]) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where("user_id = ?", userID)
}

// List returns the user's records with the given scopes applied.
func (r *scopedRepository[T, PT]) List(ctx context.Context, userID uuid.UUID, scopes ...Scope) ([]T, error) {
	items := make([]T, 0)
	if err := r.owned(ctx, userID).Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID finds one of the user's records. It returns gorm.ErrRecordNotFound
// when the id does not exist or belongs to someone else.
func (r *scopedRepository[T, PT]) FindByID(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var item T
	if err := r.owned(ctx, userID).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create stamps the owner and inserts the record.
func (r *scopedRepository[T, PT]) Create(ctx context.Context, userID uuid.UUID, item *T) error {
	PT(item).SetOwner(userID)
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateBatch stamps the owner on every record and inserts them in one statement.
func (r *scopedRepository[T, PT]) CreateBatch(ctx context.Context, userID uuid.UUID, items []T) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		PT(&items[i]).SetOwner(userID)
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 100).Error
}

// Update writes every column of the user's record id except identity, ownership
// and creation time. It returns gorm.ErrRecordNotFound when no row matched.
func (r *scopedRepository[T, PT]) Update(ctx context.Context, userID, id uuid.UUID, item *T) error {
	PT(item).SetOwner(userID)
	PT(item).SetID(id)
	res := r.owned(ctx, userID).Model(item).
		Where("id = ?", id).
		Select("*").
		Omit("ID", "UserID", "CreatedAt").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports changed rows, not matched ones, so a no-op write
		// also lands here.
		return r.exists(ctx, userID, id)
	}
	return nil
}

func (r *scopedRepository[T, PT]) exists(ctx context.Context, userID, id uuid.UUID) error {
	var count int64
	if err := r.owned(ctx, userID).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-deletes one of the user's records.
func (r *scopedRepository[T, PT]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.owned(ctx, userID).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// OrderBy sorts by a trusted column expression.
func OrderBy(expr string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(expr)
	}
}

// Equal filters on an exact column match when value is not empty.
func Equal(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if s, ok := value.(string); ok && s == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// Contains filters on a case-insensitive substring match when value is not empty.
func Contains(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
	}
}
