package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owned is implemented by every record that belongs to exactly one user.
type Owned interface {
	OwnerID() uuid.UUID
	SetOwner(userID uuid.UUID)
	SetID(id uuid.UUID)
}

// Base carries the identity, ownership and timestamps shared by all user-scoped records.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// OwnerID returns the owning user.
func (b *Base) OwnerID() uuid.UUID { return b.UserID }

// SetOwner assigns the owning user.
func (b *Base) SetOwner(userID uuid.UUID) { b.UserID = userID }

// SetID points the record at an existing row.
func (b *Base) SetID(id uuid.UUID) { b.ID = id }

// All returns one zero value of every persisted model, in creation order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&ClassSession{},
		&BudgetEntry{},
		&Subject{},
		&Instructor{},
		&StudyTask{},
		&StudySession{},
		&Question{},
	}
}
