package repository

import (
	"gorm.io/gorm"

	"studyhub/internal/model"
)

// Repositories groups every store used by the services.
type Repositories struct {
	Users         UserRepository
	Classes       ScopedRepository[model.ClassSession]
	Budget        ScopedRepository[model.BudgetEntry]
	Subjects      SubjectRepository
	Instructors   ScopedRepository[model.Instructor]
	StudyTasks    ScopedRepository[model.StudyTask]
	StudySessions ScopedRepository[model.StudySession]
	Questions     ScopedRepository[model.Question]
}

// New builds all repositories over one database handle.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Classes:       NewScopedRepository[model.ClassSession](db),
		Budget:        NewScopedRepository[model.BudgetEntry](db),
		Subjects:      NewSubjectRepository(db),
		Instructors:   NewScopedRepository[model.Instructor](db),
		StudyTasks:    NewScopedRepository[model.StudyTask](db),
		StudySessions: NewScopedRepository[model.StudySession](db),
		Questions:     NewScopedRepository[model.Question](db),
	}
}
