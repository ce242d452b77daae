package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// SeedResult counts the records created by a demo seed.
type SeedResult struct {
	Subjects      int `json:"subjects"`
	Instructors   int `json:"instructors"`
	Classes       int `json:"classes"`
	BudgetEntries int `json:"budgetEntries"`
	StudyTasks    int `json:"studyTasks"`
	StudySessions int `json:"studySessions"`
	Questions     int `json:"questions"`
}

// SeedService loads a demo data set for one user.
type SeedService interface {
	SeedDemo(ctx context.Context, userID uuid.UUID) (*SeedResult, error)
}

type seedService struct {
	repos *repository.Repositories
	now   Clock
}

// NewSeedService creates a seed service writing through the given repositories.
func NewSeedService(repos *repository.Repositories, clock Clock) SeedService {
	return &seedService{repos: repos, now: orNow(clock)}
}

// SeedDemo inserts the demo rows. Subjects the user already has are skipped;
// everything else is appended, so seeding twice duplicates the other records.
func (s *seedService) SeedDemo(ctx context.Context, userID uuid.UUID) (*SeedResult, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(daysAgo, hour int) time.Time {
		return today.AddDate(0, 0, -daysAgo).Add(time.Duration(hour) * time.Hour)
	}
	res := &SeedResult{}

	for _, subject := range demoSubjects() {
		_, err := s.repos.Subjects.FindByName(ctx, userID, subject.Name, uuid.Nil)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check subject %s: %w", subject.Name, err)
		}
		if err := s.repos.Subjects.Create(ctx, userID, &subject); err != nil {
			return nil, fmt.Errorf("create subject %s: %w", subject.Name, err)
		}
		res.Subjects++
	}

	instructors := []model.Instructor{
		{Name: "Dr. Amal Hassan", Email: "amal.hassan@example.edu", Department: "Mathematics", OfficeHours: "Sun 10:00-12:00", OfficeLocation: "B-204"},
		{Name: "Prof. Karim Nabil", Email: "karim.nabil@example.edu", Department: "Computer Science", OfficeHours: "Tue 13:00-15:00", OfficeLocation: "C-112"},
		{Name: "Dr. Sara Mostafa", Email: "sara.mostafa@example.edu", Department: "Physics", Phone: "+20 100 000 0000"},
	}
	if err := s.repos.Instructors.CreateBatch(ctx, userID, instructors); err != nil {
		return nil, fmt.Errorf("create instructors: %w", err)
	}
	res.Instructors = len(instructors)

	classes := []model.ClassSession{
		{Subject: "Calculus", Day: "Sunday", Time: "09:00", Instructor: "Dr. Amal Hassan", Color: "#3B82F6"},
		{Subject: "Data Structures", Day: "Monday", Time: "11:00", Instructor: "Prof. Karim Nabil", Color: "#10B981"},
		{Subject: "Physics", Day: "Tuesday", Time: "14:00", Instructor: "Dr. Sara Mostafa", Color: "#F59E0B"},
		{Subject: "Calculus", Day: "Wednesday", Time: "09:00", Instructor: "Dr. Amal Hassan", Color: "#3B82F6"},
	}
	if err := s.repos.Classes.CreateBatch(ctx, userID, classes); err != nil {
		return nil, fmt.Errorf("create classes: %w", err)
	}
	res.Classes = len(classes)

	entries := []model.BudgetEntry{
		{Type: model.BudgetIncome, Category: "Scholarship", Amount: decimal.RequireFromString("1500.00"), Date: at(20, 9)},
		{Type: model.BudgetIncome, Category: "Part-time job", Amount: decimal.RequireFromString("420.50"), Date: at(6, 18)},
		{Type: model.BudgetExpense, Category: "Books", Amount: decimal.RequireFromString("85.99"), Description: "Calculus textbook", Date: at(5, 12)},
		{Type: model.BudgetExpense, Category: "Food", Amount: decimal.RequireFromString("12.75"), Date: at(1, 13)},
		{Type: model.BudgetExpense, Category: "Transport", Amount: decimal.RequireFromString("4.20"), Date: at(0, 8)},
	}
	if err := s.repos.Budget.CreateBatch(ctx, userID, entries); err != nil {
		return nil, fmt.Errorf("create budget entries: %w", err)
	}
	res.BudgetEntries = len(entries)

	done := at(1, 20)
	tasks := []model.StudyTask{
		{Title: "Finish problem set 4", Subject: "Calculus", Topic: "Integrals", Priority: model.PriorityHigh, Deadline: at(-2, 23), EstimatedHours: 3,
			TimeSlots: []model.TimeSlot{{Day: "Sunday", StartTime: "16:00", EndTime: "18:00"}}},
		{Title: "Implement AVL tree", Subject: "Data Structures", Topic: "Balanced trees", Priority: model.PriorityMedium, Deadline: at(-5, 12), EstimatedHours: 5},
		{Title: "Review lab report", Subject: "Physics", Priority: model.PriorityLow, Deadline: at(2, 12), EstimatedHours: 1},
		{Title: "Read chapter 7", Subject: "Physics", Priority: model.PriorityMedium, Deadline: at(1, 23), EstimatedHours: 2, Completed: true, CompletedAt: &done},
	}
	if err := s.repos.StudyTasks.CreateBatch(ctx, userID, tasks); err != nil {
		return nil, fmt.Errorf("create study tasks: %w", err)
	}
	res.StudyTasks = len(tasks)

	sessions := []model.StudySession{
		{Subject: "Calculus", Duration: 90, Date: at(0, 9)},
		{Subject: "Data Structures", Duration: 45, Date: at(1, 17), Notes: "Heaps"},
		{Subject: "Calculus", Duration: 60, Date: at(2, 10)},
		{Subject: "Physics", Duration: 30, Date: at(4, 19)},
		{Subject: "Data Structures", Duration: 120, Date: at(9, 15)},
	}
	if err := s.repos.StudySessions.CreateBatch(ctx, userID, sessions); err != nil {
		return nil, fmt.Errorf("create study sessions: %w", err)
	}
	res.StudySessions = len(sessions)

	questions := []model.Question{
		{Type: model.QuestionMultipleChoice, Subject: "Data Structures", Topic: "Complexity", Difficulty: model.DifficultyEasy,
			Question: "What is the average lookup cost in a hash table?", Options: []string{"O(1)", "O(log n)", "O(n)"},
			CorrectAnswer: "O(1)", Explanation: "Hashing maps keys directly to buckets."},
		{Type: model.QuestionTrueFalse, Subject: "Physics", Topic: "Mechanics", Difficulty: model.DifficultyMedium,
			Question: "Momentum is conserved in an elastic collision.", Options: []string{}, CorrectAnswer: "True"},
		{Type: model.QuestionShortAnswer, Subject: "Calculus", Topic: "Derivatives", Difficulty: model.DifficultyHard,
			Question: "Differentiate x^x.", Options: []string{}, CorrectAnswer: "x^x (ln x + 1)"},
	}
	if err := s.repos.Questions.CreateBatch(ctx, userID, questions); err != nil {
		return nil, fmt.Errorf("create questions: %w", err)
	}
	res.Questions = len(questions)

	return res, nil
}

func demoSubjects() []model.Subject {
	return []model.Subject{
		{Name: "Calculus", Description: "Single-variable calculus", Color: "#3B82F6"},
		{Name: "Data Structures", Description: "Lists, trees, graphs and hashing", Color: "#10B981"},
		{Name: "Physics", Description: "Mechanics and waves", Color: "#F59E0B"},
	}
}
