package model

import (
	"time"

	"gorm.io/datatypes"
)

// Priority ranks a study task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities so that high sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// TimeSlot is a planned study block within the week.
type TimeSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// StudyTask is a deadline-bound piece of study work.
type StudyTask struct {
	Base
	Title          string                        `json:"title" gorm:"size:255;not null"`
	Subject        string                        `json:"subject" gorm:"size:255;not null;index"`
	Topic          string                        `json:"topic,omitempty" gorm:"size:255"`
	Description    string                        `json:"description,omitempty" gorm:"type:text"`
	Priority       Priority                      `json:"priority" gorm:"type:varchar(10);not null;default:'medium';index"`
	Deadline       time.Time                     `json:"deadline" gorm:"not null;index"`
	EstimatedHours float64                       `json:"estimatedHours" gorm:"not null;default:1"`
	Completed      bool                          `json:"completed" gorm:"not null;default:false;index"`
	CompletedAt    *time.Time                    `json:"completedAt"`
	TimeSlots      datatypes.JSONSlice[TimeSlot] `json:"timeSlots"`
}
