package model

import "gorm.io/datatypes"

// QuestionType is the answer format of a question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is an entry in the user's personal question bank.
type Question struct {
	Base
	Type          QuestionType                `json:"type" gorm:"type:varchar(20);not null;index"`
	Subject       string                      `json:"subject" gorm:"size:255;not null;index"`
	Topic         string                      `json:"topic" gorm:"size:255;not null"`
	Difficulty    Difficulty                  `json:"difficulty" gorm:"type:varchar(10);not null;index"`
	Question      string                      `json:"question" gorm:"type:text;not null"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer string                      `json:"correctAnswer" gorm:"type:text;not null"`
	Explanation   string                      `json:"explanation,omitempty" gorm:"type:text"`
}
