package model

// Weekday names accepted for a class, in schedule order (the week starts on Saturday).
var Weekdays = []string{
	"Saturday",
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
}

// DefaultClassColor is used when a class is created without a color.
const DefaultClassColor = "#3B82F6"

// ClassSession is one weekly slot in a user's class schedule.
type ClassSession struct {
	Base
	Subject    string `json:"subject" gorm:"size:255;not null"`
	Day        string `json:"day" gorm:"size:16;not null;index"`
	Time       string `json:"time" gorm:"size:5;not null"` // HH:MM
	Instructor string `json:"instructor" gorm:"size:255;not null"`
	Color      string `json:"color" gorm:"size:16;not null;default:'#3B82F6'"`
}

// TableName keeps the table name stable regardless of naming strategy.
func (ClassSession) TableName() string { return "class_sessions" }
