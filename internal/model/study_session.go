package model

import "time"

// StudySession is one logged study interval. Duration is in whole minutes.
type StudySession struct {
	Base
	Subject  string    `json:"subject" gorm:"size:255;not null;index"`
	Duration int       `json:"duration" gorm:"not null"`
	Date     time.Time `json:"date" gorm:"not null;index"`
	Notes    string    `json:"notes,omitempty" gorm:"type:text"`
}

// EntryDate implements stats.Dated.
func (s StudySession) EntryDate() time.Time { return s.Date }
