package model

// Subject is a named course used as a lookup value by other resources.
// Names are unique per user, compared case-insensitively.
type Subject struct {
	Base
	Name        string `json:"name" gorm:"size:255;not null;index"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Color       string `json:"color" gorm:"size:16"`
}
