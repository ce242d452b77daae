package model

// Instructor holds contact details for a teacher. Only the name is required.
type Instructor struct {
	Base
	Name           string `json:"name" gorm:"size:255;not null;index"`
	Email          string `json:"email,omitempty" gorm:"size:255"`
	Phone          string `json:"phone,omitempty" gorm:"size:64"`
	Department     string `json:"department,omitempty" gorm:"size:255"`
	OfficeHours    string `json:"officeHours,omitempty" gorm:"size:255"`
	OfficeLocation string `json:"officeLocation,omitempty" gorm:"size:255"`
	Website        string `json:"website,omitempty" gorm:"size:255"`
	Notes          string `json:"notes,omitempty" gorm:"type:text"`
}
