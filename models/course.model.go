package models

import "gorm.io/gorm"

// Course is a listing managed by admins. Rating figures are never stored
// here; they are derived from Feedback rows at read time.
type Course struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Instructor  string `json:"instructor" gorm:"not null"`
	Duration    string `json:"duration" gorm:"not null"` // label, e.g. "8 weeks"
}
