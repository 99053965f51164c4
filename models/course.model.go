package models

import "gorm.io/gorm"

// Course is a named collection of questions representing one exam subject.
// Static reference data, loaded by the import script.
type Course struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
}
