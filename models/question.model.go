package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question belongs to exactly one course. Options is an ordered JSON array
// of strings; CorrectOption indexes into it.
type Question struct {
	gorm.Model
	CourseID      uint           `json:"course_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text" gorm:"not null"`
	Options       datatypes.JSON `json:"options"`
	CorrectOption int            `json:"correct_option" gorm:"not null"`
}
