package models

import (
	"time"

	"gorm.io/gorm"
)

// ExamResult is one scored submission. Re-attempts append new rows; a
// result is never updated after insert.
type ExamResult struct {
	gorm.Model
	Reference   string    `json:"reference" gorm:"uniqueIndex;not null"`
	CandidateID uint      `json:"candidate_id" gorm:"index;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Score       int       `json:"score"`
	AttemptedOn time.Time `json:"attempted_on"`
}
