package models

import "gorm.io/gorm"

// Answer holds a candidate's latest selection for a question. The composite
// unique index is the upsert target: saving again overwrites in place.
// IsCorrect is fixed against the question's correct option at write time.
type Answer struct {
	gorm.Model
	CandidateID    uint `json:"candidate_id" gorm:"uniqueIndex:idx_candidate_question;not null"`
	QuestionID     uint `json:"question_id" gorm:"uniqueIndex:idx_candidate_question;not null"`
	SelectedOption int  `json:"selected_option"`
	IsCorrect      bool `json:"is_correct" gorm:"default:false"`
}
