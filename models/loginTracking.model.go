package models

import (
	"time"

	"gorm.io/gorm"
)

type LoginTracking struct {
	gorm.Model
	CandidateID uint      `json:"candidate_id" gorm:"index"`
	IPAddress   string    `json:"ip_address"`
	Device      string    `json:"device"`
	Timestamp   time.Time `json:"timestamp"`
}
