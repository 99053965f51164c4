package models

import (
	"time"

	"gorm.io/gorm"
)

type Candidate struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
}
