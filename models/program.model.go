package models

import "gorm.io/gorm"

// Program is a read-only catalog entry describing a program of study.
type Program struct {
	gorm.Model
	ProgramID   string  `json:"id" gorm:"uniqueIndex;not null"`
	Name        string  `json:"name" gorm:"not null"`
	Term        string  `json:"term"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Fees        float64 `json:"fees"`
	Description string  `json:"desc"`
}
