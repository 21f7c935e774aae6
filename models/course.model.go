package models

import "time"

const (
	CourseStatusActive   = "Active"
	CourseStatusInactive = "Inactive"
)

// Course is a catalog entry. Code is the business key; admins assign it at
// creation and it never changes. No soft delete: removing a course frees its
// code for reuse.
type Course struct {
	ID            uint      `json:"-" gorm:"primarykey"`
	Code          string    `json:"code" gorm:"uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"not null"`
	Term          string    `json:"term"`
	Instructor    string    `json:"instructor"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	Description   string    `json:"desc"`
	Status        string    `json:"status" gorm:"default:'Active'"`
	Department    string    `json:"department" gorm:"default:'Computer Science'"`
	Credits       int       `json:"credits" gorm:"default:3"`
	Prerequisites string    `json:"prerequisites" gorm:"default:'None'"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
