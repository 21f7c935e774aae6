package models

import "gorm.io/gorm"

// Message is a contact message a student submits to the admins. Reference is
// a uuid handed back to the student so support can find the message later.
type Message struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	Reference string `json:"reference" gorm:"uniqueIndex;not null"`
	FullName  string `json:"fullName" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Phone     string `json:"phone" gorm:"default:'Not provided'"`
	Subject   string `json:"subject" gorm:"not null"`
	Body      string `json:"message" gorm:"not null"`
}
