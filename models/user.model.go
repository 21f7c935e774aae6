package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Credential is a stored password, either a bcrypt hash or a legacy plaintext
// value imported from the old system. Legacy values are upgraded in place on
// the first successful login.
type Credential string

// Hashed reports whether the credential is in bcrypt format.
func (c Credential) Hashed() bool {
	return strings.HasPrefix(string(c), "$2")
}

type User struct {
	gorm.Model
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email" gorm:"unique;not null"` // stored trimmed and lowercased
	Password   Credential     `json:"-" gorm:"not null"`
	Phone      string         `json:"phone" gorm:"default:''"`
	Birthday   datatypes.Date `json:"-"`
	Department string         `json:"department"`
	Program    string         `json:"program" gorm:"default:''"`
	Country    string         `json:"country"`
	Role       string         `json:"role" gorm:"default:'student'"` // student or admin
}
