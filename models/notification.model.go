package models

import "time"

// Notification is a pull-based announcement row. Writers insert, clients poll;
// there is no in-process fan-out. Old rows are pruned by the nightly scheduler.
type Notification struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Icon      string    `json:"icon"`
	Title     string    `json:"title" gorm:"not null"`
	CreatedAt time.Time `json:"date"`
}
