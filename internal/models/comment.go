// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment is an append-only remark on a real, displayed oldest first.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RealID    uint      `gorm:"not null;index" json:"real_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
