// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Real is a user's daily photo post: the decoded image bytes plus capture
// metadata. Reals are immutable after creation; there is no edit or delete
// path.
type Real struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    uint     `gorm:"not null;index:idx_reals_user_created" json:"user_id"`
	User      User     `gorm:"foreignKey:UserID" json:"user"`
	ImgData   []byte   `json:"-"`
	ThumbData []byte   `json:"-"`
	Caption   string   `json:"caption"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting user reacted to this real (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `gorm:"index:idx_reals_user_created" json:"created_at"`
}

// HasImage reports whether the real carries image bytes. Memory placeholders
// never do.
func (r *Real) HasImage() bool {
	return len(r.ImgData) > 0
}
