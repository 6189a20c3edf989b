// Package models contains data structures for the application's domain models.
package models

import "time"

// ReactionType distinguishes reaction kinds. Only LIKE exists today.
type ReactionType string

// ReactionLike is the heart reaction.
const ReactionLike ReactionType = "LIKE"

// Reaction is one user's reaction to one real. The composite unique index
// enforces at most one row per (real, user); a duplicate like must surface as
// a clean conflict, never corrupt state.
type Reaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	RealID    uint         `gorm:"not null;uniqueIndex:idx_reactions_real_user" json:"real_id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_reactions_real_user" json:"user_id"`
	Type      ReactionType `gorm:"type:varchar(20);not null;default:'LIKE'" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}
