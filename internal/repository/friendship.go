// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"furreal/internal/models"

	"gorm.io/gorm"
)

// FriendshipRepository defines persistence operations for friendships.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetAcceptedFriendIDs(ctx context.Context, userID uint) ([]uint, error)
	GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error)
	GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error)
	Accept(ctx context.Context, friendshipID uint) error
	Delete(ctx context.Context, friendshipID uint) error
	RemoveBetween(ctx context.Context, userID1, userID2 uint) error
	IsFriend(ctx context.Context, userID1, userID2 uint) (bool, error)
}

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository returns a new FriendshipRepository implementation.
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Friendship already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendshipRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetBetween finds the friendship row for the user pair in either direction.
// It returns (nil, nil) when no row exists.
func (r *friendshipRepository) GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Preload("Requester").
		Preload("Addressee").
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *friendshipRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.requester_id OR users.id = f.addressee_id)").
		Where("f.status = ? AND (f.requester_id = ? OR f.addressee_id = ?) AND users.id != ?",
			models.FriendshipStatusAccepted, userID, userID, userID).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// GetAcceptedFriendIDs resolves the user's accepted friend IDs with a single
// query over friendship edges.
func (r *friendshipRepository) GetAcceptedFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var edges []models.Friendship
	err := r.db.WithContext(ctx).
		Select("requester_id", "addressee_id").
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)",
			models.FriendshipStatusAccepted, userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.RequesterID == userID {
			ids = append(ids, e.AddresseeID)
		} else {
			ids = append(ids, e.RequesterID)
		}
	}
	return ids, nil
}

func (r *friendshipRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := r.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Preload("Requester").
		Find(&friendships).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

func (r *friendshipRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := r.db.WithContext(ctx).
		Where("requester_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Preload("Addressee").
		Find(&friendships).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

// Accept flips the pending row to accepted inside one transaction. The WHERE
// clause re-checks the pending precondition so a concurrent accept or ignore
// rolls the whole transition back with PreconditionFailed.
func (r *friendshipRepository) Accept(ctx context.Context, friendshipID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Friendship{}).
			Where("id = ? AND status = ?", friendshipID, models.FriendshipStatusPending).
			Update("status", models.FriendshipStatusAccepted)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewPreconditionFailedError("Friend request is not pending")
		}
		return nil
	})
}

func (r *friendshipRepository) Delete(ctx context.Context, friendshipID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Friendship{}, friendshipID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveBetween deletes the accepted friendship for the pair as one atomic
// unit. Removing a friendship that does not exist is NotFound, not a silent
// success.
func (r *friendshipRepository) RemoveBetween(ctx context.Context, userID1, userID2 uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("status = ? AND ((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?))",
				models.FriendshipStatusAccepted, userID1, userID2, userID2, userID1).
			Delete(&models.Friendship{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Friendship", 0)
		}
		return nil
	})
}

// IsFriend reports whether the pair has an accepted friendship. Symmetric by
// construction: argument order never matters.
func (r *friendshipRepository) IsFriend(ctx context.Context, userID1, userID2 uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("status = ? AND ((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?))",
			models.FriendshipStatusAccepted, userID1, userID2, userID2, userID1).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
