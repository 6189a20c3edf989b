// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"furreal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RealRepository defines persistence operations for reals and reactions.
type RealRepository interface {
	Create(ctx context.Context, real *models.Real) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Real, error)
	GetCurrent(ctx context.Context, userID uint, start, end time.Time) (*models.Real, error)
	GetCurrentForUsers(ctx context.Context, userIDs []uint, start, end time.Time, viewerID uint) ([]*models.Real, error)
	GetByUserBetween(ctx context.Context, userID uint, start, end time.Time) ([]*models.Real, error)
	Like(ctx context.Context, userID, realID uint) error
	Unlike(ctx context.Context, userID, realID uint) error
}

type realRepository struct {
	db *gorm.DB
}

// NewRealRepository returns a new RealRepository implementation.
func NewRealRepository(db *gorm.DB) RealRepository {
	return &realRepository{db: db}
}

func (r *realRepository) Create(ctx context.Context, real *models.Real) error {
	if err := r.db.WithContext(ctx).Create(real).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// withViewerAnnotations adds subqueries computing the comment count and the
// viewer's own reaction in the same query, so callers never fan out per row.
func (r *realRepository) withViewerAnnotations(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "reals.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.real_id = reals.id) AS comments_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.real_id = reals.id AND reactions.user_id = ?) AS liked",
			viewerID)
	}
	return db.Select(selectQuery + ", FALSE AS liked")
}

func (r *realRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Real, error) {
	var real models.Real
	err := r.withViewerAnnotations(r.db.WithContext(ctx), viewerID).
		Preload("User").
		First(&real, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Real", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &real, nil
}

// GetCurrent resolves the user's real inside the [start, end) window. The most
// recent one wins when the soft one-per-day invariant is violated. A missing
// real is not an error; it returns (nil, nil).
func (r *realRepository) GetCurrent(ctx context.Context, userID uint, start, end time.Time) (*models.Real, error) {
	var real models.Real
	err := r.withViewerAnnotations(r.db.WithContext(ctx), userID).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		First(&real).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &real, nil
}

// GetCurrentForUsers fetches every listed user's real inside the window in a
// single batched query, annotated with owner identity, comment count and the
// viewer's reaction. One query regardless of how many users are passed.
func (r *realRepository) GetCurrentForUsers(ctx context.Context, userIDs []uint, start, end time.Time, viewerID uint) ([]*models.Real, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var reals []*models.Real
	err := r.withViewerAnnotations(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Where("user_id IN ? AND created_at >= ? AND created_at < ?", userIDs, start, end).
		Order("created_at DESC").
		Find(&reals).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reals, nil
}

func (r *realRepository) GetByUserBetween(ctx context.Context, userID uint, start, end time.Time) ([]*models.Real, error) {
	var reals []*models.Real
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&reals).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reals, nil
}

// Like inserts the viewer's reaction. The ON CONFLICT DO NOTHING clause makes
// a duplicate like an idempotent no-op instead of a uniqueness error.
func (r *realRepository) Like(ctx context.Context, userID, realID uint) error {
	reaction := models.Reaction{
		RealID: realID,
		UserID: userID,
		Type:   models.ReactionLike,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "real_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&reaction).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unlike removes the viewer's reaction. Removing a reaction that does not
// exist is a no-op.
func (r *realRepository) Unlike(ctx context.Context, userID, realID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND real_id = ?", userID, realID).
		Delete(&models.Reaction{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
