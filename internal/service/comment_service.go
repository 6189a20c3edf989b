package service

import (
	"context"

	"furreal/internal/models"
	"furreal/internal/repository"
	"furreal/internal/validation"
)

// CommentService provides comment business logic. Comments are immutable
// once created; there is no edit or delete path.
type CommentService struct {
	commentRepo repository.CommentRepository
	realService *RealService
}

// CreateCommentInput carries a new comment submission.
type CreateCommentInput struct {
	RealID uint
	UserID uint
	Body   string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, realService *RealService) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		realService: realService,
	}
}

// CreateComment adds a comment to a real the commenter can see.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentBody(in.Body); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.realService.GetVisibleReal(ctx, in.UserID, in.RealID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		RealID: in.RealID,
		UserID: in.UserID,
		Body:   in.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the comments on a visible real, oldest first.
func (s *CommentService) ListComments(ctx context.Context, viewerID, realID uint) ([]models.Comment, error) {
	if _, err := s.realService.GetVisibleReal(ctx, viewerID, realID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByReal(ctx, realID)
}
