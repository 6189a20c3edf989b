package service

import (
	"context"
	"strings"

	"furreal/internal/models"
	"furreal/internal/repository"
	"furreal/internal/validation"
)

// UserService provides profile and user-lookup business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a profile edit. Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID   uint
	FullName *string
	Bio      *string
	Location *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies non-nil fields to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		if len(*in.FullName) > 100 {
			return nil, models.NewValidationError("Full name must be at most 100 characters")
		}
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Bio != nil {
		if len(*in.Bio) > 500 {
			return nil, models.NewValidationError("Bio must be at most 500 characters")
		}
		user.Bio = *in.Bio
	}
	if in.Location != nil {
		user.Location = strings.TrimSpace(*in.Location)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SearchUsers finds users matching the query, excluding the searcher. A blank
// query returns an empty result instead of dumping the user table.
func (s *UserService) SearchUsers(ctx context.Context, query string, searcherID uint, limit int) ([]models.PublicProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.PublicProfile{}, nil
	}
	if len(query) > validation.MaxSearchQueryLength {
		return nil, models.NewValidationError("Search query is too long")
	}

	users, err := s.userRepo.Search(ctx, query, searcherID, limit)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Public())
	}
	return profiles, nil
}
