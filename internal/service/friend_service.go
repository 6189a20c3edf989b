package service

import (
	"context"

	"furreal/internal/middleware"
	"furreal/internal/models"
	"furreal/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendshipRepo repository.FriendshipRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

// SendFriendRequest sends a friend request to the target user.
func (s *FriendService) SendFriendRequest(ctx context.Context, userID, targetUserID uint) (*models.Friendship, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.friendshipRepo.GetBetween(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusAccepted:
			return nil, models.NewConflictError("You are already friends")
		case models.FriendshipStatusPending:
			if existing.RequesterID == userID {
				return nil, models.NewConflictError("Friend request already sent")
			}
			return nil, models.NewConflictError("This user already sent you a friend request")
		}
	}

	friendship := &models.Friendship{
		RequesterID: userID,
		AddresseeID: targetUserID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}
	middleware.FriendTransitions.WithLabelValues("request").Inc()

	return s.friendshipRepo.GetByID(ctx, friendship.ID)
}

// GetFriends returns the user's accepted friends.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendshipRepo.GetFriends(ctx, userID)
}

// GetPendingRequests returns friend requests awaiting the user's decision.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendshipRepo.GetPendingRequests(ctx, userID)
}

// GetSentRequests returns friend requests the user has sent.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendshipRepo.GetSentRequests(ctx, userID)
}

// AcceptFriendRequest accepts a pending friend request addressed to the user.
// The underlying transition is atomic; a request that is no longer pending
// fails with PreconditionFailed and leaves the row untouched.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requestID uint) (*models.Friendship, error) {
	friendship, err := s.friendshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if friendship.AddresseeID != userID {
		return nil, models.NewNotFoundError("Friend request", requestID)
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, models.NewPreconditionFailedError("Friend request is not pending")
	}

	if err := s.friendshipRepo.Accept(ctx, requestID); err != nil {
		return nil, err
	}
	middleware.FriendTransitions.WithLabelValues("accept").Inc()

	return s.friendshipRepo.GetByID(ctx, requestID)
}

// IgnoreFriendRequest discards a pending friend request. The addressee
// declines it; the requester may also cancel their own outgoing request.
func (s *FriendService) IgnoreFriendRequest(ctx context.Context, userID, requestID uint) error {
	friendship, err := s.friendshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if friendship.AddresseeID != userID && friendship.RequesterID != userID {
		return models.NewNotFoundError("Friend request", requestID)
	}
	if friendship.Status != models.FriendshipStatusPending {
		return models.NewPreconditionFailedError("Friend request is not pending")
	}

	if err := s.friendshipRepo.Delete(ctx, friendship.ID); err != nil {
		return err
	}
	middleware.FriendTransitions.WithLabelValues("ignore").Inc()
	return nil
}

// RemoveFriend ends an accepted friendship. Either party may remove it.
// Removing a friendship that does not exist is NotFound, not a silent success.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return models.NewValidationError("Cannot unfriend yourself")
	}
	if err := s.friendshipRepo.RemoveBetween(ctx, userID, friendID); err != nil {
		return err
	}
	middleware.FriendTransitions.WithLabelValues("remove").Inc()
	return nil
}

// FriendshipStatusView describes the relationship between two users from the
// first user's point of view.
type FriendshipStatusView struct {
	Status    string `json:"status"`
	RequestID uint   `json:"request_id,omitempty"`
	SentByMe  bool   `json:"sent_by_me,omitempty"`
}

// GetStatus reports the relationship between userID and otherID: "none",
// "pending" or "accepted". Symmetric for accepted friendships.
func (s *FriendService) GetStatus(ctx context.Context, userID, otherID uint) (*FriendshipStatusView, error) {
	friendship, err := s.friendshipRepo.GetBetween(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if friendship == nil {
		return &FriendshipStatusView{Status: "none"}, nil
	}
	view := &FriendshipStatusView{
		Status:    string(friendship.Status),
		RequestID: friendship.ID,
		SentByMe:  friendship.RequesterID == userID,
	}
	return view, nil
}
