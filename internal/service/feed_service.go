package service

import (
	"context"
	"sort"
	"time"

	"furreal/internal/calendar"
	"furreal/internal/models"
	"furreal/internal/repository"
)

// FeedService aggregates the viewer's daily feed.
type FeedService struct {
	realRepo       repository.RealRepository
	friendshipRepo repository.FriendshipRepository
}

// Feed is the viewer's daily view: their own real for the day, if any, and
// one real per accepted friend who posted today.
type Feed struct {
	MyReal      *models.Real   `json:"my_real"`
	FriendReals []*models.Real `json:"friend_reals"`
}

// NewFeedService returns a new FeedService.
func NewFeedService(realRepo repository.RealRepository, friendshipRepo repository.FriendshipRepository) *FeedService {
	return &FeedService{
		realRepo:       realRepo,
		friendshipRepo: friendshipRepo,
	}
}

// GetFeed builds the feed for the day containing ref. Friend reals are
// resolved with one friendship query and one batched real query, never one
// query per friend. Friends who have not posted today are simply absent.
// A viewer with no friends gets an empty list, not an error.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, ref time.Time) (*Feed, error) {
	start, end := calendar.DayWindow(ref)

	myReal, err := s.realRepo.GetCurrent(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	friendIDs, err := s.friendshipRepo.GetAcceptedFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	reals, err := s.realRepo.GetCurrentForUsers(ctx, friendIDs, start, end, userID)
	if err != nil {
		return nil, err
	}

	// The soft one-per-day rule can be violated; keep only the newest real
	// per friend. Rows arrive newest first, so the first one wins.
	seen := make(map[uint]bool, len(reals))
	friendReals := make([]*models.Real, 0, len(reals))
	for _, real := range reals {
		if seen[real.UserID] {
			continue
		}
		seen[real.UserID] = true
		friendReals = append(friendReals, real)
	}

	sort.SliceStable(friendReals, func(i, j int) bool {
		return friendReals[i].CreatedAt.After(friendReals[j].CreatedAt)
	})

	return &Feed{MyReal: myReal, FriendReals: friendReals}, nil
}
