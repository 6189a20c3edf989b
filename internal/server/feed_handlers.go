package server

import (
	"furreal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed. It returns the viewer's own real for today
// plus one real per friend who posted. Until the viewer has posted today the
// friends' reals stay hidden; the response reports how many are waiting.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := currentUserID(c)

	feed, err := s.feedService.GetFeed(c.Context(), userID, s.now())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	locked := feed.MyReal == nil
	friendReals := feed.FriendReals
	hiddenCount := 0
	if locked {
		hiddenCount = len(friendReals)
		friendReals = []*models.Real{}
	}

	return c.JSON(fiber.Map{
		"my_real":      feed.MyReal,
		"friend_reals": friendReals,
		"locked":       locked,
		"hidden_count": hiddenCount,
	})
}

// GetMemories handles GET /api/memories. The response always carries one
// slot per day of the trailing window, oldest first, with null reals for
// days the user did not post.
func (s *Server) GetMemories(c *fiber.Ctx) error {
	userID := currentUserID(c)

	memories, err := s.memoryService.GetMemories(c.Context(), userID, s.now())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"memories": memories})
}
