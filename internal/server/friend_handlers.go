package server

import (
	"furreal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFriends handles GET /api/friends.
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID := currentUserID(c)

	friends, err := s.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	profiles := make([]models.PublicProfile, 0, len(friends))
	for _, f := range friends {
		profiles = append(profiles, f.Public())
	}
	return c.JSON(fiber.Map{"friends": profiles})
}

// SendFriendRequest handles POST /api/friends/requests/:userId.
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, reqErr := s.friendService.SendFriendRequest(c.Context(), userID, targetID)
	if reqErr != nil {
		return models.RespondWithAppError(c, reqErr)
	}

	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests.
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	userID := currentUserID(c)

	requests, err := s.friendService.GetPendingRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"requests": requests})
}

// GetSentRequests handles GET /api/friends/requests/sent.
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	userID := currentUserID(c)

	requests, err := s.friendService.GetSentRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"requests": requests})
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept.
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	friendship, acceptErr := s.friendService.AcceptFriendRequest(c.Context(), userID, requestID)
	if acceptErr != nil {
		return models.RespondWithAppError(c, acceptErr)
	}

	return c.JSON(friendship)
}

// IgnoreFriendRequest handles POST /api/friends/requests/:requestId/ignore.
func (s *Server) IgnoreFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	if ignoreErr := s.friendService.IgnoreFriendRequest(c.Context(), userID, requestID); ignoreErr != nil {
		return models.RespondWithAppError(c, ignoreErr)
	}

	return c.JSON(fiber.Map{"message": "Friend request ignored"})
}

// GetFriendshipStatus handles GET /api/friends/status/:userId.
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	userID := currentUserID(c)
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	view, statusErr := s.friendService.GetStatus(c.Context(), userID, otherID)
	if statusErr != nil {
		return models.RespondWithAppError(c, statusErr)
	}

	return c.JSON(view)
}

// RemoveFriend handles DELETE /api/friends/:userId.
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID := currentUserID(c)
	friendID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if removeErr := s.friendService.RemoveFriend(c.Context(), userID, friendID); removeErr != nil {
		return models.RespondWithAppError(c, removeErr)
	}

	return c.JSON(fiber.Map{"message": "Friend removed"})
}
