package server

import (
	"furreal/internal/models"
	"furreal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/profile. Only the provided fields change.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		FullName *string `json:"full_name"`
		Bio      *string `json:"bio"`
		Location *string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   userID,
		FullName: req.FullName,
		Bio:      req.Bio,
		Location: req.Location,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// SearchUsers handles GET /api/users?q=. Matches are public profiles only.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	userID := currentUserID(c)
	query := c.Query("q")
	limit := c.QueryInt("limit", 20)

	results, err := s.userService.SearchUsers(c.Context(), query, userID, limit)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"users": results})
}
