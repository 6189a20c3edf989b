package server

import (
	"furreal/internal/models"
	"furreal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/reals/:id/comments, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, listErr := s.commentService.ListComments(c.Context(), userID, realID)
	if listErr != nil {
		return models.RespondWithAppError(c, listErr)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment handles POST /api/reals/:id/comments.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, createErr := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		RealID: realID,
		UserID: userID,
		Body:   req.Body,
	})
	if createErr != nil {
		return models.RespondWithAppError(c, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
