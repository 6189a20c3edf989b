package server

import (
	"net/http"

	"furreal/internal/models"
	"furreal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReal handles POST /api/reals. The image arrives as a base64 data URI.
func (s *Server) CreateReal(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Image     string   `json:"image"`
		Caption   string   `json:"caption"`
		Location  string   `json:"location"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Image == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image is required"))
	}

	real, err := s.realService.CreateReal(c.Context(), service.CreateRealInput{
		UserID:       userID,
		ImageDataURI: req.Image,
		Caption:      req.Caption,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(real)
}

// GetReal handles GET /api/reals/:id. Only the owner and accepted friends
// can see a real; everyone else gets a 404.
func (s *Server) GetReal(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	real, err := s.realService.GetVisibleReal(c.Context(), userID, realID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(real)
}

// GetRealImage handles GET /api/reals/:id/image, serving the raw bytes.
func (s *Server) GetRealImage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	real, err := s.realService.GetVisibleReal(c.Context(), userID, realID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	if !real.HasImage() {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Image", realID))
	}

	c.Set(fiber.HeaderContentType, http.DetectContentType(real.ImgData))
	c.Set(fiber.HeaderCacheControl, "private, max-age=86400")
	return c.Send(real.ImgData)
}

// GetRealThumbnail handles GET /api/reals/:id/thumbnail, serving the webp
// thumbnail generated at capture time.
func (s *Server) GetRealThumbnail(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	real, err := s.realService.GetVisibleReal(c.Context(), userID, realID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	if len(real.ThumbData) == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Thumbnail", realID))
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, "private, max-age=86400")
	return c.Send(real.ThumbData)
}

// LikeReal handles POST /api/reals/:id/like. Liking twice is a no-op.
func (s *Server) LikeReal(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	real, likeErr := s.realService.Like(c.Context(), userID, realID)
	if likeErr != nil {
		return models.RespondWithAppError(c, likeErr)
	}

	return c.JSON(real)
}

// UnlikeReal handles DELETE /api/reals/:id/like.
func (s *Server) UnlikeReal(c *fiber.Ctx) error {
	userID := currentUserID(c)
	realID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	real, unlikeErr := s.realService.Unlike(c.Context(), userID, realID)
	if unlikeErr != nil {
		return models.RespondWithAppError(c, unlikeErr)
	}

	return c.JSON(real)
}
