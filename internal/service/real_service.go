package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"furreal/internal/calendar"
	"furreal/internal/config"
	"furreal/internal/imagedata"
	"furreal/internal/middleware"
	"furreal/internal/models"
	"furreal/internal/repository"
	"furreal/internal/validation"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	thumbMaxDim  = 256
	thumbQuality = 80
)

// RealService provides capture, lookup and reaction logic for reals.
type RealService struct {
	realRepo       repository.RealRepository
	friendshipRepo repository.FriendshipRepository
	cfg            *config.Config
}

// CreateRealInput carries everything needed to capture a new real.
type CreateRealInput struct {
	UserID       uint
	ImageDataURI string
	Caption      string
	Location     string
	Latitude     *float64
	Longitude    *float64
}

// NewRealService returns a new RealService.
func NewRealService(realRepo repository.RealRepository, friendshipRepo repository.FriendshipRepository, cfg *config.Config) *RealService {
	return &RealService{
		realRepo:       realRepo,
		friendshipRepo: friendshipRepo,
		cfg:            cfg,
	}
}

// CreateReal decodes the submitted data URI, validates the capture fields and
// persists the real with a webp thumbnail. Posting again on the same day is
// allowed; readers resolve the most recent real for the day.
func (s *RealService) CreateReal(ctx context.Context, in CreateRealInput) (*models.Real, error) {
	if err := validation.ValidateCaption(in.Caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	_, imgBytes, err := imagedata.ParseDataURI(in.ImageDataURI)
	if err != nil {
		return nil, models.NewValidationError("Image must be a base64 data URI")
	}
	if len(imgBytes) == 0 {
		return nil, models.NewValidationError("Image is empty")
	}
	maxBytes := s.cfg.ImageMaxSizeMB * 1024 * 1024
	if maxBytes > 0 && len(imgBytes) > maxBytes {
		return nil, models.NewValidationError(fmt.Sprintf("Image exceeds the %dMB limit", s.cfg.ImageMaxSizeMB))
	}

	thumb, err := buildThumbnail(imgBytes)
	if err != nil {
		return nil, models.NewValidationError("Image could not be decoded")
	}

	real := &models.Real{
		UserID:    in.UserID,
		ImgData:   imgBytes,
		ThumbData: thumb,
		Caption:   in.Caption,
		Location:  in.Location,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := s.realRepo.Create(ctx, real); err != nil {
		return nil, err
	}
	middleware.RealsCreated.Inc()

	return s.realRepo.GetByID(ctx, real.ID, in.UserID)
}

// GetVisibleReal fetches a real the viewer is allowed to see: their own, or
// one posted by an accepted friend. Anything else reads as NotFound so the
// existence of strangers' reals is not leaked.
func (s *RealService) GetVisibleReal(ctx context.Context, viewerID, realID uint) (*models.Real, error) {
	real, err := s.realRepo.GetByID(ctx, realID, viewerID)
	if err != nil {
		return nil, err
	}
	if real.UserID == viewerID {
		return real, nil
	}
	isFriend, err := s.friendshipRepo.IsFriend(ctx, viewerID, real.UserID)
	if err != nil {
		return nil, err
	}
	if !isFriend {
		return nil, models.NewNotFoundError("Real", realID)
	}
	return real, nil
}

// GetCurrentReal returns the user's own real for the day containing ref, or
// nil when they have not posted yet.
func (s *RealService) GetCurrentReal(ctx context.Context, userID uint, ref time.Time) (*models.Real, error) {
	start, end := calendar.DayWindow(ref)
	return s.realRepo.GetCurrent(ctx, userID, start, end)
}

// Like records the viewer's reaction to a visible real. Liking a real twice
// is an idempotent no-op.
func (s *RealService) Like(ctx context.Context, viewerID, realID uint) (*models.Real, error) {
	if _, err := s.GetVisibleReal(ctx, viewerID, realID); err != nil {
		return nil, err
	}
	if err := s.realRepo.Like(ctx, viewerID, realID); err != nil {
		return nil, err
	}
	return s.realRepo.GetByID(ctx, realID, viewerID)
}

// Unlike removes the viewer's reaction from a visible real.
func (s *RealService) Unlike(ctx context.Context, viewerID, realID uint) (*models.Real, error) {
	if _, err := s.GetVisibleReal(ctx, viewerID, realID); err != nil {
		return nil, err
	}
	if err := s.realRepo.Unlike(ctx, viewerID, realID); err != nil {
		return nil, err
	}
	return s.realRepo.GetByID(ctx, realID, viewerID)
}

func buildThumbnail(imgBytes []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, err
	}
	return encodeThumbWebP(resizeToFit(src, thumbMaxDim, thumbMaxDim), thumbQuality)
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeThumbWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
