// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math/rand"
	"time"

	"furreal/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SharedPassword is the plaintext password every seeded user gets, so demo
// accounts can be logged into.
const SharedPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	rng          *rand.Rand
	passwordHash []byte
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())

	// Hash once; bcrypt per user makes large seeds crawl.
	hash, err := bcrypt.GenerateFromPassword([]byte(SharedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: bcrypt failed: %v", err)
	}

	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: hash,
	}
}

// CreateUser persists a user with generated identity fields. The numeric
// suffix keeps usernames and emails unique across gofakeit collisions.
func (f *Factory) CreateUser(n int) (*models.User, error) {
	username := fmt.Sprintf("%s%d", gofakeit.Username(), n)
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Password: string(f.passwordHash),
		FullName: gofakeit.Name(),
		Bio:      gofakeit.Sentence(8),
		Location: gofakeit.City(),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed: create user: %w", err)
	}
	return user, nil
}

// CreateFriendship persists a friendship row in the given state.
func (f *Factory) CreateFriendship(requester, addressee *models.User, status models.FriendshipStatus) error {
	friendship := &models.Friendship{
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      status,
	}
	if err := f.db.Create(friendship).Error; err != nil {
		return fmt.Errorf("seed: create friendship: %w", err)
	}
	return nil
}

// CreateReal persists a real with a generated photo, back-dated to createdAt.
func (f *Factory) CreateReal(user *models.User, createdAt time.Time) (*models.Real, error) {
	img := f.photoBytes(256)
	real := &models.Real{
		UserID:    user.ID,
		ImgData:   img,
		ThumbData: f.photoBytes(64),
		Caption:   gofakeit.Sentence(4),
		Location:  gofakeit.City(),
		CreatedAt: createdAt,
	}
	if f.rng.Intn(2) == 0 {
		lat, lon := gofakeit.Latitude(), gofakeit.Longitude()
		real.Latitude, real.Longitude = &lat, &lon
	}
	if err := f.db.Create(real).Error; err != nil {
		return nil, fmt.Errorf("seed: create real: %w", err)
	}
	return real, nil
}

// CreateComment persists a comment by the user on the real.
func (f *Factory) CreateComment(real *models.Real, user *models.User, createdAt time.Time) error {
	comment := &models.Comment{
		RealID:    real.ID,
		UserID:    user.ID,
		Body:      gofakeit.Sentence(6),
		CreatedAt: createdAt,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return fmt.Errorf("seed: create comment: %w", err)
	}
	return nil
}

// CreateReaction persists a like by the user on the real.
func (f *Factory) CreateReaction(real *models.Real, user *models.User) error {
	reaction := &models.Reaction{
		RealID: real.ID,
		UserID: user.ID,
		Type:   models.ReactionLike,
	}
	if err := f.db.Create(reaction).Error; err != nil {
		return fmt.Errorf("seed: create reaction: %w", err)
	}
	return nil
}

// photoBytes encodes a square solid-color PNG. Real camera captures are out
// of reach for a seeder; a colored square keeps the image endpoints working.
func (f *Factory) photoBytes(size int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := color.RGBA{
		R: uint8(f.rng.Intn(256)),
		G: uint8(f.rng.Intn(256)),
		B: uint8(f.rng.Intn(256)),
		A: 255,
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Fatalf("seed: png encode: %v", err)
	}
	return buf.Bytes()
}
