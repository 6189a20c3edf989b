package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furreal/internal/config"
	"furreal/internal/database"
	"furreal/internal/models"
	"furreal/internal/repository"
	"furreal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testRefTime pins the server clock so day-window behavior is deterministic.
var testRefTime = time.Date(2024, time.July, 15, 13, 0, 0, 0, time.UTC)

func testServerConfig() *config.Config {
	return &config.Config{
		Env:            "test",
		JWTSecret:      "handler-test-secret-0123456789abcdef",
		ImageMaxSizeMB: 4,
	}
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestServer wires a Server against an in-memory database without
// touching the global metrics registry.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := setupHandlerTestDB(t)
	cfg := testServerConfig()

	userRepo := repository.NewUserRepository(db)
	realRepo := repository.NewRealRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		userRepo:       userRepo,
		realRepo:       realRepo,
		friendshipRepo: friendshipRepo,
		commentRepo:    commentRepo,
		now:            func() time.Time { return testRefTime },
	}
	s.realService = service.NewRealService(realRepo, friendshipRepo, cfg)
	s.feedService = service.NewFeedService(realRepo, friendshipRepo)
	s.memoryService = service.NewMemoryService(realRepo)
	s.friendService = service.NewFriendService(friendshipRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, s.realService)
	s.userService = service.NewUserService(userRepo)
	return s, db
}

// asUser injects the resolved user ID the way AuthRequired would.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$notacheckablehashbutok",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func befriend(t *testing.T, db *gorm.DB, a, b uint) {
	t.Helper()
	f := &models.Friendship{RequesterID: a, AddresseeID: b, Status: models.FriendshipStatusAccepted}
	require.NoError(t, db.Create(f).Error)
}

func createRealAt(t *testing.T, db *gorm.DB, userID uint, at time.Time) *models.Real {
	t.Helper()
	real := &models.Real{
		UserID:    userID,
		ImgData:   pngBytes(t, 4, 4),
		ThumbData: []byte{0x52, 0x49, 0x46, 0x46},
		CreatedAt: at,
	}
	require.NoError(t, db.Create(real).Error)
	return real
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 50, A: 255})
		}
	}
	buf := bytes.NewBuffer(nil)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
