package seed

import (
	"testing"
	"time"

	"furreal/internal/calendar"
	"furreal/internal/database"
	"furreal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{NumUsers: 6, Days: 5}))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 6)

	t.Run("accounts can log in with the shared password", func(t *testing.T) {
		err := bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte(SharedPassword))
		assert.NoError(t, err)
	})

	t.Run("friendships exist in both states", func(t *testing.T) {
		var accepted, pending int64
		db.Model(&models.Friendship{}).Where("status = ?", models.FriendshipStatusAccepted).Count(&accepted)
		db.Model(&models.Friendship{}).Where("status = ?", models.FriendshipStatusPending).Count(&pending)
		assert.Positive(t, accepted)
		assert.Positive(t, pending)
	})

	t.Run("reals carry photos and stay inside the window", func(t *testing.T) {
		var reals []models.Real
		require.NoError(t, db.Find(&reals).Error)
		require.NotEmpty(t, reals)

		start, _ := calendar.TrailingWindow(time.Now(), 5)
		for _, r := range reals {
			assert.True(t, r.HasImage())
			assert.NotEmpty(t, r.ThumbData)
			assert.False(t, r.CreatedAt.Before(start))
			assert.False(t, r.CreatedAt.After(time.Now()))
		}
	})

	t.Run("comments and likes attach to seeded reals", func(t *testing.T) {
		var comments []models.Comment
		require.NoError(t, db.Find(&comments).Error)
		var realIDs []uint
		db.Model(&models.Real{}).Pluck("id", &realIDs)
		ids := make(map[uint]bool, len(realIDs))
		for _, id := range realIDs {
			ids[id] = true
		}
		for _, c := range comments {
			assert.True(t, ids[c.RealID])
		}
	})
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{NumUsers: 4, Days: 3}))
	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{
		&models.User{}, &models.Real{}, &models.Friendship{},
		&models.Reaction{}, &models.Comment{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	// reseeding a cleared database works
	require.NoError(t, s.Run(Options{NumUsers: 4, Days: 3}))
}

func TestSeederRejectsTinyGraphs(t *testing.T) {
	db := setupSeedDB(t)
	assert.Error(t, NewSeeder(db).Run(Options{NumUsers: 1}))
}
