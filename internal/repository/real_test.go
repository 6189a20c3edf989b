package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"furreal/internal/calendar"
	"furreal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	u := &models.User{
		Username: fmt.Sprintf("%s_%d", prefix, ts),
		Email:    fmt.Sprintf("%s_%d@e.com", prefix, ts),
		Password: "hash",
	}
	require.NoError(t, testDB.Create(u).Error)
	return u
}

func TestRealRepository_Integration(t *testing.T) {
	repo := NewRealRepository(testDB)
	ctx := context.Background()

	owner := newTestUser(t, "r_owner")
	viewer := newTestUser(t, "r_viewer")

	ref := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	start, end := calendar.DayWindow(ref)

	t.Run("Create and GetCurrent", func(t *testing.T) {
		real := &models.Real{
			UserID:    owner.ID,
			ImgData:   []byte{0xFF, 0xD8},
			Caption:   "morning",
			CreatedAt: ref,
		}
		require.NoError(t, repo.Create(ctx, real))

		got, err := repo.GetCurrent(ctx, owner.ID, start, end)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, real.ID, got.ID)
		assert.Equal(t, "morning", got.Caption)
	})

	t.Run("GetCurrent outside window returns nil", func(t *testing.T) {
		nextStart, nextEnd := calendar.DayWindow(ref.AddDate(0, 0, 1))
		got, err := repo.GetCurrent(ctx, owner.ID, nextStart, nextEnd)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetCurrent prefers the most recent real", func(t *testing.T) {
		later := &models.Real{
			UserID:    owner.ID,
			ImgData:   []byte{0xFF, 0xD8},
			Caption:   "retake",
			CreatedAt: ref.Add(2 * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, later))

		got, err := repo.GetCurrent(ctx, owner.ID, start, end)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "retake", got.Caption)
	})

	t.Run("Like is idempotent", func(t *testing.T) {
		real, err := repo.GetCurrent(ctx, owner.ID, start, end)
		require.NoError(t, err)

		require.NoError(t, repo.Like(ctx, viewer.ID, real.ID))
		require.NoError(t, repo.Like(ctx, viewer.ID, real.ID))

		var count int64
		testDB.Model(&models.Reaction{}).
			Where("real_id = ? AND user_id = ?", real.ID, viewer.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Liked annotation follows the viewer", func(t *testing.T) {
		real, err := repo.GetCurrent(ctx, owner.ID, start, end)
		require.NoError(t, err)

		asViewer, err := repo.GetByID(ctx, real.ID, viewer.ID)
		require.NoError(t, err)
		assert.True(t, asViewer.Liked)

		asOwner, err := repo.GetByID(ctx, real.ID, owner.ID)
		require.NoError(t, err)
		assert.False(t, asOwner.Liked)
	})

	t.Run("Unlike removes the reaction and tolerates repeats", func(t *testing.T) {
		real, err := repo.GetCurrent(ctx, owner.ID, start, end)
		require.NoError(t, err)

		require.NoError(t, repo.Unlike(ctx, viewer.ID, real.ID))
		require.NoError(t, repo.Unlike(ctx, viewer.ID, real.ID))

		got, err := repo.GetByID(ctx, real.ID, viewer.ID)
		require.NoError(t, err)
		assert.False(t, got.Liked)
	})

	t.Run("CommentsCount annotation", func(t *testing.T) {
		real, err := repo.GetCurrent(ctx, owner.ID, start, end)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			c := &models.Comment{RealID: real.ID, UserID: viewer.ID, Body: fmt.Sprintf("c%d", i)}
			require.NoError(t, testDB.Create(c).Error)
		}

		got, err := repo.GetByID(ctx, real.ID, viewer.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.CommentsCount)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999, viewer.ID)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}

func TestRealRepository_GetCurrentForUsers(t *testing.T) {
	repo := NewRealRepository(testDB)
	ctx := context.Background()

	viewer := newTestUser(t, "b_viewer")
	alice := newTestUser(t, "b_alice")
	bob := newTestUser(t, "b_bob")
	carol := newTestUser(t, "b_carol")

	ref := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	start, end := calendar.DayWindow(ref)

	for i, u := range []*models.User{alice, bob} {
		real := &models.Real{
			UserID:    u.ID,
			ImgData:   []byte{0xFF, 0xD8},
			CreatedAt: ref.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, real))
	}
	// Carol posted yesterday only.
	stale := &models.Real{UserID: carol.ID, ImgData: []byte{0xFF, 0xD8}, CreatedAt: ref.AddDate(0, 0, -1)}
	require.NoError(t, repo.Create(ctx, stale))

	t.Run("batched fetch skips users without a current real", func(t *testing.T) {
		reals, err := repo.GetCurrentForUsers(ctx, []uint{alice.ID, bob.ID, carol.ID}, start, end, viewer.ID)
		require.NoError(t, err)
		require.Len(t, reals, 2)

		// Newest first, owner preloaded.
		assert.Equal(t, bob.ID, reals[0].UserID)
		assert.Equal(t, bob.Username, reals[0].User.Username)
		assert.Equal(t, alice.ID, reals[1].UserID)
	})

	t.Run("empty id list short-circuits", func(t *testing.T) {
		reals, err := repo.GetCurrentForUsers(ctx, nil, start, end, viewer.ID)
		require.NoError(t, err)
		assert.Empty(t, reals)
	})
}

func TestRealRepository_GetByUserBetween(t *testing.T) {
	repo := NewRealRepository(testDB)
	ctx := context.Background()

	owner := newTestUser(t, "m_owner")
	ref := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

	for _, daysAgo := range []int{0, 3, 9, 20} {
		real := &models.Real{
			UserID:    owner.ID,
			ImgData:   []byte{0xFF, 0xD8},
			CreatedAt: ref.AddDate(0, 0, -daysAgo),
		}
		require.NoError(t, repo.Create(ctx, real))
	}

	start, end := calendar.TrailingWindow(ref, calendar.MemoryWindowDays)
	reals, err := repo.GetByUserBetween(ctx, owner.ID, start, end)
	require.NoError(t, err)
	require.Len(t, reals, 3, "the 20-day-old real falls outside the window")

	// Oldest first.
	assert.True(t, reals[0].CreatedAt.Before(reals[1].CreatedAt))
	assert.True(t, reals[1].CreatedAt.Before(reals[2].CreatedAt))
}
