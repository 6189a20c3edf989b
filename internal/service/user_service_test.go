package service

import (
	"context"
	"strings"
	"testing"

	"furreal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	newStub := func(u *models.User) *userRepoStub {
		return &userRepoStub{
			getByIDFn: func(context.Context, uint) (*models.User, error) {
				return u, nil
			},
			updateFn: func(context.Context, *models.User) error {
				return nil
			},
		}
	}

	t.Run("applies only the provided fields", func(t *testing.T) {
		u := &models.User{ID: 5, FullName: "Old Name", Bio: "old bio", Location: "Oslo"}
		svc := NewUserService(newStub(u))

		name := "  New Name  "
		updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 5, FullName: &name})
		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.FullName)
		assert.Equal(t, "old bio", updated.Bio)
		assert.Equal(t, "Oslo", updated.Location)
	})

	t.Run("rejects an overlong bio", func(t *testing.T) {
		u := &models.User{ID: 5}
		svc := NewUserService(newStub(u))

		bio := strings.Repeat("b", 501)
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 5, Bio: &bio})
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("propagates NotFound for unknown users", func(t *testing.T) {
		users := &userRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewUserService(users)
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 404})
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}

func TestSearchUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query returns empty without touching the store", func(t *testing.T) {
		svc := NewUserService(&userRepoStub{})
		results, err := svc.SearchUsers(ctx, "   ", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("overlong query is rejected", func(t *testing.T) {
		svc := NewUserService(&userRepoStub{})
		_, err := svc.SearchUsers(ctx, strings.Repeat("q", 65), 1, 10)
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("maps matches to public profiles", func(t *testing.T) {
		users := &userRepoStub{
			searchFn: func(_ context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
				assert.Equal(t, "pep", query)
				assert.Equal(t, uint(1), excludeID)
				return []models.User{
					{ID: 2, Username: "pepper", Email: "p@e.com", Password: "secret", FullName: "Pepper P"},
				}, nil
			},
		}
		svc := NewUserService(users)

		results, err := svc.SearchUsers(ctx, " pep ", 1, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "pepper", results[0].Username)
	})
}
