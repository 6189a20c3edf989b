package repository

import (
	"context"
	"testing"

	"furreal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendshipRepository_Integration(t *testing.T) {
	repo := NewFriendshipRepository(testDB)
	ctx := context.Background()

	u1 := newTestUser(t, "fs1")
	u2 := newTestUser(t, "fs2")

	t.Run("Create and GetPendingRequests", func(t *testing.T) {
		friendship := &models.Friendship{
			RequesterID: u1.ID,
			AddresseeID: u2.ID,
			Status:      models.FriendshipStatusPending,
		}
		require.NoError(t, repo.Create(ctx, friendship))

		reqs, err := repo.GetPendingRequests(ctx, u2.ID)
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, u1.ID, reqs[0].RequesterID)
		assert.Equal(t, u1.Username, reqs[0].Requester.Username)

		sent, err := repo.GetSentRequests(ctx, u1.ID)
		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, u2.ID, sent[0].AddresseeID)
	})

	t.Run("Duplicate request conflicts", func(t *testing.T) {
		dup := &models.Friendship{
			RequesterID: u1.ID,
			AddresseeID: u2.ID,
			Status:      models.FriendshipStatusPending,
		}
		err := repo.Create(ctx, dup)
		assert.Equal(t, models.CodeConflict, models.ErrorCode(err))
	})

	t.Run("GetBetween is direction-agnostic", func(t *testing.T) {
		forward, err := repo.GetBetween(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		require.NotNil(t, forward)

		backward, err := repo.GetBetween(ctx, u2.ID, u1.ID)
		require.NoError(t, err)
		require.NotNil(t, backward)
		assert.Equal(t, forward.ID, backward.ID)
	})

	t.Run("Pending pair are not friends yet", func(t *testing.T) {
		ok, err := repo.IsFriend(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Accept flips pending to accepted", func(t *testing.T) {
		f, err := repo.GetBetween(ctx, u1.ID, u2.ID)
		require.NoError(t, err)

		require.NoError(t, repo.Accept(ctx, f.ID))

		ok, err := repo.IsFriend(ctx, u2.ID, u1.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		friends, err := repo.GetFriends(ctx, u1.ID)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, u2.Username, friends[0].Username)
	})

	t.Run("Accept on a non-pending row fails the precondition", func(t *testing.T) {
		f, err := repo.GetBetween(ctx, u1.ID, u2.ID)
		require.NoError(t, err)

		err = repo.Accept(ctx, f.ID)
		assert.Equal(t, models.CodePreconditionFailed, models.ErrorCode(err))

		// The row is untouched.
		still, err := repo.GetBetween(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		assert.Equal(t, models.FriendshipStatusAccepted, still.Status)
	})

	t.Run("GetAcceptedFriendIDs folds both directions", func(t *testing.T) {
		u3 := newTestUser(t, "fs3")
		incoming := &models.Friendship{
			RequesterID: u3.ID,
			AddresseeID: u1.ID,
			Status:      models.FriendshipStatusAccepted,
		}
		require.NoError(t, repo.Create(ctx, incoming))

		ids, err := repo.GetAcceptedFriendIDs(ctx, u1.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{u2.ID, u3.ID}, ids)
	})

	t.Run("RemoveBetween deletes the accepted edge", func(t *testing.T) {
		require.NoError(t, repo.RemoveBetween(ctx, u2.ID, u1.ID))

		ok, err := repo.IsFriend(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		gone, err := repo.GetBetween(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("RemoveBetween without a friendship is NotFound", func(t *testing.T) {
		err := repo.RemoveBetween(ctx, u1.ID, u2.ID)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})

	t.Run("RemoveBetween ignores pending rows", func(t *testing.T) {
		u4 := newTestUser(t, "fs4")
		pending := &models.Friendship{
			RequesterID: u1.ID,
			AddresseeID: u4.ID,
			Status:      models.FriendshipStatusPending,
		}
		require.NoError(t, repo.Create(ctx, pending))

		err := repo.RemoveBetween(ctx, u1.ID, u4.ID)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

		// The pending request survives the failed removal.
		still, err := repo.GetBetween(ctx, u1.ID, u4.ID)
		require.NoError(t, err)
		require.NotNil(t, still)
		assert.Equal(t, models.FriendshipStatusPending, still.Status)
	})

	t.Run("Delete drops a request by id", func(t *testing.T) {
		u5 := newTestUser(t, "fs5")
		f := &models.Friendship{RequesterID: u1.ID, AddresseeID: u5.ID, Status: models.FriendshipStatusPending}
		require.NoError(t, repo.Create(ctx, f))

		require.NoError(t, repo.Delete(ctx, f.ID))

		_, err := repo.GetByID(ctx, f.ID)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}
