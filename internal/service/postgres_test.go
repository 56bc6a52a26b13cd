package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/library"
	"github.com/mishasvintus/gamenight/internal/repository/game"
	"github.com/mishasvintus/gamenight/internal/repository/store"
	"github.com/mishasvintus/gamenight/internal/repository/user"
	"github.com/mishasvintus/gamenight/internal/service"
	"github.com/mishasvintus/gamenight/internal/testutil"
)

// newPostgresService seeds users with the given libraries, every entry tagged "co-op".
func newPostgresService(t *testing.T, libraries map[string][]domain.GameID) *service.GroupService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	seen := make(map[domain.GameID]bool)
	for username, ids := range libraries {
		userID := uuid.NewString()
		require.NoError(t, user.Create(ctx, db, userID, username))
		for _, id := range ids {
			if !seen[id] {
				require.NoError(t, game.Create(ctx, db, domain.Game{GameID: id, Title: "Game"}))
				seen[id] = true
			}
			require.NoError(t, game.AddToLibrary(ctx, db, userID, id, []string{"co-op"}))
		}
	}

	s := store.New(db)
	q := library.NewQuerier(db, []string{"online", "co-op"}, 5*time.Second, zap.NewNop())
	return service.NewGroupService(s, s, q, q, 4, zap.NewNop())
}

func TestGroupService_Postgres_GameNight(t *testing.T) {
	svc := newPostgresService(t, map[string][]domain.GameID{
		"Alice": {10, 20, 30},
		"Bob":   {20, 30, 40},
		"Carol": {50},
	})
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, "Alice", "Friday", []string{"Bob", "Carol", "Nobody"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nobody"}, created.Skipped)
	groupID := created.Group.GroupID

	// Carol's pending invite does not narrow the candidates.
	_, err = svc.JoinGroup(ctx, "Bob", groupID)
	require.NoError(t, err)

	_, err = svc.VoteGroupGame(ctx, "Alice", groupID, 20)
	require.NoError(t, err)

	view, err := svc.GetGroupGames(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, view.Candidates, 2)
	assert.Equal(t, domain.GameID(20), view.Candidates[0].Game.GameID)
	assert.Equal(t, "Game", view.Candidates[0].Game.Title)
	assert.Equal(t, []string{"Alice"}, view.Candidates[0].Voters)
	assert.Equal(t, domain.GameID(30), view.Candidates[1].Game.GameID)
	assert.Empty(t, view.Candidates[1].Voters)

	carol, err := svc.GetUserGroups(ctx, "Carol")
	require.NoError(t, err)
	assert.Empty(t, carol.Groups)
	require.Len(t, carol.Invites, 1)
	assert.Equal(t, groupID, carol.Invites[0].GroupID)

	deleted, err := svc.DeclineOrExitGroup(ctx, "Carol", groupID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeclineOrExitGroup(ctx, "Bob", groupID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeclineOrExitGroup(ctx, "Alice", groupID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetGroupGames(ctx, groupID)
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}

func TestGroupService_Postgres_ConcurrentVotes(t *testing.T) {
	svc := newPostgresService(t, map[string][]domain.GameID{
		"Alice": {1},
		"Bob":   {1},
		"Carol": {1},
	})
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, "Alice", "Race", []string{"Bob", "Carol"})
	require.NoError(t, err)
	groupID := created.Group.GroupID
	for _, name := range []string{"Bob", "Carol"} {
		_, err := svc.JoinGroup(ctx, name, groupID)
		require.NoError(t, err)
	}

	t.Run("different members never conflict", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 3)
		for _, name := range []string{"Alice", "Bob", "Carol"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.VoteGroupGame(ctx, name, groupID, 1)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}

		view, err := svc.GetGroupGames(ctx, groupID)
		require.NoError(t, err)
		require.Len(t, view.Candidates, 1)
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, view.Candidates[0].Voters)
	})

	t.Run("same member loses no update", func(t *testing.T) {
		const toggles = 10
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for range toggles {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.VoteGroupGame(ctx, "Alice", groupID, 2)
				if err != nil {
					assert.True(t, errors.Is(err, service.ErrConcurrentUpdate), "unexpected error: %v", err)
					return
				}
				mu.Lock()
				succeeded++
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Positive(t, succeeded)

		groups, err := svc.GetUserGroups(ctx, "Alice")
		require.NoError(t, err)
		require.Len(t, groups.Groups, 1)

		var alice *domain.Membership
		for i := range groups.Groups[0].Memberships {
			if m := &groups.Groups[0].Memberships[i]; m.Username == "Alice" {
				alice = m
			}
		}
		require.NotNil(t, alice)
		assert.Equal(t, succeeded%2 == 1, alice.HasVoted(2))
		assert.Equal(t, 2+succeeded, alice.Version, "version counts every committed write")
	})
}

func TestGroupService_Postgres_InviteRacesLastExit(t *testing.T) {
	svc := newPostgresService(t, map[string][]domain.GameID{
		"Alice": {1},
		"Bob":   {1},
	})
	ctx := context.Background()

	for range 5 {
		created, err := svc.CreateGroup(ctx, "Alice", "Race", nil)
		require.NoError(t, err)
		groupID := created.Group.GroupID

		var (
			wg        sync.WaitGroup
			inviteErr error
			exitErr   error
			deleted   bool
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, inviteErr = svc.SendInvite(ctx, "Alice", groupID, "Bob")
		}()
		go func() {
			defer wg.Done()
			deleted, exitErr = svc.DeclineOrExitGroup(ctx, "Alice", groupID)
		}()
		wg.Wait()
		require.NoError(t, exitErr)

		bob, err := svc.GetUserGroups(ctx, "Bob")
		require.NoError(t, err)

		if deleted {
			// The invite either lost to the exit or never saw an accepted inviter.
			assert.True(t, errors.Is(inviteErr, service.ErrGroupNotFound) || errors.Is(inviteErr, service.ErrMembershipNotFound),
				"unexpected invite error: %v", inviteErr)
			for _, g := range bob.Invites {
				assert.NotEqual(t, groupID, g.GroupID, "invite survived its group")
			}
			continue
		}

		require.NoError(t, inviteErr)
		ids := make([]string, 0, len(bob.Invites))
		for _, g := range bob.Invites {
			ids = append(ids, g.GroupID)
		}
		assert.Contains(t, ids, groupID)
		_, err = svc.DeclineOrExitGroup(ctx, "Bob", groupID)
		require.NoError(t, err)
	}
}
