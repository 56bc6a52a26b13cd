package store_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/repository"
	"github.com/mishasvintus/gamenight/internal/repository/store"
	"github.com/mishasvintus/gamenight/internal/repository/user"
	"github.com/mishasvintus/gamenight/internal/testutil"
)

func seedUsers(t *testing.T, db *sql.DB, usernames ...string) map[string]string {
	t.Helper()
	ids := make(map[string]string, len(usernames))
	for _, name := range usernames {
		id := uuid.NewString()
		require.NoError(t, user.Create(context.Background(), db, id, name))
		ids[name] = id
	}
	return ids
}

func newGroup(ids map[string]string, name string, accepted map[string]bool) *domain.Group {
	g := &domain.Group{GroupID: uuid.NewString(), Name: name}
	for username, ok := range accepted {
		g.Memberships = append(g.Memberships, domain.Membership{
			UserID:   ids[username],
			Username: username,
			Accepted: ok,
			Voted:    []domain.GameID{},
		})
	}
	return g
}

func TestStore_CreateAndGetGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	s := store.New(db)

	ids := seedUsers(t, db, "alice", "bob")
	g := newGroup(ids, "Friday", map[string]bool{"alice": true, "bob": false})

	require.NoError(t, s.CreateGroup(ctx, g))
	require.NotNil(t, g.CreatedAt)

	got, err := s.GetGroup(ctx, g.GroupID)
	require.NoError(t, err)
	assert.Equal(t, "Friday", got.Name)
	require.Len(t, got.Memberships, 2)
	assert.Equal(t, "alice", got.Memberships[0].Username)
	assert.True(t, got.Memberships[0].Accepted)
	assert.Equal(t, "bob", got.Memberships[1].Username)
	assert.False(t, got.Memberships[1].Accepted)
	assert.Equal(t, 1, got.Memberships[1].Version)

	accepted, err := s.ListAcceptedMemberships(ctx, g.GroupID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "alice", accepted[0].Username)

	invites, err := s.ListUserMemberships(ctx, "bob", false)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, g.GroupID, invites[0].GroupID)
}

func TestStore_CreateGroupIsAtomic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	s := store.New(db)

	ids := seedUsers(t, db, "alice")
	g := newGroup(ids, "Broken", map[string]bool{"alice": true})
	g.Memberships = append(g.Memberships, domain.Membership{UserID: uuid.NewString(), Username: "ghost"})

	require.Error(t, s.CreateGroup(ctx, g))

	_, err := s.GetGroup(ctx, g.GroupID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStore_MembershipLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	s := store.New(db)

	ids := seedUsers(t, db, "alice", "bob")
	g := newGroup(ids, "Friday", map[string]bool{"alice": true})
	require.NoError(t, s.CreateGroup(ctx, g))

	invite := &domain.Membership{GroupID: g.GroupID, UserID: ids["bob"], Username: "bob", Voted: []domain.GameID{}}
	require.NoError(t, s.CreateMembership(ctx, invite))

	dup := &domain.Membership{GroupID: g.GroupID, UserID: ids["bob"], Username: "bob"}
	assert.ErrorIs(t, s.CreateMembership(ctx, dup), repository.ErrDuplicate)

	orphan := &domain.Membership{GroupID: uuid.NewString(), UserID: ids["bob"], Username: "bob"}
	assert.ErrorIs(t, s.CreateMembership(ctx, orphan), sql.ErrNoRows)

	m, err := s.GetMembership(ctx, g.GroupID, "bob")
	require.NoError(t, err)
	m.Accepted = true
	m.Voted = []domain.GameID{20, 30}
	require.NoError(t, s.UpdateMembership(ctx, m))
	assert.Equal(t, 2, m.Version)

	stale := *m
	stale.Version = 1
	assert.ErrorIs(t, s.UpdateMembership(ctx, &stale), repository.ErrStaleVersion)

	got, err := s.GetMembership(ctx, g.GroupID, "bob")
	require.NoError(t, err)
	assert.True(t, got.Accepted)
	assert.Equal(t, []domain.GameID{20, 30}, got.Voted)

	deleted, err := s.LeaveGroup(ctx, g.GroupID, "bob")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.ErrorIs(t, s.UpdateMembership(ctx, got), sql.ErrNoRows)
}

func TestStore_RenameAndDeleteGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	s := store.New(db)

	ids := seedUsers(t, db, "alice")
	g := newGroup(ids, "Friday", map[string]bool{"alice": true})
	require.NoError(t, s.CreateGroup(ctx, g))

	require.NoError(t, s.UpdateGroupName(ctx, g.GroupID, "Saturday"))
	got, err := s.GetGroup(ctx, g.GroupID)
	require.NoError(t, err)
	assert.Equal(t, "Saturday", got.Name)

	require.NoError(t, s.DeleteGroup(ctx, g.GroupID))
	assert.ErrorIs(t, s.DeleteGroup(ctx, g.GroupID), sql.ErrNoRows)
	assert.ErrorIs(t, s.UpdateGroupName(ctx, g.GroupID, "x"), sql.ErrNoRows)

	_, err = s.GetMembership(ctx, g.GroupID, "alice")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStore_LeaveGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	s := store.New(db)

	ids := seedUsers(t, db, "alice", "bob", "carol")
	g := newGroup(ids, "Friday", map[string]bool{"alice": true, "bob": false})
	require.NoError(t, s.CreateGroup(ctx, g))

	deleted, err := s.LeaveGroup(ctx, g.GroupID, "bob")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.LeaveGroup(ctx, g.GroupID, "bob")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	deleted, err = s.LeaveGroup(ctx, g.GroupID, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetGroup(ctx, g.GroupID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = s.LeaveGroup(ctx, g.GroupID, "alice")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	late := &domain.Membership{GroupID: g.GroupID, UserID: ids["carol"], Username: "carol", Voted: []domain.GameID{}}
	assert.ErrorIs(t, s.CreateMembership(ctx, late), sql.ErrNoRows)
}

func TestStore_ResolveUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.New(db)

	ids := seedUsers(t, db, "alice")

	id, err := s.ResolveUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, ids["alice"], id)

	_, err = s.ResolveUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, user.Create(context.Background(), db, uuid.NewString(), "alice"), repository.ErrDuplicate)
}
