package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/service"
	"github.com/mishasvintus/gamenight/internal/service/mocks"
)

type serviceFixture struct {
	store   *mocks.MockMembershipStore
	users   *mocks.MockUserDirectory
	library *mocks.MockLibraryQuery
	catalog *mocks.MockGameCatalog
	svc     *service.GroupService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		store:   mocks.NewMockMembershipStore(ctrl),
		users:   mocks.NewMockUserDirectory(ctrl),
		library: mocks.NewMockLibraryQuery(ctrl),
		catalog: mocks.NewMockGameCatalog(ctrl),
	}
	f.svc = service.NewGroupService(f.store, f.users, f.library, f.catalog, 4, zap.NewNop())
	return f
}

func TestGroupService_VoteGroupGame(t *testing.T) {
	t.Run("toggles vote of accepted member", func(t *testing.T) {
		f := newServiceFixture(t)
		f.store.EXPECT().GetMembership(gomock.Any(), testGroupID, "alice").
			Return(&domain.Membership{GroupID: testGroupID, Username: "alice", Accepted: true, Voted: []domain.GameID{}, Version: 3}, nil)
		f.store.EXPECT().UpdateMembership(gomock.Any(), gomock.Any()).Return(nil)

		m, err := f.svc.VoteGroupGame(context.Background(), "alice", testGroupID, 20)
		require.NoError(t, err)
		assert.Equal(t, []domain.GameID{20}, m.Voted)
	})

	t.Run("vote for a game outside the common library is accepted", func(t *testing.T) {
		f := newServiceFixture(t)
		f.store.EXPECT().GetMembership(gomock.Any(), testGroupID, "alice").
			Return(&domain.Membership{Username: "alice", Accepted: true}, nil)
		f.store.EXPECT().UpdateMembership(gomock.Any(), gomock.Any()).Return(nil)

		m, err := f.svc.VoteGroupGame(context.Background(), "alice", testGroupID, 404)
		require.NoError(t, err)
		assert.True(t, m.HasVoted(404))
	})

	t.Run("pending member cannot vote", func(t *testing.T) {
		f := newServiceFixture(t)
		f.store.EXPECT().GetMembership(gomock.Any(), testGroupID, "bob").
			Return(&domain.Membership{Username: "bob"}, nil)

		_, err := f.svc.VoteGroupGame(context.Background(), "bob", testGroupID, 20)
		assert.ErrorIs(t, err, service.ErrMembershipNotFound)
	})

	t.Run("non member", func(t *testing.T) {
		f := newServiceFixture(t)
		f.store.EXPECT().GetMembership(gomock.Any(), testGroupID, "mallory").Return(nil, sql.ErrNoRows)

		_, err := f.svc.VoteGroupGame(context.Background(), "mallory", testGroupID, 20)
		assert.ErrorIs(t, err, service.ErrMembershipNotFound)
	})
}

func TestGroupService_GetUserGroups(t *testing.T) {
	const otherGroupID = "0b7c1f5e-2a44-4f61-9d0e-7f4f1b2c3a9d"
	const goneGroupID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

	t.Run("splits groups and invites", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().ResolveUser(gomock.Any(), "alice").Return("u-alice", nil)
		f.store.EXPECT().ListUserMemberships(gomock.Any(), "alice", true).
			Return([]domain.Membership{{GroupID: testGroupID}, {GroupID: goneGroupID}}, nil)
		f.store.EXPECT().ListUserMemberships(gomock.Any(), "alice", false).
			Return([]domain.Membership{{GroupID: otherGroupID}}, nil)
		f.store.EXPECT().GetGroup(gomock.Any(), testGroupID).Return(&domain.Group{GroupID: testGroupID, Name: "Game Night"}, nil)
		f.store.EXPECT().GetGroup(gomock.Any(), goneGroupID).Return(nil, sql.ErrNoRows)
		f.store.EXPECT().GetGroup(gomock.Any(), otherGroupID).Return(&domain.Group{GroupID: otherGroupID, Name: "Raid"}, nil)

		res, err := f.svc.GetUserGroups(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", res.Username)
		require.Len(t, res.Groups, 1)
		assert.Equal(t, "Game Night", res.Groups[0].Name)
		require.Len(t, res.Invites, 1)
		assert.Equal(t, "Raid", res.Invites[0].Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().ResolveUser(gomock.Any(), "ghost").Return("", sql.ErrNoRows)

		_, err := f.svc.GetUserGroups(context.Background(), "ghost")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().ResolveUser(gomock.Any(), "alice").Return("u-alice", nil)
		f.store.EXPECT().ListUserMemberships(gomock.Any(), "alice", true).Return(nil, assert.AnError)

		_, err := f.svc.GetUserGroups(context.Background(), "alice")
		assert.ErrorIs(t, err, service.ErrStorageUnavailable)
	})
}

func TestGroupService_GetGroupGames(t *testing.T) {
	f := newServiceFixture(t)
	g := testGroup(
		domain.Membership{Username: "Alice", Accepted: true, Voted: []domain.GameID{20}},
		domain.Membership{Username: "Bob", Accepted: true},
	)
	f.store.EXPECT().GetGroup(gomock.Any(), testGroupID).Return(g, nil)
	f.store.EXPECT().ListAcceptedMemberships(gomock.Any(), testGroupID).Return(g.Memberships, nil)
	f.library.EXPECT().ShareableLibrary(gomock.Any(), "Alice").Return(domain.NewGameSet(10, 20, 30), nil)
	f.library.EXPECT().ShareableLibrary(gomock.Any(), "Bob").Return(domain.NewGameSet(20, 30, 40), nil)
	f.catalog.EXPECT().Games(gomock.Any(), []domain.GameID{20, 30}).Return(nil, nil)

	view, err := f.svc.GetGroupGames(context.Background(), testGroupID)
	require.NoError(t, err)
	require.Len(t, view.Candidates, 2)
	assert.Equal(t, []string{"Alice"}, view.Candidates[0].Voters)
	assert.Empty(t, view.Candidates[1].Voters)
}

func TestGroupService_DelegatesLifecycle(t *testing.T) {
	f := newServiceFixture(t)
	f.store.EXPECT().LeaveGroup(gomock.Any(), testGroupID, "alice").Return(true, nil)

	deleted, err := f.svc.DeclineOrExitGroup(context.Background(), "alice", testGroupID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
