package service

import (
	"context"

	"github.com/mishasvintus/gamenight/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// MembershipStore persists groups and memberships.
// Lookups of absent rows fail with sql.ErrNoRows; inserts that collide with an existing
// membership fail with repository.ErrDuplicate; updates that lose the version check fail
// with repository.ErrStaleVersion. LeaveGroup deletes the group together with its last
// membership.
type MembershipStore interface {
	CreateGroup(ctx context.Context, g *domain.Group) error
	GetGroup(ctx context.Context, groupID string) (*domain.Group, error)
	UpdateGroupName(ctx context.Context, groupID, name string) error
	DeleteGroup(ctx context.Context, groupID string) error
	GetMembership(ctx context.Context, groupID, username string) (*domain.Membership, error)
	CreateMembership(ctx context.Context, membership *domain.Membership) error
	UpdateMembership(ctx context.Context, membership *domain.Membership) error
	LeaveGroup(ctx context.Context, groupID, username string) (groupDeleted bool, err error)
	ListAcceptedMemberships(ctx context.Context, groupID string) ([]domain.Membership, error)
	ListUserMemberships(ctx context.Context, username string, accepted bool) ([]domain.Membership, error)
}

// LibraryQuery returns the games a user can play with others.
type LibraryQuery interface {
	ShareableLibrary(ctx context.Context, username string) (domain.GameSet, error)
}

// GameCatalog resolves game ids to catalog entries.
type GameCatalog interface {
	Games(ctx context.Context, ids []domain.GameID) ([]domain.Game, error)
}

// UserDirectory maps usernames to user ids. Unknown usernames fail with sql.ErrNoRows.
type UserDirectory interface {
	ResolveUser(ctx context.Context, username string) (string, error)
}
