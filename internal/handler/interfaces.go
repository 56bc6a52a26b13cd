package handler

import (
	"context"

	"github.com/mishasvintus/gamenight/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// GroupServiceInterface defines the interface for group operations.
type GroupServiceInterface interface {
	GetGroupGames(ctx context.Context, groupID string) (*domain.GroupGames, error)
	GetUserGroups(ctx context.Context, username string) (*domain.UserGroups, error)
	SendInvite(ctx context.Context, inviter, groupID, invitee string) (*domain.Membership, error)
	JoinGroup(ctx context.Context, username, groupID string) (*domain.Membership, error)
	DeclineOrExitGroup(ctx context.Context, username, groupID string) (bool, error)
	CreateGroup(ctx context.Context, creator, name string, invited []string) (*domain.CreateGroupResult, error)
	UpdateGroupName(ctx context.Context, caller, groupID, name string) (*domain.Group, error)
	DeleteGroup(ctx context.Context, caller, groupID string) error
	VoteGroupGame(ctx context.Context, username, groupID string, gameID domain.GameID) (*domain.Membership, error)
}
