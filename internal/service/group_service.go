package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/mishasvintus/gamenight/internal/domain"
)

// GroupService is the entry point for group operations. The acting user is always
// passed in explicitly.
type GroupService struct {
	store     MembershipStore
	lifecycle *GroupLifecycle
	ledger    *VoteLedger
	assembler *GroupGamesAssembler
	logger    *zap.Logger
}

// NewGroupService wires the group components over the given collaborators.
func NewGroupService(
	store MembershipStore,
	users UserDirectory,
	library LibraryQuery,
	catalog GameCatalog,
	maxConcurrency int,
	logger *zap.Logger,
) *GroupService {
	ledger := NewVoteLedger(store)
	resolver := NewCommonLibraryResolver(library, maxConcurrency)

	return &GroupService{
		store:     store,
		lifecycle: NewGroupLifecycle(store, users, logger),
		ledger:    ledger,
		assembler: NewGroupGamesAssembler(store, resolver, ledger, catalog),
		logger:    logger,
	}
}

// GetGroupGames returns the group's common games with their voters.
func (s *GroupService) GetGroupGames(ctx context.Context, groupID string) (*domain.GroupGames, error) {
	return s.assembler.Assemble(ctx, groupID)
}

// GetUserGroups lists the groups username belongs to and the invites waiting on them.
func (s *GroupService) GetUserGroups(ctx context.Context, username string) (*domain.UserGroups, error) {
	if _, err := s.lifecycle.resolveUser(ctx, username); err != nil {
		return nil, err
	}

	groups, err := s.groupsOf(ctx, username, true)
	if err != nil {
		return nil, err
	}

	invites, err := s.groupsOf(ctx, username, false)
	if err != nil {
		return nil, err
	}

	return &domain.UserGroups{
		Username: username,
		Groups:   groups,
		Invites:  invites,
	}, nil
}

// SendInvite invites invitee to the group on behalf of inviter.
func (s *GroupService) SendInvite(ctx context.Context, inviter, groupID, invitee string) (*domain.Membership, error) {
	return s.lifecycle.Invite(ctx, inviter, groupID, invitee)
}

// JoinGroup accepts username's pending invite.
func (s *GroupService) JoinGroup(ctx context.Context, username, groupID string) (*domain.Membership, error) {
	return s.lifecycle.Join(ctx, username, groupID)
}

// DeclineOrExitGroup drops username's invite or membership. Returns whether the group was deleted.
func (s *GroupService) DeclineOrExitGroup(ctx context.Context, username, groupID string) (bool, error) {
	return s.lifecycle.DeclineOrExit(ctx, username, groupID)
}

// CreateGroup creates a group and invites as many of invited as can be resolved.
func (s *GroupService) CreateGroup(ctx context.Context, creator, name string, invited []string) (*domain.CreateGroupResult, error) {
	return s.lifecycle.CreateGroup(ctx, creator, name, invited)
}

// UpdateGroupName renames a group on behalf of caller.
func (s *GroupService) UpdateGroupName(ctx context.Context, caller, groupID, name string) (*domain.Group, error) {
	return s.lifecycle.Rename(ctx, caller, groupID, name)
}

// DeleteGroup deletes a group on behalf of caller.
func (s *GroupService) DeleteGroup(ctx context.Context, caller, groupID string) error {
	return s.lifecycle.Delete(ctx, caller, groupID)
}

// VoteGroupGame toggles username's vote for gameID. Only accepted members can vote.
// Whether gameID is one of the group's common games is not checked.
func (s *GroupService) VoteGroupGame(ctx context.Context, username, groupID string, gameID domain.GameID) (*domain.Membership, error) {
	if !validGroupID(groupID) {
		return nil, ErrMembershipNotFound
	}

	m, err := s.store.GetMembership(ctx, groupID, username)
	if err != nil {
		return nil, storageError("get membership", err, ErrMembershipNotFound)
	}
	if !m.Accepted {
		return nil, ErrMembershipNotFound
	}

	added, err := s.ledger.ToggleVote(ctx, m, gameID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Vote toggled",
		zap.String("groupID", groupID),
		zap.String("username", username),
		zap.Int64("gameID", int64(gameID)),
		zap.Bool("added", added))

	return m, nil
}

func (s *GroupService) groupsOf(ctx context.Context, username string, accepted bool) ([]domain.Group, error) {
	memberships, err := s.store.ListUserMemberships(ctx, username, accepted)
	if err != nil {
		return nil, storageError("list user memberships", err, nil)
	}

	groups := make([]domain.Group, 0, len(memberships))
	for _, m := range memberships {
		g, err := s.store.GetGroup(ctx, m.GroupID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Dissolved since the membership list was read.
				continue
			}
			return nil, storageError("get group", err, nil)
		}
		groups = append(groups, *g)
	}

	return groups, nil
}
