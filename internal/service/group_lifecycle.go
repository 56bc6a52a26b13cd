package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mishasvintus/gamenight/internal/domain"
)

// GroupLifecycle creates groups, moves memberships through invite, join and exit,
// and dissolves groups once nobody is left in them.
type GroupLifecycle struct {
	store  MembershipStore
	users  UserDirectory
	logger *zap.Logger
}

// NewGroupLifecycle creates a new group lifecycle.
func NewGroupLifecycle(store MembershipStore, users UserDirectory, logger *zap.Logger) *GroupLifecycle {
	return &GroupLifecycle{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// CreateGroup creates a group owned by creator and invites the given users.
// Invitees that cannot be resolved, repeat, or name the creator are skipped and
// reported in the result instead of failing the call. Blank names are ignored.
func (l *GroupLifecycle) CreateGroup(ctx context.Context, creator, name string, invited []string) (*domain.CreateGroupResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGroupNameRequired
	}

	creatorID, err := l.resolveUser(ctx, creator)
	if err != nil {
		return nil, err
	}

	g := &domain.Group{
		GroupID: uuid.NewString(),
		Name:    name,
		Memberships: []domain.Membership{
			{UserID: creatorID, Username: creator, Accepted: true, Voted: []domain.GameID{}},
		},
	}

	skipped := make([]string, 0)
	seen := map[string]bool{creator: true}
	for _, invitee := range invited {
		invitee = strings.TrimSpace(invitee)
		if invitee == "" {
			continue
		}
		if seen[invitee] {
			skipped = append(skipped, invitee)
			continue
		}
		seen[invitee] = true

		userID, err := l.resolveUser(ctx, invitee)
		if err != nil {
			l.logger.Warn("Skipping invitee",
				zap.String("creator", creator),
				zap.String("username", invitee),
				zap.Error(err))
			skipped = append(skipped, invitee)
			continue
		}

		g.Memberships = append(g.Memberships, domain.Membership{
			UserID:   userID,
			Username: invitee,
			Voted:    []domain.GameID{},
		})
	}

	if err := l.store.CreateGroup(ctx, g); err != nil {
		return nil, storageError("create group", err, nil)
	}

	l.logger.Info("Group created",
		zap.String("groupID", g.GroupID),
		zap.String("creator", creator),
		zap.Int("invited", len(g.Memberships)-1),
		zap.Int("skipped", len(skipped)))

	return &domain.CreateGroupResult{Group: g, Skipped: skipped}, nil
}

// Invite creates a pending membership for invitee. The inviter must be an accepted member.
func (l *GroupLifecycle) Invite(ctx context.Context, inviter, groupID, invitee string) (*domain.Membership, error) {
	if _, err := l.resolveUser(ctx, inviter); err != nil {
		return nil, err
	}

	g, err := l.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !hasAcceptedMember(g, inviter) {
		return nil, ErrMembershipNotFound
	}

	inviteeID, err := l.resolveUser(ctx, invitee)
	if err != nil {
		return nil, err
	}

	for _, m := range g.Memberships {
		if m.Username == invitee {
			return nil, ErrMembershipExists
		}
	}

	m := &domain.Membership{
		GroupID:  g.GroupID,
		UserID:   inviteeID,
		Username: invitee,
		Voted:    []domain.GameID{},
	}
	if err := l.store.CreateMembership(ctx, m); err != nil {
		return nil, storageError("create membership", err, ErrGroupNotFound)
	}

	return m, nil
}

// Join accepts a pending invite.
func (l *GroupLifecycle) Join(ctx context.Context, username, groupID string) (*domain.Membership, error) {
	if !validGroupID(groupID) {
		return nil, ErrInviteNotFound
	}

	m, err := l.store.GetMembership(ctx, groupID, username)
	if err != nil {
		return nil, storageError("get membership", err, ErrInviteNotFound)
	}
	if m.Accepted {
		return nil, ErrInviteNotFound
	}

	m.Accepted = true
	if err := l.store.UpdateMembership(ctx, m); err != nil {
		return nil, storageError("accept invite", err, ErrInviteNotFound)
	}

	return m, nil
}

// DeclineOrExit removes username's membership, pending or accepted. When that leaves the
// group without members the group is deleted too. Returns whether the group was deleted.
func (l *GroupLifecycle) DeclineOrExit(ctx context.Context, username, groupID string) (bool, error) {
	if !validGroupID(groupID) {
		return false, ErrMembershipNotFound
	}

	deleted, err := l.store.LeaveGroup(ctx, groupID, username)
	if err != nil {
		return false, storageError("leave group", err, ErrMembershipNotFound)
	}
	if !deleted {
		return false, nil
	}

	l.logger.Info("Group dissolved after last member left",
		zap.String("groupID", groupID),
		zap.String("username", username))

	return true, nil
}

// Rename changes a group's display name. The caller must be an accepted member.
func (l *GroupLifecycle) Rename(ctx context.Context, caller, groupID, name string) (*domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGroupNameRequired
	}

	g, err := l.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !hasAcceptedMember(g, caller) {
		return nil, ErrMembershipNotFound
	}

	if err := l.store.UpdateGroupName(ctx, groupID, name); err != nil {
		return nil, storageError("rename group", err, ErrGroupNotFound)
	}

	g.Name = name
	return g, nil
}

// Delete removes a group with all its memberships. The caller must be an accepted member.
func (l *GroupLifecycle) Delete(ctx context.Context, caller, groupID string) error {
	g, err := l.getGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if !hasAcceptedMember(g, caller) {
		return ErrMembershipNotFound
	}

	if err := l.store.DeleteGroup(ctx, groupID); err != nil {
		return storageError("delete group", err, ErrGroupNotFound)
	}

	l.logger.Info("Group deleted",
		zap.String("groupID", groupID),
		zap.String("caller", caller))

	return nil
}

func (l *GroupLifecycle) getGroup(ctx context.Context, groupID string) (*domain.Group, error) {
	if !validGroupID(groupID) {
		return nil, ErrGroupNotFound
	}

	g, err := l.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, storageError("get group", err, ErrGroupNotFound)
	}
	return g, nil
}

func (l *GroupLifecycle) resolveUser(ctx context.Context, username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrUserNotFound
	}

	userID, err := l.users.ResolveUser(ctx, username)
	if err != nil {
		return "", storageError("resolve user", err, ErrUserNotFound)
	}
	return userID, nil
}

func hasAcceptedMember(g *domain.Group, username string) bool {
	return slices.Contains(g.AcceptedMembers(), username)
}

// validGroupID rejects ids that cannot name a stored group before they reach the database.
func validGroupID(groupID string) bool {
	_, err := uuid.Parse(groupID)
	return err == nil
}
