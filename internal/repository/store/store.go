// Package store implements the group membership store on PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/repository/group"
	"github.com/mishasvintus/gamenight/internal/repository/membership"
	"github.com/mishasvintus/gamenight/internal/repository/user"
)

// Store persists groups and memberships and resolves usernames.
// Absent rows are reported as sql.ErrNoRows.
type Store struct {
	db *sql.DB
}

// New creates a new store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateGroup inserts a group together with its memberships in a single transaction.
func (s *Store) CreateGroup(ctx context.Context, g *domain.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := group.Create(ctx, tx, g); err != nil {
		return err
	}

	for i := range g.Memberships {
		m := &g.Memberships[i]
		m.GroupID = g.GroupID
		if err := membership.Create(ctx, tx, m); err != nil {
			return fmt.Errorf("failed to add %s: %w", m.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a group with all its memberships.
func (s *Store) GetGroup(ctx context.Context, groupID string) (*domain.Group, error) {
	return group.Get(ctx, s.db, groupID)
}

// UpdateGroupName renames a group.
func (s *Store) UpdateGroupName(ctx context.Context, groupID, name string) error {
	return group.UpdateName(ctx, s.db, groupID, name)
}

// DeleteGroup removes a group and every membership in it.
func (s *Store) DeleteGroup(ctx context.Context, groupID string) error {
	return group.Delete(ctx, s.db, groupID)
}

// GetMembership retrieves the membership of username in a group.
func (s *Store) GetMembership(ctx context.Context, groupID, username string) (*domain.Membership, error) {
	return membership.Get(ctx, s.db, groupID, username)
}

// CreateMembership inserts a membership.
func (s *Store) CreateMembership(ctx context.Context, m *domain.Membership) error {
	return membership.Create(ctx, s.db, m)
}

// UpdateMembership saves accepted and voted using an optimistic version check.
func (s *Store) UpdateMembership(ctx context.Context, m *domain.Membership) error {
	return membership.Update(ctx, s.db, m)
}

// LeaveGroup removes the membership of username in a group and deletes the group when
// no memberships are left. The group row stays locked until commit, so a membership
// inserted concurrently is either counted or fails its foreign key check.
func (s *Store) LeaveGroup(ctx context.Context, groupID, username string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := group.Lock(ctx, tx, groupID); err != nil {
		return false, err
	}

	if err := membership.Delete(ctx, tx, groupID, username); err != nil {
		return false, err
	}

	remaining, err := membership.Count(ctx, tx, groupID)
	if err != nil {
		return false, err
	}

	deleted := remaining == 0
	if deleted {
		if err := group.Delete(ctx, tx, groupID); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return deleted, nil
}

// ListAcceptedMemberships returns the accepted memberships of a group.
func (s *Store) ListAcceptedMemberships(ctx context.Context, groupID string) ([]domain.Membership, error) {
	return membership.ListAcceptedByGroup(ctx, s.db, groupID)
}

// ListUserMemberships returns username's memberships with the given accepted flag.
func (s *Store) ListUserMemberships(ctx context.Context, username string, accepted bool) ([]domain.Membership, error) {
	return membership.ListByUser(ctx, s.db, username, accepted)
}

// ResolveUser returns the id of the user with the given username.
func (s *Store) ResolveUser(ctx context.Context, username string) (string, error) {
	return user.GetID(ctx, s.db, username)
}
