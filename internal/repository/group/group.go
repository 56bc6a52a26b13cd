package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/repository"
	"github.com/mishasvintus/gamenight/internal/repository/membership"
)

// Create inserts a new group row and fills in its creation time.
// Memberships are not inserted here.
func Create(ctx context.Context, exec repository.DBTX, g *domain.Group) error {
	query := `INSERT INTO groups (group_id, name) VALUES ($1, $2) RETURNING created_at`
	err := exec.QueryRowContext(ctx, query, g.GroupID, g.Name).Scan(&g.CreatedAt)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("failed to create group: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// Get retrieves a group with all its memberships, pending ones included.
func Get(ctx context.Context, exec repository.DBTX, groupID string) (*domain.Group, error) {
	query := `SELECT group_id, name, created_at FROM groups WHERE group_id = $1`
	var g domain.Group
	err := exec.QueryRowContext(ctx, query, groupID).Scan(&g.GroupID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	memberships, err := membership.ListByGroup(ctx, exec, groupID)
	if err != nil {
		return nil, err
	}
	g.Memberships = memberships

	return &g, nil
}

// UpdateName renames a group.
// Returns sql.ErrNoRows if the group doesn't exist.
func UpdateName(ctx context.Context, exec repository.DBTX, groupID, name string) error {
	query := `UPDATE groups SET name = $1 WHERE group_id = $2`
	result, err := exec.ExecContext(ctx, query, name, groupID)
	if err != nil {
		return fmt.Errorf("failed to update group name: %w", err)
	}
	return expectOneRow(result)
}

// Delete removes a group. Memberships go with it via ON DELETE CASCADE.
// Returns sql.ErrNoRows if the group doesn't exist.
func Delete(ctx context.Context, exec repository.DBTX, groupID string) error {
	query := `DELETE FROM groups WHERE group_id = $1`
	result, err := exec.ExecContext(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return expectOneRow(result)
}

// Lock takes a row lock on the group for the rest of the transaction.
// Returns sql.ErrNoRows if the group doesn't exist.
func Lock(ctx context.Context, exec repository.DBTX, groupID string) error {
	var id string
	query := `SELECT group_id FROM groups WHERE group_id = $1 FOR UPDATE`
	err := exec.QueryRowContext(ctx, query, groupID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to lock group: %w", err)
	}
	return nil
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
