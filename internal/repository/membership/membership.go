package membership

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/repository"
)

const selectColumns = `
	SELECT m.group_id, m.user_id, u.username, m.accepted, m.voted, m.version
	FROM memberships m
	JOIN users u ON u.user_id = m.user_id
`

// Create inserts a membership. The membership starts at version 1.
// Returns repository.ErrDuplicate if the user already has a membership in the group
// and sql.ErrNoRows if the group or the user is gone.
func Create(ctx context.Context, exec repository.DBTX, m *domain.Membership) error {
	query := `
		INSERT INTO memberships (group_id, user_id, accepted, voted, version)
		VALUES ($1, $2, $3, $4, 1)
	`
	_, err := exec.ExecContext(ctx, query, m.GroupID, m.UserID, m.Accepted, pq.Array(toInt64s(m.Voted)))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("failed to create membership: %w", repository.ErrDuplicate)
		}
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("failed to create membership: %w", sql.ErrNoRows)
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}
	m.Version = 1
	return nil
}

// Get retrieves the membership of username in a group.
func Get(ctx context.Context, exec repository.DBTX, groupID, username string) (*domain.Membership, error) {
	query := selectColumns + `WHERE m.group_id = $1 AND u.username = $2`
	m, err := scanMembership(exec.QueryRowContext(ctx, query, groupID, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// ListByGroup returns every membership of a group ordered by username.
func ListByGroup(ctx context.Context, exec repository.DBTX, groupID string) ([]domain.Membership, error) {
	query := selectColumns + `WHERE m.group_id = $1 ORDER BY u.username`
	return list(ctx, exec, query, groupID)
}

// ListAcceptedByGroup returns the accepted memberships of a group ordered by username.
func ListAcceptedByGroup(ctx context.Context, exec repository.DBTX, groupID string) ([]domain.Membership, error) {
	query := selectColumns + `WHERE m.group_id = $1 AND m.accepted = true ORDER BY u.username`
	return list(ctx, exec, query, groupID)
}

// ListByUser returns the memberships of username filtered by the accepted flag.
func ListByUser(ctx context.Context, exec repository.DBTX, username string, accepted bool) ([]domain.Membership, error) {
	query := selectColumns + `WHERE u.username = $1 AND m.accepted = $2 ORDER BY m.group_id`
	return list(ctx, exec, query, username, accepted)
}

// Update writes accepted and voted back if the stored version still matches m.Version.
// On success m.Version is advanced. Returns repository.ErrStaleVersion when another
// writer got there first and sql.ErrNoRows when the membership is gone.
func Update(ctx context.Context, exec repository.DBTX, m *domain.Membership) error {
	query := `
		UPDATE memberships
		SET accepted = $1, voted = $2, version = version + 1
		WHERE group_id = $3 AND user_id = $4 AND version = $5
	`
	result, err := exec.ExecContext(ctx, query, m.Accepted, pq.Array(toInt64s(m.Voted)), m.GroupID, m.UserID, m.Version)
	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		exists, err := existsByUserID(ctx, exec, m.GroupID, m.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}
		return repository.ErrStaleVersion
	}

	m.Version++
	return nil
}

// Delete removes the membership of username in a group.
// Returns sql.ErrNoRows if there is none.
func Delete(ctx context.Context, exec repository.DBTX, groupID, username string) error {
	query := `
		DELETE FROM memberships m
		USING users u
		WHERE u.user_id = m.user_id AND m.group_id = $1 AND u.username = $2
	`
	result, err := exec.ExecContext(ctx, query, groupID, username)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Count returns how many memberships, pending included, a group has.
func Count(ctx context.Context, exec repository.DBTX, groupID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM memberships WHERE group_id = $1`
	if err := exec.QueryRowContext(ctx, query, groupID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return n, nil
}

func existsByUserID(ctx context.Context, exec repository.DBTX, groupID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM memberships WHERE group_id = $1 AND user_id = $2)`
	if err := exec.QueryRowContext(ctx, query, groupID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check membership existence: %w", err)
	}
	return exists, nil
}

func list(ctx context.Context, exec repository.DBTX, query string, args ...any) ([]domain.Membership, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	memberships := make([]domain.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(row scanner) (*domain.Membership, error) {
	var (
		m     domain.Membership
		voted pq.Int64Array
	)
	if err := row.Scan(&m.GroupID, &m.UserID, &m.Username, &m.Accepted, &voted, &m.Version); err != nil {
		return nil, err
	}

	m.Voted = make([]domain.GameID, len(voted))
	for i, id := range voted {
		m.Voted[i] = domain.GameID(id)
	}
	return &m, nil
}

func toInt64s(ids []domain.GameID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
