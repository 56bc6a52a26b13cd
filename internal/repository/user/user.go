package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/gamenight/internal/repository"
)

// Create inserts a new user.
// Accounts are registered outside this service; Create seeds them for tests and local setups.
func Create(ctx context.Context, exec repository.DBTX, userID, username string) error {
	query := `INSERT INTO users (user_id, username) VALUES ($1, $2)`
	_, err := exec.ExecContext(ctx, query, userID, username)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return fmt.Errorf("failed to create user: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetID returns the id of the user with the given username.
// Returns sql.ErrNoRows if there is no such user.
func GetID(ctx context.Context, exec repository.DBTX, username string) (string, error) {
	query := `SELECT user_id FROM users WHERE username = $1`
	var userID string
	err := exec.QueryRowContext(ctx, query, username).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return userID, nil
}
