// Package testutil provides helpers for tests that need a PostgreSQL database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/mishasvintus/gamenight/internal/repository"
)

// SetupTestDB connects to the test database, applies the schema and empties every table.
// The test is skipped when no database is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "gamenight_user"),
		getEnv("TEST_DB_PASSWORD", "gamenight_password"),
		getEnv("TEST_DB_NAME", "gamenight_test"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := CleanupTestDB(ctx, db); err != nil {
		t.Fatalf("failed to cleanup test database: %v", err)
	}

	return db
}

// CleanupTestDB truncates all tables to clean up test data.
func CleanupTestDB(ctx context.Context, db *sql.DB) error {
	// Truncate tables in reverse order of dependencies
	tables := []string{
		"memberships",
		"groups",
		"user_games",
		"games",
		"users",
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
