package game

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/repository"
)

// Create inserts a catalog entry.
// The catalog is filled outside this service; Create seeds it for tests and local setups.
func Create(ctx context.Context, exec repository.DBTX, g domain.Game) error {
	query := `INSERT INTO games (game_id, title) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, int64(g.GameID), g.Title); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// AddToLibrary puts a game in a user's library with the given tags.
// Like Create, it seeds data the service itself only reads.
func AddToLibrary(ctx context.Context, exec repository.DBTX, userID string, gameID domain.GameID, tags []string) error {
	query := `
		INSERT INTO user_games (user_id, game_id, tags)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, game_id) DO UPDATE SET tags = EXCLUDED.tags
	`
	if _, err := exec.ExecContext(ctx, query, userID, int64(gameID), pq.Array(tags)); err != nil {
		return fmt.Errorf("failed to add game to library: %w", err)
	}
	return nil
}

// ListShareable returns the ids of games in username's library carrying any of tags.
func ListShareable(ctx context.Context, exec repository.DBTX, username string, tags []string) ([]domain.GameID, error) {
	query := `
		SELECT DISTINCT ug.game_id
		FROM user_games ug
		JOIN users u ON u.user_id = ug.user_id
		WHERE u.username = $1 AND ug.tags && $2
	`
	rows, err := exec.QueryContext(ctx, query, username, pq.Array(tags))
	if err != nil {
		return nil, fmt.Errorf("failed to get shareable library: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]domain.GameID, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan game id: %w", err)
		}
		ids = append(ids, domain.GameID(id))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// GetByIDs returns the catalog entries for ids. Unknown ids are left out.
func GetByIDs(ctx context.Context, exec repository.DBTX, ids []domain.GameID) ([]domain.Game, error) {
	if len(ids) == 0 {
		return []domain.Game{}, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	query := `SELECT game_id, title FROM games WHERE game_id = ANY($1) ORDER BY game_id`
	rows, err := exec.QueryContext(ctx, query, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}
	defer func() { _ = rows.Close() }()

	games := make([]domain.Game, 0, len(ids))
	for rows.Next() {
		var (
			id int64
			g  domain.Game
		)
		if err := rows.Scan(&id, &g.Title); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		g.GameID = domain.GameID(id)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return games, nil
}
