// Package library answers questions about users' game libraries and the game catalog.
package library

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mishasvintus/gamenight/internal/domain"
	"github.com/mishasvintus/gamenight/internal/repository"
	"github.com/mishasvintus/gamenight/internal/repository/game"
)

// Querier reads shareable libraries and catalog entries from the database.
// Every lookup is bounded by a timeout. Identical lookups that overlap in time
// share one query; nothing is kept once the query returns.
type Querier struct {
	db      repository.DBTX
	tags    []string
	timeout time.Duration
	flight  singleflight.Group
	logger  *zap.Logger
}

// NewQuerier creates a Querier treating entries tagged with any of tags as shareable.
func NewQuerier(db repository.DBTX, tags []string, timeout time.Duration, logger *zap.Logger) *Querier {
	return &Querier{
		db:      db,
		tags:    tags,
		timeout: timeout,
		logger:  logger,
	}
}

// ShareableLibrary returns the set of games username owns with a shareable tag.
// The returned set belongs to the caller.
func (q *Querier) ShareableLibrary(ctx context.Context, username string) (domain.GameSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("library lookup for %s: %w", username, err)
	}

	ch := q.flight.DoChan(username, func() (any, error) {
		// Detached from the first caller so its cancellation does not fail the others.
		queryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), q.timeout)
		defer cancel()

		start := time.Now()
		ids, err := game.ListShareable(queryCtx, q.db, username, q.tags)
		if err != nil {
			return nil, err
		}

		q.logger.Debug("Fetched shareable library",
			zap.String("username", username),
			zap.Int("games", len(ids)),
			zap.Duration("took", time.Since(start)))

		return domain.NewGameSet(ids...), nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("library lookup for %s: %w", username, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("library lookup for %s: %w", username, res.Err)
		}
		return res.Val.(domain.GameSet).Clone(), nil
	}
}

// Games returns catalog entries for ids. Unknown ids are left out.
func (q *Querier) Games(ctx context.Context, ids []domain.GameID) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	games, err := game.GetByIDs(ctx, q.db, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	return games, nil
}
