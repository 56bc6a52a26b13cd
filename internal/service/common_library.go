package service

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/mishasvintus/gamenight/internal/domain"
)

// CommonLibraryResolver computes the games every given member can play together.
type CommonLibraryResolver struct {
	library        LibraryQuery
	maxConcurrency int
}

// NewCommonLibraryResolver creates a resolver fetching at most maxConcurrency libraries at once.
// A maxConcurrency below 1 means no limit.
func NewCommonLibraryResolver(library LibraryQuery, maxConcurrency int) *CommonLibraryResolver {
	return &CommonLibraryResolver{
		library:        library,
		maxConcurrency: maxConcurrency,
	}
}

// Resolve fetches each member's shareable library concurrently and intersects them.
// No members means no common games. If any fetch fails the whole call fails with
// ErrLookupFailure and the remaining fetches are cancelled.
func (r *CommonLibraryResolver) Resolve(ctx context.Context, usernames []string) (domain.GameSet, error) {
	if len(usernames) == 0 {
		return domain.GameSet{}, nil
	}

	p := pool.NewWithResults[domain.GameSet]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	if r.maxConcurrency > 0 {
		p = p.WithMaxGoroutines(r.maxConcurrency)
	}

	for _, username := range usernames {
		p.Go(func(ctx context.Context) (domain.GameSet, error) {
			games, err := r.library.ShareableLibrary(ctx, username)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrLookupFailure, username, err)
			}
			if games == nil {
				return nil, fmt.Errorf("%w: %s: no library returned", ErrLookupFailure, username)
			}
			return games, nil
		})
	}

	libraries, err := p.Wait()
	if err != nil {
		return nil, err
	}

	// Intersect only after every fetch has finished.
	common := libraries[0].Clone()
	for _, games := range libraries[1:] {
		common.RetainAll(games)
	}

	return common, nil
}
