package service

import (
	"context"
	"fmt"

	"github.com/mishasvintus/gamenight/internal/domain"
)

// GroupGamesAssembler builds the view of a group's common games and who voted for them.
type GroupGamesAssembler struct {
	store    MembershipStore
	resolver *CommonLibraryResolver
	ledger   *VoteLedger
	catalog  GameCatalog
}

// NewGroupGamesAssembler creates a new assembler.
func NewGroupGamesAssembler(store MembershipStore, resolver *CommonLibraryResolver, ledger *VoteLedger, catalog GameCatalog) *GroupGamesAssembler {
	return &GroupGamesAssembler{
		store:    store,
		resolver: resolver,
		ledger:   ledger,
		catalog:  catalog,
	}
}

// Assemble returns the group with every game its accepted members have in common.
// Votes are tallied over all memberships, pending ones included. Candidates are ordered
// by game id; voters keep membership order.
func (a *GroupGamesAssembler) Assemble(ctx context.Context, groupID string) (*domain.GroupGames, error) {
	if !validGroupID(groupID) {
		return nil, ErrGroupNotFound
	}

	g, err := a.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, storageError("get group", err, ErrGroupNotFound)
	}

	accepted, err := a.store.ListAcceptedMemberships(ctx, groupID)
	if err != nil {
		return nil, storageError("list accepted memberships", err, nil)
	}

	usernames := make([]string, len(accepted))
	for i, m := range accepted {
		usernames[i] = m.Username
	}

	common, err := a.resolver.Resolve(ctx, usernames)
	if err != nil {
		return nil, err
	}

	voters := a.ledger.VotersByGame(g.Memberships)

	ids := common.Sorted()
	titles := make(map[domain.GameID]string, len(ids))
	if len(ids) > 0 {
		games, err := a.catalog.Games(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLookupFailure, err)
		}
		for _, game := range games {
			titles[game.GameID] = game.Title
		}
	}

	candidates := make([]domain.CandidateGame, 0, len(ids))
	for _, id := range ids {
		v, ok := voters[id]
		if !ok {
			v = []string{}
		}
		candidates = append(candidates, domain.CandidateGame{
			Game:   domain.Game{GameID: id, Title: titles[id]},
			Voters: v,
		})
	}

	return &domain.GroupGames{
		Group:      g,
		Candidates: candidates,
	}, nil
}
