package service

import (
	"context"
	"slices"

	"github.com/mishasvintus/gamenight/internal/domain"
)

// VoteLedger records members' votes and tallies them per game.
// It does not check that a voted game is one the group can actually play.
type VoteLedger struct {
	store MembershipStore
}

// NewVoteLedger creates a new vote ledger.
func NewVoteLedger(store MembershipStore) *VoteLedger {
	return &VoteLedger{store: store}
}

// ToggleVote adds gameID to the member's votes, or removes it if already there, and saves
// the membership. Returns true when the vote was added. m is left untouched on error.
func (l *VoteLedger) ToggleVote(ctx context.Context, m *domain.Membership, gameID domain.GameID) (bool, error) {
	updated := *m
	updated.Voted = slices.Clone(m.Voted)
	added := updated.ToggleVote(gameID)

	if err := l.store.UpdateMembership(ctx, &updated); err != nil {
		return false, storageError("save vote", err, ErrMembershipNotFound)
	}

	*m = updated
	return added, nil
}

// VotersByGame maps each voted game to the usernames that voted for it, in membership order.
// Games nobody voted for are absent from the map.
func (l *VoteLedger) VotersByGame(memberships []domain.Membership) map[domain.GameID][]string {
	voters := make(map[domain.GameID][]string)
	for _, m := range memberships {
		for _, gameID := range m.Voted {
			voters[gameID] = append(voters[gameID], m.Username)
		}
	}
	return voters
}
