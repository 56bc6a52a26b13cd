package domain

import (
	"fmt"
	"time"
)

// Group is a set of users who pick games to play together.
type Group struct {
	GroupID     string       `json:"group_id"`
	Name        string       `json:"name"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
	Memberships []Membership `json:"memberships"`
}

// AcceptedMembers returns the usernames of accepted members in membership order.
func (g *Group) AcceptedMembers() []string {
	out := make([]string, 0, len(g.Memberships))
	for _, m := range g.Memberships {
		if m.Accepted {
			out = append(out, m.Username)
		}
	}
	return out
}

// Membership links a user to a group.
// Accepted is false while the invite is pending.
type Membership struct {
	GroupID  string   `json:"group_id"`
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Accepted bool     `json:"accepted"`
	Voted    []GameID `json:"voted"`
	Version  int      `json:"-"`
}

// State returns the lifecycle state of the membership.
func (m *Membership) State() MembershipState {
	if m.Accepted {
		return StateAccepted
	}
	return StatePending
}

// HasVoted reports whether the member voted for gameID.
func (m *Membership) HasVoted(gameID GameID) bool {
	for _, id := range m.Voted {
		if id == gameID {
			return true
		}
	}
	return false
}

// ToggleVote removes gameID from the vote list if present, otherwise appends it.
// Returns true when the vote was added.
func (m *Membership) ToggleVote(gameID GameID) bool {
	for i, id := range m.Voted {
		if id == gameID {
			m.Voted = append(m.Voted[:i:i], m.Voted[i+1:]...)
			return false
		}
	}
	m.Voted = append(m.Voted, gameID)
	return true
}

// MembershipState represents where a membership is in its lifecycle.
type MembershipState string

// Membership state constants.
const (
	StatePending  MembershipState = "PENDING"
	StateAccepted MembershipState = "ACCEPTED"
)

// NewMembershipState creates a new MembershipState with validation.
func NewMembershipState(s string) (MembershipState, error) {
	state := MembershipState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid membership state: %s (must be one of: %s, %s)", s, StatePending, StateAccepted)
	}
	return state, nil
}

// IsValid checks if the state is valid.
func (s MembershipState) IsValid() bool {
	return s == StatePending || s == StateAccepted
}

// UserGroups lists the groups a user belongs to and the invites still waiting on them.
type UserGroups struct {
	Username string  `json:"username"`
	Groups   []Group `json:"groups"`
	Invites  []Group `json:"invites"`
}

// CreateGroupResult is the outcome of creating a group.
// Skipped holds invitees that could not be invited.
type CreateGroupResult struct {
	Group   *Group   `json:"group"`
	Skipped []string `json:"skipped"`
}
