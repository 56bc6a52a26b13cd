package domain

import "sort"

// GameID identifies a game in the catalog.
type GameID int64

// Game is a catalog entry.
type Game struct {
	GameID GameID `json:"game_id"`
	Title  string `json:"title"`
}

// GameSet is an unordered set of game identifiers.
type GameSet map[GameID]struct{}

// NewGameSet builds a set from ids, dropping duplicates.
func NewGameSet(ids ...GameID) GameSet {
	s := make(GameSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s GameSet) Contains(id GameID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy of the set.
func (s GameSet) Clone() GameSet {
	out := make(GameSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// RetainAll removes every id not present in other.
func (s GameSet) RetainAll(other GameSet) {
	for id := range s {
		if !other.Contains(id) {
			delete(s, id)
		}
	}
}

// Sorted returns the ids in ascending order.
func (s GameSet) Sorted() []GameID {
	ids := make([]GameID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CandidateGame is a game every accepted member can play, with the members who voted for it.
type CandidateGame struct {
	Game   Game     `json:"game"`
	Voters []string `json:"voters"`
}

// GroupGames is the playable-games view of a group.
type GroupGames struct {
	Group      *Group          `json:"group"`
	Candidates []CandidateGame `json:"candidates"`
}
