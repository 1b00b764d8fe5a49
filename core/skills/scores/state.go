package scores

import "strings"

// Stage is the derived position within the score-keeping dialog; it is
// computed from the roster rather than stored.
type Stage string

const (
	StageNoPlayers   Stage = "no_players"
	StagePlayersOnly Stage = "players_only"
	StageInProgress  Stage = "in_progress"
)

// Player is one roster entry. Names are unique case-insensitively; scores
// are unbounded in both directions.
type Player struct {
	Name  string
	Score int
}

// State is the persisted conversation state for one score-keeping
// session: the roster in join order.
type State struct {
	Players []Player
}

// Stage derives the dialog stage from the roster.
func (s State) Stage() Stage {
	if len(s.Players) == 0 {
		return StageNoPlayers
	}
	for _, player := range s.Players {
		if player.Score != 0 {
			return StageInProgress
		}
	}
	return StagePlayersOnly
}

// find returns the index of the player matching name case-insensitively,
// or -1.
func (s State) find(name string) int {
	for i, player := range s.Players {
		if strings.EqualFold(player.Name, name) {
			return i
		}
	}
	return -1
}
