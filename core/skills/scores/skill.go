// Package scores implements the multi-player score-keeping dialog: players
// join a roster, receive points, and the skill reads the standings back in
// join order.
package scores

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/koscakluka/ema-skills/core/events"
	"github.com/koscakluka/ema-skills/core/responses"
)

const (
	IntentAddPlayer    = "AddPlayerIntent"
	IntentAddScore     = "AddScoreIntent"
	IntentTellScores   = "TellScoresIntent"
	IntentResetPlayers = "ResetPlayersIntent"
	IntentHelp         = "HelpIntent"
)

const (
	SlotPlayerName  = "PlayerName"
	SlotScoreNumber = "ScoreNumber"
)

const (
	defaultSkillID = "score-keeper"

	completeHelp = "Here's some things you can say, add john. give john 5 points. tell me the score. new game. reset. and exit."
	nextHelp     = "You can give a player points, add a player, get the current score, or say help. What would you like?"
)

// Skill is the score-keeping dialog state machine.
type Skill struct {
	id string
}

type Option func(*Skill)

// WithSkillID overrides the routing identity.
func WithSkillID(id string) Option {
	return func(s *Skill) {
		if id != "" {
			s.id = id
		}
	}
}

func New(opts ...Option) *Skill {
	skill := &Skill{id: defaultSkillID}
	for _, opt := range opts {
		opt(skill)
	}
	return skill
}

func (s *Skill) ID() string {
	return s.id
}

func (s *Skill) NewState() any {
	return State{}
}

func (s *Skill) OnSessionStarted(ctx context.Context, sessionID string) {
	logger.InfoContext(ctx, "session started", "session", sessionID)
}

func (s *Skill) OnSessionEnded(ctx context.Context, sessionID string) {
	logger.InfoContext(ctx, "session ended", "session", sessionID)
}

// OnLaunch greets based on the derived stage: ask for the first player,
// recap the roster, or leave the prompt open.
func (s *Skill) OnLaunch(ctx context.Context, state any) (any, responses.SpeechPlan) {
	current := coerce(state)

	switch current.Stage() {
	case StageNoPlayers:
		return current, responses.Ask(
			"Let's start your game. Who's your first player?",
			"Please tell me who is your first player?",
		)
	case StagePlayersOnly:
		speech := fmt.Sprintf(
			"You have %s in the game. You can give a player points, add another player, reset all players or exit. Which would you like?",
			pluralize(len(current.Players), "player"),
		)
		return current, responses.Ask(speech, completeHelp)
	default:
		return current, responses.Ask("What can I do for you?", nextHelp)
	}
}

func (s *Skill) OnIntent(ctx context.Context, state any, intent events.IntentRecognized) (any, responses.SpeechPlan) {
	current := coerce(state)

	switch intent.Name {
	case IntentAddPlayer:
		return s.addPlayer(current, intent)
	case IntentAddScore:
		return s.addScore(current, intent)
	case IntentTellScores:
		return current, s.tellScores(current, intent)
	case IntentResetPlayers:
		return s.reset()
	case IntentHelp:
		return current, responses.Ask(completeHelp, nextHelp)
	default:
		logger.WarnContext(ctx, "unrecognized intent", "intent", intent.Name)
		return current, responses.Ask(nextHelp, nextHelp)
	}
}

// coerce recovers a usable state from whatever was persisted; a record of
// the wrong type restarts with an empty roster.
func coerce(state any) State {
	current, ok := state.(State)
	if !ok {
		return State{}
	}
	return current
}

func (s *Skill) addPlayer(current State, intent events.IntentRecognized) (State, responses.SpeechPlan) {
	recognized, _ := intent.Slot(SlotPlayerName)
	name, ok := normalizePlayerName(recognized)
	if !ok {
		return current, responses.Ask("OK. Who do you want to add?", "Who do you want to add?")
	}

	if i := current.find(name); i >= 0 {
		speech := fmt.Sprintf("%s has already joined your game.", current.Players[i].Name)
		return current, responses.Ask(speech, nextHelp)
	}

	next := State{Players: append(append([]Player{}, current.Players...), Player{Name: name})}

	speech := fmt.Sprintf("%s has joined your game.", name)
	if intent.NewSession {
		return next, responses.Tell(speech)
	}
	return next, responses.Ask(speech+" Who is your next player?", "Who is your next player?")
}

func (s *Skill) addScore(current State, intent events.IntentRecognized) (State, responses.SpeechPlan) {
	recognized, _ := intent.Slot(SlotPlayerName)
	name, ok := normalizePlayerName(recognized)
	if !ok {
		return current, responses.Ask("Sorry, I did not hear the player name. Please say that again?", nextHelp)
	}

	raw, ok := intent.Slot(SlotScoreNumber)
	if !ok {
		return current, responses.Ask(fmt.Sprintf("Sorry, I did not hear how many points to give %s. Please say that again?", name), nextHelp)
	}
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return current, responses.Ask(fmt.Sprintf("Sorry, I did not hear how many points to give %s. Please say that again?", name), nextHelp)
	}

	i := current.find(name)
	if i < 0 {
		speech := fmt.Sprintf("Sorry, %s has not joined your game yet. You can add them by saying, add %s.", name, name)
		return current, responses.Ask(speech, nextHelp)
	}

	next := State{Players: append([]Player{}, current.Players...)}
	next.Players[i].Score += amount

	speech := fmt.Sprintf("Updating your score, %s for %s.", pluralize(amount, "point"), next.Players[i].Name)
	if intent.NewSession {
		return next, responses.Tell(speech)
	}
	return next, responses.Ask(speech, nextHelp)
}

func (s *Skill) tellScores(current State, intent events.IntentRecognized) responses.SpeechPlan {
	if len(current.Players) == 0 {
		speech := "Nobody has joined your game yet. You can add a player by saying, add, followed by a name."
		if intent.NewSession {
			return responses.Tell(speech)
		}
		return responses.Ask(speech, completeHelp)
	}

	var listing strings.Builder
	for i, player := range current.Players {
		if i > 0 {
			listing.WriteString(" ")
		}
		fmt.Fprintf(&listing, "%s has %s.", player.Name, pluralize(player.Score, "point"))
	}

	if intent.NewSession {
		return responses.Tell(listing.String())
	}
	return responses.Ask(listing.String(), nextHelp)
}

func (s *Skill) reset() (State, responses.SpeechPlan) {
	return State{}, responses.Ask(
		"New game started without players. Who do you want to add first?",
		"Who do you want to add first?",
	)
}

func pluralize(count int, noun string) string {
	if count == 1 || count == -1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
