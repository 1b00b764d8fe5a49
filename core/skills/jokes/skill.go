// Package jokes implements the multi-stage knock-knock dialog: the skill
// opens with "Knock knock!", waits for the user to ask who's there,
// delivers the chosen setup, and closes the session with the punchline.
package jokes

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/koscakluka/ema-skills/core/content"
	"github.com/koscakluka/ema-skills/core/events"
	"github.com/koscakluka/ema-skills/core/responses"
)

const (
	IntentTellMeAJoke  = "TellMeAJokeIntent"
	IntentWhosThere    = "WhosThereIntent"
	IntentSetupNameWho = "SetupNameWhoIntent"
	IntentHelp         = "HelpIntent"
)

const (
	defaultSkillID = "knock-knock"
	cardTitle      = "Knock Knock"

	startReprompt  = "You can ask who's there"
	restartSpeech  = "That's not how knock knock jokes work! Knock knock"
	recoverySpeech = "Sorry, I couldn't correctly retrieve the joke. You can say, tell me a joke"
	recoveryPrompt = "You can say, tell me a joke"
	helpNotStarted = "Knock knock jokes are a fun call and response type of joke. To start the joke, just ask, by saying tell me a joke or you can say exit."
	helpWhosThere  = "You can ask, who's there or you can say exit."
	helpPunchline  = "You can ask, who or you can say exit."
)

// Joke is one content entry: the name behind the door and the punchline
// it sets up.
type Joke struct {
	Setup     string `yaml:"setup"`
	Punchline string `yaml:"punchline"`
}

// Skill is the knock-knock dialog state machine.
type Skill struct {
	id    string
	table *content.Table[Joke]
}

type Option func(*options)

type options struct {
	id     string
	jokes  []Joke
	source rand.Source
}

// WithSkillID overrides the routing identity.
func WithSkillID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}

// WithJokes replaces the built-in joke table.
func WithJokes(jokes []Joke) Option {
	return func(o *options) {
		o.jokes = jokes
	}
}

// WithSource injects the randomness source used for joke selection.
func WithSource(source rand.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

func New(opts ...Option) (*Skill, error) {
	options := options{id: defaultSkillID, jokes: DefaultJokes()}
	for _, opt := range opts {
		opt(&options)
	}

	tableOpts := []content.TableOption{}
	if options.source != nil {
		tableOpts = append(tableOpts, content.WithSource(options.source))
	}

	table, err := content.NewTable(options.jokes, tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build joke table: %w", err)
	}

	return &Skill{id: options.id, table: table}, nil
}

func (s *Skill) ID() string {
	return s.id
}

func (s *Skill) NewState() any {
	return State{Stage: StageNotStarted}
}

func (s *Skill) OnSessionStarted(ctx context.Context, sessionID string) {
	logger.InfoContext(ctx, "session started", "session", sessionID)
}

func (s *Skill) OnSessionEnded(ctx context.Context, sessionID string) {
	logger.InfoContext(ctx, "session ended", "session", sessionID)
}

func (s *Skill) OnLaunch(ctx context.Context, state any) (any, responses.SpeechPlan) {
	return s.tellMeAJoke(coerce(state))
}

func (s *Skill) OnIntent(ctx context.Context, state any, intent events.IntentRecognized) (any, responses.SpeechPlan) {
	current := coerce(state)

	switch intent.Name {
	case IntentTellMeAJoke:
		return s.tellMeAJoke(current)
	case IntentWhosThere:
		return s.whosThere(current)
	case IntentSetupNameWho:
		return s.setupNameWho(current)
	case IntentHelp:
		return current, s.help(current)
	default:
		logger.WarnContext(ctx, "unrecognized intent", "intent", intent.Name)
		return current, responses.Ask(helpNotStarted, startReprompt)
	}
}

// coerce recovers a usable state from whatever was persisted. A record of
// the wrong type or with a payload that cannot back its stage restarts
// the joke.
func coerce(state any) State {
	current, ok := state.(State)
	if !ok || !current.valid() {
		return State{Stage: StageNotStarted}
	}
	return current
}

// tellMeAJoke selects a fresh joke only from the not-started stage; a
// repeat request mid-joke keeps the chosen joke.
func (s *Skill) tellMeAJoke(current State) (State, responses.SpeechPlan) {
	switch current.Stage {
	case StageNotStarted:
		joke := s.table.Pick()
		next := State{
			Stage:     StageAwaitingWhosThere,
			Setup:     joke.Setup,
			Punchline: joke.Punchline,
		}
		speech := "Knock knock!"
		return next, responses.AskWithCard(speech, startReprompt, cardTitle, speech)
	case StageAwaitingWhosThere:
		speech := "knock knock!"
		return current, responses.AskWithCard(speech, startReprompt, cardTitle, speech)
	default:
		return State{Stage: StageNotStarted}, responses.AskWithCard(restartSpeech, startReprompt, cardTitle, restartSpeech)
	}
}

func (s *Skill) whosThere(current State) (State, responses.SpeechPlan) {
	switch current.Stage {
	case StageAwaitingWhosThere:
		next := current
		next.Stage = StageAwaitingPunchlineCue
		return next, responses.Ask(current.Setup, fmt.Sprintf("You can ask, %s who?", current.Setup))
	case StageAwaitingPunchlineCue:
		return State{Stage: StageNotStarted}, responses.Ask(restartSpeech, startReprompt)
	default:
		return State{Stage: StageNotStarted}, responses.Ask(recoverySpeech, recoveryPrompt)
	}
}

func (s *Skill) setupNameWho(current State) (State, responses.SpeechPlan) {
	switch current.Stage {
	case StageAwaitingPunchlineCue:
		return State{Stage: StageNotStarted}, responses.TellWithCard(current.Punchline, cardTitle, current.Punchline)
	case StageAwaitingWhosThere:
		return State{Stage: StageNotStarted}, responses.AskWithCard(restartSpeech, startReprompt, cardTitle, restartSpeech)
	default:
		return State{Stage: StageNotStarted}, responses.AskWithCard(recoverySpeech, recoveryPrompt, cardTitle, recoverySpeech)
	}
}

func (s *Skill) help(current State) responses.SpeechPlan {
	switch current.Stage {
	case StageNotStarted:
		return responses.Ask(helpNotStarted, "")
	case StageAwaitingWhosThere:
		return responses.Ask(helpWhosThere, "")
	case StageAwaitingPunchlineCue:
		return responses.Ask(helpPunchline, "")
	default:
		return responses.Ask(helpNotStarted, "")
	}
}
