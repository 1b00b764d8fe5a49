// Package quotes implements the single-turn quote skill: every request
// independently samples the quote table and speaks one entry, then the
// session closes. No conversation state is kept between turns.
package quotes

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/koscakluka/ema-skills/core/content"
	"github.com/koscakluka/ema-skills/core/events"
	"github.com/koscakluka/ema-skills/core/responses"
)

const (
	IntentTellSomething = "TellSomethingIntent"
	IntentHelp          = "HelpIntent"
)

const (
	defaultSkillID = "quotes"
	cardTitle      = "Quotes"

	helpSpeech = "You can say, tell me something, and I will share one of my favorite sayings. Or you can say exit."
)

// Quote is one content entry.
type Quote struct {
	Text string `yaml:"quote"`
}

// Skill is the stateless quote teller.
type Skill struct {
	id    string
	table *content.Table[Quote]
}

type Option func(*options)

type options struct {
	id     string
	quotes []Quote
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

// WithQuotes replaces the built-in quote table.
func WithQuotes(quotes []Quote) Option {
	return func(o *options) {
		o.quotes = quotes
	}
}

// WithSource injects the randomness source used for quote selection.
func WithSource(source rand.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

func New(opts ...Option) (*Skill, error) {
	options := options{id: defaultSkillID, quotes: DefaultQuotes()}
	for _, opt := range opts {
		opt(&options)
	}

	tableOpts := []content.TableOption{}
	if options.source != nil {
		tableOpts = append(tableOpts, content.WithSource(options.source))
	}

	table, err := content.NewTable(options.quotes, tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote table: %w", err)
	}

	return &Skill{id: options.id, table: table}, nil
}

func (s *Skill) ID() string {
	return s.id
}

// NewState returns nil: the skill is stateless and the dispatcher skips
// the session store.
func (s *Skill) NewState() any {
	return nil
}

func (s *Skill) OnSessionStarted(ctx context.Context, sessionID string) {
	logger.InfoContext(ctx, "session started", "session", sessionID)
}

func (s *Skill) OnSessionEnded(ctx context.Context, sessionID string) {
	logger.InfoContext(ctx, "session ended", "session", sessionID)
}

func (s *Skill) OnLaunch(ctx context.Context, state any) (any, responses.SpeechPlan) {
	return state, s.tellSomething()
}

func (s *Skill) OnIntent(ctx context.Context, state any, intent events.IntentRecognized) (any, responses.SpeechPlan) {
	switch intent.Name {
	case IntentTellSomething:
		return state, s.tellSomething()
	case IntentHelp:
		return state, responses.Ask(helpSpeech, "")
	default:
		logger.WarnContext(ctx, "unrecognized intent", "intent", intent.Name)
		return state, responses.Ask(helpSpeech, "")
	}
}

func (s *Skill) tellSomething() responses.SpeechPlan {
	quote := s.table.Pick()
	return responses.TellWithCard(quote.Text, cardTitle, quote.Text)
}
