// skillsim drives a skill from the terminal: it feeds typed requests
// through the dispatcher the same way a platform event dispatcher would,
// and prints the planned responses. Intent recognition is out of scope, so
// intents are typed directly:
//
//	launch
//	intent TellMeAJokeIntent
//	intent AddPlayerIntent PlayerName=bob
//	oneshot TellScoresIntent
//	end
//	quit
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	dialog "github.com/koscakluka/ema-skills/core"
	"github.com/koscakluka/ema-skills/core/content"
	"github.com/koscakluka/ema-skills/core/events"
	"github.com/koscakluka/ema-skills/core/responses"
	"github.com/koscakluka/ema-skills/core/skills/jokes"
	"github.com/koscakluka/ema-skills/core/skills/quotes"
	"github.com/koscakluka/ema-skills/core/skills/scores"
)

type config struct {
	Skill      string `env:"SKILLSIM_SKILL" envDefault:"knock-knock"`
	JokesFile  string `env:"SKILLSIM_JOKES_FILE"`
	QuotesFile string `env:"SKILLSIM_QUOTES_FILE"`
	Seed       uint64 `env:"SKILLSIM_SEED"`
}

func main() {
	_ = godotenv.Load()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}

	skill, err := buildSkill(cfg)
	if err != nil {
		log.Fatalf("failed to build skill %q: %v", cfg.Skill, err)
	}

	dispatcher := dialog.NewDispatcher(dialog.WithSkills(skill))
	ctx := context.Background()

	sessionID := uuid.NewString()
	fmt.Printf("skill %q ready, session %s\n", skill.ID(), sessionID)
	dispatch(ctx, dispatcher, events.Request{
		SkillID: skill.ID(), SessionID: sessionID, Kind: events.KindSessionStarted,
	})

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		request, quit, err := parseLine(scanner.Text(), skill.ID(), sessionID)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if quit {
			return
		}
		if request == nil {
			continue
		}

		response := dispatch(ctx, dispatcher, *request)
		if response.ShouldEndSession || request.Kind == events.KindSessionEnded {
			sessionID = uuid.NewString()
			fmt.Printf("(session closed, next session %s)\n", sessionID)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
}

func buildSkill(cfg config) (dialog.Skill, error) {
	source := rand.Source(nil)
	if cfg.Seed != 0 {
		source = rand.NewPCG(cfg.Seed, cfg.Seed)
	}

	switch cfg.Skill {
	case "knock-knock":
		opts := []jokes.Option{}
		if source != nil {
			opts = append(opts, jokes.WithSource(source))
		}
		if cfg.JokesFile != "" {
			entries, err := content.LoadFile[jokes.Joke](cfg.JokesFile)
			if err != nil {
				return nil, err
			}
			opts = append(opts, jokes.WithJokes(entries))
		}
		return jokes.New(opts...)
	case "quotes":
		opts := []quotes.Option{}
		if source != nil {
			opts = append(opts, quotes.WithSource(source))
		}
		if cfg.QuotesFile != "" {
			entries, err := content.LoadFile[quotes.Quote](cfg.QuotesFile)
			if err != nil {
				return nil, err
			}
			opts = append(opts, quotes.WithQuotes(entries))
		}
		return quotes.New(opts...)
	case "score-keeper":
		return scores.New(), nil
	default:
		return nil, fmt.Errorf("unknown skill %q (want knock-knock, quotes or score-keeper)", cfg.Skill)
	}
}

func parseLine(line, skillID, sessionID string) (*events.Request, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}

	request := events.Request{SkillID: skillID, SessionID: sessionID}
	switch fields[0] {
	case "quit", "exit":
		return nil, true, nil
	case "launch":
		request.Kind = events.KindLaunch
	case "end":
		request.Kind = events.KindSessionEnded
	case "intent", "oneshot":
		if len(fields) < 2 {
			return nil, false, fmt.Errorf("usage: %s <IntentName> [Slot=value ...]", fields[0])
		}
		request.Kind = events.KindIntentRecognized
		request.IntentName = fields[1]
		request.NewSession = fields[0] == "oneshot"
		request.Slots = map[string]string{}
		for _, pair := range fields[2:] {
			name, value, found := strings.Cut(pair, "=")
			if !found {
				return nil, false, fmt.Errorf("slot %q is not of the form Slot=value", pair)
			}
			request.Slots[name] = value
		}
	default:
		return nil, false, fmt.Errorf("unknown command %q (want launch, intent, oneshot, end or quit)", fields[0])
	}

	return &request, false, nil
}

func dispatch(ctx context.Context, dispatcher *dialog.Dispatcher, request events.Request) responses.Response {
	response, err := dispatcher.Dispatch(ctx, request)
	if err != nil {
		fmt.Printf("! %v\n", err)
	}
	if response.OutputSpeech != "" {
		fmt.Println(response.OutputSpeech)
	}
	if response.RepromptSpeech != "" {
		fmt.Printf("(reprompt: %s)\n", response.RepromptSpeech)
	}
	if response.Card != nil {
		fmt.Printf("[%s] %s\n", response.Card.Title, response.Card.Content)
	}
	return response
}
