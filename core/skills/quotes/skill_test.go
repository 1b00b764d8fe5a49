package quotes

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/koscakluka/ema-skills/core/events"
)

func newTestSkill(t *testing.T, quotes ...Quote) *Skill {
	t.Helper()

	opts := []Option{WithSource(rand.NewPCG(1, 1))}
	if len(quotes) > 0 {
		opts = append(opts, WithQuotes(quotes))
	}

	skill, err := New(opts...)
	if err != nil {
		t.Fatalf("expected skill construction to succeed, got %v", err)
	}
	return skill
}

func TestSkillIsStateless(t *testing.T) {
	skill := newTestSkill(t)

	if state := skill.NewState(); state != nil {
		t.Fatalf("expected nil default state, got %v", state)
	}
}

func TestTellSomethingIsTerminal(t *testing.T) {
	skill := newTestSkill(t, Quote{Text: "Still waters run deep."})

	state, plan := skill.OnIntent(context.Background(), nil, events.NewIntentRecognized(IntentTellSomething, nil))
	if state != nil {
		t.Fatalf("expected no state to come out of a stateless turn, got %v", state)
	}
	if plan.Speech != "Still waters run deep." {
		t.Fatalf("expected the quote to be spoken, got %q", plan.Speech)
	}
	if plan.Continues {
		t.Fatalf("expected the session to close after the quote")
	}
	if plan.Card == nil || plan.Card.Content != "Still waters run deep." {
		t.Fatalf("expected the quote on the card, got %+v", plan.Card)
	}
}

func TestLaunchTellsAQuote(t *testing.T) {
	skill := newTestSkill(t, Quote{Text: "A smooth sea never made a skilled sailor."})

	_, plan := skill.OnLaunch(context.Background(), nil)
	if plan.Speech != "A smooth sea never made a skilled sailor." {
		t.Fatalf("expected launch to tell a quote, got %q", plan.Speech)
	}
	if plan.Continues {
		t.Fatalf("expected the session to close after the quote")
	}
}

func TestEveryTurnSamplesIndependently(t *testing.T) {
	skill := newTestSkill(t,
		Quote{Text: "a"}, Quote{Text: "b"}, Quote{Text: "c"}, Quote{Text: "d"},
	)

	seen := map[string]bool{}
	for range 100 {
		_, plan := skill.OnIntent(context.Background(), nil, events.NewIntentRecognized(IntentTellSomething, nil))
		seen[plan.Speech] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected independent sampling across turns, only ever saw %v", seen)
	}
}

func TestHelpKeepsSessionOpen(t *testing.T) {
	skill := newTestSkill(t)

	_, plan := skill.OnIntent(context.Background(), nil, events.NewIntentRecognized(IntentHelp, nil))
	if !plan.Continues {
		t.Fatalf("expected the session to stay open after help")
	}
	if plan.Speech == "" {
		t.Fatalf("expected a help message")
	}
}

func TestUnrecognizedIntentAnswersWithHelp(t *testing.T) {
	skill := newTestSkill(t)

	_, plan := skill.OnIntent(context.Background(), nil, events.NewIntentRecognized("OrderPizzaIntent", nil))
	if plan.Speech != helpSpeech {
		t.Fatalf("expected the generic help prompt, got %q", plan.Speech)
	}
	if !plan.Continues {
		t.Fatalf("expected the session to stay open")
	}
}
