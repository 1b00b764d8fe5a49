// Package dialog is the turn-based dialog engine: it routes inbound
// requests to registered skills, runs their state transitions against the
// session's persisted conversation state, and shapes the resulting speech
// plan into the outbound response.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/google/uuid"
	"github.com/koscakluka/ema-skills/core/events"
	"github.com/koscakluka/ema-skills/core/responses"
	"github.com/koscakluka/ema-skills/core/sessions"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var ErrUnknownSkill = errors.New("dispatch failed: no skill registered for skill ID")

const failureSpeech = "Sorry, something went wrong while handling that. Please try again later."

// Dispatcher orchestrates one turn end to end: load state, classify the
// request, run the skill's transition, persist the next state, plan the
// response. Each turn is a single synchronous unit of work; the host
// platform serializes turns per session.
type Dispatcher struct {
	skills map[string]Skill
	store  sessions.Store

	turns metric.Int64Counter
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		skills: map[string]Skill{},
		store:  sessions.NewMemoryStore(),
	}

	for _, opt := range opts {
		opt(d)
	}

	turns, err := meter.Int64Counter("dialog.turns",
		metric.WithDescription("Turns dispatched, by skill and outcome."))
	if err != nil {
		logger.Warn("failed to create turn counter", "error", err)
	} else {
		d.turns = turns
	}

	return d
}

// Dispatch handles one inbound request and always produces a spoken
// response. On a hard failure (persistence, routing) the returned error is
// non-nil and the response is a generic spoken apology that makes no claim
// about state.
func (d *Dispatcher) Dispatch(ctx context.Context, request events.Request) (responses.Response, error) {
	ctx, span := tracer.Start(ctx, "dispatching turn", trace.WithAttributes(
		attribute.String("turn.id", uuid.NewString()),
		attribute.String("skill.id", request.SkillID),
		attribute.String("session.id", request.SessionID),
		attribute.String("request.kind", string(request.Kind)),
	))
	defer span.End()

	response, err := d.dispatch(ctx, request)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	d.countTurn(ctx, request.SkillID, err)
	return response, err
}

func (d *Dispatcher) dispatch(ctx context.Context, request events.Request) (responses.Response, error) {
	skill, ok := d.skills[request.SkillID]
	if !ok {
		return failureResponse(), fmt.Errorf("%w: %q", ErrUnknownSkill, request.SkillID)
	}

	signal, err := request.Signal()
	if err != nil {
		return failureResponse(), fmt.Errorf("failed to classify request: %w", err)
	}

	switch signal := signal.(type) {
	case events.SessionStarted:
		logger.InfoContext(ctx, "session started", "skill", request.SkillID, "session", request.SessionID)
		skill.OnSessionStarted(ctx, request.SessionID)
		return responses.Response{}, nil
	case events.SessionEnded:
		logger.InfoContext(ctx, "session ended", "skill", request.SkillID, "session", request.SessionID)
		skill.OnSessionEnded(ctx, request.SessionID)
		return responses.Response{ShouldEndSession: true}, nil
	case events.Launch:
		return d.runTurn(ctx, skill, request.SessionID, func(state any) (any, responses.SpeechPlan) {
			return skill.OnLaunch(ctx, state)
		})
	case events.IntentRecognized:
		return d.runTurn(ctx, skill, request.SessionID, func(state any) (any, responses.SpeechPlan) {
			return skill.OnIntent(ctx, state, signal)
		})
	default:
		return failureResponse(), fmt.Errorf("%w: %q", events.ErrUnknownRequestKind, signal.Kind())
	}
}

// runTurn wraps one state transition with the load and save halves of the
// session store round trip. Stateless skills (nil default state) bypass
// the store entirely.
func (d *Dispatcher) runTurn(ctx context.Context, skill Skill, sessionID string, transition func(any) (any, responses.SpeechPlan)) (responses.Response, error) {
	state := skill.NewState()
	stateless := state == nil

	if !stateless {
		loaded, ok, err := d.store.Load(ctx, sessionID)
		if err != nil {
			return failureResponse(), fmt.Errorf("failed to load conversation state: %w", err)
		}
		if ok {
			state = loaded
		}
	}

	next, plan := transition(state)

	if !stateless && !reflect.DeepEqual(state, next) {
		if err := d.store.Save(ctx, sessionID, next); err != nil {
			return failureResponse(), fmt.Errorf("failed to save conversation state: %w", err)
		}
	}

	return responses.Plan(plan), nil
}

// Manifests aggregates the intent manifests of registered skills that
// publish one, ordered by skill ID.
func (d *Dispatcher) Manifests() []Manifest {
	ids := make([]string, 0, len(d.skills))
	for id := range d.skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	manifests := []Manifest{}
	for _, id := range ids {
		if provider, ok := d.skills[id].(ManifestProvider); ok {
			manifests = append(manifests, provider.Manifest())
		}
	}
	return manifests
}

func (d *Dispatcher) countTurn(ctx context.Context, skillID string, err error) {
	if d.turns == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	d.turns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("skill.id", skillID),
		attribute.String("outcome", outcome),
	))
}

func failureResponse() responses.Response {
	return responses.Plan(responses.Tell(failureSpeech))
}
