package dialog

import (
	"context"

	"github.com/koscakluka/ema-skills/core/events"
	"github.com/koscakluka/ema-skills/core/responses"
)

// Skill is one dialog state machine: a pure mapping from the session's
// current conversation state and an inbound signal to the next state and a
// speech plan.
//
// Transitions must be synchronous and free of side effects on shared
// state; the dispatcher owns loading and persisting the state around them.
// Received state is the skill's own state type, but a skill must tolerate
// any dynamic type (a corrupted record arrives as whatever was stored) and
// recover with its reset transition instead of failing the turn.
type Skill interface {
	// ID is the stable skill identity requests are routed by.
	ID() string

	// NewState returns the default conversation state for a session with
	// no prior record. A nil return marks the skill as stateless; the
	// dispatcher then skips the session store entirely.
	NewState() any

	// OnSessionStarted and OnSessionEnded perform bookkeeping only; they
	// never touch stored state.
	OnSessionStarted(ctx context.Context, sessionID string)
	OnSessionEnded(ctx context.Context, sessionID string)

	OnLaunch(ctx context.Context, state any) (any, responses.SpeechPlan)
	OnIntent(ctx context.Context, state any, intent events.IntentRecognized) (any, responses.SpeechPlan)
}
