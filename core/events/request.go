package events

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRequestKind = errors.New("request classification failed: unknown request kind")
	ErrMissingIntentName  = errors.New("request classification failed: intent request without intent name")
)

// Request is the platform-neutral inbound envelope for one turn, as handed
// over by the external event dispatcher after transport and signature
// concerns are already dealt with.
type Request struct {
	SkillID   string
	SessionID string
	Kind      Kind

	// IntentName and Slots are set only for KindIntentRecognized requests.
	IntentName string
	Slots      map[string]string

	// NewSession reports that this request opened the session it belongs
	// to, which happens when a one-shot utterance triggers an intent
	// directly.
	NewSession bool
}

// Signal classifies the request into exactly one Signal.
func (r Request) Signal() (Signal, error) {
	switch r.Kind {
	case KindSessionStarted:
		return NewSessionStarted(), nil
	case KindSessionEnded:
		return NewSessionEnded(), nil
	case KindLaunch:
		return NewLaunch(), nil
	case KindIntentRecognized:
		if r.IntentName == "" {
			return nil, ErrMissingIntentName
		}
		opts := []IntentOption{}
		if r.NewSession {
			opts = append(opts, WithNewSession())
		}
		return NewIntentRecognized(r.IntentName, r.Slots, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRequestKind, r.Kind)
	}
}
