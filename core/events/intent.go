package events

// KindIntentRecognized identifies a classified user intent.
const KindIntentRecognized Kind = "intent.recognized"

// IntentRecognized carries a recognizer-classified intent: the intent name,
// the extracted slot values, and whether the request also opened the
// session (a one-shot utterance rather than an in-dialog turn).
type IntentRecognized struct {
	Base
	Name       string
	Slots      map[string]string
	NewSession bool
}

func (i IntentRecognized) String() string {
	return i.Name
}

// Slot returns the named slot value and whether it was present and
// non-empty.
func (i IntentRecognized) Slot(name string) (string, bool) {
	value, ok := i.Slots[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// NewIntentRecognized creates an intent signal.
func NewIntentRecognized(name string, slots map[string]string, opts ...IntentOption) IntentRecognized {
	intent := IntentRecognized{
		Base:  NewBase(KindIntentRecognized),
		Name:  name,
		Slots: slots,
	}
	for _, opt := range opts {
		opt(&intent)
	}
	return intent
}

type IntentOption func(*IntentRecognized)

// WithNewSession marks the intent as a one-shot utterance that opened its
// own session.
func WithNewSession() IntentOption {
	return func(i *IntentRecognized) {
		i.NewSession = true
	}
}
