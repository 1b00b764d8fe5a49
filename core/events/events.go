package events

import "time"

type Kind string

// Signal is a classified inbound happening a skill can react to: a session
// lifecycle transition, a bare launch, or a recognized intent.
type Signal interface {
	Kind() Kind
	Timestamp() time.Time
}

type Base struct {
	kind      Kind
	timestamp time.Time
}

func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

func (b Base) Kind() Kind {
	return b.kind
}

func (b Base) Timestamp() time.Time {
	return b.timestamp
}
