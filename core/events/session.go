package events

// KindSessionStarted identifies the opening of a new conversation session.
const KindSessionStarted Kind = "session.started"

// KindSessionEnded identifies the platform closing a session.
const KindSessionEnded Kind = "session.ended"

// SessionStarted marks the opening of a new conversation session.
type SessionStarted struct{ Base }

// NewSessionStarted creates a session started signal.
func NewSessionStarted() SessionStarted {
	return SessionStarted{Base: NewBase(KindSessionStarted)}
}

// SessionEnded marks the platform-side close of the session.
type SessionEnded struct{ Base }

// NewSessionEnded creates a session ended signal.
func NewSessionEnded() SessionEnded {
	return SessionEnded{Base: NewBase(KindSessionEnded)}
}
