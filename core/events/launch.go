package events

// KindLaunch identifies a session opened with no specific intent.
const KindLaunch Kind = "session.launch"

// Launch marks a session opened without a recognized intent; skills
// typically answer with their welcome prompt.
type Launch struct{ Base }

// NewLaunch creates a launch signal.
func NewLaunch() Launch {
	return Launch{Base: NewBase(KindLaunch)}
}
