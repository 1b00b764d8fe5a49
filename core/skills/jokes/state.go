package jokes

// Stage is the position within the knock-knock dialog. Comparisons are
// always made against these exact values; an unknown stage is treated the
// same as a corrupted payload.
type Stage string

const (
	StageNotStarted           Stage = "not_started"
	StageAwaitingWhosThere    Stage = "awaiting_whos_there"
	StageAwaitingPunchlineCue Stage = "awaiting_punchline_cue"
)

// State is the persisted conversation state for one knock-knock session.
// Setup and Punchline hold the chosen joke; both must be non-empty
// whenever Stage points past StageNotStarted.
type State struct {
	Stage     Stage
	Setup     string
	Punchline string
}

// valid reports whether the payload supports the current stage.
func (s State) valid() bool {
	switch s.Stage {
	case StageNotStarted:
		return true
	case StageAwaitingWhosThere, StageAwaitingPunchlineCue:
		return s.Setup != "" && s.Punchline != ""
	default:
		return false
	}
}
