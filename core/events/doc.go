// Package events defines the typed inbound signal contract for skills.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - intent.*
//
// session events
//
//   - SessionStarted (session.started): a new conversation session opened.
//   - SessionEnded (session.ended): the platform closed the session.
//   - Launch (session.launch): the session opened with no specific intent.
//
// intent events
//
//   - IntentRecognized (intent.recognized): the recognizer classified the
//     user's turn into a named intent with optional slot values.
//
// Raw platform requests arrive as a Request envelope and are classified
// into exactly one Signal via Request.Signal.
package events
