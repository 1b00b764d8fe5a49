// Package sessions defines the persistence boundary for conversation
// state. The engine only ever talks to the Store contract; durable
// backends live behind it.
package sessions

import "context"

// Store loads and saves one conversation state per session identifier.
//
// Load reports ok=false when no record exists for the session; that is not
// an error, the caller creates the skill's default state instead. Save
// overwrites any previous record for the session.
type Store interface {
	Load(ctx context.Context, sessionID string) (state any, ok bool, err error)
	Save(ctx context.Context, sessionID string, state any) error
}
