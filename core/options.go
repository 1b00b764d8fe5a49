package dialog

import (
	"github.com/koscakluka/ema-skills/core/sessions"
)

type DispatcherOption func(*Dispatcher)

// WithStore replaces the session store. The default is an in-process
// memory store.
func WithStore(store sessions.Store) DispatcherOption {
	return func(d *Dispatcher) {
		if store != nil {
			d.store = store
		}
	}
}

// WithSkills registers skills with the dispatcher. A skill registered
// twice under the same ID keeps the last registration.
func WithSkills(skills ...Skill) DispatcherOption {
	return func(d *Dispatcher) {
		for _, skill := range skills {
			if skill != nil {
				d.skills[skill.ID()] = skill
			}
		}
	}
}
