package sessions

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jinzhu/copier"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps conversation state in process memory. States are deep
// copied on both load and save so callers never alias the stored record.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: map[string]any{}}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (any, bool, error) {
	s.mu.RLock()
	state, ok := s.states[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	copied, err := deepCopyState(state)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session state: %w", err)
	}
	return copied, true, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, state any) error {
	copied, err := deepCopyState(state)
	if err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}

	s.mu.Lock()
	s.states[sessionID] = copied
	s.mu.Unlock()
	return nil
}

func deepCopyState(state any) (any, error) {
	if state == nil {
		return nil, nil
	}

	target := reflect.New(reflect.TypeOf(state))
	if err := copier.CopyWithOption(target.Interface(), state, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return target.Elem().Interface(), nil
}
