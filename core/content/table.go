// Package content provides the static, read-only content tables skills
// draw their material from. Tables are built once at startup and never
// mutated afterwards.
package content

import (
	"errors"
	"math/rand/v2"
)

var ErrEmptyTable = errors.New("content table is empty")

// Table is an ordered, immutable collection of content entries with
// uniform random selection.
type Table[E any] struct {
	entries []E
	rand    *rand.Rand
}

type TableOption func(*tableOptions)

type tableOptions struct {
	source rand.Source
}

// WithSource injects the randomness source used for selection, keeping
// selection deterministic under test.
func WithSource(source rand.Source) TableOption {
	return func(o *tableOptions) {
		o.source = source
	}
}

// NewTable copies entries into an immutable table.
func NewTable[E any](entries []E, opts ...TableOption) (*Table[E], error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	options := tableOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	source := options.source
	if source == nil {
		source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	copied := make([]E, len(entries))
	copy(copied, entries)
	return &Table[E]{entries: copied, rand: rand.New(source)}, nil
}

func (t *Table[E]) Len() int {
	return len(t.entries)
}

// Pick selects one entry uniformly over [0, Len).
func (t *Table[E]) Pick() E {
	return t.entries[t.rand.IntN(len(t.entries))]
}

// Entries returns a copy of the table's entries in order.
func (t *Table[E]) Entries() []E {
	entries := make([]E, len(t.entries))
	copy(entries, t.entries)
	return entries
}
