package content

import (
	"math/rand/v2"
	"strings"
	"testing"
)

type joke struct {
	Setup     string `yaml:"setup"`
	Punchline string `yaml:"punchline"`
}

func TestNewTableRejectsEmptyEntries(t *testing.T) {
	if _, err := NewTable([]string{}); err != ErrEmptyTable {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestPickStaysInRange(t *testing.T) {
	table, err := NewTable([]string{"a", "b", "c"}, WithSource(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("expected table construction to succeed, got %v", err)
	}

	seen := map[string]bool{}
	for range 200 {
		seen[table.Pick()] = true
	}
	for _, entry := range []string{"a", "b", "c"} {
		if !seen[entry] {
			t.Fatalf("expected entry %q to be reachable over 200 picks", entry)
		}
	}
}

func TestPickIsDeterministicWithFixedSeed(t *testing.T) {
	first, err := NewTable([]string{"a", "b", "c", "d"}, WithSource(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("expected table construction to succeed, got %v", err)
	}
	second, err := NewTable([]string{"a", "b", "c", "d"}, WithSource(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("expected table construction to succeed, got %v", err)
	}

	for i := range 50 {
		if a, b := first.Pick(), second.Pick(); a != b {
			t.Fatalf("expected identical pick sequences for identical seeds, diverged at %d: %q vs %q", i, a, b)
		}
	}
}

func TestTableIsIsolatedFromCallerSlice(t *testing.T) {
	entries := []string{"a", "b"}
	table, err := NewTable(entries, WithSource(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("expected table construction to succeed, got %v", err)
	}

	entries[0] = "mutated"
	for range 20 {
		if picked := table.Pick(); picked == "mutated" {
			t.Fatalf("expected table to be isolated from caller mutation")
		}
	}
}

func TestDecodeReadsYAMLEntries(t *testing.T) {
	input := strings.NewReader(`
- setup: Boo
  punchline: Aw, it's okay, don't cry
- setup: Snow
  punchline: Snow use, I forgot
`)

	jokes, err := Decode[joke](input)
	if err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}
	if len(jokes) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(jokes))
	}
	if jokes[0].Setup != "Boo" || jokes[1].Punchline != "Snow use, I forgot" {
		t.Fatalf("expected entries to preserve order and fields, got %+v", jokes)
	}
}

func TestDecodeRejectsMalformedYAML(t *testing.T) {
	if _, err := Decode[joke](strings.NewReader("{not a list")); err == nil {
		t.Fatalf("expected malformed content to fail decoding")
	}
}
