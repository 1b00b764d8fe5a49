package events

import (
	"errors"
	"testing"
)

func TestRequestSignalClassification(t *testing.T) {
	testCases := []struct {
		name     string
		request  Request
		expected Kind
	}{
		{name: "session started", request: Request{Kind: KindSessionStarted}, expected: KindSessionStarted},
		{name: "session ended", request: Request{Kind: KindSessionEnded}, expected: KindSessionEnded},
		{name: "launch", request: Request{Kind: KindLaunch}, expected: KindLaunch},
		{name: "intent", request: Request{Kind: KindIntentRecognized, IntentName: "WhosThereIntent"}, expected: KindIntentRecognized},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			signal, err := testCase.request.Signal()
			if err != nil {
				t.Fatalf("expected classification to succeed, got %v", err)
			}
			if signal.Kind() != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, signal.Kind())
			}
		})
	}
}

func TestRequestSignalCarriesIntentPayload(t *testing.T) {
	request := Request{
		Kind:       KindIntentRecognized,
		IntentName: "AddScoreIntent",
		Slots:      map[string]string{"PlayerName": "jeff", "ScoreNumber": "3"},
		NewSession: true,
	}

	signal, err := request.Signal()
	if err != nil {
		t.Fatalf("expected classification to succeed, got %v", err)
	}

	intent, ok := signal.(IntentRecognized)
	if !ok {
		t.Fatalf("expected IntentRecognized, got %T", signal)
	}
	if intent.Name != "AddScoreIntent" {
		t.Fatalf("expected intent name %q, got %q", "AddScoreIntent", intent.Name)
	}
	if value, _ := intent.Slot("ScoreNumber"); value != "3" {
		t.Fatalf("expected ScoreNumber slot %q, got %q", "3", value)
	}
	if !intent.NewSession {
		t.Fatalf("expected new-session flag to survive classification")
	}
}

func TestRequestSignalRejectsUnknownKind(t *testing.T) {
	_, err := Request{Kind: Kind("bogus")}.Signal()
	if !errors.Is(err, ErrUnknownRequestKind) {
		t.Fatalf("expected ErrUnknownRequestKind, got %v", err)
	}
}

func TestRequestSignalRejectsNamelessIntent(t *testing.T) {
	_, err := Request{Kind: KindIntentRecognized}.Signal()
	if !errors.Is(err, ErrMissingIntentName) {
		t.Fatalf("expected ErrMissingIntentName, got %v", err)
	}
}
