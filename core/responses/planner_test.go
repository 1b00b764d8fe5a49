package responses

import "testing"

func TestPlanPreservesContinuationFlag(t *testing.T) {
	testCases := []struct {
		name              string
		plan              SpeechPlan
		expectedEndsAfter bool
	}{
		{name: "ask keeps session open", plan: Ask("Knock knock!", "You can ask who's there"), expectedEndsAfter: false},
		{name: "ask with card keeps session open", plan: AskWithCard("Knock knock!", "You can ask who's there", "Wise Guy", "Knock knock!"), expectedEndsAfter: false},
		{name: "tell closes session", plan: Tell("Beats me!"), expectedEndsAfter: true},
		{name: "tell with card closes session", plan: TellWithCard("Beats me!", "Wise Guy", "Beats me!"), expectedEndsAfter: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			response := Plan(testCase.plan)
			if response.ShouldEndSession != testCase.expectedEndsAfter {
				t.Fatalf("expected ShouldEndSession=%v, got %v", testCase.expectedEndsAfter, response.ShouldEndSession)
			}
			if response.OutputSpeech != testCase.plan.Speech {
				t.Fatalf("expected speech %q, got %q", testCase.plan.Speech, response.OutputSpeech)
			}
			if response.RepromptSpeech != testCase.plan.Reprompt {
				t.Fatalf("expected reprompt %q, got %q", testCase.plan.Reprompt, response.RepromptSpeech)
			}
		})
	}
}

func TestPlanCopiesCard(t *testing.T) {
	plan := AskWithCard("Knock knock!", "You can ask who's there", "Wise Guy", "Knock knock!")

	response := Plan(plan)
	if response.Card == nil {
		t.Fatalf("expected card to be carried over")
	}
	if response.Card == plan.Card {
		t.Fatalf("expected response card to be a copy, got the plan's pointer")
	}
	if response.Card.Title != "Wise Guy" || response.Card.Content != "Knock knock!" {
		t.Fatalf("expected card payload to be preserved, got %+v", *response.Card)
	}
}

func TestPlanWithoutCardLeavesCardNil(t *testing.T) {
	response := Plan(Ask("Guess what Solar said", ""))
	if response.Card != nil {
		t.Fatalf("expected nil card, got %+v", *response.Card)
	}
}
