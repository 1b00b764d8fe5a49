package responses

// Response is the platform-neutral outbound contract for one turn.
type Response struct {
	OutputSpeech     string
	RepromptSpeech   string
	Card             *Card
	ShouldEndSession bool
}

// Plan shapes a speech plan into the outbound response. It never mutates
// conversation state; the continuation flag is preserved as
// ShouldEndSession = !Continues.
func Plan(plan SpeechPlan) Response {
	response := Response{
		OutputSpeech:     plan.Speech,
		RepromptSpeech:   plan.Reprompt,
		ShouldEndSession: !plan.Continues,
	}
	if plan.Card != nil {
		card := *plan.Card
		response.Card = &card
	}
	return response
}
