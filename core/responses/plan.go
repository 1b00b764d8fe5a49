// Package responses defines the ephemeral speech plan a skill transition
// produces and the planner that shapes it into the platform-neutral
// outbound response.
package responses

// Card is an optional visual companion to spoken output.
type Card struct {
	Title   string
	Content string
}

// SpeechPlan is the output of one dialog transition: what to say, how to
// reprompt if the user stays silent, an optional card, and whether the
// session stays open awaiting another turn.
type SpeechPlan struct {
	Speech   string
	Reprompt string
	Card     *Card

	// Continues keeps the session open for another turn when true.
	Continues bool
}

// Ask plans spoken output that keeps the session open.
func Ask(speech, reprompt string) SpeechPlan {
	return SpeechPlan{Speech: speech, Reprompt: reprompt, Continues: true}
}

// AskWithCard plans spoken output with a card, keeping the session open.
func AskWithCard(speech, reprompt, cardTitle, cardContent string) SpeechPlan {
	return SpeechPlan{
		Speech:    speech,
		Reprompt:  reprompt,
		Card:      &Card{Title: cardTitle, Content: cardContent},
		Continues: true,
	}
}

// Tell plans terminal spoken output; the session closes after it.
func Tell(speech string) SpeechPlan {
	return SpeechPlan{Speech: speech}
}

// TellWithCard plans terminal spoken output with a card.
func TellWithCard(speech, cardTitle, cardContent string) SpeechPlan {
	return SpeechPlan{
		Speech: speech,
		Card:   &Card{Title: cardTitle, Content: cardContent},
	}
}
