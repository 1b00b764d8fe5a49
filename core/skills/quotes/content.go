package quotes

// DefaultQuotes returns the built-in quote table.
func DefaultQuotes() []Quote {
	return []Quote{
		{Text: "A sundial counts only the sunny hours."},
		{Text: "The early bird may get the worm, but the second mouse gets the cheese."},
		{Text: "Every cloud has a silver lining, and most of them have rain."},
		{Text: "A smooth sea never made a skilled sailor."},
		{Text: "The best time to plant a tree was twenty years ago. The second best time is now."},
		{Text: "Fall down seven times, stand up eight."},
		{Text: "Don't count your chickens before they hatch, but do keep an eye on the eggs."},
		{Text: "A journey of a thousand miles begins with a single step."},
		{Text: "When the wind of change blows, some build walls and others build windmills."},
		{Text: "Still waters run deep."},
	}
}
