package jokes

// DefaultJokes returns the built-in knock-knock table.
func DefaultJokes() []Joke {
	return []Joke{
		{Setup: "Pickle", Punchline: "Pickle little flower to give to your mother."},
		{Setup: "Salome", Punchline: "Salome and cheese."},
		{Setup: "Cook", Punchline: "Hey who are you calling a cuckoo."},
		{Setup: "apple", Punchline: "Apple on the door but it doesn't open"},
		{Setup: "kiwi", Punchline: "Kiwi go to the store?"},
		{Setup: "pudding", Punchline: "pudding on your shoes before your pants is a bad idea."},
		{Setup: "Figs", Punchline: "Figs me a sandwich, please"},
		{Setup: "turnip", Punchline: "Turnip the heat -- it's cold in here"},
		{Setup: "Grub", Punchline: "Grub hold of my hand and let's get out of here"},
		{Setup: "Carrot", Punchline: "Don't you carrot all about me?"},
		{Setup: "Cheese", Punchline: "Cheese a very smart girl."},
		{Setup: "stew", Punchline: "Stew early to go to bed"},
		{Setup: "mint", Punchline: "I mint to tell you sooner"},
		{Setup: "broccoli", Punchline: "Broccoli doesn't have a last name,silly"},
		{Setup: "water", Punchline: "Water you waiting for? Let me in"},
		{Setup: "bacon", Punchline: "I'm bacon a cake for your birthday"},
		{Setup: "candy", Punchline: "Candy cow jump over the moon?"},
		{Setup: "truffle", Punchline: "What's the truffle with you?"},
		{Setup: "cereal", Punchline: "Cereal pleasure to meet you"},
		{Setup: "pasta", Punchline: "Pasta salt and pepper, please"},
		{Setup: "gravy", Punchline: "Gravy Crockett"},
		{Setup: "dill", Punchline: "Good--bye dill we meet again."},
		{Setup: "beets", Punchline: "Beets me"},
		{Setup: "wanda", Punchline: "Wanda have another hamburger?"},
		{Setup: "sauce", Punchline: "He sauce together yesterday."},
		{Setup: "distressing", Punchline: "Distressing has to much vineger."},
		{Setup: "bean", Punchline: "Bean fishing lately?"},
		{Setup: "pepper", Punchline: "A glass of juice will pepper me up."},
		{Setup: "pecan", Punchline: "Pecan somebody your own size."},
		{Setup: "tuna", Punchline: "Tuna piano and it'll sound better."},
		{Setup: "toast", Punchline: "Toast were the days."},
		{Setup: "chicken", Punchline: "Better chicken the oven--something's burning."},
		{Setup: "To", Punchline: "Correct grammer is to whom."},
		{Setup: "Beets!", Punchline: "Beats me!"},
		{Setup: "Little Old Lady", Punchline: "I didn't know you could yodel!"},
		{Setup: "A broken pencil", Punchline: "Never mind, it's pointless"},
		{Setup: "Snow", Punchline: "Snow use, I forgot"},
		{Setup: "Boo", Punchline: "Aw, it's okay, don't cry"},
		{Setup: "Woo", Punchline: "Don't get so excited, it's just a joke"},
		{Setup: "Spell", Punchline: "w.h.o."},
		{Setup: "Atch", Punchline: "I didn't know you had a cold!"},
		{Setup: "Owls", Punchline: "Yes, they do."},
		{Setup: "Gabe", Punchline: "I Gabe it everything I got"},
		{Setup: "Summertime", Punchline: "Summertime, you can be a real pest."},
		{Setup: "Berry!", Punchline: "Berry nice to meet you."},
	}
}
