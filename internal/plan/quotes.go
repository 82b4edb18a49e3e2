package plan

// Quote is one entry of the daily stoic rotation.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{"The happiness of your life depends upon the quality of your thoughts.", "Marcus Aurelius"},
	{"We suffer more often in imagination than in reality.", "Seneca"},
	{"No man is free who is not master of himself.", "Epictetus"},
	{"The soul becomes dyed with the color of its thoughts.", "Marcus Aurelius"},
	{"It is not that we have a short time to live, but that we waste a great deal of it.", "Seneca"},
	{"First say to yourself what you would be; and then do what you have to do.", "Epictetus"},
	{"Very little is needed to make a happy life; it is all within yourself, in your way of thinking.", "Marcus Aurelius"},
	{"Luck is what happens when preparation meets opportunity.", "Seneca"},
	{"He who laughs at himself never runs out of things to laugh at.", "Epictetus"},
	{"You have power over your mind — not outside events. Realize this, and you will find strength.", "Marcus Aurelius"},
	{"Difficulties strengthen the mind, as labor does the body.", "Seneca"},
	{"Don't explain your philosophy. Embody it.", "Epictetus"},
	{"The impediment to action advances action. What stands in the way becomes the way.", "Marcus Aurelius"},
	{"We are often more frightened than hurt; and we suffer more from imagination than from reality.", "Seneca"},
	{"Wealth consists not in having great possessions, but in having few wants.", "Epictetus"},
	{"When you arise in the morning, think of what a precious privilege it is to be alive.", "Marcus Aurelius"},
	{"It is not because things are difficult that we do not dare; it is because we do not dare that they are difficult.", "Seneca"},
	{"If you want to improve, be content to be thought foolish and stupid.", "Epictetus"},
	{"Waste no more time arguing about what a good man should be. Be one.", "Marcus Aurelius"},
	{"True happiness is to enjoy the present, without anxious dependence upon the future.", "Seneca"},
	{"It's not what happens to you, but how you react to it that matters.", "Epictetus"},
	{"Accept the things to which fate binds you, and love the people with whom fate brings you together.", "Marcus Aurelius"},
	{"Begin at once to live, and count each separate day as a separate life.", "Seneca"},
	{"Man is not worried by real problems so much as by his imagined anxieties about real problems.", "Epictetus"},
	{"The best revenge is not to be like your enemy.", "Marcus Aurelius"},
	{"As is a tale, so is life: not how long it is, but how good it is, is what matters.", "Seneca"},
	{"Make the best use of what is in your power, and take the rest as it happens.", "Epictetus"},
	{"Everything we hear is an opinion, not a fact. Everything we see is a perspective, not the truth.", "Marcus Aurelius"},
	{"He suffers more than necessary, who suffers before it is necessary.", "Seneca"},
	{"Freedom is the only worthy goal in life. It is won by disregarding things that lie beyond our control.", "Epictetus"},
}

// QuoteForDay returns the rotation entry for a program day (1-based).
func QuoteForDay(dayNumber int) Quote {
	return quotes[(dayNumber-1+len(quotes))%len(quotes)]
}
