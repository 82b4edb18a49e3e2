// Package plan holds the static 30-day program catalog: four weekly
// themes, per-day focus points and action items, per-action input
// specifications, and the quote rotation. Nothing here is mutated at
// runtime.
package plan

// Day is one program day's content. Day numbers are 1-based and global
// across weeks.
type Day struct {
	Day     int      `json:"day"`
	Intro   string   `json:"intro"`
	Focus   []string `json:"focus"`
	Actions []string `json:"actions"`
}

// Week groups seven (or, in the last week, up to nine) days under a theme.
type Week struct {
	Week       int      `json:"week"`
	Theme      string   `json:"theme"`
	Rationale  string   `json:"rationale"`
	Milestones []string `json:"milestones"`
	Days       []Day    `json:"days"`
}

// DayData returns the content for a program day along with its week.
// ok is false for day numbers outside the catalog.
func DayData(dayNumber int) (Day, Week, bool) {
	for _, w := range Weeks {
		for _, d := range w.Days {
			if d.Day == dayNumber {
				return d, w, true
			}
		}
	}
	return Day{}, Week{}, false
}

// WeekForDay returns the week containing a program day.
func WeekForDay(dayNumber int) (Week, bool) {
	for _, w := range Weeks {
		for _, d := range w.Days {
			if d.Day == dayNumber {
				return w, true
			}
		}
	}
	return Week{}, false
}

// TotalDays is the program length. CurrentDay clamps to it.
const TotalDays = 30

// Weeks is the full program catalog.
var Weeks = []Week{
	{
		Week:  1,
		Theme: "Awareness & Separation",
		Rationale: "The first week is about creating physical distance from your devices and building " +
			"awareness of your impulses. You are not trying to be perfect — you are trying to see clearly.",
		Milestones: []string{
			"Phone sleeps outside the bedroom every night",
			"Morning routine established without phone",
			"First 10-minute boredom sit completed",
		},
		Days: []Day{
			{
				Day:   1,
				Intro: "Today you begin by changing one physical fact: where your phone sleeps. Everything else follows from that.",
				Focus: []string{"Establish the phone-free bedroom", "Notice every urge to check your phone"},
				Actions: []string{
					"Buy or find an alarm clock — your phone no longer lives in the bedroom",
					"Set a phone charging station outside your bedroom tonight",
					"Each time you reach for your phone, pause and note what triggered the urge",
					"5 minutes of sitting in silence before bed",
				},
			},
			{
				Day:   2,
				Intro: "The first hour of the day sets its tone. Guard it.",
				Focus: []string{"Phone-free first hour", "Build the morning container"},
				Actions: []string{
					"Do not touch your phone for the first 60 minutes after waking",
					"Create a morning sequence: water, stretch, breathe, eat",
					"Journal one paragraph about how yesterday felt without the phone in bed",
					"10 minutes of boredom sitting — no input, just presence",
				},
			},
			{
				Day:   3,
				Intro: "Most interruptions are invitations you never accepted. Today you withdraw them.",
				Focus: []string{"Notification audit", "Deepen boredom tolerance"},
				Actions: []string{
					"Turn off ALL non-essential notifications (keep calls and genuine messages)",
					"Remove social media apps from home screen — bury them in folders",
					"15 minutes of boredom sitting",
					"Take a 20-minute walk without your phone",
				},
			},
			{
				Day:   4,
				Intro: "Color is candy. A gray screen tells the truth about what your phone actually offers.",
				Focus: []string{"Grayscale mode", "Urge surfing practice"},
				Actions: []string{
					"Switch your phone to grayscale/accessibility mode",
					"When an urge to scroll arises, set a 2-minute timer and just breathe",
					"15 minutes boredom sitting",
					"Write down your three biggest phone triggers",
				},
			},
			{
				Day:   5,
				Intro: "You cannot change a number you refuse to look at. Today you take the measurement.",
				Focus: []string{"Screen time baseline", "Introduce meditation"},
				Actions: []string{
					"Check your screen time stats — write the number down without judgment",
					"Begin a 10-minute guided meditation (use a non-phone device if possible)",
					"Phone-free lunch — eat slowly, taste the food",
					"15 minutes boredom sitting",
				},
			},
			{
				Day:   6,
				Intro: "A fast reveals the appetite. Today you find out what the feed was feeding.",
				Focus: []string{"Social media fast begins", "Physical movement"},
				Actions: []string{
					"No social media today — at all. Log out if needed.",
					"Replace scrolling time with 30 minutes of physical movement",
					"10-minute meditation",
					"Evening journal: What did you notice without social media?",
				},
			},
			{
				Day:   7,
				Intro: "One week done. Walk, look around, and write down what you have seen so far.",
				Focus: []string{"Week 1 reflection", "Rest"},
				Actions: []string{
					"Continue social media fast",
					"Long phone-free walk (30+ minutes) — notice textures, sounds, smells",
					"10-minute meditation",
					"Write a letter to yourself about what you've observed this week",
				},
			},
		},
	},
	{
		Week:  2,
		Theme: "Deepening & Substitution",
		Rationale: "Now that you've created distance, fill the space intentionally. This week introduces " +
			"analog pleasures and longer periods of digital silence. The void will feel uncomfortable — " +
			"that discomfort is your brain rewiring.",
		Milestones: []string{
			"Two-hour daily phone-free window established",
			"Analog hobby re-engaged",
			"Social media still absent or minimal",
		},
		Days: []Day{
			{
				Day:   8,
				Intro: "Empty time refills itself with whatever is nearest. Today you choose what that is.",
				Focus: []string{"Two-hour phone-free block", "Rediscover analog pleasure"},
				Actions: []string{
					"Designate a 2-hour block today where your phone is off or in another room",
					"During that time: read a physical book, draw, cook, or build something",
					"15-minute meditation",
					"Journal about what you chose to do and how it felt",
				},
			},
			{
				Day:   9,
				Intro: "Food tastes different when it has your full attention. So does everything else.",
				Focus: []string{"Meal without screens", "Extend morning routine"},
				Actions: []string{
					"Eat at least two meals today with zero screens",
					"Extend phone-free morning to 90 minutes",
					"15-minute meditation",
					"20 minutes boredom sitting",
				},
			},
			{
				Day:   10,
				Intro: "Ten days. Mark it quietly, with a person rather than a post.",
				Focus: []string{"One-third milestone", "Conversation practice"},
				Actions: []string{
					"Celebrate quietly: you are one-third through",
					"Have one in-person conversation today where neither person checks their phone",
					"15-minute meditation",
					"Write about what's getting easier and what's still hard",
				},
			},
			{
				Day:   11,
				Intro: "The news will go on without you for one day. Notice what actually reaches you.",
				Focus: []string{"News fast", "Nature time"},
				Actions: []string{
					"No news consumption today — no articles, no feeds, no push alerts",
					"Spend 30+ minutes in nature without your phone",
					"15-minute meditation",
					"Notice: what did you actually miss by not reading the news?",
				},
			},
			{
				Day:   12,
				Intro: "Consumption and creation use the same hours. Today tips the balance.",
				Focus: []string{"Creative output", "Evening wind-down"},
				Actions: []string{
					"Make something today: write, cook, draw, garden, play music",
					"Create an evening wind-down ritual: dim lights, herbal tea, gentle stretching",
					"15-minute meditation",
					"Phone goes to charging station by 9 PM",
				},
			},
			{
				Day:   13,
				Intro: "Boredom is not the absence of something. It is the doorway to what has been waiting.",
				Focus: []string{"Boredom as a portal", "Extend phone-free blocks"},
				Actions: []string{
					"Sit with boredom for 25 minutes today — no input, no distraction",
					"Extend your phone-free block to 3 hours",
					"15-minute meditation",
					"Journal: What ideas or memories surfaced during boredom?",
				},
			},
			{
				Day:   14,
				Intro: "Two weeks in. Take the long view today, and take the measurement again.",
				Focus: []string{"Week 2 reflection", "Halfway preparation"},
				Actions: []string{
					"Halfway through tomorrow — write about your journey so far",
					"Long analog activity: hike, museum, library, workshop",
					"15-minute meditation",
					"Check screen time — compare to Day 5 baseline",
				},
			},
		},
	},
	{
		Week:  3,
		Theme: "Integration & Challenge",
		Rationale: "The middle stretch. Motivation may dip. This week tests your resolve with longer " +
			"disconnections and helps you integrate these practices into daily life rather than treating " +
			"them as temporary restrictions.",
		Milestones: []string{
			"Half-day digital sabbath completed",
			"Phone use feels more intentional than compulsive",
			"Sleep quality noticeably improved",
		},
		Days: []Day{
			{
				Day:   15,
				Intro: "Halfway. Six analog hours this morning — not as a test, but as a taste of the life you're building.",
				Focus: []string{"Halfway celebration", "Half-day sabbath"},
				Actions: []string{
					"Morning: phone off until noon. Six hours of analog living.",
					"Do something that brings genuine joy — not consumption, but creation or connection",
					"20-minute meditation",
					"Evening journal: Who are you becoming?",
				},
			},
			{
				Day:   16,
				Intro: "Screens flatten people into text. Today you look at who is actually in your life.",
				Focus: []string{"Relationship inventory", "Intentional communication"},
				Actions: []string{
					"List the people you've been connecting with via phone vs. in person",
					"Reach out to one person for an in-person meeting this week",
					"20-minute meditation",
					"Practice being fully present in one conversation today",
				},
			},
			{
				Day:   17,
				Intro: "Focus is not a talent. It is an environment, and today you build one.",
				Focus: []string{"Work boundaries", "Single-tasking"},
				Actions: []string{
					"Close all unnecessary browser tabs. Work on one thing at a time.",
					"Set specific times for checking email (e.g., 10 AM, 2 PM, 5 PM)",
					"20-minute meditation",
					"Notice how single-tasking affects your energy and focus",
				},
			},
			{
				Day:   18,
				Intro: "Every compulsion has a trigger, and every trigger can be met another way. Map yours.",
				Focus: []string{"Trigger mapping", "Response planning"},
				Actions: []string{
					"Map your top 5 digital triggers (boredom, anxiety, FOMO, habit, loneliness)",
					"For each trigger, write one alternative response",
					"20-minute meditation",
					"Phone-free walk, practicing your alternative responses mentally",
				},
			},
			{
				Day:   19,
				Intro: "Silence is not empty. Spend half an hour inside it and listen.",
				Focus: []string{"Comfort with silence", "Extended meditation"},
				Actions: []string{
					"Try 30 minutes of complete silence today — no music, no podcasts, nothing",
					"25-minute meditation",
					"Cook a meal in silence, focusing entirely on the process",
					"Journal about what silence teaches you",
				},
			},
			{
				Day:   20,
				Intro: "Tomorrow the phone stays off all day. Today you stock the shelves for it.",
				Focus: []string{"Two-thirds milestone", "Full-day sabbath prep"},
				Actions: []string{
					"Two-thirds complete. Acknowledge what you've built.",
					"Tomorrow is a full digital sabbath — prepare today",
					"20-minute meditation",
					"Stock up: books, art supplies, ingredients for cooking, walking shoes",
				},
			},
			{
				Day:   21,
				Intro: "A full day without digital input. Let it be long, slow, and yours.",
				Focus: []string{"Full digital sabbath", "Deep analog day"},
				Actions: []string{
					"Phone OFF from wake to sleep. Full day without digital input.",
					"Fill the day with physical, creative, social, or contemplative activities",
					"30-minute meditation or silent sit",
					"Before bed, write about this day by candlelight or lamplight",
				},
			},
		},
	},
	{
		Week:  4,
		Theme: "Sustainability & Identity",
		Rationale: "The final week. You are not going back to how things were — you are designing how " +
			"things will be. This week builds the systems and identity that will carry you beyond Day 30.",
		Milestones: []string{
			"Personal digital use policy drafted",
			"New identity narrative written",
			"Sustainable daily practices locked in",
		},
		Days: []Day{
			{
				Day:   22,
				Intro: "Rules you write for yourself are boundaries; rules written for you are cages. Write yours today.",
				Focus: []string{"Design your digital policy", "Boundary architecture"},
				Actions: []string{
					"Write your personal 'phone use policy' — when, how long, what for",
					"Decide which apps earn their place back and which stay deleted",
					"20-minute meditation",
					"Share your policy with someone who supports you",
				},
			},
			{
				Day:   23,
				Intro: "Habits survive in company. Today you recruit yours some allies.",
				Focus: []string{"Accountability structures", "Community"},
				Actions: []string{
					"Set up accountability: a friend, a partner, a weekly check-in",
					"Consider if any online communities genuinely serve your growth",
					"20-minute meditation",
					"Journal: What relationships have improved during this reset?",
				},
			},
			{
				Day:   24,
				Intro: "Willpower is weather; environment is climate. Engineer the climate.",
				Focus: []string{"Environmental design", "Friction engineering"},
				Actions: []string{
					"Re-organize your phone: only essential apps on home screen",
					"Add friction to tempting apps: log out, use website versions, set time limits",
					"20-minute meditation",
					"Design your physical environment to support focus (remove TVs from bedroom, etc.)",
				},
			},
			{
				Day:   25,
				Intro: "The bookends of the day hold everything between them. Write both down today.",
				Focus: []string{"Morning ritual finalization", "Evening ritual finalization"},
				Actions: []string{
					"Write down your ideal morning ritual — the one you want to keep forever",
					"Write down your ideal evening wind-down",
					"20-minute meditation",
					"Practice both rituals today with full intention",
				},
			},
			{
				Day:   26,
				Intro: "Behavior follows identity. Today you put the new one into words.",
				Focus: []string{"Identity narrative", "Values alignment"},
				Actions: []string{
					"Write a short paragraph: 'I am the kind of person who...'",
					"List your top 5 values. How does your phone use align (or not)?",
					"20-minute meditation",
					"Phone-free dinner with someone you care about",
				},
			},
			{
				Day:   27,
				Intro: "You will slip someday. Decide now what you will do when it happens.",
				Focus: []string{"Stress test", "Resilience planning"},
				Actions: []string{
					"Today, intentionally face a trigger situation without reaching for your phone",
					"Write a 'relapse protocol' — what to do when you slip",
					"20-minute meditation",
					"Journal: How do you handle discomfort now vs. 27 days ago?",
				},
			},
			{
				Day:   28,
				Intro: "Count what the reset gave you, and name what you are leaving behind.",
				Focus: []string{"Gratitude practice", "Letting go"},
				Actions: []string{
					"Write down 10 things this reset has given you",
					"Write down what you're releasing — the habits, the compulsions, the noise",
					"25-minute meditation",
					"Long phone-free walk — a walking meditation of gratitude",
				},
			},
			{
				Day:   29,
				Intro: "One more quiet day, and a letter to the person who will need it most: you, later.",
				Focus: []string{"Final digital sabbath", "Preparation for re-entry"},
				Actions: []string{
					"One more full day without your phone",
					"Spend time in activities that now feel natural and nourishing",
					"30-minute meditation",
					"Write a letter to your future self for when things get hard",
				},
			},
			{
				Day:   30,
				Intro: "Thirty days. Sit with the distance traveled before deciding where to walk next.",
				Focus: []string{"Completion", "New beginning"},
				Actions: []string{
					"You made it. Sit with that quietly.",
					"Read your Day 1 journal entry. Notice the distance traveled.",
					"30-minute meditation",
					"Write your 'going forward' commitment — not rules, but intentions",
					"Celebrate in a way that feels true to who you've become",
				},
			},
		},
	},
}
