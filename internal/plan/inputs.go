package plan

import "fmt"

// InputType selects the control rendered for an action's free-text input.
type InputType string

const (
	InputText     InputType = "text"
	InputNumber   InputType = "number"
	InputTextarea InputType = "textarea"
)

// Input describes the free-text field attached to one action item.
type Input struct {
	Type        InputType `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Unit        string    `json:"unit,omitempty"`
}

// dayInputs maps day number → action index → input spec. Only actions
// that ask for a written answer appear here.
var dayInputs = map[int]map[int]Input{
	4:  {3: {Type: InputTextarea, Label: "Phone triggers", Placeholder: "What pulls you in?"}},
	5:  {0: {Type: InputNumber, Label: "Screen time baseline", Placeholder: "0", Unit: "hours/day"}},
	7:  {3: {Type: InputTextarea, Label: "Letter to self (Week 1)", Placeholder: "Dear me..."}},
	13: {3: {Type: InputTextarea, Label: "Ideas from boredom", Placeholder: "What surfaced?"}},
	14: {
		0: {Type: InputTextarea, Label: "Journey reflection", Placeholder: "Two weeks in..."},
		3: {Type: InputNumber, Label: "Screen time (Day 14)", Placeholder: "0", Unit: "hours/day"},
	},
	16: {0: {Type: InputTextarea, Label: "Connection inventory", Placeholder: "Who, and how?"}},
	18: {
		0: {Type: InputTextarea, Label: "Top 5 triggers", Placeholder: "boredom, anxiety, ..."},
		1: {Type: InputTextarea, Label: "Alternative responses", Placeholder: "One per trigger"},
	},
	19: {3: {Type: InputTextarea, Label: "Silence lessons", Placeholder: "What did it teach?"}},
	22: {0: {Type: InputTextarea, Label: "Phone use policy", Placeholder: "When, how long, what for"}},
	25: {
		0: {Type: InputTextarea, Label: "Morning ritual", Placeholder: "The one to keep"},
		1: {Type: InputTextarea, Label: "Evening ritual", Placeholder: "The wind-down"},
	},
	26: {
		0: {Type: InputTextarea, Label: "Identity narrative", Placeholder: "I am the kind of person who..."},
		1: {Type: InputTextarea, Label: "Top 5 values", Placeholder: "What matters most"},
	},
	27: {
		1: {Type: InputTextarea, Label: "Relapse protocol", Placeholder: "When I slip, I will..."},
		3: {Type: InputTextarea, Label: "Then vs. now", Placeholder: "Day 1 me vs. today"},
	},
	28: {
		0: {Type: InputTextarea, Label: "Gratitude list", Placeholder: "10 things"},
		1: {Type: InputTextarea, Label: "Releasing", Placeholder: "What goes"},
	},
	29: {3: {Type: InputTextarea, Label: "Letter to future self", Placeholder: "For the hard days"}},
	30: {3: {Type: InputTextarea, Label: "Going forward commitment", Placeholder: "Intentions, not rules"}},
}

// InputFor returns the input spec for an action, if it has one.
func InputFor(dayNumber, actionIndex int) (Input, bool) {
	in, ok := dayInputs[dayNumber][actionIndex]
	return in, ok
}

// InputsForDay returns all input specs for one day keyed by action index.
// The map may be nil for days with no written actions.
func InputsForDay(dayNumber int) map[int]Input {
	return dayInputs[dayNumber]
}

// ResponseLabel resolves the human label for a saved written response.
// Unmapped pairs fall back to a generic positional label.
func ResponseLabel(dayNumber, actionIndex int) string {
	if in, ok := dayInputs[dayNumber][actionIndex]; ok {
		return in.Label
	}
	return fmt.Sprintf("Day %d action %d", dayNumber, actionIndex)
}
