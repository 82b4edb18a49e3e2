// Package habit defines the closed set of tracked habits and the streak
// arithmetic over check-in history.
package habit

import "github.com/dukerupert/fallow/internal/model"

// Habit identifies one tracked habit. The set is closed: record fields
// are reached through Value rather than by string key, so an invalid
// habit is a compile-time error.
type Habit string

const (
	PhoneOutBedroom   Habit = "phone_out_bedroom"
	MorningPhoneFree  Habit = "morning_phone_free"
	BoredomMinutes    Habit = "boredom_minutes"
	MeditationMinutes Habit = "meditation_minutes"
	PhoneFreeWalk     Habit = "phone_free_walk"
	EveningJournal    Habit = "evening_journal"
)

// All lists every tracked habit in display order.
var All = []Habit{
	PhoneOutBedroom,
	MorningPhoneFree,
	BoredomMinutes,
	MeditationMinutes,
	PhoneFreeWalk,
	EveningJournal,
}

// Info carries a habit's presentation and gating metadata.
type Info struct {
	Label      string `json:"label"`
	ShortLabel string `json:"short_label"`
	Numeric    bool   `json:"numeric"`
	Unit       string `json:"unit,omitempty"`
	// IntroDay is the program day the habit first appears. Both the
	// daily view and the morning review consult this one table.
	IntroDay int `json:"intro_day"`
}

var infos = map[Habit]Info{
	PhoneOutBedroom:   {Label: "Phone out of bedroom", ShortLabel: "Phone out", IntroDay: 1},
	MorningPhoneFree:  {Label: "Phone-free morning", ShortLabel: "Phone-free AM", IntroDay: 2},
	BoredomMinutes:    {Label: "Practice 10 minutes of boredom", ShortLabel: "Boredom", Numeric: true, Unit: "m", IntroDay: 2},
	MeditationMinutes: {Label: "Meditation", ShortLabel: "Meditation", Numeric: true, Unit: "m", IntroDay: 5},
	PhoneFreeWalk:     {Label: "Phone-free walk", ShortLabel: "Phone-free walk", IntroDay: 3},
	EveningJournal:    {Label: "Evening journal", ShortLabel: "Journal", IntroDay: 6},
}

// Meta returns the habit's metadata.
func (h Habit) Meta() Info {
	return infos[h]
}

// Label returns the habit's full display label.
func (h Habit) Label() string {
	return infos[h].Label
}

// ActiveOn reports whether the habit has been introduced by the given
// program day.
func (h Habit) ActiveOn(dayNumber int) bool {
	return infos[h].IntroDay <= dayNumber
}

// Value extracts the habit's recorded value from a check-in. Boolean
// habits store 0/1; numeric habits store minutes, where any value > 0
// counts as done.
func (h Habit) Value(c *model.CheckIn) int {
	switch h {
	case PhoneOutBedroom:
		return c.PhoneOutBedroom
	case MorningPhoneFree:
		return c.MorningPhoneFree
	case BoredomMinutes:
		return c.BoredomMinutes
	case MeditationMinutes:
		return c.MeditationMinutes
	case PhoneFreeWalk:
		return c.PhoneFreeWalk
	case EveningJournal:
		return c.EveningJournal
	}
	return 0
}

// Done reports whether the habit counts as completed on a check-in.
func (h Habit) Done(c *model.CheckIn) bool {
	return h.Value(c) > 0
}
