package model

import "time"

// CheckIn is one day's recorded habits and reflections. There is at most
// one row per calendar date; saves are whole-record upserts keyed on Date.
type CheckIn struct {
	ID                int64      `json:"id,omitempty"`
	Date              string     `json:"date"`
	PhoneOutBedroom   int        `json:"phone_out_bedroom"`
	MorningPhoneFree  int        `json:"morning_phone_free"`
	BoredomMinutes    int        `json:"boredom_minutes"`
	MeditationMinutes int        `json:"meditation_minutes"`
	PhoneFreeWalk     int        `json:"phone_free_walk"`
	EveningJournal    int        `json:"evening_journal"`
	Hardest           string     `json:"hardest"`
	Noticed           string     `json:"noticed"`
	Proud             string     `json:"proud"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}
