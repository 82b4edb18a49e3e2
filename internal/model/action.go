package model

import "time"

// ActionCompletion records completion (and an optional written response)
// for one action item of one plan day, on the calendar date it was done.
// The (Date, DayNumber, ActionIndex) triple is unique; saves upsert.
// Date and DayNumber diverge when the user catches up after missed days.
type ActionCompletion struct {
	ID           int64      `json:"id,omitempty"`
	Date         string     `json:"date"`
	DayNumber    int        `json:"day_number"`
	ActionIndex  int        `json:"action_index"`
	Completed    int        `json:"completed"`
	ResponseText *string    `json:"response_text"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// ActionResponse is a written answer joined with its plan coordinates,
// as fed to the coach prompt.
type ActionResponse struct {
	DayNumber    int    `json:"day_number"`
	ActionIndex  int    `json:"action_index"`
	ResponseText string `json:"response_text"`
}
