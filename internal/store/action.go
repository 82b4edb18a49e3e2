package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/fallow/internal/model"
)

type ActionStore struct {
	db *sql.DB
}

func NewActionStore(db *sql.DB) *ActionStore {
	return &ActionStore{db: db}
}

const actionCols = `id, date, day_number, action_index, completed, response_text, created_at`

func scanAction(scanner interface{ Scan(...any) error }) (*model.ActionCompletion, error) {
	var a model.ActionCompletion
	var responseText sql.NullString
	var createdAt sql.NullTime

	err := scanner.Scan(&a.ID, &a.Date, &a.DayNumber, &a.ActionIndex, &a.Completed, &responseText, &createdAt)
	if err != nil {
		return nil, err
	}
	if responseText.Valid {
		a.ResponseText = &responseText.String
	}
	if createdAt.Valid {
		a.CreatedAt = &createdAt.Time
	}
	return &a, nil
}

// ListForDay returns completion rows for one plan day done on one calendar
// date, ordered by action index.
func (s *ActionStore) ListForDay(date string, dayNumber int) ([]model.ActionCompletion, error) {
	rows, err := s.db.Query(
		`SELECT `+actionCols+` FROM action_completions
		 WHERE date = ? AND day_number = ? ORDER BY action_index ASC`,
		date, dayNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("list actions for %q day %d: %w", date, dayNumber, err)
	}
	defer rows.Close()

	var completions []model.ActionCompletion
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		completions = append(completions, *a)
	}
	return completions, rows.Err()
}

// Upsert saves one action row keyed on (date, day_number, action_index).
// A nil responseText preserves any text already saved for the triple, so
// toggling a checkbox does not wipe a written answer.
func (s *ActionStore) Upsert(date string, dayNumber, actionIndex, completed int, responseText *string) error {
	_, err := s.db.Exec(
		`INSERT INTO action_completions (date, day_number, action_index, completed, response_text)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(date, day_number, action_index) DO UPDATE SET
			completed = excluded.completed,
			response_text = COALESCE(excluded.response_text, action_completions.response_text)`,
		date, dayNumber, actionIndex, completed, responseText,
	)
	if err != nil {
		return fmt.Errorf("upsert action (%s, %d, %d): %w", date, dayNumber, actionIndex, err)
	}
	return nil
}

// GetResponse returns the most recent non-empty written response for a
// (day, action) pair regardless of the calendar date it was saved on, or
// nil when nothing has been written.
func (s *ActionStore) GetResponse(dayNumber, actionIndex int) (*string, error) {
	var text string
	err := s.db.QueryRow(
		`SELECT response_text FROM action_completions
		 WHERE day_number = ? AND action_index = ? AND response_text IS NOT NULL AND response_text != ''
		 ORDER BY date DESC LIMIT 1`,
		dayNumber, actionIndex,
	).Scan(&text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get response (%d, %d): %w", dayNumber, actionIndex, err)
	}
	return &text, nil
}

// ListResponses returns every non-empty written response ordered by plan
// position, for the coach prompt.
func (s *ActionStore) ListResponses() ([]model.ActionResponse, error) {
	rows, err := s.db.Query(
		`SELECT day_number, action_index, response_text FROM action_completions
		 WHERE response_text IS NOT NULL AND response_text != ''
		 ORDER BY day_number ASC, action_index ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	var responses []model.ActionResponse
	for rows.Next() {
		var r model.ActionResponse
		if err := rows.Scan(&r.DayNumber, &r.ActionIndex, &r.ResponseText); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}
