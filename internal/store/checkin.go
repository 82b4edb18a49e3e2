package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/fallow/internal/model"
)

type CheckInStore struct {
	db *sql.DB
}

func NewCheckInStore(db *sql.DB) *CheckInStore {
	return &CheckInStore{db: db}
}

const checkInCols = `id, date, phone_out_bedroom, morning_phone_free, boredom_minutes,
	meditation_minutes, phone_free_walk, evening_journal, hardest, noticed, proud, created_at`

func scanCheckIn(scanner interface{ Scan(...any) error }) (*model.CheckIn, error) {
	var c model.CheckIn
	var createdAt sql.NullTime

	err := scanner.Scan(
		&c.ID, &c.Date, &c.PhoneOutBedroom, &c.MorningPhoneFree, &c.BoredomMinutes,
		&c.MeditationMinutes, &c.PhoneFreeWalk, &c.EveningJournal,
		&c.Hardest, &c.Noticed, &c.Proud, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if createdAt.Valid {
		c.CreatedAt = &createdAt.Time
	}
	return &c, nil
}

// GetByDate returns the check-in for a calendar date, or nil when the day
// has no record yet.
func (s *CheckInStore) GetByDate(date string) (*model.CheckIn, error) {
	row := s.db.QueryRow(`SELECT `+checkInCols+` FROM check_ins WHERE date = ?`, date)
	c, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get check-in %q: %w", date, err)
	}
	return c, nil
}

// ListAll returns every check-in ascending by date.
func (s *CheckInStore) ListAll() ([]model.CheckIn, error) {
	rows, err := s.db.Query(`SELECT ` + checkInCols + ` FROM check_ins ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []model.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		checkIns = append(checkIns, *c)
	}
	return checkIns, rows.Err()
}

// Upsert saves the whole record for its date. A later save for the same
// date replaces the earlier one; a date never has two rows.
func (s *CheckInStore) Upsert(c *model.CheckIn) error {
	_, err := s.db.Exec(
		`INSERT INTO check_ins (date, phone_out_bedroom, morning_phone_free, boredom_minutes,
			meditation_minutes, phone_free_walk, evening_journal, hardest, noticed, proud)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			phone_out_bedroom = excluded.phone_out_bedroom,
			morning_phone_free = excluded.morning_phone_free,
			boredom_minutes = excluded.boredom_minutes,
			meditation_minutes = excluded.meditation_minutes,
			phone_free_walk = excluded.phone_free_walk,
			evening_journal = excluded.evening_journal,
			hardest = excluded.hardest,
			noticed = excluded.noticed,
			proud = excluded.proud`,
		c.Date, c.PhoneOutBedroom, c.MorningPhoneFree, c.BoredomMinutes,
		c.MeditationMinutes, c.PhoneFreeWalk, c.EveningJournal,
		c.Hardest, c.Noticed, c.Proud,
	)
	if err != nil {
		return fmt.Errorf("upsert check-in %q: %w", c.Date, err)
	}
	return nil
}
