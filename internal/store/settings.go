package store

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	KeyStartDate = "start_date"
	KeyUserName  = "user_name"
)

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the value for key, or "" when the key has never been set.
// An unset key is not an error: settings are written lazily at onboarding.
func (s *SettingsStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *SettingsStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// StartDate returns the program start date ("" means not yet onboarded).
func (s *SettingsStore) StartDate() (string, error) {
	return s.Get(KeyStartDate)
}

func (s *SettingsStore) UserName() (string, error) {
	return s.Get(KeyUserName)
}
