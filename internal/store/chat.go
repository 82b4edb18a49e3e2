package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/fallow/internal/model"
)

type ChatStore struct {
	db *sql.DB
}

func NewChatStore(db *sql.DB) *ChatStore {
	return &ChatStore{db: db}
}

// Append writes one finished transcript turn. Rows are never updated.
func (s *ChatStore) Append(role, content string) error {
	_, err := s.db.Exec(`INSERT INTO chat_messages (role, content) VALUES (?, ?)`, role, content)
	if err != nil {
		return fmt.Errorf("append chat message: %w", err)
	}
	return nil
}

// ListAll returns the full transcript ascending by creation time.
func (s *ChatStore) ListAll() ([]model.ChatMessage, error) {
	rows, err := s.db.Query(
		`SELECT id, role, content, created_at FROM chat_messages ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
