package model

import "time"

// ChatMessage is one turn of the coaching transcript. The transcript is
// append-only: rows are never mutated or deleted once written.
type ChatMessage struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
