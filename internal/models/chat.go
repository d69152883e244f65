package models

import "time"

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatAnswer is the result of routing one question. Rows optionally carries a
// small supporting table for the assistant panel.
type ChatAnswer struct {
	Text   string          `json:"answer"`
	Intent string          `json:"intent"`
	Source string          `json:"source"` // "local" or "remote"
	Rows   []SegmentRecord `json:"rows,omitempty"`
}

// ChatMessage is one persisted question/answer exchange, kept for UI display
// only. The router itself is stateless across turns.
type ChatMessage struct {
	ID        int64     `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Intent    string    `json:"intent" db:"intent"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
