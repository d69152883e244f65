// Package repository holds the database access layer.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

// HistoryRepository persists chat exchanges for UI display. The router never
// reads history back when answering, so losing rows costs nothing but the
// panel scrollback.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert stores one question/answer exchange.
func (r *HistoryRepository) Insert(msg *models.ChatMessage) error {
	result, err := r.db.Exec(
		"INSERT INTO chat_messages (question, answer, intent, source) VALUES (?, ?, ?, ?)",
		msg.Question, msg.Answer, msg.Intent, msg.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read insert id: %w", err)
	}
	msg.ID = id
	return nil
}

// List returns exchanges in chronological order, newest window selected by
// limit/offset.
func (r *HistoryRepository) List(filter models.HistoryFilter) ([]models.ChatMessage, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(`
		SELECT id, question, answer, intent, source, created_at
		FROM chat_messages
		ORDER BY id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.Question, &msg.Answer, &msg.Intent, &msg.Source, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to chronological order for the panel.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Clear deletes all stored exchanges.
func (r *HistoryRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM chat_messages"); err != nil {
		return fmt.Errorf("failed to clear chat messages: %w", err)
	}
	return nil
}

// Count returns the number of stored exchanges.
func (r *HistoryRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM chat_messages").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return n, nil
}
