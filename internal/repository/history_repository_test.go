package repository

import (
	"path/filepath"
	"testing"

	"github.com/sdvn-lab/traffic-backend-go/internal/database"
	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

func testRepo(t *testing.T) *HistoryRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewHistoryRepository(db)
}

func TestInsertAndList(t *testing.T) {
	repo := testRepo(t)

	for _, q := range []string{"first", "second", "third"} {
		msg := &models.ChatMessage{Question: q, Answer: "a: " + q, Intent: "unknown", Source: "remote"}
		if err := repo.Insert(msg); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if msg.ID == 0 {
			t.Error("Insert did not set ID")
		}
	}

	messages, err := repo.List(models.HistoryFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	// Chronological order, oldest first.
	if messages[0].Question != "first" || messages[2].Question != "third" {
		t.Errorf("order wrong: %v", messages)
	}
	if messages[0].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestListWindow(t *testing.T) {
	repo := testRepo(t)

	for i := 0; i < 5; i++ {
		msg := &models.ChatMessage{Question: string(rune('a' + i)), Answer: "x", Intent: "greeting", Source: "local"}
		if err := repo.Insert(msg); err != nil {
			t.Fatal(err)
		}
	}

	// limit selects the newest window, still returned oldest-first.
	messages, err := repo.List(models.HistoryFilter{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 || messages[0].Question != "d" || messages[1].Question != "e" {
		t.Errorf("window = %v", messages)
	}

	messages, err = repo.List(models.HistoryFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 || messages[0].Question != "b" {
		t.Errorf("offset window = %v", messages)
	}
}

func TestClearAndCount(t *testing.T) {
	repo := testRepo(t)

	if err := repo.Insert(&models.ChatMessage{Question: "q", Answer: "a", Intent: "unknown", Source: "fallback"}); err != nil {
		t.Fatal(err)
	}
	n, err := repo.Count()
	if err != nil || n != 1 {
		t.Fatalf("Count = %d, %v", n, err)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	n, err = repo.Count()
	if err != nil || n != 0 {
		t.Errorf("Count after clear = %d, %v", n, err)
	}

	messages, err := repo.List(models.HistoryFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 0 {
		t.Errorf("List after clear = %v", messages)
	}
}
