package service

import (
	"context"
	"time"

	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/intent"
	"github.com/sdvn-lab/traffic-backend-go/internal/logger"
	"github.com/sdvn-lab/traffic-backend-go/internal/models"
	"github.com/sdvn-lab/traffic-backend-go/internal/repository"
)

// ChatService is the query router: it classifies a question, selects the
// local or remote answer provider and persists the exchange. It never
// surfaces an error to the chat user; every failure degrades to answer text.
type ChatService struct {
	store         *dataset.Store
	classifier    *intent.Classifier
	local         AnswerProvider
	remote        AnswerProvider
	history       *repository.HistoryRepository // nil disables persistence
	remoteTimeout time.Duration
}

// NewChatService creates the query router. history may be nil when
// persistence is disabled.
func NewChatService(
	store *dataset.Store,
	classifier *intent.Classifier,
	local, remote AnswerProvider,
	history *repository.HistoryRepository,
	remoteTimeout time.Duration,
) *ChatService {
	if remoteTimeout <= 0 {
		remoteTimeout = 10 * time.Second
	}
	return &ChatService{
		store:         store,
		classifier:    classifier,
		local:         local,
		remote:        remote,
		history:       history,
		remoteTimeout: remoteTimeout,
	}
}

// Chat answers one question. The table is snapshotted once so the whole
// request sees a single immutable dataset.
func (s *ChatService) Chat(ctx context.Context, question string) models.ChatAnswer {
	table := s.store.Table()
	it := s.classifier.Classify(question, table.SegmentIDs())

	var answer models.ChatAnswer
	var err error
	if it.Local() {
		answer, err = s.local.Answer(ctx, question, it, table)
	} else {
		// The remote call is the only blocking operation; bound it so a slow
		// upstream cannot hang the request.
		remoteCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
		defer cancel()
		answer, err = s.remote.Answer(remoteCtx, question, it, table)
	}
	if err != nil {
		// Providers should degrade internally; this is the belt-and-braces
		// path for an implementation that errors anyway.
		logger.Errorf("answer provider failed: %v", err)
		answer = models.ChatAnswer{
			Intent: string(it.Kind),
			Source: "fallback",
			Text:   FallbackText(table.Summary()),
		}
	}

	s.record(question, answer)
	return answer
}

// History returns stored exchanges for the UI panel.
func (s *ChatService) History(filter models.HistoryFilter) ([]models.ChatMessage, error) {
	if s.history == nil {
		return []models.ChatMessage{}, nil
	}
	return s.history.List(filter)
}

// ClearHistory wipes the stored exchanges.
func (s *ChatService) ClearHistory() error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear()
}

func (s *ChatService) record(question string, answer models.ChatAnswer) {
	if s.history == nil {
		return
	}
	msg := &models.ChatMessage{
		Question: question,
		Answer:   answer.Text,
		Intent:   answer.Intent,
		Source:   answer.Source,
	}
	if err := s.history.Insert(msg); err != nil {
		logger.Warnf("failed to persist chat exchange: %v", err)
	}
}
