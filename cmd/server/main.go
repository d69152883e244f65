package main

import (
	"context"
	"flag"
	"os"

	"github.com/sdvn-lab/traffic-backend-go/internal/api"
	"github.com/sdvn-lab/traffic-backend-go/internal/config"
	"github.com/sdvn-lab/traffic-backend-go/internal/database"
	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/gemini"
	"github.com/sdvn-lab/traffic-backend-go/internal/handler"
	"github.com/sdvn-lab/traffic-backend-go/internal/intent"
	"github.com/sdvn-lab/traffic-backend-go/internal/logger"
	"github.com/sdvn-lab/traffic-backend-go/internal/repository"
	"github.com/sdvn-lab/traffic-backend-go/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logging.Debug); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// The cluster CSV is the whole point of the service; refusing to start
	// without it beats serving empty answers.
	store, err := dataset.NewStore(cfg.Dataset.Path)
	if err != nil {
		logger.Fatalf("Failed to load dataset: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartRefresh(ctx, cfg.Dataset.RefreshInterval)

	// Chat history persistence is optional; the router works without it.
	var history *repository.HistoryRepository
	if cfg.Chat.HistoryPath != "" {
		db, err := database.Open(cfg.Chat.HistoryPath)
		if err != nil {
			logger.Warnf("Chat history disabled: %v", err)
		} else {
			defer db.Close()
			history = repository.NewHistoryRepository(db)
		}
	}

	client := gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if !client.Configured() {
		logger.Warnf("Gemini API key not configured; unknown questions get the static fallback")
	}

	chatService := service.NewChatService(
		store,
		intent.NewClassifier(),
		service.NewLocalAggregateProvider(cfg.Chat.TopK, cfg.Chat.MaxRows),
		service.NewRemoteGenerativeProvider(client),
		history,
		cfg.Gemini.Timeout,
	)

	router := api.SetupRouter(api.Deps{
		Config:        cfg,
		Store:         store,
		Chat:          handler.NewChatHandler(chatService),
		Segments:      handler.NewSegmentHandler(service.NewSegmentService(store)),
		Stats:         handler.NewStatsHandler(service.NewStatsService(store)),
		Admin:         handler.NewAdminHandler(store),
		APIConfigured: client.Configured(),
	})

	logger.Infof("Server starting on %s", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
