package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-ai-partner/config"
	_ "personal-ai-partner/docs" // Swagger docs
	chatFileRepo "personal-ai-partner/internal/chat/repository/file"
	chatUsecase "personal-ai-partner/internal/chat/usecase"
	"personal-ai-partner/internal/httpserver"
	memoryFileRepo "personal-ai-partner/internal/memory/repository/file"
	memoryUsecase "personal-ai-partner/internal/memory/usecase"
	"personal-ai-partner/internal/middleware"
	"personal-ai-partner/pkg/llmprovider"
	"personal-ai-partner/pkg/log"

	lineDelivery "personal-ai-partner/internal/chat/delivery/line"
	pkgLine "personal-ai-partner/pkg/line"
)

// @title       Personal AI Partner API
// @description Personal chatbot backed by a local completion service with flat-file memory.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal AI Partner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Knowledge file: %s", cfg.Store.KnowledgeFile)
	logger.Infof(ctx, "Conversation file: %s", cfg.Store.ConversationFile)

	// 3. Completion providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize completion providers: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)

	// 4. Repositories
	conversationRepo := chatFileRepo.NewConversationRepository(logger, cfg.Store.ConversationFile)
	knowledgeRepo := memoryFileRepo.NewKnowledgeRepository(logger, cfg.Store.KnowledgeFile)
	purchaseRepo := memoryFileRepo.NewPurchaseRepository(logger, cfg.Store.PurchaseFile)

	// 5. Use cases
	chatUC := chatUsecase.New(logger, llmManager, conversationRepo, knowledgeRepo,
		cfg.Chat.ContextTurnCount, cfg.Chat.MaxEntryChars)
	memoryUC := memoryUsecase.New(logger, knowledgeRepo, purchaseRepo)

	// 6. LINE webhook (optional)
	var lineHandler lineDelivery.Handler
	if cfg.Line.ChannelSecret != "" && cfg.Line.ChannelAccessToken != "" {
		bot := pkgLine.NewBot(cfg.Line.ChannelAccessToken)
		lineHandler = lineDelivery.New(logger, chatUC, bot, cfg.Line.ChannelSecret)
		logger.Info(ctx, "LINE channel configured")
	} else {
		logger.Warn(ctx, "LINE channel not configured, webhook disabled")
	}

	// 7. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		ChatUseCase:   chatUC,
		MemoryUseCase: memoryUC,
		LineHandler:   lineHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
