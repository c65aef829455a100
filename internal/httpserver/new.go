package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/chat"
	lineDelivery "personal-ai-partner/internal/chat/delivery/line"
	wsDelivery "personal-ai-partner/internal/chat/delivery/ws"
	"personal-ai-partner/internal/memory"
	"personal-ai-partner/internal/middleware"
	"personal-ai-partner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatUC   chat.UseCase
	memoryUC memory.UseCase

	// WebSocket chat
	wsManager *wsDelivery.Manager
	wsHandler *wsDelivery.Handler

	// LINE webhook, nil when the channel is not configured
	lineHandler lineDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ChatUseCase   chat.UseCase
	MemoryUseCase memory.UseCase

	WSManager *wsDelivery.Manager

	LineHandler lineDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		chatUC:      cfg.ChatUseCase,
		memoryUC:    cfg.MemoryUseCase,
		wsManager:   cfg.WSManager,
		lineHandler: cfg.LineHandler,
	}

	if srv.wsManager == nil {
		srv.wsManager = wsDelivery.NewManager()
	}
	srv.wsHandler = wsDelivery.New(logger, cfg.ChatUseCase, srv.wsManager)

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.memoryUC == nil {
		return errors.New("memory use case is required")
	}
	return nil
}
