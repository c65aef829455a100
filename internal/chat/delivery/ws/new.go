// Package ws streams chat over WebSocket with intermediate progress frames.
package ws

import (
	"net/http"

	"github.com/gorilla/websocket"

	"personal-ai-partner/internal/chat"
	"personal-ai-partner/pkg/log"
)

// Handler upgrades HTTP requests and runs the chat protocol per connection.
type Handler struct {
	l        log.Logger
	uc       chat.UseCase
	manager  *Manager
	upgrader websocket.Upgrader
}

// New creates a WebSocket handler backed by the chat use case.
func New(l log.Logger, uc chat.UseCase, manager *Manager) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The UI is served from a different origin in development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
