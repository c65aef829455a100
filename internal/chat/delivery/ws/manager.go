package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager tracks live WebSocket connections.
// Writes to a single connection are serialized through the client mutex
// because gorilla/websocket allows at most one concurrent writer.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]*client
}

type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewManager creates an empty connection manager.
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*client),
	}
}

func (m *Manager) add(id string, conn *websocket.Conn) *client {
	cl := &client{conn: conn}
	m.mu.Lock()
	m.clients[id] = cl
	m.mu.Unlock()
	return cl
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.clients, id)
	m.mu.Unlock()
}

// Count returns the number of connected clients.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

func (cl *client) writeJSON(v any) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(v)
}
