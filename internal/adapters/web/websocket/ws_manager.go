package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/suraksha-labs/suraksha/internal/adapters/web/middleware"
	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		// Allow same-origin (no Origin header)
		if origin == "" {
			return true
		}

		allowedOrigins := []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://[::1]:8080",
		}
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		log.Printf("WebSocket: Rejected origin: %s", origin)
		return false
	},
}

// Message is the envelope for every frame pushed to clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Manager tracks connected clients and pushes live assessment updates to
// them as scans come in.
type Manager struct {
	clients map[*websocket.Conn]*domain.User
	mu      sync.Mutex
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		clients: make(map[*websocket.Conn]*domain.User),
	}
}

// HandleWebSocket upgrades an authenticated request and registers the client.
func (m *Manager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	m.mu.Lock()
	m.clients[conn] = user
	m.mu.Unlock()

	// Clients never send application data; read until close to detect
	// disconnects, then drop the registration.
	go func() {
		defer m.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (m *Manager) remove(conn *websocket.Conn) {
	conn.Close()
	m.mu.Lock()
	delete(m.clients, conn)
	m.mu.Unlock()
}

// BroadcastAssessment pushes one scored assessment to every client.
func (m *Manager) BroadcastAssessment(assessment domain.RiskAssessment) {
	m.broadcast(Message{Type: "assessment", Payload: assessment})
}

// BroadcastBadges announces newly earned badges.
func (m *Manager) BroadcastBadges(username string, badgeIDs []string) {
	m.broadcast(Message{Type: "badges_earned", Payload: map[string]interface{}{
		"username": username,
		"badges":   badgeIDs,
	}})
}

func (m *Manager) broadcast(msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for conn := range m.clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("WebSocket write failed, dropping client: %v", err)
			conn.Close()
			delete(m.clients, conn)
		}
	}
}
