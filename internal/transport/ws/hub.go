package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard message types
const (
	MsgDashboardConnected MessageType = "dashboard_connected"
	MsgScoreCompleted     MessageType = "score_completed"
	MsgAnalysisCompleted  MessageType = "analysis_completed"
	MsgError              MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard WebSocket connections per assessment
type Hub struct {
	// Assessment ID -> connections
	dashConns map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a dashboard WebSocket connection
type Connection struct {
	AssessmentID string
	AdminID      string
	Send         chan []byte
	Hub          *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	AssessmentID string
	Message      *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		dashConns:  make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.dashConns[conn.AssessmentID] == nil {
				h.dashConns[conn.AssessmentID] = make(map[*Connection]bool)
			}
			h.dashConns[conn.AssessmentID][conn] = true
			log.Printf("Dashboard %s connected for assessment %s", conn.AdminID, conn.AssessmentID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.dashConns[conn.AssessmentID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Dashboard %s disconnected from assessment %s", conn.AdminID, conn.AssessmentID)
				}
				if len(conns) == 0 {
					delete(h.dashConns, conn.AssessmentID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if conns, ok := h.dashConns[msg.AssessmentID]; ok {
				for conn := range conns {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToDashboard sends a message to every dashboard watching an
// assessment (implements service.Broadcaster)
func (h *Hub) BroadcastToDashboard(assessmentID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AssessmentID: assessmentID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
