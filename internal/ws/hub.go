package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Refresh scopes: which table the UI should re-query after a mutation.
const (
	ScopeProducts     = "products"
	ScopeTransactions = "transactions"
)

// Hub fans refresh events out to every connected UI. The desktop frontend
// re-queries the named scope instead of patching its table in place.
type Hub struct {
	clients    map[*websocket.Conn]string
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*websocket.Conn]string),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			id := uuid.NewString()
			h.mutex.Lock()
			h.clients[conn] = id
			h.mutex.Unlock()
			h.log.Info("ws client connected", zap.String("client_id", id))

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if id, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				h.log.Info("ws client disconnected", zap.String("client_id", id))
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn, id := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
					h.log.Warn("ws write failed, dropping client",
						zap.String("client_id", id), zap.Error(err))
				}
			}
			h.mutex.Unlock()
		}
	}
}

// NotifyRefresh queues a refresh event for the given scopes. Safe on a nil
// hub so services can run without one in tests.
func (h *Hub) NotifyRefresh(scopes ...string) {
	if h == nil {
		return
	}
	payload := map[string]interface{}{
		"type":   "refresh",
		"scopes": scopes,
	}
	msg, _ := json.Marshal(payload)
	h.Broadcast <- msg
}
