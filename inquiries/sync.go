package inquiries

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// The customer proposal page keeps a live view of its booking's status.
// Each connected page is a Client in the room named by the booking refId;
// every persisted status change is broadcast to that room. A client whose
// send buffer is full is dropped rather than blocking the hub, so rapid
// updates may coalesce into only the latest value.

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
				if len(conns) == 0 {
					delete(h.rooms, c.Room)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

type statusPayload struct {
	Type          string `json:"type"`
	BookingID     string `json:"bookingId"`
	BookingStatus string `json:"bookingStatus"`
}

// BroadcastStatus pushes the current status value to every page watching
// the booking.
func (h *Hub) BroadcastStatus(refID, status string) {
	data, _ := json.Marshal(statusPayload{
		Type:          "status",
		BookingID:     refID,
		BookingStatus: status,
	})
	select {
	case h.broadcast <- broadcastMsg{Room: refID, Data: data}:
	case <-h.done:
	}
}

// package-level hub wired in main; nil checks keep handlers usable in
// tests that never start a hub.
var liveHub *Hub

func UseHub(h *Hub) {
	liveHub = h
}

func notifyStatusChange(refID, status string) {
	if liveHub != nil {
		liveHub.BroadcastStatus(refID, status)
	}
}
