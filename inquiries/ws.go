package inquiries

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow all origins, CORS is enforced at the middleware layer
		return true
	},
}

// BookingUpdatesWS upgrades the connection and subscribes it to the
// booking's status room until the client goes away.
func BookingUpdatesWS(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		refID := ps.ByName("refId")
		if refID == "" {
			http.Error(w, "missing refId", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 16),
			Room: refID,
		}
		hub.register <- client

		go writePump(client)
		readPump(hub, client)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump keeps the connection alive until the client disconnects, then
// unregisters it so the room does not leak subscribers.
func readPump(hub *Hub, c *Client) {
	defer func() {
		select {
		case hub.unregister <- c:
		case <-hub.done:
		}
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
