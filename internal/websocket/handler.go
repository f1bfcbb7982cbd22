package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers the connection and runs its pumps. It returns when the
// connection is gone, after the client is unregistered.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, sendBuffer int) {
	client := NewClient(hub, c, userID, sendBuffer)
	hub.Register(client)

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
