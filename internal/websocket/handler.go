package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded connection to the hub and runs its pumps.
// Initial frames are queued before registration so they beat any push.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, initial ...[]byte) {
	client := &Client{Hub: hub, Conn: c, UserID: userID, Send: make(chan []byte, 256)}
	for _, frame := range initial {
		client.Send <- frame
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
