package controllers

import (
	"net/http"

	"go-postgres-restopos/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin dibatasi di reverse proxy, bukan di sini
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS meng-upgrade koneksi dan mendaftarkannya ke hub. Koneksi hanya
// dipakai untuk push server->client; read loop cuma untuk mendeteksi putus.
func ServeWS(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := hub.Add(conn)
		defer func() {
			hub.Remove(client)
			_ = conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
