package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FloorEventsHandler upgrades the connection and registers it on the event
// hub so staff dashboards receive booking/table events in real time.
func FloorEventsHandler(hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.Param("role")
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
			return
		}
		hub.RegisterClient(conn, role)
		utils.InfoLogger.Printf("websocket client connected (role=%s)", role)

		// Reader loop only detects disconnects; the hub does all writing.
		go func() {
			defer hub.UnregisterClient(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
