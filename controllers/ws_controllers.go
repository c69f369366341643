package controllers

import (
	"net/http"

	"github.com/Jabbcode/restaurante-app/alerts"
	"github.com/Jabbcode/restaurante-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AlertsHandler -> GET /admin/ws
// Mantiene abierta la conexión de un panel de admin; el monitor de pendientes
// le empuja las alertas. El loop de lectura solo detecta la desconexión.
func AlertsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Error upgrading websocket: %v", err)
		return
	}

	alerts.RegisterClient(conn)
	utils.InfoLogger.Printf("Admin panel connected to alerts hub: %s", c.ClientIP())

	defer alerts.UnregisterClient(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
