package alerts

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Eventos que se emiten a las sesiones de admin conectadas
const (
	EventNewMessages     = "new_messages"
	EventNewReservations = "new_reservations"
	EventCountsUpdate    = "counts_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub guarda las conexiones websocket de los paneles de admin abiertos
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastNewMessages avisa que hay mensajes pendientes nuevos
func BroadcastNewMessages(newCount int64, total int64) {
	broadcast(Message{
		Event: EventNewMessages,
		Data: map[string]int64{
			"new":     newCount,
			"pending": total,
		},
	})
}

// BroadcastNewReservations avisa que hay reservaciones pendientes nuevas
func BroadcastNewReservations(newCount int64, total int64) {
	broadcast(Message{
		Event: EventNewReservations,
		Data: map[string]int64{
			"new":     newCount,
			"pending": total,
		},
	})
}

// BroadcastCounts empuja el snapshot de contadores en cada poll
func BroadcastCounts(messages, reservations int64) {
	broadcast(Message{
		Event: EventCountsUpdate,
		Data: map[string]int64{
			"messages":     messages,
			"reservations": reservations,
		},
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
