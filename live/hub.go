package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/newtreichville/restaurant-api/models"
)

// Event types pushed to connected operator dashboards.
const (
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventContactCreate     = "contact_create"
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventTableDelete       = "table_delete"
	EventDashboardUpdate   = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected dashboard client and their role.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection to the set with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastReservationCreate announces a new booking to all dashboards.
func BroadcastReservationCreate(reservation models.Reservation) {
	BroadcastMessage(Message{
		Event: EventReservationCreate,
		Data:  reservation,
	})
}

// BroadcastReservationUpdate announces a status or table change.
func BroadcastReservationUpdate(reservation models.Reservation) {
	BroadcastMessage(Message{
		Event: EventReservationUpdate,
		Data:  reservation,
	})
}

// BroadcastContactCreate announces a new contact message.
func BroadcastContactCreate(message models.ContactMessage) {
	BroadcastMessage(Message{
		Event: EventContactCreate,
		Data:  message,
	})
}

// BroadcastMessage sends a message to every connected client. A client that
// fails to receive is dropped; the broadcast itself never fails.
func BroadcastMessage(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
