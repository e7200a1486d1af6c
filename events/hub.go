package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/neggmmm/brandbite-sub000/utils"
)

// Event names carried on every lifecycle transition.
const (
	EventBookingNew       = "booking:new"
	EventBookingConfirmed = "booking:confirmed"
	EventBookingRejected  = "booking:rejected"
	EventBookingSeated    = "booking:seated"
	EventBookingCompleted = "booking:completed"
	EventBookingNoShow    = "booking:no-show"
	EventBookingCancelled = "booking:cancelled"
	EventTableUpdated     = "table:updated"
)

type Message struct {
	Event        string      `json:"event"`
	RestaurantID uint        `json:"restaurant_id"`
	Data         interface{} `json:"data"`
}

// Listener receives every published message. Errors are logged and dropped;
// delivery is best-effort and never blocks or fails a booking operation.
type Listener func(msg Message) error

// Hub fans lifecycle events out to websocket clients (staff dashboards) and
// registered listeners. It is constructed in main and injected into the
// services so the core carries no ambient global dispatcher.
type Hub struct {
	clients   map[*websocket.Conn]string // conn -> role
	listeners []Listener
	mutex     sync.Mutex

	queue chan Message
	done  chan struct{}
}

func NewHub() *Hub {
	h := &Hub{
		clients: make(map[*websocket.Conn]string),
		queue:   make(chan Message, 256),
		done:    make(chan struct{}),
	}
	go h.run()
	return h
}

// RegisterClient adds a websocket connection with its role.
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// AddListener registers a listener for all published messages.
func (h *Hub) AddListener(l Listener) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.listeners = append(h.listeners, l)
}

// Publish enqueues a message for delivery and returns immediately. When the
// queue is full the message is dropped with a log line; callers never wait.
func (h *Hub) Publish(event string, restaurantID uint, data interface{}) {
	msg := Message{Event: event, RestaurantID: restaurantID, Data: data}
	select {
	case h.queue <- msg:
	default:
		utils.ErrorLogger.Printf("event queue full, dropping %s", event)
	}
}

// Close stops the dispatcher after draining queued messages.
func (h *Hub) Close() {
	close(h.queue)
	<-h.done
}

func (h *Hub) run() {
	defer close(h.done)
	for msg := range h.queue {
		h.dispatch(msg)
	}
}

func (h *Hub) dispatch(msg Message) {
	h.mutex.Lock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)

	data, err := json.Marshal(msg)
	if err != nil {
		h.mutex.Unlock()
		utils.ErrorLogger.Printf("error marshaling %s event: %v", msg.Event, err)
		return
	}
	for conn, role := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("error sending %s to %s client: %v", msg.Event, role, err)
		}
	}
	h.mutex.Unlock()

	for _, l := range listeners {
		if err := l(msg); err != nil {
			utils.ErrorLogger.Printf("listener error on %s: %v", msg.Event, err)
		}
	}
}
