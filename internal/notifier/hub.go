package notifier

import (
	"sync"

	"go.uber.org/zap"
)

// sendBuffer is the per-connection event backlog. A connection that falls
// this far behind starts losing events (drop and log).
const sendBuffer = 16

// Hub is the in-process room registry. Connections attach once, join any
// number of rooms, and receive every event published to those rooms on a
// single channel until UnsubscribeAll.
type Hub struct {
	logger *zap.Logger

	mu    sync.RWMutex
	conns map[string]chan Event
	rooms map[string]map[string]struct{}
	// joined mirrors rooms from the connection side so disconnect cleanup
	// does not scan every room.
	joined map[string]map[string]struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[string]chan Event),
		rooms:  make(map[string]map[string]struct{}),
		joined: make(map[string]map[string]struct{}),
	}
}

// Attach registers a connection and returns its delivery channel. The
// channel is closed by UnsubscribeAll. Attaching an already-attached
// connection returns the existing channel.
func (h *Hub) Attach(connID string) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.conns[connID]; ok {
		return ch
	}

	ch := make(chan Event, sendBuffer)
	h.conns[connID] = ch
	h.joined[connID] = make(map[string]struct{})
	return ch
}

func (h *Hub) SubscribeTable(connID string, tableNo int) {
	h.subscribe(connID, TableRoom(tableNo))
}

func (h *Hub) SubscribeKitchen(connID string) {
	h.subscribe(connID, KitchenRoom)
}

func (h *Hub) subscribe(connID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[connID]; !ok {
		// Joining without Attach is a programming error upstream; ignore
		// rather than fabricate a channel nobody reads.
		h.logger.Warn("subscribe for unattached connection",
			zap.String("connectionId", connID), zap.String("room", room))
		return
	}

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]struct{})
	}
	h.rooms[room][connID] = struct{}{}
	h.joined[connID][room] = struct{}{}
}

// UnsubscribeAll removes the connection from every room it joined and closes
// its delivery channel. Safe to call for unknown connections.
func (h *Hub) UnsubscribeAll(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.conns[connID]
	if !ok {
		return
	}

	for room := range h.joined[connID] {
		delete(h.rooms[room], connID)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.joined, connID)
	delete(h.conns, connID)
	close(ch)
}

// Subscribers reports how many connections are currently in room.
func (h *Hub) Subscribers(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Publish delivers the event to every current subscriber of room. A room
// with no subscribers is a no-op. A subscriber with a full buffer loses the
// event; the drop is logged and delivery to the others continues.
func (h *Hub) Publish(room, event string, payload any) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ev := Event{Room: room, Name: event, Payload: payload}
	for connID := range h.rooms[room] {
		select {
		case h.conns[connID] <- ev:
		default:
			h.logger.Warn("dropping event for slow subscriber",
				zap.String("connectionId", connID),
				zap.String("room", room),
				zap.String("event", event))
		}
	}
	return nil
}
