package notifier

import "fmt"

// KitchenRoom is the shared room every kitchen display joins.
const KitchenRoom = "kitchen"

// TableRoom names the room for a single table's clients.
func TableRoom(tableNo int) string {
	return fmt.Sprintf("table:%d", tableNo)
}

const (
	EventNewOrder           = "newOrder"
	EventOrderConfirmed     = "orderConfirmed"
	EventOrderStatusUpdate  = "orderStatusUpdate"
	EventOrderStatusUpdated = "orderStatusUpdated"
)

// Event is one room-addressed notification.
type Event struct {
	Room    string `json:"room"`
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// Publisher fans an event out to the subscribers of a room. Delivery is
// best-effort: no acknowledgment, no replay for late joiners.
type Publisher interface {
	Publish(room, event string, payload any) error
}
