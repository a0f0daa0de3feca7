package domain

import "time"

// Status is the order lifecycle state. The expected progression is
// pending -> confirmed -> preparing -> ready -> served, with cancelled
// reachable from any non-terminal state. Transition order is not enforced:
// any recognized status may replace any other (pending product clarification).
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the six recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusServed, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a denormalized line item: the item's name and price are
// captured at order time, so later menu edits never rewrite history.
type OrderItem struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Category    Category `json:"category"`
	PrepMinutes int      `json:"prepTime,omitempty"`
}

type Order struct {
	ID               string      `json:"id"`
	TableNo          int         `json:"tableNo"`
	Items            []OrderItem `json:"items"`
	Total            float64     `json:"total"`
	Status           Status      `json:"status"`
	EstimatedMinutes int         `json:"estimatedTime"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// OrderFilter narrows order listings. Nil fields match everything.
type OrderFilter struct {
	Status  *Status
	TableNo *int
}
