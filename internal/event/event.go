package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeOrderCreated    Type = "order.created"
	TypeOrderDeleted    Type = "order.deleted"
	TypeDeliveryUpdated Type = "delivery.updated"
)

type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	OrderID   int64     `json:"order_id"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func New(t Type, orderID int64, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		OrderID:   orderID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher is the side of the bus services depend on.
type Publisher interface {
	Publish(e Event)
}
