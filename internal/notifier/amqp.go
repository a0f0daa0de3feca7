package notifier

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"tableside/internal/config"
)

const eventsExchange = "tableside.events"

// AMQPBridge re-publishes room events to a fanout exchange so off-process
// consumers (kitchen display servers on other hosts) see the same stream
// the in-process hub delivers.
type AMQPBridge struct {
	conn *amqp.Connection
}

func DialAMQP(cfg config.AMQPConfig) (*AMQPBridge, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to broker: %w", err)
	}
	return &AMQPBridge{conn: conn}, nil
}

func (b *AMQPBridge) Publish(room, event string, payload any) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(eventsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring exchange: %w", err)
	}

	body, err := json.Marshal(Event{Room: room, Name: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	err = ch.Publish(eventsExchange, room, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}

func (b *AMQPBridge) Close() error {
	return b.conn.Close()
}
