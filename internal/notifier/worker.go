package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bengkel_audio/internal/domain/entities"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeliverySource is the slice of the messaging consumer the worker needs.
type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// Worker consumes booking payment events and fans them out to per-channel
// notifiers. Malformed payloads are acked and logged so they cannot loop
// through redelivery forever; channel failures nack with requeue.

type Worker struct {
	source   DeliverySource
	channels map[string]Notifier
}

func NewWorker(source DeliverySource, channels map[string]Notifier) *Worker {
	return &Worker{source: source, channels: channels}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.source.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.Handle(d.RoutingKey, d.Body); err != nil {
				log.Printf("[notify][worker] handle failed key=%s err=%v", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// Handle dispatches one delivery. A nil return means the delivery is done
// with (including skipped/unparseable messages); an error asks for redelivery.
func (w *Worker) Handle(routingKey string, body []byte) error {
	if !strings.HasPrefix(routingKey, "booking.payment.") {
		log.Printf("[notify][worker] skip unknown key=%s", routingKey)
		return nil
	}

	var ev entities.BookingPaymentEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		log.Printf("[notify][worker] unmarshal failed key=%s err=%v", routingKey, err)
		return nil
	}
	if ev.Booking.ID == "" {
		log.Printf("[notify][worker] event without booking id key=%s", routingKey)
		return nil
	}

	n, ok := w.channels[ev.Channel]
	if !ok {
		log.Printf("[notify][worker] no notifier for channel=%s booking_id=%s", ev.Channel, ev.Booking.ID)
		return nil
	}

	subject, message := RenderMessage(ev)
	if err := n.Notify(subject, message); err != nil {
		return fmt.Errorf("notify channel=%s: %w", ev.Channel, err)
	}
	log.Printf("[notify][worker] delivered channel=%s booking_id=%s event=%s", ev.Channel, ev.Booking.ID, ev.Event)
	return nil
}
