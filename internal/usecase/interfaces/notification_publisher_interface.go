package interfaces

import "context"

// INotificationPublisher abstracts the broker the reconciler enqueues
// notification intents into (RabbitMQ topic exchange in production).
//
// Publishing is fire-and-forget relative to reconciliation: a broker failure
// is logged by the caller, never surfaced to the gateway.
type INotificationPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}
