package entities

// Routing keys for booking payment events published to the notification
// exchange. The notification worker binds a queue to booking.payment.*.
const (
	RoutingKeyPaymentPaid   = "booking.payment.paid"
	RoutingKeyPaymentFailed = "booking.payment.failed"
	RoutingKeyPaymentReview = "booking.payment.review"
)

// Notification channels. Every settled transition produces one intent per
// channel, each carrying the full booking snapshot.
const (
	ChannelOperator = "operator"
	ChannelCustomer = "customer"
)

// BookingPaymentEvent is the message enqueued by the reconciler and consumed
// by the notification worker. Dispatch is fire-and-forget relative to the
// webhook response.
type BookingPaymentEvent struct {
	Event      string  `json:"event"`
	Version    int     `json:"version"`
	OccurredAt string  `json:"occurred_at"`
	Channel    string  `json:"channel"`
	Booking    Booking `json:"booking"`
}
