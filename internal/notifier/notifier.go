package notifier

import (
	"fmt"
	"log"

	"bengkel_audio/internal/domain/entities"
)

// Notifier is one outbound alert channel (email/WhatsApp/Telegram are
// interchangeable implementations).
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs alerts; used for the operator channel in development
// and as a safe default when no channel is configured.
type ConsoleNotifier struct {
	name string
}

func NewConsole(name string) *ConsoleNotifier {
	return &ConsoleNotifier{name: name}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify][%s] %s :: %s", c.name, subject, message)
	return nil
}

// FormatAmount renders a smallest-unit rupiah amount for humans.
func FormatAmount(v int64) string {
	return fmt.Sprintf("Rp%d", v)
}

// Subject and body per event kind, shared by all channels.
func RenderMessage(ev entities.BookingPaymentEvent) (subject, body string) {
	b := ev.Booking
	switch ev.Event {
	case entities.RoutingKeyPaymentPaid:
		if b.PaymentStatus == entities.PaymentStatusDPPaid {
			subject = "Down payment received"
			body = fmt.Sprintf("Booking %s (%s, %s): down payment %s received, remaining %s.",
				b.ID, b.CustomerName, b.ServiceType, FormatAmount(b.DPAmount), FormatAmount(b.RemainingPayment))
		} else {
			subject = "Payment received"
			body = fmt.Sprintf("Booking %s (%s, %s): payment %s settled, booking confirmed.",
				b.ID, b.CustomerName, b.ServiceType, FormatAmount(b.TotalPrice))
		}
	case entities.RoutingKeyPaymentFailed:
		subject = "Payment failed"
		body = fmt.Sprintf("Booking %s (%s): payment failed or expired, order %s.",
			b.ID, b.CustomerName, b.GatewayOrderID)
	case entities.RoutingKeyPaymentReview:
		subject = "Payment held for review"
		body = fmt.Sprintf("Booking %s (%s): settlement flagged by fraud screening, order %s needs manual review.",
			b.ID, b.CustomerName, b.GatewayOrderID)
	default:
		subject = "Booking payment update"
		body = fmt.Sprintf("Booking %s: %s.", b.ID, ev.Event)
	}
	return subject, body
}
