package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Gateway order references embed the booking ID between a fixed prefix and a
// unix-seconds suffix: WSB-<booking_id>-<created_unix>. The suffix keeps
// references unique across retries of booking creation, and the down-payment
// settlement order differs from the final-settlement order only by suffix.

const orderRefPrefix = "WSB"

// NewOrderRef builds the gateway order reference for a booking.
func NewOrderRef(bookingID string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", orderRefPrefix, bookingID, at.UTC().Unix())
}

// ParseBookingID extracts the booking ID from a gateway order reference.
//
// It fails soft: malformed references return ("", false), never an error,
// so callers can acknowledge the gateway without crashing.
func ParseBookingID(orderRef string) (string, bool) {
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		return "", false
	}

	parts := strings.Split(orderRef, "-")
	if len(parts) < 3 || parts[0] != orderRefPrefix {
		return "", false
	}

	// Booking IDs are UUIDs, which themselves contain dashes; the suffix is
	// the last segment and must be numeric.
	suffix := parts[len(parts)-1]
	if _, err := strconv.ParseInt(suffix, 10, 64); err != nil {
		return "", false
	}

	id := strings.Join(parts[1:len(parts)-1], "-")
	if id == "" {
		return "", false
	}
	return id, true
}
