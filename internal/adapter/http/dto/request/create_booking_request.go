package request

import (
	"strings"
	"time"
)

// CreateBookingRequest is the payload for booking creation.
//
// Amounts are int64 in rupiah. `dp_amount` is optional: zero or equal to
// `total_price` means full upfront payment (no down-payment plan).

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	VehicleModel  string `json:"vehicle_model"`
	ServiceType   string `json:"service_type" binding:"required"`
	ScheduledAt   string `json:"scheduled_at"`
	TotalPrice    int64  `json:"total_price" binding:"required"`
	DPAmount      int64  `json:"dp_amount"`
}

// ResolveScheduledAt parses the optional RFC3339 schedule; a zero time is
// returned for absent or malformed input.
func (r CreateBookingRequest) ResolveScheduledAt() time.Time {
	s := strings.TrimSpace(r.ScheduledAt)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
