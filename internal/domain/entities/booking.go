package entities

import "time"

// PaymentStatus represents the money state of a booking.
//
// paid and failed are absorbing states: once a booking reaches either, no
// further gateway notification may change PaymentStatus. dp_paid -> paid is
// the only legal transition out of a partially paid booking.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusDPPaid  PaymentStatus = "dp_paid"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsFinal reports whether the status is absorbing for gateway notifications.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// BookingStatus represents the fulfillment state of a workshop booking.
//
// confirmed is entered only as a side effect of a successful payment; the
// remaining statuses are driven by the back-office, not by reconciliation.

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking is the unit of payment reconciliation, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): gateway_order_id
//
// Monetary representation:
//   - All amounts are int64 in the smallest currency unit (IDR has no
//     subunit, so rupiah).
//   - When a down-payment plan is in effect, DPAmount + RemainingPayment
//     must equal TotalPrice; for full upfront payment both are zero.
//
// PaidAt is set exactly once, on the first transition into dp_paid or paid.

type Booking struct {
	ID               string        `json:"id"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    string        `json:"customer_phone"`
	VehicleModel     string        `json:"vehicle_model"`
	ServiceType      string        `json:"service_type"`
	ScheduledAt      time.Time     `json:"scheduled_at"`
	TotalPrice       int64         `json:"total_price"`
	DPAmount         int64         `json:"dp_amount"`
	RemainingPayment int64         `json:"remaining_payment"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	BookingStatus    BookingStatus `json:"booking_status"`

	GatewayOrderID       string `json:"gateway_order_id"`
	GatewayTransactionID string `json:"gateway_transaction_id,omitempty"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BookingPatch is the set of fields a reconciliation is allowed to write.
// Nil pointer fields are left untouched by the persistence layer.
type BookingPatch struct {
	PaymentStatus        PaymentStatus
	BookingStatus        *BookingStatus
	GatewayTransactionID string
	PaidAt               *time.Time
}
