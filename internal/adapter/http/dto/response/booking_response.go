package response

import (
	"time"

	"bengkel_audio/internal/domain/entities"
)

type BookingResponse struct {
	ID               string     `json:"id"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	VehicleModel     string     `json:"vehicle_model,omitempty"`
	ServiceType      string     `json:"service_type,omitempty"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	TotalPrice       int64      `json:"total_price"`
	DPAmount         int64      `json:"dp_amount"`
	RemainingPayment int64      `json:"remaining_payment"`
	PaymentStatus    string     `json:"payment_status"`
	BookingStatus    string     `json:"booking_status"`
	GatewayOrderID   string     `json:"gateway_order_id"`
	GatewayTxnID     string     `json:"gateway_transaction_id,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	res := BookingResponse{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		VehicleModel:     b.VehicleModel,
		ServiceType:      b.ServiceType,
		TotalPrice:       b.TotalPrice,
		DPAmount:         b.DPAmount,
		RemainingPayment: b.RemainingPayment,
		PaymentStatus:    string(b.PaymentStatus),
		BookingStatus:    string(b.BookingStatus),
		GatewayOrderID:   b.GatewayOrderID,
		GatewayTxnID:     b.GatewayTransactionID,
		PaidAt:           b.PaidAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if !b.ScheduledAt.IsZero() {
		t := b.ScheduledAt
		res.ScheduledAt = &t
	}
	return res
}
