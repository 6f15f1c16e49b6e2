package response

import (
	"time"

	"bengkel_audio/internal/domain/entities"
)

type GatewayEventResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id,omitempty"`
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	RawStatus     string    `json:"raw_status"`
	FraudStatus   string    `json:"fraud_status,omitempty"`
	Outcome       string    `json:"outcome"`
	Applied       bool      `json:"applied"`
	Reason        string    `json:"reason"`
	ReceivedAt    time.Time `json:"received_at"`
}

func FromGatewayEvent(ev entities.GatewayEvent) GatewayEventResponse {
	return GatewayEventResponse{
		ID:            ev.ID,
		BookingID:     ev.BookingID,
		OrderID:       ev.OrderID,
		TransactionID: ev.TransactionID,
		RawStatus:     ev.RawStatus,
		FraudStatus:   ev.FraudStatus,
		Outcome:       string(ev.Outcome),
		Applied:       ev.Applied,
		Reason:        ev.Reason,
		ReceivedAt:    ev.ReceivedAt,
	}
}

func FromGatewayEvents(evs []entities.GatewayEvent) []GatewayEventResponse {
	out := make([]GatewayEventResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, FromGatewayEvent(ev))
	}
	return out
}
