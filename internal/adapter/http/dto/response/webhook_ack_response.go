package response

import "bengkel_audio/internal/usecase"

// WebhookAckResponse echoes what the reconciliation decided, for
// observability on the gateway side. All acknowledged outcomes (including
// no-ops and not-found) use this shape with HTTP 200.
type WebhookAckResponse struct {
	OrderID   string `json:"order_id"`
	BookingID string `json:"booking_id,omitempty"`
	NewStatus string `json:"new_status,omitempty"`
	Applied   bool   `json:"applied"`
	Reason    string `json:"reason"`
}

func FromReconcileResult(r usecase.ReconcileResult) WebhookAckResponse {
	return WebhookAckResponse{
		OrderID:   r.OrderID,
		BookingID: r.BookingID,
		NewStatus: string(r.NewStatus),
		Applied:   r.Applied,
		Reason:    r.Reason,
	}
}
