package entities

import (
	"encoding/json"
	"time"
)

// GatewayEvent is the audit record written for every verified gateway
// notification, applied or not. The back-office uses it to trace webhook
// redeliveries and to review fraud-held settlements.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// RawPayload keeps the original notification body for traceability/audit.

type GatewayEvent struct {
	ID            string         `json:"id"`
	BookingID     string         `json:"booking_id"`
	OrderID       string         `json:"order_id"`
	TransactionID string         `json:"transaction_id"`
	RawStatus     string         `json:"raw_status"`
	FraudStatus   string         `json:"fraud_status"`
	Outcome       PaymentOutcome `json:"outcome"`
	Applied       bool           `json:"applied"`
	Reason        string         `json:"reason"`

	RawPayload json.RawMessage `json:"raw_payload,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
}
