package entities

// PaymentOutcome is the closed vocabulary the reconciler understands.
//
// The gateway adapter translates Midtrans transaction_status/fraud_status
// pairs into one of these values; everything the adapter does not recognize
// maps to OutcomeUnknown, which the reconciler treats as a no-op rather than
// a failure.

type PaymentOutcome string

const (
	OutcomeSettledAccepted  PaymentOutcome = "settled_accepted"
	OutcomeSettledFraudHeld PaymentOutcome = "settled_fraud_held"
	OutcomeFailed           PaymentOutcome = "failed"
	OutcomePending          PaymentOutcome = "pending"
	OutcomeUnknown          PaymentOutcome = "unknown"
)

// VerifiedEvent is a gateway notification whose authenticity has been
// confirmed against the gateway. Fields come from the gateway's own
// transaction-status response, never from the inbound webhook body.
type VerifiedEvent struct {
	OrderID       string
	TransactionID string
	RawStatus     string
	FraudStatus   string
	PaymentType   string
	GrossAmount   string
}
