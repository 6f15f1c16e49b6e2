package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"bengkel_audio/internal/domain/entities"
)

// ErrGatewayAuthentication is returned by Verify when the inbound payload
// cannot be confirmed against the gateway (unknown transaction, status
// mismatch, or gateway unreachable). Verification fails closed.
var ErrGatewayAuthentication = errors.New("gateway notification authentication failed")

// IPaymentGateway abstracts the external payment provider (Midtrans).
//
// Verify authenticates an inbound webhook body by re-fetching the
// transaction status from the gateway; Normalize maps the gateway's raw
// status vocabulary onto the reconciler's closed PaymentOutcome set.
type IPaymentGateway interface {
	Verify(ctx context.Context, rawPayload json.RawMessage) (entities.VerifiedEvent, error)
	Normalize(ev entities.VerifiedEvent) entities.PaymentOutcome
}
