package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase/interfaces"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

var ErrMissingMidtransServerKey = errors.New("missing MIDTRANS_SERVER_KEY")

const defaultVerifyTimeout = 10 * time.Second

// MidtransGateway authenticates inbound webhook notifications and normalizes
// Midtrans status vocabulary for the reconciler.
//
// Verification follows the Midtrans-recommended pattern: never trust the
// inbound body; re-fetch the transaction status from the gateway by order ID
// and use the gateway's answer as the source of truth. The HTTP client
// carries a bounded timeout; on timeout verification fails closed.

type MidtransGateway struct {
	client   coreapi.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MidtransGateway)(nil)

func NewMidtransGateway(serverKey string, timeout time.Duration) (*MidtransGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[webhook][gateway] mock mode enabled")
		return &MidtransGateway{mockMode: true}, nil
	}

	if serverKey == "" {
		log.Printf("[webhook][gateway] missing MIDTRANS_SERVER_KEY")
		return nil, ErrMissingMidtransServerKey
	}
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}

	env := midtrans.Sandbox
	if strings.EqualFold(strings.TrimSpace(os.Getenv("MIDTRANS_ENV")), "production") {
		env = midtrans.Production
	}

	g := &MidtransGateway{}
	g.client.New(serverKey, env)
	g.client.HttpClient = &midtrans.HttpClientImplementation{
		HttpClient: &http.Client{Timeout: timeout},
	}
	log.Printf("[webhook][gateway] Midtrans client initialized env=%v timeout=%s", env, timeout)

	return g, nil
}

// notificationPayload is the subset of the Midtrans HTTP notification body
// the adapter needs before verification.
type notificationPayload struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
}

func (g *MidtransGateway) Verify(ctx context.Context, rawPayload json.RawMessage) (entities.VerifiedEvent, error) {
	var p notificationPayload
	if err := json.Unmarshal(rawPayload, &p); err != nil {
		log.Printf("[webhook][gateway] payload unmarshal failed err=%v", err)
		return entities.VerifiedEvent{}, fmt.Errorf("%w: malformed notification body", interfaces.ErrGatewayAuthentication)
	}
	if strings.TrimSpace(p.OrderID) == "" {
		log.Printf("[webhook][gateway] notification without order_id")
		return entities.VerifiedEvent{}, fmt.Errorf("%w: missing order_id", interfaces.ErrGatewayAuthentication)
	}

	if g.mockMode {
		log.Printf("[webhook][gateway] mock verify order_id=%s status=%s", p.OrderID, p.TransactionStatus)
		return entities.VerifiedEvent{
			OrderID:       p.OrderID,
			TransactionID: p.TransactionID,
			RawStatus:     p.TransactionStatus,
			FraudStatus:   p.FraudStatus,
			PaymentType:   p.PaymentType,
			GrossAmount:   p.GrossAmount,
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return entities.VerifiedEvent{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayAuthentication, err)
	}

	log.Printf("[webhook][gateway] verify start order_id=%s", p.OrderID)
	resp, mErr := g.client.CheckTransaction(p.OrderID)
	if mErr != nil {
		log.Printf("[webhook][gateway] check transaction failed order_id=%s err=%v", p.OrderID, mErr)
		return entities.VerifiedEvent{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayAuthentication, mErr)
	}
	if resp == nil || resp.OrderID == "" || resp.StatusCode == "404" {
		log.Printf("[webhook][gateway] transaction not found at gateway order_id=%s", p.OrderID)
		return entities.VerifiedEvent{}, fmt.Errorf("%w: transaction not found at gateway", interfaces.ErrGatewayAuthentication)
	}
	log.Printf("[webhook][gateway] verify success order_id=%s transaction_id=%s status=%s fraud=%s",
		resp.OrderID, resp.TransactionID, resp.TransactionStatus, resp.FraudStatus)

	// The gateway's answer wins over whatever the inbound body claimed.
	return entities.VerifiedEvent{
		OrderID:       resp.OrderID,
		TransactionID: resp.TransactionID,
		RawStatus:     resp.TransactionStatus,
		FraudStatus:   resp.FraudStatus,
		PaymentType:   resp.PaymentType,
		GrossAmount:   resp.GrossAmount,
	}, nil
}

// Normalize maps Midtrans transaction_status/fraud_status onto the
// reconciler's closed outcome set.
//
// Mapping:
//   - settlement|capture + fraud accept (or absent) => settled_accepted
//   - settlement|capture + any other fraud flag     => settled_fraud_held
//   - deny|cancel|expire|failure                    => failed
//   - pending|authorize                             => pending
//   - anything else                                 => unknown
func (g *MidtransGateway) Normalize(ev entities.VerifiedEvent) entities.PaymentOutcome {
	status := strings.ToLower(strings.TrimSpace(ev.RawStatus))
	fraud := strings.ToLower(strings.TrimSpace(ev.FraudStatus))

	switch status {
	case "settlement", "capture":
		if fraud == "" || fraud == "accept" {
			return entities.OutcomeSettledAccepted
		}
		return entities.OutcomeSettledFraudHeld
	case "deny", "cancel", "expire", "failure":
		return entities.OutcomeFailed
	case "pending", "authorize":
		return entities.OutcomePending
	default:
		return entities.OutcomeUnknown
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MIDTRANS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
