package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransientStore = errors.New("booking store temporarily unavailable")
)

// Reconciliation reasons echoed in results and audit records.
const (
	ReasonApplied         = "applied"
	ReasonBookkeeping     = "bookkeeping"
	ReasonDuplicate       = "duplicate"
	ReasonUnparseableRef  = "unparseable_order_ref"
	ReasonBookingNotFound = "booking_not_found"
	ReasonFinalityDiscard = "finality_discard"
	ReasonFraudHold       = "fraud_hold"
	ReasonUnknownOutcome  = "unknown_outcome"
	ReasonNoTransition    = "no_transition"
)

// casMaxAttempts bounds the read-decide-write cycle under concurrent
// redelivery before the conflict is surfaced as transient.
const casMaxAttempts = 3

// ReconcileResult echoes what the webhook endpoint acknowledges back to the
// gateway. Applied is false for every discarded/no-op outcome.
type ReconcileResult struct {
	OrderID   string
	BookingID string
	NewStatus entities.PaymentStatus
	Applied   bool
	Reason    string
}

// IReconcileUseCase applies one verified gateway notification to the booking
// it references.
//
// Error contract:
//   - interfaces.ErrGatewayAuthentication: payload failed verification; the
//     caller must reject the call so the gateway retries per its own policy.
//   - ErrTransientStore: persistence unavailable or CAS retries exhausted;
//     the caller must answer retryable so the gateway redelivers.
//   - every other outcome (not found, unparseable reference, finality,
//     fraud hold, unknown status) is a successful acknowledgment.

type IReconcileUseCase interface {
	Reconcile(ctx context.Context, rawPayload json.RawMessage) (ReconcileResult, error)
}

type ReconcileUseCase struct {
	bookings  interfaces.IBookingRepository
	events    interfaces.IGatewayEventRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.INotificationPublisher
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	bookings interfaces.IBookingRepository,
	events interfaces.IGatewayEventRepository,
	gateway interfaces.IPaymentGateway,
	publisher interfaces.INotificationPublisher,
) *ReconcileUseCase {
	return &ReconcileUseCase{bookings: bookings, events: events, gateway: gateway, publisher: publisher}
}

func (u *ReconcileUseCase) Reconcile(ctx context.Context, rawPayload json.RawMessage) (ReconcileResult, error) {
	log.Printf("[webhook][usecase] reconcile start payload_len=%d", len(rawPayload))
	if u.gateway == nil {
		return ReconcileResult{}, errors.New("payment gateway not configured")
	}
	if u.bookings == nil {
		return ReconcileResult{}, errors.New("booking repository not configured")
	}

	ev, err := u.gateway.Verify(ctx, rawPayload)
	if err != nil {
		log.Printf("[webhook][usecase] verification failed err=%v", err)
		return ReconcileResult{}, err
	}
	outcome := u.gateway.Normalize(ev)
	log.Printf("[webhook][usecase] verified order_id=%s transaction_id=%s raw_status=%s fraud_status=%s outcome=%s",
		ev.OrderID, ev.TransactionID, ev.RawStatus, ev.FraudStatus, outcome)

	bookingID, ok := entities.ParseBookingID(ev.OrderID)
	if !ok {
		log.Printf("[webhook][usecase] unparseable order reference order_id=%s", ev.OrderID)
		res := ReconcileResult{OrderID: ev.OrderID, Reason: ReasonUnparseableRef}
		u.recordEvent(ctx, ev, outcome, rawPayload, res)
		return res, nil
	}

	for attempt := 1; attempt <= casMaxAttempts; attempt++ {
		b, err := u.bookings.GetByID(ctx, bookingID)
		if err != nil {
			log.Printf("[webhook][usecase] booking load failed booking_id=%s err=%v", bookingID, err)
			return ReconcileResult{}, fmt.Errorf("%w: %v", ErrTransientStore, err)
		}
		if b.ID == "" {
			log.Printf("[webhook][usecase] booking not found booking_id=%s order_id=%s", bookingID, ev.OrderID)
			res := ReconcileResult{OrderID: ev.OrderID, BookingID: bookingID, Reason: ReasonBookingNotFound}
			u.recordEvent(ctx, ev, outcome, rawPayload, res)
			return res, nil
		}

		decision := decideTransition(b, ev, outcome)
		if decision.patch == nil {
			log.Printf("[webhook][usecase] no state change booking_id=%s status=%s reason=%s", b.ID, b.PaymentStatus, decision.reason)
			res := ReconcileResult{OrderID: ev.OrderID, BookingID: b.ID, NewStatus: b.PaymentStatus, Reason: decision.reason}
			u.recordEvent(ctx, ev, outcome, rawPayload, res)
			if decision.notifyKey != "" {
				u.publishNotifications(ctx, decision.notifyKey, b)
			}
			return res, nil
		}

		updated, err := u.bookings.UpdatePaymentStatus(ctx, b.ID, b.PaymentStatus, *decision.patch)
		if errors.Is(err, interfaces.ErrBookingStatusConflict) {
			log.Printf("[webhook][usecase] status conflict booking_id=%s attempt=%d", b.ID, attempt)
			continue
		}
		if err != nil {
			log.Printf("[webhook][usecase] booking update failed booking_id=%s err=%v", b.ID, err)
			return ReconcileResult{}, fmt.Errorf("%w: %v", ErrTransientStore, err)
		}

		res := ReconcileResult{
			OrderID:   ev.OrderID,
			BookingID: updated.ID,
			NewStatus: updated.PaymentStatus,
			Applied:   decision.reason == ReasonApplied,
			Reason:    decision.reason,
		}
		u.recordEvent(ctx, ev, outcome, rawPayload, res)
		if decision.notifyKey != "" {
			u.publishNotifications(ctx, decision.notifyKey, updated)
		}
		log.Printf("[webhook][usecase] reconcile done booking_id=%s status=%s->%s reason=%s",
			updated.ID, b.PaymentStatus, updated.PaymentStatus, decision.reason)
		return res, nil
	}

	log.Printf("[webhook][usecase] cas retries exhausted booking_id=%s", bookingID)
	return ReconcileResult{}, fmt.Errorf("%w: compare-and-swap retries exhausted", ErrTransientStore)
}

type transitionDecision struct {
	patch     *entities.BookingPatch
	reason    string
	notifyKey string
}

// decideTransition maps (stored booking, verified event, outcome) onto the
// payment state machine. A nil patch means nothing is persisted.
func decideTransition(b entities.Booking, ev entities.VerifiedEvent, outcome entities.PaymentOutcome) transitionDecision {
	// Finality: paid and failed absorb every further notification.
	if b.PaymentStatus.IsFinal() {
		return transitionDecision{reason: ReasonFinalityDiscard}
	}

	// At-least-once delivery: GatewayTransactionID is only written by applied
	// transitions, so a matching transaction already had its outcome applied.
	// Midtrans reuses one transaction_id across the pending and settlement
	// notifications of a payment, which is why the pending path below must
	// never store the reference.
	if ev.TransactionID != "" && ev.TransactionID == b.GatewayTransactionID {
		return transitionDecision{reason: ReasonDuplicate}
	}

	switch outcome {
	case entities.OutcomeSettledFraudHeld:
		return transitionDecision{reason: ReasonFraudHold, notifyKey: entities.RoutingKeyPaymentReview}

	case entities.OutcomeUnknown:
		return transitionDecision{reason: ReasonUnknownOutcome}

	case entities.OutcomePending:
		// Acknowledge only; the audit trail keeps the transaction reference.
		// Persisting it here would make the later settlement of the same
		// transaction look like a redelivery.
		return transitionDecision{reason: ReasonBookkeeping}

	case entities.OutcomeFailed:
		return transitionDecision{
			patch:     &entities.BookingPatch{PaymentStatus: entities.PaymentStatusFailed, GatewayTransactionID: ev.TransactionID},
			reason:    ReasonApplied,
			notifyKey: entities.RoutingKeyPaymentFailed,
		}

	case entities.OutcomeSettledAccepted:
		patch := entities.BookingPatch{GatewayTransactionID: ev.TransactionID}
		confirmed := entities.BookingStatusConfirmed

		switch b.PaymentStatus {
		case entities.PaymentStatusPending:
			if b.RemainingPayment > 0 {
				patch.PaymentStatus = entities.PaymentStatusDPPaid
			} else {
				patch.PaymentStatus = entities.PaymentStatusPaid
			}
			now := time.Now().UTC()
			patch.PaidAt = &now
			patch.BookingStatus = &confirmed
		case entities.PaymentStatusDPPaid:
			patch.PaymentStatus = entities.PaymentStatusPaid
			if b.BookingStatus == entities.BookingStatusPending {
				patch.BookingStatus = &confirmed
			}
		default:
			return transitionDecision{reason: ReasonNoTransition}
		}
		return transitionDecision{patch: &patch, reason: ReasonApplied, notifyKey: entities.RoutingKeyPaymentPaid}
	}

	return transitionDecision{reason: ReasonUnknownOutcome}
}

// recordEvent writes the audit trail entry. Audit failures are logged and
// swallowed; they must not affect the acknowledgment.
func (u *ReconcileUseCase) recordEvent(ctx context.Context, ev entities.VerifiedEvent, outcome entities.PaymentOutcome, raw json.RawMessage, res ReconcileResult) {
	if u.events == nil {
		return
	}
	_, err := u.events.Create(ctx, entities.GatewayEvent{
		ID:            uuid.NewString(),
		BookingID:     res.BookingID,
		OrderID:       ev.OrderID,
		TransactionID: ev.TransactionID,
		RawStatus:     ev.RawStatus,
		FraudStatus:   ev.FraudStatus,
		Outcome:       outcome,
		Applied:       res.Applied,
		Reason:        res.Reason,
		RawPayload:    raw,
		ReceivedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[webhook][usecase] audit record failed order_id=%s err=%v", ev.OrderID, err)
	}
}

// publishNotifications enqueues one intent per channel, each carrying the
// full booking snapshot. A broker failure never fails the reconciliation.
func (u *ReconcileUseCase) publishNotifications(ctx context.Context, routingKey string, b entities.Booking) {
	if u.publisher == nil {
		return
	}
	channels := []string{entities.ChannelOperator, entities.ChannelCustomer}
	if routingKey == entities.RoutingKeyPaymentReview {
		// Fraud review alerts go to the back office only.
		channels = channels[:1]
	}
	occurredAt := time.Now().UTC().Format(time.RFC3339)
	for _, channel := range channels {
		evt := entities.BookingPaymentEvent{
			Event:      routingKey,
			Version:    1,
			OccurredAt: occurredAt,
			Channel:    channel,
			Booking:    b,
		}
		if err := u.publisher.PublishJSON(ctx, routingKey, evt); err != nil {
			log.Printf("[webhook][usecase] publish %s failed booking_id=%s channel=%s err=%v", routingKey, b.ID, channel, err)
		}
	}
}
