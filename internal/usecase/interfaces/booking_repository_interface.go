package interfaces

import (
	"context"
	"errors"

	"bengkel_audio/internal/domain/entities"
)

// ErrBookingStatusConflict is returned by UpdatePaymentStatus when the stored
// payment status no longer matches the expected one, i.e. the conditional
// write lost a race. Callers re-read and re-decide.
var ErrBookingStatusConflict = errors.New("booking payment status conflict")

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// UpdatePaymentStatus is the compare-and-swap boundary of the reconciler:
// the write only succeeds when the stored payment_status equals expected,
// so two near-simultaneous notifications cannot both apply a transition.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, expected entities.PaymentStatus, patch entities.BookingPatch) (entities.Booking, error)
}
