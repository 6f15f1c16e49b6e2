package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidBookingID  = errors.New("invalid booking id")
	ErrInvalidTotalPrice = errors.New("invalid total price")
	ErrInvalidDPPlan     = errors.New("invalid down payment plan")
	ErrInvalidCustomer   = errors.New("invalid customer data")
)

// CreateBookingInput is the domain command for booking creation. Bookings are
// created in pending/pending with a gateway order reference already attached,
// so a notification can never legally precede its booking.
type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string
	VehicleModel  string
	ServiceType   string
	ScheduledAt   time.Time
	TotalPrice    int64
	DPAmount      int64
}

// IBookingUseCase exposes booking operations for the booking API and the
// back-office.

type IBookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListGatewayEvents(ctx context.Context, bookingID string) ([]entities.GatewayEvent, error)
}

type BookingUseCase struct {
	repo   interfaces.IBookingRepository
	events interfaces.IGatewayEventRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, events interfaces.IGatewayEventRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo, events: events}
}

func (u *BookingUseCase) Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return entities.Booking{}, ErrInvalidCustomer
	}
	if in.TotalPrice <= 0 {
		return entities.Booking{}, ErrInvalidTotalPrice
	}
	if in.DPAmount < 0 || in.DPAmount > in.TotalPrice {
		return entities.Booking{}, ErrInvalidDPPlan
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	b := entities.Booking{
		ID:             id,
		CustomerName:   strings.TrimSpace(in.CustomerName),
		CustomerPhone:  strings.TrimSpace(in.CustomerPhone),
		VehicleModel:   strings.TrimSpace(in.VehicleModel),
		ServiceType:    strings.TrimSpace(in.ServiceType),
		ScheduledAt:    in.ScheduledAt,
		TotalPrice:     in.TotalPrice,
		PaymentStatus:  entities.PaymentStatusPending,
		BookingStatus:  entities.BookingStatusPending,
		GatewayOrderID: entities.NewOrderRef(id, now),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// DPAmount == TotalPrice means full upfront payment, no plan.
	if in.DPAmount > 0 && in.DPAmount < in.TotalPrice {
		b.DPAmount = in.DPAmount
		b.RemainingPayment = in.TotalPrice - in.DPAmount
	}

	return u.repo.Create(ctx, b)
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListGatewayEvents(ctx context.Context, bookingID string) ([]entities.GatewayEvent, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return u.events.ListByBookingID(ctx, bookingID)
}
