package usecase

import (
	"context"
	"errors"
	"testing"

	"bengkel_audio/internal/domain/entities"
	mock_interfaces "bengkel_audio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBookingUseCase_Create_Validations(t *testing.T) {
	t.Run("blank customer name", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateBookingInput{CustomerName: " ", CustomerPhone: "+62811", TotalPrice: 100})
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("blank customer phone", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateBookingInput{CustomerName: "Budi", TotalPrice: 100})
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("non-positive total price", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateBookingInput{CustomerName: "Budi", CustomerPhone: "+62811", TotalPrice: 0})
		if !errors.Is(err, ErrInvalidTotalPrice) {
			t.Fatalf("expected ErrInvalidTotalPrice, got %v", err)
		}
	})

	t.Run("down payment above total", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateBookingInput{CustomerName: "Budi", CustomerPhone: "+62811", TotalPrice: 100, DPAmount: 101})
		if !errors.Is(err, ErrInvalidDPPlan) {
			t.Fatalf("expected ErrInvalidDPPlan, got %v", err)
		}
	})
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Run("full upfront payment has no installment plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.ID == "" || b.GatewayOrderID == "" {
					t.Fatalf("expected generated id and order reference, got %+v", b)
				}
				if b.PaymentStatus != entities.PaymentStatusPending || b.BookingStatus != entities.BookingStatusPending {
					t.Fatalf("expected pending/pending, got %s/%s", b.PaymentStatus, b.BookingStatus)
				}
				if b.DPAmount != 0 || b.RemainingPayment != 0 {
					t.Fatalf("expected no installment plan, got dp=%d remaining=%d", b.DPAmount, b.RemainingPayment)
				}
				return b, nil
			})

		b, err := uc.Create(context.Background(), CreateBookingInput{
			CustomerName:  "Budi Santoso",
			CustomerPhone: "+628111222333",
			VehicleModel:  "Avanza 2020",
			ServiceType:   "speaker upgrade",
			TotalPrice:    2500000,
			DPAmount:      2500000,
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		gotID, ok := entities.ParseBookingID(b.GatewayOrderID)
		if !ok || gotID != b.ID {
			t.Fatalf("order reference %q does not resolve to booking %q", b.GatewayOrderID, b.ID)
		}
	})

	t.Run("partial down payment sets remaining balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				return b, nil
			})

		b, err := uc.Create(context.Background(), CreateBookingInput{
			CustomerName:  "Budi Santoso",
			CustomerPhone: "+628111222333",
			TotalPrice:    5000000,
			DPAmount:      1500000,
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if b.DPAmount != 1500000 || b.RemainingPayment != 3500000 {
			t.Fatalf("expected dp=1500000 remaining=3500000, got dp=%d remaining=%d", b.DPAmount, b.RemainingPayment)
		}
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CreateBookingInput{
			CustomerName:  "Budi",
			CustomerPhone: "+62811",
			TotalPrice:    100,
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBookingUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("missing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.Booking{}, nil)

		_, err := uc.GetByID(context.Background(), "b-404")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1"}, nil)

		b, err := uc.GetByID(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if b.ID != "b-1" {
			t.Fatalf("expected booking b-1, got %+v", b)
		}
	})
}

func TestBookingUseCase_ListGatewayEvents(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.ListGatewayEvents(context.Background(), "")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("delegates to the event repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIGatewayEventRepository(ctrl)
		uc := NewBookingUseCase(nil, events)

		events.EXPECT().ListByBookingID(gomock.Any(), "b-1").
			Return([]entities.GatewayEvent{{ID: "ev-1", BookingID: "b-1"}}, nil)

		got, err := uc.ListGatewayEvents(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if len(got) != 1 || got[0].ID != "ev-1" {
			t.Fatalf("expected one event ev-1, got %+v", got)
		}
	})
}
