package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bengkel_audio/internal/adapter/http/handlers/mocks"
	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBookingRouter(h *BookingHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/bookings", h.CreateBooking)
	r.GET("/v1/bookings/:id", h.GetBooking)
	r.GET("/v1/bookings/:id/events", h.ListBookingEvents)
	return r
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"customer_name":"Budi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrInvalidDPPlan)

		body := `{"customer_name":"Budi","customer_phone":"+62811","service_type":"sub install","total_price":100,"dp_amount":200}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.CreateBookingInput) (entities.Booking, error) {
				if in.CustomerName != "Budi Santoso" || in.TotalPrice != 5000000 || in.DPAmount != 1500000 {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Booking{
					ID:               "b-1",
					CustomerName:     in.CustomerName,
					CustomerPhone:    in.CustomerPhone,
					ServiceType:      in.ServiceType,
					TotalPrice:       in.TotalPrice,
					DPAmount:         in.DPAmount,
					RemainingPayment: in.TotalPrice - in.DPAmount,
					PaymentStatus:    entities.PaymentStatusPending,
					BookingStatus:    entities.BookingStatusPending,
					GatewayOrderID:   entities.NewOrderRef("b-1", now),
					CreatedAt:        now,
					UpdatedAt:        now,
				}, nil
			})

		body := `{"customer_name":"Budi Santoso","customer_phone":"+628111222333","service_type":"full audio install","total_price":5000000,"dp_amount":1500000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["payment_status"] != "pending" || res["gateway_order_id"] == "" {
			t.Fatalf("unexpected response %v", res)
		}
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{
			ID:            "b-1",
			CustomerName:  "Budi",
			PaymentStatus: entities.PaymentStatusDPPaid,
			BookingStatus: entities.BookingStatusConfirmed,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["payment_status"] != "dp_paid" || res["booking_status"] != "confirmed" {
			t.Fatalf("unexpected response %v", res)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ListBookingEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("events returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().ListGatewayEvents(gomock.Any(), "b-1").Return([]entities.GatewayEvent{
			{ID: "ev-1", BookingID: "b-1", OrderID: "WSB-b-1-1700000000", RawStatus: "settlement",
				Outcome: entities.OutcomeSettledAccepted, Applied: true, Reason: usecase.ReasonApplied},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(res) != 1 || res[0]["outcome"] != "settled_accepted" {
			t.Fatalf("unexpected response %v", res)
		}
	})

	t.Run("empty trail is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().ListGatewayEvents(gomock.Any(), "b-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("expected empty array, got %s", body)
		}
	})
}
