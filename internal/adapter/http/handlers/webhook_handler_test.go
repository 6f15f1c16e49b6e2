package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bengkel_audio/internal/adapter/http/handlers/mocks"
	"bengkel_audio/internal/domain/entities"
	"bengkel_audio/internal/usecase"
	"bengkel_audio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/notifications", h.HandlePaymentNotification)
	return r
}

func TestWebhookHandler_HandlePaymentNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications", bytes.NewBufferString(""))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unverified notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(usecase.ReconcileResult{}, fmt.Errorf("%w: spoofed", interfaces.ErrGatewayAuthentication))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications", bytes.NewBufferString(`{"order_id":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("store unavailable answers retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(usecase.ReconcileResult{}, fmt.Errorf("%w: throttled", usecase.ErrTransientStore))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications", bytes.NewBufferString(`{"order_id":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(usecase.ReconcileResult{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications", bytes.NewBufferString(`{"order_id":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("applied transition acknowledges with the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, raw json.RawMessage) (usecase.ReconcileResult, error) {
				if !json.Valid(raw) {
					t.Fatalf("handler forwarded invalid json: %s", raw)
				}
				return usecase.ReconcileResult{
					OrderID:   "WSB-b1-1700000000",
					BookingID: "b1",
					NewStatus: entities.PaymentStatusPaid,
					Applied:   true,
					Reason:    usecase.ReasonApplied,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications",
			bytes.NewBufferString(`{"order_id":"WSB-b1-1700000000","transaction_status":"settlement"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var ack map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("invalid ack body: %v", err)
		}
		if ack["applied"] != true || ack["new_status"] != "paid" {
			t.Fatalf("unexpected ack %v", ack)
		}
	})

	t.Run("discard is still a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(usecase.ReconcileResult{
				OrderID:   "WSB-b1-1700000000",
				BookingID: "b1",
				NewStatus: entities.PaymentStatusPaid,
				Reason:    usecase.ReasonFinalityDiscard,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notifications",
			bytes.NewBufferString(`{"order_id":"WSB-b1-1700000000","transaction_status":"expire"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var ack map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("invalid ack body: %v", err)
		}
		if ack["applied"] != false || ack["reason"] != usecase.ReasonFinalityDiscard {
			t.Fatalf("unexpected ack %v", ack)
		}
	})
}
