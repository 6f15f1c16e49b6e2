package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "bengkel_audio/internal/adapter/http/dto/response"
	"bengkel_audio/internal/usecase"
	"bengkel_audio/internal/usecase/interfaces"
	"bengkel_audio/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles the Midtrans payment notification callback.
//
// Response policy: only authentication failures and transient store failures
// leave the 200 path. Everything else (not found, unparseable reference,
// finality discard, fraud hold, unknown status) acknowledges with 200 so
// the gateway stops redelivering a notification we can never act on
// differently.

type WebhookHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewWebhookHandler(uc usecase.IReconcileUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePaymentNotification receives an asynchronous payment-status
// notification and reconciles the referenced booking.
//
// @Summary      Midtrans payment notification callback
// @Description  Verifies the notification against the gateway and applies the payment state transition to the booking.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        notification  body  map[string]interface{}  true  "Midtrans HTTP notification body"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/notifications [post]
func (h *WebhookHandler) HandlePaymentNotification(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(strings.TrimSpace(string(raw))) == 0 || !json.Valid(raw) {
		log.Printf("[webhook][handler] invalid notification body payload_len=%d", len(raw))
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Notification body is not valid JSON", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Reconcile(c.Request.Context(), json.RawMessage(raw))
	if err != nil {
		log.Printf("[webhook][handler] reconcile failed err=%v", err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] acknowledged order_id=%s booking_id=%s status=%s applied=%t reason=%s",
		res.OrderID, res.BookingID, res.NewStatus, res.Applied, res.Reason)

	c.JSON(http.StatusOK, response.FromReconcileResult(res))
}

func mapReconcileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrGatewayAuthentication):
		return pkg.NewDomainErrorSimple("NOTIFICATION_UNVERIFIED", "Notification could not be verified with the payment gateway", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrTransientStore):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Booking store temporarily unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
