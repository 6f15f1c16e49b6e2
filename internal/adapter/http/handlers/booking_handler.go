package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bengkel_audio/internal/adapter/http/dto/request"
	response "bengkel_audio/internal/adapter/http/dto/response"
	"bengkel_audio/internal/usecase"
	"bengkel_audio/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for workshop bookings.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking creates a booking in pending status with a gateway order
// reference already attached.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body  request.CreateBookingRequest  true  "Booking payload"
// @Success      201  {object}  response.BookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateBookingInput{
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		VehicleModel:  payload.VehicleModel,
		ServiceType:   payload.ServiceType,
		ScheduledAt:   payload.ResolveScheduledAt(),
		TotalPrice:    payload.TotalPrice,
		DPAmount:      payload.DPAmount,
	})
	if err != nil {
		log.Printf("[booking][handler] create failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s order_id=%s", created.ID, created.GatewayOrderID)

	c.JSON(http.StatusCreated, response.FromBooking(created))
}

// GetBooking returns a booking snapshot.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  response.BookingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	b, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] get failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

// ListBookingEvents returns the gateway-event audit trail for a booking.
//
// @Summary      List gateway events for a booking
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {array}  response.GatewayEventResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /bookings/{id}/events [get]
func (h *BookingHandler) ListBookingEvents(c *gin.Context) {
	id := c.Param("id")

	events, err := h.usecase.ListGatewayEvents(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] list events failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayEvents(events))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidTotalPrice),
		errors.Is(err, usecase.ErrInvalidDPPlan), errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
