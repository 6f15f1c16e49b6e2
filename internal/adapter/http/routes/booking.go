package routes

import (
	"bengkel_audio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPayments = "/payments"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, webhookHandler *handlers.WebhookHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.GET("/:id/events", bookingHandler.ListBookingEvents)
	}

	payments := rg.Group(PathPayments)
	{
		// Midtrans asynchronous notification callback.
		payments.POST("/notifications", webhookHandler.HandlePaymentNotification)
	}
}
