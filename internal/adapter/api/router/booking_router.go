package router

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/adapter/api/handler"
)

// SetupBookingRouter wires the visitor-facing booking flow. Visitors are
// anonymous; they identify themselves with an X-Visitor-ID header rather
// than a token. Confirm is rate limited per visitor inside the use case.
func SetupBookingRouter(e *echo.Echo) {
	bookingHandler := handler.GetBookingHandler()

	bookings := e.Group("/v1/bookings")
	bookings.POST("/start", bookingHandler.Start)
	bookings.POST("/slot", bookingHandler.SelectSlot)
	bookings.POST("/confirm", bookingHandler.Confirm)
	bookings.POST("/reset", bookingHandler.Reset)
	bookings.GET("/status", bookingHandler.Status)
}
