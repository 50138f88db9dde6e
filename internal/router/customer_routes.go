package router

import (
	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/handler"
	"github.com/marieteam/ferry-reservation/internal/middleware"
)

// RegisterCustomer registers the reservation endpoints.  All routes
// require a valid JWT with the CUSTOMER role: customers submit
// reservations and read back their own.
func RegisterCustomer(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)
	g.POST("/reservations", h.Create)
	g.GET("/my-reservations", h.ListMine)
	g.GET("/my-reservations/:num", h.GetMine)
}
