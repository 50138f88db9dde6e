package router

import (
	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/handler"
	"github.com/marieteam/ferry-reservation/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin:
// liaison management and the revenue report.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	g.GET("/liaisons", h.ListLiaisons)
	g.POST("/liaisons", h.CreateLiaison)
	g.GET("/liaisons/:code", h.GetLiaison)
	g.PUT("/liaisons/:code", h.UpdateLiaison)
	g.PATCH("/liaisons/:code", h.UpdateLiaison)
	g.DELETE("/liaisons/:code", h.DeleteLiaison)

	g.GET("/revenue", h.Revenue)
}
