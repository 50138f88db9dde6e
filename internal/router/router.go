// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/handler"
)

// RegisterRoutes registers routes that carry no authentication at all.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probe this.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browsing endpoints:
// ports, sectors, sailing search and per-sailing availability.  The
// optional cache middleware is applied here so only guest-visible
// responses are ever cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/ports", p.ListPorts)
	g.GET("/sectors", p.ListSectors)
	g.GET("/sailings/search", p.SearchSailings)
	g.GET("/sailings/:num", p.GetSailing)
}
