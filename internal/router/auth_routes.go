package router

import (
	"github.com/labstack/echo/v4"

	"github.com/marieteam/ferry-reservation/internal/handler"
	"github.com/marieteam/ferry-reservation/internal/middleware"
)

// RegisterAuth registers the authentication and profile routes.
// Unauthenticated operations live under /v1/auth; the profile
// endpoints require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout works from either a bearer token or a refresh token in
	// the body, so it is not behind the JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "CUSTOMER"),
	)
	auth.GET("/me", a.Me)
	auth.PATCH("/me", a.UpdateMe)
}
