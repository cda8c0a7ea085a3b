package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/railswift/railswift/internal/handler"
	"github.com/railswift/railswift/internal/middleware"
)

// RegisterRoutes registers routes that carry no dependencies. Currently
// that is only the health check used by monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers account and session routes. Register, login and
// logout live under /v1/auth and need no token; the profile endpoints
// under /v1 require a valid access token signed with jwtSecret.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Logout clears the single process-wide session; a token is not
	// required, the logout button is always available in the UI.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.PATCH("/me", a.UpdateMe)
}

// RegisterBookings registers the ledger routes. All of them sit behind
// the JWT middleware: requiring a session here is what keeps the ledger's
// guest fallback out of reach of API callers.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1/bookings")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("", b.Create)
	g.GET("", b.List)
	g.POST("/:id/cancel", b.Cancel)
}

// RegisterPublic registers the unauthenticated catalog and search routes.
// The extra middleware (response cache, rate limiter) is built by the
// caller so that a nil Redis client can degrade both to pass-throughs.
func RegisterPublic(e *echo.Echo, cat *handler.CatalogHandler, s *handler.SearchHandler, mws ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mws...)
	g.GET("/cities", cat.Cities)
	g.GET("/food", cat.Food)
	g.GET("/offers", cat.Offers)
	g.GET("/trains", s.Trains)
	g.POST("/searches", s.SaveSearch)
	g.GET("/searches/recent", s.Recent)
}
