package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/mkhach/grad-seating/internal/handler"
	"github.com/mkhach/grad-seating/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance.  Currently it exposes only a health
// check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterReservations registers the two booking endpoints.  Both
// are open to guests; the gated flow does its own identity check via
// the roster and access code, so no HTTP-level auth applies here.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler) {
	// Gated flow: roster identity + access code, party size = ticket allotment.
	e.POST("/v1/reservations", r.CreateGated)
	// Open flow: free-typed name and party size, no identity gate.
	e.POST("/v1/reservations/open", r.CreateOpen)
}

// RegisterPublic registers the unauthenticated browse endpoints: the
// floor map and the guest-name search.  Both are wrapped in the
// snapshot cache middleware; the cache may be a no-op when Redis is
// not configured.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache *middleware.SnapshotCache) {
	g := e.Group("/v1/tables", cache.Middleware())
	// Floor map: every table with remaining seats, status and coordinates.
	// Optional ?party_size=N flags which tables could seat such a party.
	g.GET("", p.GetTables)
	// Name search: tables whose guest list mentions ?q= as a substring.
	g.GET("/search", p.SearchTables)
}

// RegisterAdmin registers the administrator endpoints.  Login is
// unauthenticated; the export requires a valid admin JWT issued by
// login.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.AdminJWT(jwtSecret))
	// On-demand CSV of (table, capacity, taken, guest list).
	auth.GET("/export", a.ExportCSV)
}
