package http

import (
	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/middleware"
)

// RegisterRoutes registers ride endpoints on the given group. Riders
// create and drivers move rides through the lifecycle; cancellation and
// reads are open to any authenticated user.
func (h *RidesHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/rides", h.RequestRide, middleware.RequireRole("rider"))
	g.GET("/rides", h.ListRides)
	g.GET("/rides/:rideID", h.GetRide)

	g.POST("/rides/:rideID/accept", h.AcceptRide, middleware.RequireRole("driver"))
	g.POST("/rides/:rideID/arrive", h.MarkArrived, middleware.RequireRole("driver"))
	g.POST("/rides/:rideID/start", h.StartRide, middleware.RequireRole("driver"))
	g.POST("/rides/:rideID/complete", h.CompleteRide, middleware.RequireRole("driver"))
	g.POST("/rides/:rideID/cancel", h.CancelRide)
}
