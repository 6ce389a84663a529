package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/middleware"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
	"github.com/oktaviandi/ridepulse/internal/utils"
	"github.com/oktaviandi/ridepulse/services/match"
)

const defaultNearbyRadiusKm = 2.0

// DriverHandler handles HTTP requests for driver availability
type DriverHandler struct {
	matchUC match.MatchUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(matchUC match.MatchUC) *DriverHandler {
	return &DriverHandler{
		matchUC: matchUC,
	}
}

// RegisterRoutes registers driver endpoints on the given group. Status
// and location updates require the driver role; the nearby query is
// open to any authenticated user.
func (h *DriverHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/drivers/status", h.UpdateStatus, middleware.RequireRole("driver"))
	g.POST("/drivers/location", h.UpdateLocation, middleware.RequireRole("driver"))
	g.GET("/drivers/nearby", h.NearbyDrivers)
}

// statusRequest is the request body for a driver status change
type statusRequest struct {
	Status models.DriverStatus `json:"status"`
}

// locationRequest is the request body for a driver position report
type locationRequest struct {
	Location models.Location `json:"location"`
}

// UpdateStatus changes the calling driver's availability
func (h *DriverHandler) UpdateStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Match.UpdateDriverStatus")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	switch req.Status {
	case models.DriverStatusOffline, models.DriverStatusAvailable, models.DriverStatusBusy:
	default:
		return utils.BadRequestResponse(c, "Invalid status: "+string(req.Status))
	}

	if err := h.matchUC.UpdateDriverStatus(c.Request().Context(), driverID.String(), req.Status); err != nil {
		logger.Error("Failed to update driver status",
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to update driver status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated", statusRequest{Status: req.Status})
}

// UpdateLocation records the calling driver's current position
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Match.UpdateDriverLocation")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := req.Location.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	update := models.DriverLocationUpdate{
		DriverID: driverID.String(),
		Location: req.Location,
	}

	if err := h.matchUC.UpdateDriverLocation(c.Request().Context(), update); err != nil {
		logger.Error("Failed to update driver location",
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to update driver location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location updated", update)
}

// NearbyDrivers returns available drivers around a coordinate
func (h *DriverHandler) NearbyDrivers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Match.NearbyDrivers")

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lat parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lng parameter")
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "Invalid radius_km parameter")
		}
	}

	center := models.Location{Latitude: lat, Longitude: lng}
	if err := center.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	drivers, err := h.matchUC.NearbyDrivers(c.Request().Context(), center, radiusKm)
	if err != nil {
		logger.Error("Failed to query nearby drivers", logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to query nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}
