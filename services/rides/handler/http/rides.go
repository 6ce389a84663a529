package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/middleware"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
	"github.com/oktaviandi/ridepulse/internal/utils"
	"github.com/oktaviandi/ridepulse/services/rides"
)

// RidesHandler handles HTTP requests for the ride lifecycle
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

func rideIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("rideID"))
}

// RequestRide creates a new ride for the authenticated rider
func (h *RidesHandler) RequestRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.RequestRide")

	riderID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.RiderID = riderID.String()

	if err := req.Pickup.Validate(); err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup: "+err.Error())
	}
	if err := req.Dropoff.Validate(); err != nil {
		return utils.BadRequestResponse(c, "Invalid dropoff: "+err.Error())
	}

	resp, err := h.rideUC.RequestRide(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create ride",
			logger.String("rider_id", riderID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to create ride")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", resp)
}

// transition runs one guarded lifecycle step and renders the outcome.
// A conflict means the ride moved on (or never existed); the caller
// gets 409 either way.
func (h *RidesHandler) transition(c echo.Context, name string, fn func(rideID uuid.UUID) (*models.Ride, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := fn(rideID)
	if errors.Is(err, rides.ErrRideConflict) {
		return utils.ConflictResponse(c, "Ride not found or not in expected status")
	}
	if err != nil {
		logger.Error("Ride transition failed",
			logger.String("transition", name),
			logger.String("ride_id", rideID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to update ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride updated", ride)
}

// AcceptRide lets the authenticated driver claim a searching ride
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	return h.transition(c, "Rides.AcceptRide", func(rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.AcceptRide(c.Request().Context(), rideID, driverID)
	})
}

// MarkArrived records the driver reaching the pickup point
func (h *RidesHandler) MarkArrived(c echo.Context) error {
	return h.transition(c, "Rides.MarkArrived", func(rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.MarkArrived(c.Request().Context(), rideID)
	})
}

// StartRide begins the trip
func (h *RidesHandler) StartRide(c echo.Context) error {
	return h.transition(c, "Rides.StartRide", func(rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.StartRide(c.Request().Context(), rideID)
	})
}

// CompleteRide settles an in-progress ride
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	var req models.CompleteRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Fare < 0 || req.DistanceKm < 0 || req.DurationMin < 0 {
		return utils.BadRequestResponse(c, "Fare, distance and duration must not be negative")
	}

	return h.transition(c, "Rides.CompleteRide", func(rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.CompleteRide(c.Request().Context(), rideID, req)
	})
}

// CancelRide cancels a ride on behalf of the authenticated user
func (h *RidesHandler) CancelRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	return h.transition(c, "Rides.CancelRide", func(rideID uuid.UUID) (*models.Ride, error) {
		return h.rideUC.CancelRide(c.Request().Context(), rideID, userID)
	})
}

// GetRide fetches a single ride
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetRide")

	rideID, err := rideIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if errors.Is(err, rides.ErrRideConflict) {
		return utils.NotFoundResponse(c, "Ride not found")
	}
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

// ListRides returns the authenticated user's ride history
func (h *RidesHandler) ListRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.ListRides")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit parameter")
		}
		limit = parsed
	}

	result, err := h.rideUC.ListRidesForUser(c.Request().Context(), userID, limit)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved", result)
}
