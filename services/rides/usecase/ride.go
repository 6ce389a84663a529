package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
	"github.com/oktaviandi/ridepulse/services/match"
	"github.com/oktaviandi/ridepulse/services/pricing"
	"github.com/oktaviandi/ridepulse/services/rides"
)

type rideUC struct {
	cfg       *models.Config
	repo      rides.RideRepo
	gateway   rides.RideGW
	matchUC   match.MatchUC
	pricingUC pricing.PricingUC
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	gateway rides.RideGW,
	matchUC match.MatchUC,
	pricingUC pricing.PricingUC,
) rides.RideUC {
	return &rideUC{
		cfg:       cfg,
		repo:      repo,
		gateway:   gateway,
		matchUC:   matchUC,
		pricingUC: pricingUC,
	}
}

// RequestRide creates a ride in the searching state, then runs pricing
// and matching passes on top of it. Those passes only enrich the
// response: if either fails the ride still exists and keeps searching.
// A successful match is announced over NATS fire-and-forget; the ride
// stays searching until the driver explicitly accepts.
func (uc *rideUC) RequestRide(ctx context.Context, req models.RideRequest) (*models.RideRequestResponse, error) {
	riderID, err := uuid.Parse(req.RiderID)
	if err != nil {
		return nil, fmt.Errorf("invalid rider id: %w", err)
	}
	if err := req.Pickup.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pickup: %w", err)
	}
	if err := req.Dropoff.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dropoff: %w", err)
	}

	ride := &models.Ride{
		ID:             uuid.New(),
		RiderID:        riderID,
		Pickup:         req.Pickup,
		Dropoff:        req.Dropoff,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		Status:         models.RideStatusSearching,
		RequestedAt:    time.Now(),
	}

	err = nrpkg.WithSegment(ctx, "Rides.CreateRide", func() error {
		return uc.repo.CreateRide(ctx, ride)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	response := &models.RideRequestResponse{Ride: ride}

	estimate, err := uc.pricingUC.EstimateForRoute(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		logger.Warn("Fare estimation failed during ride request",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	} else {
		response.Estimate = estimate
	}

	matched, err := uc.matchUC.FindNearestAvailableDriver(ctx, req.Pickup)
	if err != nil {
		logger.Warn("Driver matching failed during ride request",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		return response, nil
	}
	if matched == nil {
		return response, nil
	}

	response.AvailableDriver = matched

	event := models.RideAssignedEvent{
		RideID:        ride.ID.String(),
		DriverID:      matched.Driver.ID,
		PickupAddress: ride.PickupAddress,
	}
	if response.Estimate != nil {
		event.Fare = response.Estimate.Fare.TotalFare
	}

	// Fire and forget: a lost announcement only delays the driver, it
	// never invalidates the ride.
	if err := uc.gateway.PublishRideAssigned(ctx, event); err != nil {
		logger.Error("Failed to publish ride assigned event",
			logger.String("ride_id", ride.ID.String()),
			logger.String("driver_id", matched.Driver.ID),
			logger.ErrorField(err))
	}

	return response, nil
}

// AcceptRide attaches a driver to a searching ride and marks the
// driver busy
func (uc *rideUC) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.AcceptRide(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}

	if err := uc.matchUC.UpdateDriverStatus(ctx, driverID.String(), models.DriverStatusBusy); err != nil {
		logger.Warn("Failed to mark accepting driver busy",
			logger.String("ride_id", rideID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	logger.Info("Ride accepted",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driverID.String()))
	return ride, nil
}

// MarkArrived records the driver reaching the pickup point
func (uc *rideUC) MarkArrived(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.repo.MarkArrived(ctx, rideID)
}

// StartRide begins the trip
func (uc *rideUC) StartRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.repo.StartRide(ctx, rideID)
}

// CompleteRide settles an in-progress ride and frees the driver
func (uc *rideUC) CompleteRide(ctx context.Context, rideID uuid.UUID, req models.CompleteRideRequest) (*models.Ride, error) {
	if req.Fare < 0 {
		return nil, fmt.Errorf("fare must not be negative")
	}

	ride, err := uc.repo.CompleteRide(ctx, rideID, req.Fare, req.DistanceKm, req.DurationMin)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != nil {
		if err := uc.matchUC.UpdateDriverStatus(ctx, ride.DriverID.String(), models.DriverStatusAvailable); err != nil {
			logger.Warn("Failed to free driver after completion",
				logger.String("ride_id", rideID.String()),
				logger.String("driver_id", ride.DriverID.String()),
				logger.Err(err))
		}
	}

	event := models.RideCompletedEvent{
		RideID:    ride.ID.String(),
		RiderID:   ride.RiderID.String(),
		TotalFare: req.Fare,
	}
	if ride.DriverID != nil {
		event.DriverID = ride.DriverID.String()
	}
	if err := uc.gateway.PublishRideCompleted(ctx, event); err != nil {
		logger.Error("Failed to publish ride completed event",
			logger.String("ride_id", rideID.String()),
			logger.ErrorField(err))
	}

	logger.Info("Ride completed",
		logger.String("ride_id", rideID.String()),
		logger.Float64("fare", req.Fare))
	return ride, nil
}

// CancelRide cancels a ride from any non-terminal state and frees the
// driver if one was already attached
func (uc *rideUC) CancelRide(ctx context.Context, rideID, cancelledBy uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.CancelRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != nil {
		if err := uc.matchUC.UpdateDriverStatus(ctx, ride.DriverID.String(), models.DriverStatusAvailable); err != nil {
			logger.Warn("Failed to free driver after cancellation",
				logger.String("ride_id", rideID.String()),
				logger.String("driver_id", ride.DriverID.String()),
				logger.Err(err))
		}
	}

	event := models.RideCancelledEvent{
		RideID:      ride.ID.String(),
		CancelledBy: cancelledBy.String(),
		CancelledAt: time.Now(),
	}
	if ride.CancelledAt != nil {
		event.CancelledAt = *ride.CancelledAt
	}
	if err := uc.gateway.PublishRideCancelled(ctx, event); err != nil {
		logger.Error("Failed to publish ride cancelled event",
			logger.String("ride_id", rideID.String()),
			logger.ErrorField(err))
	}

	return ride, nil
}

// GetRide fetches a single ride
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.repo.GetRideByID(ctx, rideID)
}

// ListRidesForUser returns the user's ride history, most recent first
func (uc *rideUC) ListRidesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Ride, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.repo.ListRidesByUser(ctx, userID, limit)
}
