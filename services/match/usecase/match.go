package usecase

import (
	"context"
	"fmt"

	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
	"github.com/oktaviandi/ridepulse/internal/utils"
	"github.com/oktaviandi/ridepulse/services/match"
)

type matchUC struct {
	cfg  *models.Config
	repo match.MatchRepo
}

// NewMatchUC creates a new match use case
func NewMatchUC(cfg *models.Config, repo match.MatchRepo) match.MatchUC {
	return &matchUC{
		cfg:  cfg,
		repo: repo,
	}
}

// SelectNearestAvailable picks the single candidate with the smallest
// squared coordinate distance from the pickup, then verifies it with a
// haversine check against maxDistanceKm. Only that one candidate is
// gated: if it is too far, no fallback to the next-nearest happens and
// the result is nil.
func SelectNearestAvailable(drivers []models.Driver, pickup models.Location, maxDistanceKm float64) *models.MatchedDriver {
	var nearest *models.Driver
	var nearestProxy float64

	for i := range drivers {
		d := &drivers[i]
		if !d.Available() {
			continue
		}
		proxy := utils.SquaredDegreeDistance(*d.Location, pickup)
		if nearest == nil || proxy < nearestProxy {
			nearest = d
			nearestProxy = proxy
		}
	}

	if nearest == nil {
		return nil
	}

	distanceKm := utils.CalculateDistance(*nearest.Location, pickup)
	if distanceKm > maxDistanceKm {
		return nil
	}

	return &models.MatchedDriver{
		Driver:     *nearest,
		DistanceKm: distanceKm,
	}
}

// FindNearestAvailableDriver locates the closest available driver to a
// pickup point. A nil result with a nil error means no driver is within
// range; callers treat that as a ride left searching, not a failure.
func (uc *matchUC) FindNearestAvailableDriver(ctx context.Context, pickup models.Location) (*models.MatchedDriver, error) {
	var drivers []models.Driver
	err := nrpkg.WithSegment(ctx, "Match.ListAvailableDrivers", func() error {
		var err error
		drivers, err = uc.repo.ListAvailableDrivers(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list available drivers: %w", err)
	}

	matched := SelectNearestAvailable(drivers, pickup, uc.cfg.Match.MaxDistanceKm)
	if matched == nil {
		logger.Info("No available driver within range",
			logger.Float64("pickup_lat", pickup.Latitude),
			logger.Float64("pickup_lng", pickup.Longitude),
			logger.Int("candidates", len(drivers)))
		return nil, nil
	}

	logger.Info("Matched driver to pickup",
		logger.String("driver_id", matched.Driver.ID),
		logger.Float64("distance_km", matched.DistanceKm))

	return matched, nil
}

// NearbyDrivers returns available drivers within radiusKm of the center
func (uc *matchUC) NearbyDrivers(ctx context.Context, center models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	drivers, err := uc.repo.NearbyDrivers(ctx, center, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}
	return drivers, nil
}

// UpdateDriverStatus transitions a driver between offline, available
// and busy
func (uc *matchUC) UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error {
	if err := uc.repo.UpdateDriverStatus(ctx, driverID, status); err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}

	logger.Info("Driver status updated",
		logger.String("driver_id", driverID),
		logger.String("status", string(status)))
	return nil
}

// UpdateDriverLocation records a driver position report
func (uc *matchUC) UpdateDriverLocation(ctx context.Context, update models.DriverLocationUpdate) error {
	if err := update.Location.Validate(); err != nil {
		return fmt.Errorf("invalid driver location: %w", err)
	}

	if err := uc.repo.UpsertDriverLocation(ctx, update.DriverID, update.Location); err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	return nil
}
