package match

import (
	"context"

	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// MatchUC defines the interface for driver matching and availability
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/oktaviandi/ridepulse/services/match MatchUC
type MatchUC interface {
	// FindNearestAvailableDriver returns the closest available driver to
	// the pickup point, or nil when no driver qualifies.
	FindNearestAvailableDriver(ctx context.Context, pickup models.Location) (*models.MatchedDriver, error)
	NearbyDrivers(ctx context.Context, center models.Location, radiusKm float64) ([]models.NearbyDriver, error)
	UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error
	UpdateDriverLocation(ctx context.Context, update models.DriverLocationUpdate) error
}
