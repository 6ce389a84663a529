package match

import (
	"context"

	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// MatchRepo defines the data access interface for driver matching
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/oktaviandi/ridepulse/services/match MatchRepo
type MatchRepo interface {
	// ListAvailableDrivers returns every available driver that has a
	// known location.
	ListAvailableDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error
	UpsertDriverLocation(ctx context.Context, driverID string, location models.Location) error
	NearbyDrivers(ctx context.Context, center models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}
