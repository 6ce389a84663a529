package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// RideRepo defines ride persistence. Transition methods are guarded:
// the update only applies when the row is still in the expected prior
// status, and a miss surfaces as ErrRideConflict.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/oktaviandi/ridepulse/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	MarkArrived(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	// CompleteRide transitions the ride and applies the earnings and
	// ride-count side effects in the same transaction.
	CompleteRide(ctx context.Context, rideID uuid.UUID, fare, distanceKm float64, durationMin int) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListRidesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Ride, error)
}
