package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// RideUC defines the interface for the ride lifecycle
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/oktaviandi/ridepulse/services/rides RideUC
type RideUC interface {
	// RequestRide creates a ride in the searching state and runs a
	// matching and pricing pass alongside it. Matching or pricing
	// failures do not fail the request; the ride simply stays searching.
	RequestRide(ctx context.Context, req models.RideRequest) (*models.RideRequestResponse, error)
	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	MarkArrived(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID uuid.UUID, req models.CompleteRideRequest) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, cancelledBy uuid.UUID) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListRidesForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Ride, error)
}
