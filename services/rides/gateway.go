package rides

import (
	"context"

	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// RideGW defines the interface for publishing ride lifecycle events
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/oktaviandi/ridepulse/services/rides RideGW
type RideGW interface {
	PublishRideAssigned(ctx context.Context, event models.RideAssignedEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent) error
	PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent) error
}
