package pricing

import (
	"context"

	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// PricingRepo defines the demand/supply counting queries used by the
// surge estimator. Both counts are restricted to a fixed-size bounding
// box around the given center point.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/oktaviandi/ridepulse/services/pricing PricingRepo
type PricingRepo interface {
	CountActiveRides(ctx context.Context, center models.Location) (int, error)
	CountAvailableDrivers(ctx context.Context, center models.Location) (int, error)
}
