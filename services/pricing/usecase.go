package pricing

import (
	"context"

	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// PricingUC defines the interface for fare and surge estimation
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/oktaviandi/ridepulse/services/pricing PricingUC
type PricingUC interface {
	EstimateFare(distanceKm, durationMin, surgeMultiplier float64) models.Fare
	SurgeForLocation(ctx context.Context, pickup models.Location) (float64, error)
	EstimateForRoute(ctx context.Context, pickup, dropoff models.Location) (*models.FareEstimate, error)
}
