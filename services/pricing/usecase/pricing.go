package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	"github.com/oktaviandi/ridepulse/internal/utils"
	"github.com/oktaviandi/ridepulse/services/pricing"
)

// Fare constants. Currency varies per deployment; the rates do not.
const (
	baseFare   = 3.00
	perKmRate  = 1.50
	perMinRate = 0.30
)

type pricingUC struct {
	cfg  *models.Config
	repo pricing.PricingRepo
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(cfg *models.Config, repo pricing.PricingRepo) pricing.PricingUC {
	return &pricingUC{
		cfg:  cfg,
		repo: repo,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EstimateFare converts trip distance, duration, and a surge multiplier
// into a priced breakdown. The distance and time components are rounded
// for the returned breakdown, but the total is computed from the
// unrounded subtotal; only the listed values carry rounding.
func (uc *pricingUC) EstimateFare(distanceKm, durationMin, surgeMultiplier float64) models.Fare {
	distanceFare := distanceKm * perKmRate
	timeFare := durationMin * perMinRate
	subtotal := baseFare + distanceFare + timeFare

	return models.Fare{
		BaseFare:     baseFare,
		DistanceFare: round2(distanceFare),
		DurationFare: round2(timeFare),
		SurgeFactor:  surgeMultiplier,
		TotalFare:    round2(subtotal * surgeMultiplier),
		Currency:     uc.cfg.Pricing.Currency,
	}
}

// EstimateSurge maps area demand and supply onto a multiplier from a
// fixed step table. Comparisons are strictly greater-than: a ratio of
// exactly 1.5 or 2.0 falls through to the next lower bracket.
func EstimateSurge(activeRideCount, availableDriverCount int) float64 {
	if availableDriverCount == 0 {
		return 3.0
	}

	ratio := float64(activeRideCount) / float64(availableDriverCount)
	switch {
	case ratio > 3:
		return 2.5
	case ratio > 2:
		return 2.0
	case ratio > 1.5:
		return 1.5
	default:
		return 1.0
	}
}

// SurgeForLocation computes the surge multiplier for the area around a
// pickup point from current ride demand and driver supply
func (uc *pricingUC) SurgeForLocation(ctx context.Context, pickup models.Location) (float64, error) {
	activeRides, err := uc.repo.CountActiveRides(ctx, pickup)
	if err != nil {
		return 0, fmt.Errorf("failed to count active rides: %w", err)
	}

	availableDrivers, err := uc.repo.CountAvailableDrivers(ctx, pickup)
	if err != nil {
		return 0, fmt.Errorf("failed to count available drivers: %w", err)
	}

	surge := EstimateSurge(activeRides, availableDrivers)
	logger.Debug("Computed surge multiplier",
		logger.Int("active_rides", activeRides),
		logger.Int("available_drivers", availableDrivers),
		logger.Float64("surge", surge))

	return surge, nil
}

// EstimateForRoute prices a pickup-to-dropoff route ahead of a trip.
// Duration is projected from the haversine distance at the configured
// average speed.
func (uc *pricingUC) EstimateForRoute(ctx context.Context, pickup, dropoff models.Location) (*models.FareEstimate, error) {
	surge, err := uc.SurgeForLocation(ctx, pickup)
	if err != nil {
		return nil, err
	}

	distanceKm := utils.CalculateDistance(pickup, dropoff)
	durationMin := distanceKm / uc.cfg.Pricing.AvgSpeedKmh * 60

	fare := uc.EstimateFare(distanceKm, durationMin, surge)

	return &models.FareEstimate{
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		Fare:        fare,
	}, nil
}
