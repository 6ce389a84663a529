package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	"github.com/oktaviandi/ridepulse/services/pricing/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Pricing.Currency = "USD"
	cfg.Pricing.AvgSpeedKmh = 30.0
	return cfg
}

func TestEstimateFare_ReferenceValues(t *testing.T) {
	uc := NewPricingUC(newTestConfig(), nil)

	fare := uc.EstimateFare(5, 20, 1.0)

	assert.Equal(t, 3.00, fare.BaseFare)
	assert.Equal(t, 7.50, fare.DistanceFare)
	assert.Equal(t, 6.00, fare.DurationFare)
	assert.Equal(t, 16.50, fare.TotalFare)
	assert.Equal(t, 1.0, fare.SurgeFactor)
	assert.Equal(t, "USD", fare.Currency)
}

func TestEstimateFare_ZeroInputs(t *testing.T) {
	uc := NewPricingUC(newTestConfig(), nil)

	fare := uc.EstimateFare(0, 0, 2.0)

	assert.Equal(t, 0.0, fare.DistanceFare)
	assert.Equal(t, 0.0, fare.DurationFare)
	assert.Equal(t, 6.00, fare.TotalFare)
}

func TestEstimateFare_SurgeApplied(t *testing.T) {
	uc := NewPricingUC(newTestConfig(), nil)

	fare := uc.EstimateFare(10, 15, 1.5)

	// (3.00 + 15.00 + 4.50) * 1.5
	assert.Equal(t, 33.75, fare.TotalFare)
}

func TestEstimateFare_RoundsTotalNotSubtotal(t *testing.T) {
	uc := NewPricingUC(newTestConfig(), nil)

	// distanceFare 0.021 rounds to 0.02 in the breakdown, but the total
	// is computed from the unrounded subtotal 4.521 -> 4.52
	fare := uc.EstimateFare(0.014, 5, 1.0)

	assert.Equal(t, 0.02, fare.DistanceFare)
	assert.Equal(t, 1.50, fare.DurationFare)
	assert.Equal(t, 4.52, fare.TotalFare)
}

func TestEstimateFare_MonotonicInDistanceAndDuration(t *testing.T) {
	uc := NewPricingUC(newTestConfig(), nil)

	prev := 0.0
	for _, km := range []float64{0, 1, 2.5, 5, 10, 50} {
		fare := uc.EstimateFare(km, 10, 1.0)
		assert.GreaterOrEqual(t, fare.TotalFare, prev)
		prev = fare.TotalFare
	}

	prev = 0.0
	for _, min := range []float64{0, 5, 12, 30, 90} {
		fare := uc.EstimateFare(3, min, 1.0)
		assert.GreaterOrEqual(t, fare.TotalFare, prev)
		prev = fare.TotalFare
	}
}

func TestEstimateSurge_StepTable(t *testing.T) {
	tests := []struct {
		name             string
		activeRides      int
		availableDrivers int
		want             float64
	}{
		{"no drivers", 0, 0, 3.0},
		{"no drivers with demand", 7, 0, 3.0},
		{"ratio above three", 10, 1, 2.5},
		{"ratio above two", 5, 2, 2.0},
		{"ratio above one point five", 7, 4, 1.5},
		{"ratio exactly one point five", 3, 2, 1.0},
		{"ratio exactly two", 4, 2, 1.5},
		{"ratio exactly three", 6, 2, 2.0},
		{"low demand", 1, 10, 1.0},
		{"no demand", 0, 5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateSurge(tt.activeRides, tt.availableDrivers))
		})
	}
}

func TestSurgeForLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPricingRepo(ctrl)
	uc := NewPricingUC(newTestConfig(), mockRepo)

	pickup := models.Location{Latitude: 37.7749, Longitude: -122.4194}

	mockRepo.EXPECT().CountActiveRides(gomock.Any(), pickup).Return(5, nil)
	mockRepo.EXPECT().CountAvailableDrivers(gomock.Any(), pickup).Return(2, nil)

	surge, err := uc.SurgeForLocation(context.Background(), pickup)

	assert.NoError(t, err)
	assert.Equal(t, 2.0, surge)
}

func TestSurgeForLocation_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPricingRepo(ctrl)
	uc := NewPricingUC(newTestConfig(), mockRepo)

	pickup := models.Location{Latitude: 1, Longitude: 1}

	mockRepo.EXPECT().CountActiveRides(gomock.Any(), pickup).Return(0, errors.New("db down"))

	_, err := uc.SurgeForLocation(context.Background(), pickup)
	assert.Error(t, err)
}

func TestEstimateForRoute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPricingRepo(ctrl)
	uc := NewPricingUC(newTestConfig(), mockRepo)

	pickup := models.Location{Latitude: 37.7749, Longitude: -122.4194}
	dropoff := models.Location{Latitude: 37.8049, Longitude: -122.4194}

	mockRepo.EXPECT().CountActiveRides(gomock.Any(), pickup).Return(1, nil)
	mockRepo.EXPECT().CountAvailableDrivers(gomock.Any(), pickup).Return(1, nil)

	est, err := uc.EstimateForRoute(context.Background(), pickup, dropoff)

	assert.NoError(t, err)
	// 0.03 degrees of latitude is roughly 3.3 km
	assert.InDelta(t, 3.34, est.DistanceKm, 0.05)
	assert.InDelta(t, est.DistanceKm/30*60, est.DurationMin, 1e-9)
	assert.Equal(t, 1.0, est.Fare.SurgeFactor)
	assert.Greater(t, est.Fare.TotalFare, 3.00)
}
