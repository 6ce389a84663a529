package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	matchmocks "github.com/oktaviandi/ridepulse/services/match/mocks"
	pricingmocks "github.com/oktaviandi/ridepulse/services/pricing/mocks"
	"github.com/oktaviandi/ridepulse/services/rides"
	"github.com/oktaviandi/ridepulse/services/rides/mocks"
)

type rideUCMocks struct {
	repo    *mocks.MockRideRepo
	gateway *mocks.MockRideGW
	match   *matchmocks.MockMatchUC
	pricing *pricingmocks.MockPricingUC
}

func setupRideUCTest(t *testing.T) (rides.RideUC, rideUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := rideUCMocks{
		repo:    mocks.NewMockRideRepo(ctrl),
		gateway: mocks.NewMockRideGW(ctrl),
		match:   matchmocks.NewMockMatchUC(ctrl),
		pricing: pricingmocks.NewMockPricingUC(ctrl),
	}

	cfg := &models.Config{}
	cfg.Pricing.Currency = "USD"
	cfg.Match.MaxDistanceKm = 5.0

	uc := NewRideUC(cfg, m.repo, m.gateway, m.match, m.pricing)
	return uc, m, ctrl
}

func TestRequestRide_MatchedAndAnnounced(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	riderID := uuid.New()
	pickup := models.Location{Latitude: 37.7749, Longitude: -122.4194}
	dropoff := models.Location{Latitude: 37.7755, Longitude: -122.4180}

	req := models.RideRequest{
		RiderID:        riderID.String(),
		Pickup:         pickup,
		Dropoff:        dropoff,
		PickupAddress:  "Market St",
		DropoffAddress: "Bay St",
	}

	estimate := &models.FareEstimate{
		DistanceKm:  0.5,
		DurationMin: 1.0,
		Fare: models.Fare{
			BaseFare:    3.00,
			SurgeFactor: 1.0,
			TotalFare:   4.52,
			Currency:    "USD",
		},
	}
	matched := &models.MatchedDriver{
		Driver: models.Driver{
			ID:       "d7b3c960-9d54-4b1e-8d82-5f3a8b3f1c11",
			Status:   models.DriverStatusAvailable,
			Location: &models.Location{Latitude: 37.7750, Longitude: -122.4195},
		},
		DistanceKm: 0.014,
	}

	var created *models.Ride
	m.repo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			created = ride
			return nil
		})
	m.pricing.EXPECT().EstimateForRoute(gomock.Any(), pickup, dropoff).Return(estimate, nil)
	m.match.EXPECT().FindNearestAvailableDriver(gomock.Any(), pickup).Return(matched, nil)
	m.gateway.EXPECT().
		PublishRideAssigned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.RideAssignedEvent) error {
			assert.Equal(t, created.ID.String(), event.RideID)
			assert.Equal(t, matched.Driver.ID, event.DriverID)
			assert.Equal(t, "Market St", event.PickupAddress)
			assert.Equal(t, 4.52, event.Fare)
			return nil
		})

	resp, err := uc.RequestRide(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, created)
	assert.Equal(t, models.RideStatusSearching, created.Status)
	assert.Equal(t, riderID, created.RiderID)
	assert.Equal(t, estimate, resp.Estimate)
	assert.Equal(t, matched, resp.AvailableDriver)
}

func TestRequestRide_NoDriverStillSucceeds(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	req := models.RideRequest{
		RiderID: uuid.New().String(),
		Pickup:  models.Location{Latitude: 1, Longitude: 1},
		Dropoff: models.Location{Latitude: 1.01, Longitude: 1.01},
	}

	m.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	m.pricing.EXPECT().EstimateForRoute(gomock.Any(), req.Pickup, req.Dropoff).
		Return(&models.FareEstimate{}, nil)
	m.match.EXPECT().FindNearestAvailableDriver(gomock.Any(), req.Pickup).Return(nil, nil)

	resp, err := uc.RequestRide(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.AvailableDriver)
	assert.Equal(t, models.RideStatusSearching, resp.Ride.Status)
}

func TestRequestRide_PublishFailureDoesNotFailRequest(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	req := models.RideRequest{
		RiderID: uuid.New().String(),
		Pickup:  models.Location{Latitude: 1, Longitude: 1},
		Dropoff: models.Location{Latitude: 1.01, Longitude: 1.01},
	}
	matched := &models.MatchedDriver{
		Driver: models.Driver{ID: "driver-1", Status: models.DriverStatusAvailable,
			Location: &models.Location{Latitude: 1.001, Longitude: 1.001}},
		DistanceKm: 0.15,
	}

	m.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	m.pricing.EXPECT().EstimateForRoute(gomock.Any(), req.Pickup, req.Dropoff).
		Return(&models.FareEstimate{Fare: models.Fare{TotalFare: 6.10}}, nil)
	m.match.EXPECT().FindNearestAvailableDriver(gomock.Any(), req.Pickup).Return(matched, nil)
	m.gateway.EXPECT().PublishRideAssigned(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	resp, err := uc.RequestRide(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, matched, resp.AvailableDriver)
}

func TestRequestRide_EstimateFailureIsNonFatal(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	req := models.RideRequest{
		RiderID: uuid.New().String(),
		Pickup:  models.Location{Latitude: 1, Longitude: 1},
		Dropoff: models.Location{Latitude: 1.01, Longitude: 1.01},
	}

	m.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	m.pricing.EXPECT().EstimateForRoute(gomock.Any(), req.Pickup, req.Dropoff).
		Return(nil, errors.New("database error"))
	m.match.EXPECT().FindNearestAvailableDriver(gomock.Any(), req.Pickup).Return(nil, nil)

	resp, err := uc.RequestRide(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.Estimate)
}

func TestRequestRide_InvalidInput(t *testing.T) {
	uc, _, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	_, err := uc.RequestRide(context.Background(), models.RideRequest{
		RiderID: "not-a-uuid",
		Pickup:  models.Location{Latitude: 1, Longitude: 1},
		Dropoff: models.Location{Latitude: 2, Longitude: 2},
	})
	assert.Error(t, err)

	_, err = uc.RequestRide(context.Background(), models.RideRequest{
		RiderID: uuid.New().String(),
		Pickup:  models.Location{Latitude: 91, Longitude: 1},
		Dropoff: models.Location{Latitude: 2, Longitude: 2},
	})
	assert.Error(t, err)
}

func TestRequestRide_CreateFails(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	req := models.RideRequest{
		RiderID: uuid.New().String(),
		Pickup:  models.Location{Latitude: 1, Longitude: 1},
		Dropoff: models.Location{Latitude: 1.01, Longitude: 1.01},
	}

	m.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	resp, err := uc.RequestRide(context.Background(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestAcceptRide_Success(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	driverID := uuid.New()
	accepted := &models.Ride{ID: rideID, DriverID: &driverID, Status: models.RideStatusAccepted}

	m.repo.EXPECT().AcceptRide(gomock.Any(), rideID, driverID).Return(accepted, nil)
	m.match.EXPECT().UpdateDriverStatus(gomock.Any(), driverID.String(), models.DriverStatusBusy).Return(nil)

	ride, err := uc.AcceptRide(context.Background(), rideID, driverID)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
}

func TestAcceptRide_Conflict(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	driverID := uuid.New()

	m.repo.EXPECT().AcceptRide(gomock.Any(), rideID, driverID).Return(nil, rides.ErrRideConflict)

	ride, err := uc.AcceptRide(context.Background(), rideID, driverID)

	assert.ErrorIs(t, err, rides.ErrRideConflict)
	assert.Nil(t, ride)
}

func TestCompleteRide_Success(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	riderID := uuid.New()
	driverID := uuid.New()
	completed := &models.Ride{
		ID:       rideID,
		RiderID:  riderID,
		DriverID: &driverID,
		Status:   models.RideStatusCompleted,
		Fare:     &models.Fare{TotalFare: 16.50, Currency: "USD"},
	}

	req := models.CompleteRideRequest{Fare: 16.50, DistanceKm: 5.0, DurationMin: 20}

	m.repo.EXPECT().CompleteRide(gomock.Any(), rideID, 16.50, 5.0, 20).Return(completed, nil)
	m.match.EXPECT().UpdateDriverStatus(gomock.Any(), driverID.String(), models.DriverStatusAvailable).Return(nil)
	m.gateway.EXPECT().
		PublishRideCompleted(gomock.Any(), models.RideCompletedEvent{
			RideID:    rideID.String(),
			RiderID:   riderID.String(),
			DriverID:  driverID.String(),
			TotalFare: 16.50,
		}).
		Return(nil)

	ride, err := uc.CompleteRide(context.Background(), rideID, req)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, ride.Status)
}

func TestCompleteRide_NegativeFare(t *testing.T) {
	uc, _, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	_, err := uc.CompleteRide(context.Background(), uuid.New(), models.CompleteRideRequest{Fare: -1})
	assert.Error(t, err)
}

func TestCompleteRide_Conflict(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	rideID := uuid.New()

	m.repo.EXPECT().CompleteRide(gomock.Any(), rideID, 10.0, 2.0, 8).Return(nil, rides.ErrRideConflict)

	_, err := uc.CompleteRide(context.Background(), rideID, models.CompleteRideRequest{
		Fare: 10.0, DistanceKm: 2.0, DurationMin: 8,
	})
	assert.ErrorIs(t, err, rides.ErrRideConflict)
}

func TestCancelRide_FreesDriverAndPublishes(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	driverID := uuid.New()
	cancelledBy := uuid.New()
	cancelledAt := time.Now()
	cancelled := &models.Ride{
		ID:          rideID,
		DriverID:    &driverID,
		Status:      models.RideStatusCancelled,
		CancelledAt: &cancelledAt,
	}

	m.repo.EXPECT().CancelRide(gomock.Any(), rideID).Return(cancelled, nil)
	m.match.EXPECT().UpdateDriverStatus(gomock.Any(), driverID.String(), models.DriverStatusAvailable).Return(nil)
	m.gateway.EXPECT().
		PublishRideCancelled(gomock.Any(), models.RideCancelledEvent{
			RideID:      rideID.String(),
			CancelledBy: cancelledBy.String(),
			CancelledAt: cancelledAt,
		}).
		Return(nil)

	ride, err := uc.CancelRide(context.Background(), rideID, cancelledBy)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, ride.Status)
}

func TestCancelRide_NoDriverAttached(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	cancelledBy := uuid.New()
	cancelledAt := time.Now()
	cancelled := &models.Ride{ID: rideID, Status: models.RideStatusCancelled, CancelledAt: &cancelledAt}

	m.repo.EXPECT().CancelRide(gomock.Any(), rideID).Return(cancelled, nil)
	m.gateway.EXPECT().PublishRideCancelled(gomock.Any(), gomock.Any()).Return(nil)

	ride, err := uc.CancelRide(context.Background(), rideID, cancelledBy)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, ride.Status)
}

func TestListRidesForUser_ClampsLimit(t *testing.T) {
	uc, m, ctrl := setupRideUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.repo.EXPECT().ListRidesByUser(gomock.Any(), userID, 20).Return([]models.Ride{}, nil).Times(2)

	_, err := uc.ListRidesForUser(context.Background(), userID, 0)
	assert.NoError(t, err)

	_, err = uc.ListRidesForUser(context.Background(), userID, 500)
	assert.NoError(t, err)
}
