package nats

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	"github.com/oktaviandi/ridepulse/services/match/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHandleDriverBeacon_ActiveBeacon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewBeaconHandler(mockMatchUC, nil)

	event := models.DriverBeaconEvent{
		DriverID:  "driver-1",
		IsActive:  true,
		Location:  models.Location{Latitude: -6.1754, Longitude: 106.8272},
		Timestamp: time.Now(),
	}

	mockMatchUC.EXPECT().
		UpdateDriverStatus(gomock.Any(), "driver-1", models.DriverStatusAvailable).
		Return(nil)
	mockMatchUC.EXPECT().
		UpdateDriverLocation(gomock.Any(), models.DriverLocationUpdate{
			DriverID: "driver-1",
			Location: event.Location,
		}).
		Return(nil)

	msg, _ := json.Marshal(event)
	assert.NoError(t, handler.handleDriverBeacon(msg))
}

func TestHandleDriverBeacon_InactiveBeacon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewBeaconHandler(mockMatchUC, nil)

	event := models.DriverBeaconEvent{
		DriverID: "driver-1",
		IsActive: false,
	}

	mockMatchUC.EXPECT().
		UpdateDriverStatus(gomock.Any(), "driver-1", models.DriverStatusOffline).
		Return(nil)

	msg, _ := json.Marshal(event)
	assert.NoError(t, handler.handleDriverBeacon(msg))
}

func TestHandleDriverBeacon_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewBeaconHandler(mockMatchUC, nil)

	err := handler.handleDriverBeacon([]byte("{not json"))
	assert.Error(t, err)
}

func TestHandleDriverBeacon_StatusUpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMatchUC := mocks.NewMockMatchUC(ctrl)
	handler := NewBeaconHandler(mockMatchUC, nil)

	event := models.DriverBeaconEvent{
		DriverID: "driver-1",
		IsActive: true,
		Location: models.Location{Latitude: 1, Longitude: 1},
	}

	mockMatchUC.EXPECT().
		UpdateDriverStatus(gomock.Any(), "driver-1", models.DriverStatusAvailable).
		Return(errors.New("database error"))

	msg, _ := json.Marshal(event)
	err := handler.handleDriverBeacon(msg)
	assert.Error(t, err)
}
