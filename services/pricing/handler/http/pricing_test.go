package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	"github.com/oktaviandi/ridepulse/services/pricing/mocks"
	"github.com/stretchr/testify/assert"
)

func TestNewPricingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockPricingUC, handler.pricingUC)
}

func TestPricingHandler_GetSurge_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	loc := models.Location{Latitude: -6.1754, Longitude: 106.8272}

	mockPricingUC.EXPECT().
		SurgeForLocation(gomock.Any(), loc).
		Return(1.5, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/pricing/surge?lat=-6.1754&lng=106.8272", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.GetSurge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 1.5, data["surge_multiplier"])
	assert.Len(t, data["cell"], 6)
}

func TestPricingHandler_GetSurge_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	e := echo.New()

	// Missing lat
	request := httptest.NewRequest(http.MethodGet, "/pricing/surge?lng=106.8272", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.GetSurge(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Latitude out of range
	request = httptest.NewRequest(http.MethodGet, "/pricing/surge?lat=95.0&lng=106.8272", nil)
	recorder = httptest.NewRecorder()
	c = e.NewContext(request, recorder)

	err = handler.GetSurge(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPricingHandler_GetSurge_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	mockPricingUC.EXPECT().
		SurgeForLocation(gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("database error")).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/pricing/surge?lat=-6.1754&lng=106.8272", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.GetSurge(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestPricingHandler_EstimateFare_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	pickup := models.Location{Latitude: 37.7749, Longitude: -122.4194}
	dropoff := models.Location{Latitude: 37.8049, Longitude: -122.4094}

	expected := &models.FareEstimate{
		DistanceKm:  3.45,
		DurationMin: 6.9,
		Fare: models.Fare{
			BaseFare:     3.00,
			DistanceFare: 5.18,
			DurationFare: 2.07,
			SurgeFactor:  1.0,
			TotalFare:    10.24,
			Currency:     "USD",
		},
	}

	mockPricingUC.EXPECT().
		EstimateForRoute(gomock.Any(), pickup, dropoff).
		Return(expected, nil).
		Times(1)

	e := echo.New()
	reqBody, _ := json.Marshal(estimateRequest{Pickup: pickup, Dropoff: dropoff})
	request := httptest.NewRequest(http.MethodPost, "/pricing/estimate", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.EstimateFare(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	fare := data["fare"].(map[string]interface{})
	assert.Equal(t, 10.24, fare["total_fare"])
	assert.Equal(t, "USD", fare["currency"])
}

func TestPricingHandler_EstimateFare_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/pricing/estimate", bytes.NewBufferString("{not json"))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.EstimateFare(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPricingHandler_EstimateFare_InvalidPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingUC := mocks.NewMockPricingUC(ctrl)
	handler := NewPricingHandler(mockPricingUC)

	e := echo.New()
	reqBody, _ := json.Marshal(estimateRequest{
		Pickup:  models.Location{Latitude: 120.0, Longitude: 10.0},
		Dropoff: models.Location{Latitude: 1.0, Longitude: 1.0},
	})
	request := httptest.NewRequest(http.MethodPost, "/pricing/estimate", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.EstimateFare(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
