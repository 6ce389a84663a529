package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oktaviandi/ridepulse/internal/pkg/database"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

func setupMatchRepoTest(t *testing.T) (*MatchRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &MatchRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestListAvailableDrivers(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, drivers []models.Driver, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "status", "current_lat", "current_lng", "rating", "updated_at"}).
					AddRow("driver-1", "Budi", "available", -6.1754, 106.8272, 4.8, now).
					AddRow("driver-2", "Sari", "available", -6.1800, 106.8300, 4.5, now)
				mock.ExpectQuery("^\\s*SELECT id, name, status, current_lat, current_lng, rating, updated_at").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, drivers []models.Driver, err error) {
				assert.NoError(t, err)
				require.Len(t, drivers, 2)
				assert.Equal(t, "driver-1", drivers[0].ID)
				assert.Equal(t, models.DriverStatusAvailable, drivers[0].Status)
				require.NotNil(t, drivers[0].Location)
				assert.Equal(t, -6.1754, drivers[0].Location.Latitude)
				assert.True(t, drivers[0].Available())
			},
		},
		{
			name: "Empty Result",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "status", "current_lat", "current_lng", "rating", "updated_at"})
				mock.ExpectQuery("^\\s*SELECT id, name, status, current_lat, current_lng, rating, updated_at").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, drivers []models.Driver, err error) {
				assert.NoError(t, err)
				assert.Empty(t, drivers)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*SELECT id, name, status, current_lat, current_lng, rating, updated_at").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, drivers []models.Driver, err error) {
				assert.Error(t, err)
				assert.Nil(t, drivers)
				assert.Contains(t, err.Error(), "failed to list available drivers")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			drivers, err := repo.ListAvailableDrivers(context.Background())

			tc.assertFunc(t, drivers, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateDriverStatus(t *testing.T) {
	testCases := []struct {
		name       string
		status     models.DriverStatus
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name:   "Success",
			status: models.DriverStatusAvailable,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE drivers SET status").
					WithArgs("driver-1", "available").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Driver Not Found",
			status: models.DriverStatusAvailable,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE drivers SET status").
					WithArgs("driver-1", "available").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "driver not found")
			},
		},
		{
			name:   "Database Error",
			status: models.DriverStatusAvailable,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE drivers SET status").
					WithArgs("driver-1", "available").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to update driver status")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.UpdateDriverStatus(context.Background(), "driver-1", tc.status)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsertDriverLocation(t *testing.T) {
	location := models.Location{Latitude: -6.1754, Longitude: 106.8272}

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success For Busy Driver",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"status"}).AddRow("busy")
				mock.ExpectQuery("^\\s*UPDATE drivers SET current_lat").
					WithArgs("driver-1", location.Latitude, location.Longitude).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Driver Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"status"})
				mock.ExpectQuery("^\\s*UPDATE drivers SET current_lat").
					WithArgs("driver-1", location.Latitude, location.Longitude).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "driver not found")
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*UPDATE drivers SET current_lat").
					WithArgs("driver-1", location.Latitude, location.Longitude).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to update driver location")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.UpsertDriverLocation(context.Background(), "driver-1", location)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
