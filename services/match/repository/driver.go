package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oktaviandi/ridepulse/internal/pkg/constants"
	"github.com/oktaviandi/ridepulse/internal/pkg/database"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
)

// MatchRepo implements driver availability storage on PostgreSQL plus a
// Redis GEO set for radius queries
type MatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *MatchRepo {
	return &MatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

type driverRow struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Status    string          `db:"status"`
	Lat       sql.NullFloat64 `db:"current_lat"`
	Lng       sql.NullFloat64 `db:"current_lng"`
	Rating    float64         `db:"rating"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// ListAvailableDrivers returns every driver marked available that has a
// reported position. The locator scans all of them; filtering by area
// happens in the selection step, not in SQL.
func (r *MatchRepo) ListAvailableDrivers(ctx context.Context) ([]models.Driver, error) {
	query := `
		SELECT id, name, status, current_lat, current_lng, rating, updated_at
		FROM drivers
		WHERE status = 'available'
		AND current_lat IS NOT NULL AND current_lng IS NOT NULL
	`

	var rows []driverRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list available drivers: %w", err)
	}

	drivers := make([]models.Driver, 0, len(rows))
	for _, row := range rows {
		d := models.Driver{
			ID:        row.ID,
			Name:      row.Name,
			Status:    models.DriverStatus(row.Status),
			Rating:    row.Rating,
			UpdatedAt: row.UpdatedAt,
		}
		if row.Lat.Valid && row.Lng.Valid {
			d.Location = &models.Location{
				Latitude:  row.Lat.Float64,
				Longitude: row.Lng.Float64,
			}
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// UpdateDriverStatus updates a driver's availability. Leaving the
// available state also drops the driver from the Redis GEO set so
// radius queries stop returning them.
func (r *MatchRepo) UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error {
	query := `UPDATE drivers SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, driverID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("driver not found: %s", driverID)
	}

	if status != models.DriverStatusAvailable {
		if err := r.redisClient.ZRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
			// Postgres already committed; a stale GEO entry expires on
			// the next position report, so log and move on.
			logger.Warn("Failed to remove driver from available set",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}

	return nil
}

// UpsertDriverLocation stores a driver position in PostgreSQL and
// refreshes the Redis GEO set entry when the driver is available
func (r *MatchRepo) UpsertDriverLocation(ctx context.Context, driverID string, location models.Location) error {
	query := `
		UPDATE drivers SET current_lat = $2, current_lng = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING status
	`

	var status string
	err := r.db.QueryRowContext(ctx, query, driverID, location.Latitude, location.Longitude).Scan(&status)
	if err == sql.ErrNoRows {
		return fmt.Errorf("driver not found: %s", driverID)
	}
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	if models.DriverStatus(status) == models.DriverStatusAvailable {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyAvailableDrivers, location.Longitude, location.Latitude, driverID); err != nil {
			logger.Warn("Failed to refresh driver GEO entry",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}

	return nil
}

// NearbyDrivers queries the Redis GEO set for available drivers within
// radiusKm of the center point, nearest first
func (r *MatchRepo) NearbyDrivers(ctx context.Context, center models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyAvailableDrivers, center.Longitude, center.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver GEO set: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(locations))
	for _, l := range locations {
		drivers = append(drivers, models.NearbyDriver{
			ID: l.Name,
			Location: models.Location{
				Latitude:  l.Latitude,
				Longitude: l.Longitude,
			},
			DistanceKm: l.Dist,
		})
	}
	return drivers, nil
}
