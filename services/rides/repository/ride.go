package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	"github.com/oktaviandi/ridepulse/services/rides"
)

// RideRepo implements ride persistence on PostgreSQL
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `id, rider_id, driver_id, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
	pickup_address, dropoff_address, status, fare, surge_multiplier, distance_km, duration_minutes,
	requested_at, accepted_at, arrived_at, started_at, completed_at, cancelled_at, updated_at`

type rideRow struct {
	ID             uuid.UUID       `db:"id"`
	RiderID        uuid.UUID       `db:"rider_id"`
	DriverID       *uuid.UUID      `db:"driver_id"`
	PickupLat      float64         `db:"pickup_lat"`
	PickupLng      float64         `db:"pickup_lng"`
	DropoffLat     float64         `db:"dropoff_lat"`
	DropoffLng     float64         `db:"dropoff_lng"`
	PickupAddress  string          `db:"pickup_address"`
	DropoffAddress string          `db:"dropoff_address"`
	Status         string          `db:"status"`
	Fare           sql.NullFloat64 `db:"fare"`
	SurgeFactor    sql.NullFloat64 `db:"surge_multiplier"`
	DistanceKm     sql.NullFloat64 `db:"distance_km"`
	DurationMin    sql.NullInt64   `db:"duration_minutes"`
	RequestedAt    time.Time       `db:"requested_at"`
	AcceptedAt     *time.Time      `db:"accepted_at"`
	ArrivedAt      *time.Time      `db:"arrived_at"`
	StartedAt      *time.Time      `db:"started_at"`
	CompletedAt    *time.Time      `db:"completed_at"`
	CancelledAt    *time.Time      `db:"cancelled_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (r *rideRow) toModel(currency string) *models.Ride {
	ride := &models.Ride{
		ID:             r.ID,
		RiderID:        r.RiderID,
		DriverID:       r.DriverID,
		Pickup:         models.Location{Latitude: r.PickupLat, Longitude: r.PickupLng},
		Dropoff:        models.Location{Latitude: r.DropoffLat, Longitude: r.DropoffLng},
		PickupAddress:  r.PickupAddress,
		DropoffAddress: r.DropoffAddress,
		Status:         models.RideStatus(r.Status),
		RequestedAt:    r.RequestedAt,
		AcceptedAt:     r.AcceptedAt,
		ArrivedAt:      r.ArrivedAt,
		StartedAt:      r.StartedAt,
		CompletedAt:    r.CompletedAt,
		CancelledAt:    r.CancelledAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Fare.Valid {
		surge := 1.0
		if r.SurgeFactor.Valid {
			surge = r.SurgeFactor.Float64
		}
		ride.Fare = &models.Fare{
			TotalFare:   r.Fare.Float64,
			SurgeFactor: surge,
			Currency:    currency,
		}
	}
	if r.DistanceKm.Valid {
		v := r.DistanceKm.Float64
		ride.DistanceKm = &v
	}
	if r.DurationMin.Valid {
		v := int(r.DurationMin.Int64)
		ride.DurationMin = &v
	}
	return ride
}

// CreateRide inserts a new ride in the searching state
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (id, rider_id, pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			pickup_address, dropoff_address, status, requested_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.RiderID,
		ride.Pickup.Latitude, ride.Pickup.Longitude,
		ride.Dropoff.Latitude, ride.Dropoff.Longitude,
		ride.PickupAddress, ride.DropoffAddress,
		string(ride.Status), ride.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRideByID fetches a single ride
func (r *RideRepo) GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var row rideRow
	err := r.db.GetContext(ctx, &row, query, rideID)
	if err == sql.ErrNoRows {
		return nil, rides.ErrRideConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toModel(r.cfg.Pricing.Currency), nil
}

// transition applies a guarded status update and returns the updated
// row. A miss means the ride is gone or was moved by someone else
// first; both collapse into ErrRideConflict.
func (r *RideRepo) transition(ctx context.Context, query string, args ...interface{}) (*models.Ride, error) {
	var row rideRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if err == sql.ErrNoRows {
		return nil, rides.ErrRideConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}
	return row.toModel(r.cfg.Pricing.Currency), nil
}

// AcceptRide attaches a driver to a searching ride
func (r *RideRepo) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides SET status = 'accepted', driver_id = $2, accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'searching'
		RETURNING ` + rideColumns

	return r.transition(ctx, query, rideID, driverID)
}

// MarkArrived records the driver reaching the pickup point
func (r *RideRepo) MarkArrived(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides SET status = 'arrived', arrived_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'accepted'
		RETURNING ` + rideColumns

	return r.transition(ctx, query, rideID)
}

// StartRide begins the trip. The arrived marker is driven by the apps
// and optional, so a start is legal from accepted or arrived.
func (r *RideRepo) StartRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides SET status = 'in_progress', started_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status IN ('accepted', 'arrived')
		RETURNING ` + rideColumns

	return r.transition(ctx, query, rideID)
}

// CompleteRide finishes an in-progress ride and applies the settlement
// side effects in the same transaction: the driver's earnings grow by
// the fare and both parties' ride counters increment. Either all of it
// commits or none of it does.
func (r *RideRepo) CompleteRide(ctx context.Context, rideID uuid.UUID, fare, distanceKm float64, durationMin int) (*models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Warn("Failed to roll back ride completion", logger.Err(err))
		}
	}()

	query := `
		UPDATE rides SET status = 'completed', fare = $2, distance_km = $3, duration_minutes = $4,
			completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'in_progress'
		RETURNING ` + rideColumns

	var row rideRow
	err = tx.GetContext(ctx, &row, query, rideID, fare, distanceKm, durationMin)
	if err == sql.ErrNoRows {
		return nil, rides.ErrRideConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete ride: %w", err)
	}

	if row.DriverID != nil {
		driverQuery := `
			UPDATE drivers SET total_earnings = total_earnings + $2, total_rides = total_rides + 1,
				updated_at = NOW()
			WHERE id = $1
		`
		if _, err := tx.ExecContext(ctx, driverQuery, *row.DriverID, fare); err != nil {
			return nil, fmt.Errorf("failed to credit driver earnings: %w", err)
		}
	}

	riderQuery := `UPDATE riders SET total_rides = total_rides + 1, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, riderQuery, row.RiderID); err != nil {
		return nil, fmt.Errorf("failed to increment rider ride count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ride completion: %w", err)
	}
	return row.toModel(r.cfg.Pricing.Currency), nil
}

// CancelRide cancels a ride from any non-terminal state
func (r *RideRepo) CancelRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides SET status = 'cancelled', cancelled_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled')
		RETURNING ` + rideColumns

	return r.transition(ctx, query, rideID)
}

// ListRidesByUser returns rides where the user took part as rider or
// driver, most recent first
func (r *RideRepo) ListRidesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Ride, error) {
	query := `
		SELECT ` + rideColumns + ` FROM rides
		WHERE rider_id = $1 OR driver_id = $1
		ORDER BY requested_at DESC
		LIMIT $2
	`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	result := make([]models.Ride, 0, len(rows))
	for i := range rows {
		result = append(result, *rows[i].toModel(r.cfg.Pricing.Currency))
	}
	return result, nil
}
