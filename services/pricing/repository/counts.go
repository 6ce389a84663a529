package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	"github.com/oktaviandi/ridepulse/internal/utils"
)

// Statuses that count toward demand: rides still waiting for a driver
// or currently on the road.
var activeRideStatuses = []string{
	string(models.RideStatusSearching),
	string(models.RideStatusAccepted),
	string(models.RideStatusInProgress),
}

// PricingRepo implements demand/supply counting against PostgreSQL
type PricingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(cfg *models.Config, db *sqlx.DB) *PricingRepo {
	return &PricingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CountActiveRides counts open rides whose pickup falls inside the
// surge bounding box around the center point. The box is a raw
// coordinate-degree filter, not a geodesic radius.
func (r *PricingRepo) CountActiveRides(ctx context.Context, center models.Location) (int, error) {
	query := `
		SELECT COUNT(*) FROM rides
		WHERE status = ANY($4)
		AND ABS(pickup_lat - $1) < $3 AND ABS(pickup_lng - $2) < $3
	`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		center.Latitude, center.Longitude, utils.SurgeCellDelta, pq.Array(activeRideStatuses)).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountAvailableDrivers counts available drivers inside the same
// bounding box
func (r *PricingRepo) CountAvailableDrivers(ctx context.Context, center models.Location) (int, error) {
	query := `
		SELECT COUNT(*) FROM drivers
		WHERE status = 'available'
		AND ABS(current_lat - $1) < $3 AND ABS(current_lng - $2) < $3
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, center.Latitude, center.Longitude, utils.SurgeCellDelta).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
