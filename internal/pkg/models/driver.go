package models

import "time"

// DriverStatus represents the availability of a driver
type DriverStatus string

const (
	DriverStatusOffline   DriverStatus = "offline"
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
)

// Driver represents a point-in-time snapshot of a driver as seen by the
// matching core. Location is nil when the driver has never reported one.
type Driver struct {
	ID            string       `json:"id" db:"id"`
	Name          string       `json:"name,omitempty" db:"name"`
	Status        DriverStatus `json:"status" db:"status"`
	Location      *Location    `json:"location,omitempty"`
	Rating        float64      `json:"rating" db:"rating"`
	TotalEarnings float64      `json:"total_earnings,omitempty" db:"total_earnings"`
	TotalRides    int          `json:"total_rides,omitempty" db:"total_rides"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// Available reports whether the driver is eligible for matching
func (d *Driver) Available() bool {
	return d.Status == DriverStatusAvailable && d.Location != nil
}

// MatchedDriver is a driver selected by the locator together with the
// computed haversine distance from the pickup point
type MatchedDriver struct {
	Driver     Driver  `json:"driver"`
	DistanceKm float64 `json:"distance_km"`
}

// NearbyDriver represents a driver returned from a radius query
type NearbyDriver struct {
	ID         string   `json:"id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}
