package models

import "fmt"

// Location represents a geographic coordinate
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Validate checks that the coordinate is within valid WGS84 bounds
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", l.Longitude)
	}
	return nil
}

// DriverLocationUpdate represents a live driver position report
type DriverLocationUpdate struct {
	DriverID string   `json:"driver_id"`
	Location Location `json:"location"`
}
