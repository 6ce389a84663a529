package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride.
// Transitions are guarded at the storage layer: an update only applies when
// the row is still in the expected prior status.
type RideStatus string

const (
	RideStatusSearching  RideStatus = "searching"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusArrived    RideStatus = "arrived"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// Terminal reports whether no further transitions are permitted
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride represents a ride record
type Ride struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	RiderID        uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID       *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Pickup         Location   `json:"pickup"`
	Dropoff        Location   `json:"dropoff"`
	PickupAddress  string     `json:"pickup_address" db:"pickup_address"`
	DropoffAddress string     `json:"dropoff_address" db:"dropoff_address"`
	Status         RideStatus `json:"status" db:"status"`
	Fare           *Fare      `json:"fare,omitempty"`
	DistanceKm     *float64   `json:"distance_km,omitempty" db:"distance_km"`
	DurationMin    *int       `json:"duration_minutes,omitempty" db:"duration_minutes"`
	RequestedAt    time.Time  `json:"requested_at" db:"requested_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	ArrivedAt      *time.Time `json:"arrived_at,omitempty" db:"arrived_at"`
	StartedAt      *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// RideRequest is the payload for creating a new ride
type RideRequest struct {
	RiderID        string   `json:"rider_id"`
	Pickup         Location `json:"pickup"`
	Dropoff        Location `json:"dropoff"`
	PickupAddress  string   `json:"pickup_address"`
	DropoffAddress string   `json:"dropoff_address"`
}

// RideRequestResponse carries the created ride plus the outcome of the
// matching pass that ran alongside it
type RideRequestResponse struct {
	Ride            *Ride          `json:"ride"`
	AvailableDriver *MatchedDriver `json:"available_driver,omitempty"`
	Estimate        *FareEstimate  `json:"estimate,omitempty"`
}

// CompleteRideRequest is the payload for completing a ride
type CompleteRideRequest struct {
	Fare        float64 `json:"fare"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_minutes"`
}
