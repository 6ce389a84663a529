package models

import "time"

// RideAssignedEvent is published when a driver has been matched to a ride.
// Delivery is fire-and-forget; the matching core does not await confirmation.
type RideAssignedEvent struct {
	RideID        string  `json:"ride_id"`
	DriverID      string  `json:"driver_id"`
	PickupAddress string  `json:"pickup_address"`
	Fare          float64 `json:"fare"`
}

// RideCompletedEvent is published after a ride reaches the completed state
type RideCompletedEvent struct {
	RideID    string  `json:"ride_id"`
	RiderID   string  `json:"rider_id"`
	DriverID  string  `json:"driver_id"`
	TotalFare float64 `json:"total_fare"`
}

// RideCancelledEvent is published after a ride is cancelled
type RideCancelledEvent struct {
	RideID      string    `json:"ride_id"`
	CancelledBy string    `json:"cancelled_by"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// DriverBeaconEvent is a driver availability/location report consumed
// over NATS
type DriverBeaconEvent struct {
	DriverID  string    `json:"driver_id"`
	IsActive  bool      `json:"is_active"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
