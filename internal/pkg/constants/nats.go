package constants

// NATS Subjects
const (
	// Ride events
	SubjectRideAssigned  = "ride.assigned"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"

	// Driver events
	SubjectDriverBeacon = "driver.beacon"
)

// Queue groups for load-balanced consumers
const (
	QueueGroupMatch = "match-service"
)
