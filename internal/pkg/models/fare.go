package models

// Fare represents the priced breakdown of a trip.
// TotalFare is always round2((BaseFare + distanceFare + timeFare) * SurgeFactor),
// where the distance and time components are rounded only for presentation.
type Fare struct {
	BaseFare     float64 `json:"base_fare" db:"base_fare"`
	DistanceFare float64 `json:"distance_fare" db:"distance_fare"`
	DurationFare float64 `json:"duration_fare" db:"duration_fare"`
	SurgeFactor  float64 `json:"surge_multiplier" db:"surge_multiplier"`
	TotalFare    float64 `json:"total_fare" db:"total_fare"`
	Currency     string  `json:"currency" db:"currency"`
}

// FareEstimate is a fare computed ahead of a trip from projected
// distance and duration
type FareEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	Fare        Fare    `json:"fare"`
}
