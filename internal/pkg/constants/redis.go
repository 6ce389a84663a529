package constants

// Redis keys
const (
	// KeyAvailableDrivers is the GEO set holding live positions of
	// drivers currently accepting rides
	KeyAvailableDrivers = "drivers:available"
)
