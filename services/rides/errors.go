package rides

import "errors"

// ErrRideConflict is returned when a guarded transition matched no row.
// Either the ride does not exist or it is no longer in the expected
// prior status; the storage layer does not distinguish the two.
var ErrRideConflict = errors.New("ride not found or not in expected status")
