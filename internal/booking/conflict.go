package booking

import (
	"time"

	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/internal/timeutil"
)

// FindConflicts returns the active bookings (Reserved or Ongoing) for
// the vehicle whose [pickup, dropoff) interval overlaps the proposed
// one. An empty result means the schedule is free. The detector is a
// pure query; rejecting the proposal is the caller's decision.
func FindConflicts(vehicleID string, pickup, dropoff time.Time, bookings []store.Booking) []store.Booking {
	var conflicts []store.Booking
	for _, b := range bookings {
		if b.VehicleID != vehicleID || !b.Status.IsActive() {
			continue
		}
		if timeutil.Overlaps(b.Pickup, b.Dropoff, pickup, dropoff) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
