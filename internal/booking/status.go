package booking

import (
	"fmt"

	"github.com/carxpresspanabo/carxpress-rental/internal/store"
)

// NextStatus returns the status a booking advances to. The progression
// is strictly one-way: Reserved starts the rental, Ongoing completes it,
// and Completed and Cancelled are terminal.
func NextStatus(current store.BookingStatus) (store.BookingStatus, error) {
	switch current {
	case store.BookingReserved:
		return store.BookingOngoing, nil
	case store.BookingOngoing:
		return store.BookingCompleted, nil
	default:
		return "", fmt.Errorf("booking in status %q cannot be advanced", current)
	}
}

// CanCancel reports whether a booking may move to Cancelled.
func CanCancel(current store.BookingStatus) bool {
	return current.IsActive()
}
