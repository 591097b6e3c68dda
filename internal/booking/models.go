package booking

import (
	"time"

	"github.com/carxpresspanabo/carxpress-rental/internal/store"
)

// QuoteRequest prices a proposed rental without creating anything.
// Money fields are whole pesos. Rate and driver-rate are optional: the
// vehicle's day rate and the settings' driver rate fill them in.
type QuoteRequest struct {
	VehicleID        string   `json:"vehicle_id" validate:"required"`
	Pickup           string   `json:"pickup" validate:"required"`
	Dropoff          string   `json:"dropoff" validate:"required"`
	RatePerDay       *float64 `json:"rate_per_day" validate:"omitempty,gte=0"`
	WithDriver       bool     `json:"with_driver"`
	DriverRatePerDay *float64 `json:"driver_rate_per_day" validate:"omitempty,gte=0"`
	DeliveryFee      float64  `json:"delivery_fee" validate:"gte=0"`
	Deposit          float64  `json:"deposit" validate:"gte=0"`
}

// CreateBookingRequest creates a reservation.
type CreateBookingRequest struct {
	QuoteRequest
	CustomerID string `json:"customer_id" validate:"required"`
	Notes      string `json:"notes"`
}

// ConflictSummary identifies a booking that blocks a proposed schedule.
type ConflictSummary struct {
	ID      string              `json:"id"`
	Status  store.BookingStatus `json:"status"`
	Pickup  time.Time           `json:"pickup"`
	Dropoff time.Time           `json:"dropoff"`
}

// QuoteResponse is the priced preview shown before saving a booking.
type QuoteResponse struct {
	Quote
	Conflicts []ConflictSummary `json:"conflicts"`
}

// ListFilters narrow the bookings list.
type ListFilters struct {
	Query     string
	VehicleID string
	Status    string
}

func summarizeConflicts(conflicts []store.Booking) []ConflictSummary {
	out := make([]ConflictSummary, 0, len(conflicts))
	for _, b := range conflicts {
		out = append(out, ConflictSummary{
			ID:      b.ID,
			Status:  b.Status,
			Pickup:  b.Pickup,
			Dropoff: b.Dropoff,
		})
	}
	return out
}
