// Package overview answers the dashboard question: how big is the
// fleet, how much of it is free right now, and who is picking up next.
package overview

import (
	"time"

	"github.com/carxpresspanabo/carxpress-rental/internal/booking"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
)

const upcomingLimit = 5

// Summary is the dashboard payload.
type Summary struct {
	TotalVehicles   int             `json:"total_vehicles"`
	AvailableUnits  int             `json:"available_units"`
	ActiveBookings  int             `json:"active_bookings"`
	UpcomingPickups []store.Booking `json:"upcoming_pickups"`
}

// Service computes the dashboard summary.
type Service struct {
	repo     *store.Repository
	bookings *booking.Service
}

// NewService creates a new overview service
func NewService(repo *store.Repository, bookings *booking.Service) *Service {
	return &Service{repo: repo, bookings: bookings}
}

// Summarize builds the dashboard counts as of now. A vehicle with any
// active booking counts as occupied regardless of its status field.
func (s *Service) Summarize(now time.Time) Summary {
	occupied := map[string]bool{}
	active := 0
	for _, b := range s.repo.Bookings() {
		if b.Status.IsActive() {
			occupied[b.VehicleID] = true
			active++
		}
	}

	total := len(s.repo.Vehicles())
	available := total - len(occupied)
	if available < 0 {
		available = 0
	}

	upcoming := s.bookings.UpcomingPickups(now, upcomingLimit)
	if upcoming == nil {
		upcoming = []store.Booking{}
	}

	return Summary{
		TotalVehicles:   total,
		AvailableUnits:  available,
		ActiveBookings:  active,
		UpcomingPickups: upcoming,
	}
}
