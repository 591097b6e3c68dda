package overview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carxpresspanabo/carxpress-rental/internal/booking"
	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Repository) {
	t.Helper()
	repo := store.Open(context.Background(), store.NewMemStore(), store.Settings{
		DriverRatePerDay: money.FromPesos(800),
	})
	return NewService(repo, booking.NewService(repo)), repo
}

func addVehicle(t *testing.T, repo *store.Repository, id, plate string) {
	t.Helper()
	require.NoError(t, repo.AddVehicle(context.Background(), store.Vehicle{
		ID: id, Plate: plate, Make: "Toyota", Model: "Vios",
		RatePerDay: money.FromPesos(1500), Status: store.VehicleAvailable,
	}))
}

func TestSummarize(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	addVehicle(t, repo, "V1", "ABC 1234")
	addVehicle(t, repo, "V2", "XYZ 9999")
	addVehicle(t, repo, "V3", "DEF 5678")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pickup := now.Add(48 * time.Hour)

	require.NoError(t, repo.AddBooking(ctx, store.Booking{
		ID: "BK-AAAAAA", VehicleID: "V1", Status: store.BookingOngoing,
		Pickup: now.Add(-24 * time.Hour), Dropoff: now.Add(24 * time.Hour),
	}))
	require.NoError(t, repo.AddBooking(ctx, store.Booking{
		ID: "BK-BBBBBB", VehicleID: "V2", Status: store.BookingReserved,
		Pickup: pickup, Dropoff: pickup.Add(48 * time.Hour),
	}))
	require.NoError(t, repo.AddBooking(ctx, store.Booking{
		ID: "BK-CCCCCC", VehicleID: "V3", Status: store.BookingCompleted,
		Pickup: now.Add(-96 * time.Hour), Dropoff: now.Add(-72 * time.Hour),
	}))

	sum := s.Summarize(now)
	require.Equal(t, 3, sum.TotalVehicles)
	require.Equal(t, 1, sum.AvailableUnits) // V1 ongoing, V2 reserved
	require.Equal(t, 2, sum.ActiveBookings)
	require.Len(t, sum.UpcomingPickups, 1)
	require.Equal(t, "BK-BBBBBB", sum.UpcomingPickups[0].ID)
}

func TestSummarize_AvailableFloorsAtZero(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	addVehicle(t, repo, "V1", "ABC 1234")

	// a stale snapshot can hold active bookings for vehicles that have
	// since been removed from the fleet file
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"V1", "GONE-1", "GONE-2"} {
		require.NoError(t, repo.AddBooking(ctx, store.Booking{
			ID: "BK-" + id, VehicleID: id, Status: store.BookingOngoing,
			Pickup: now.Add(-24 * time.Hour), Dropoff: now.Add(24 * time.Hour),
		}))
	}

	sum := s.Summarize(now)
	require.Equal(t, 1, sum.TotalVehicles)
	require.Equal(t, 0, sum.AvailableUnits)
	require.Equal(t, 3, sum.ActiveBookings)
}

func TestSummarize_Empty(t *testing.T) {
	s, _ := newTestService(t)

	sum := s.Summarize(time.Now())
	require.Zero(t, sum.TotalVehicles)
	require.Zero(t, sum.AvailableUnits)
	require.Zero(t, sum.ActiveBookings)
	require.NotNil(t, sum.UpcomingPickups)
	require.Empty(t, sum.UpcomingPickups)
}
