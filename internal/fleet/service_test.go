package fleet

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := store.Open(context.Background(), store.NewMemStore(), store.Settings{})
	return NewService(repo)
}

func validVehicleRequest() *CreateVehicleRequest {
	return &CreateVehicleRequest{
		ID:         "V1",
		Type:       "Sedan",
		Make:       "Toyota",
		Model:      "Vios",
		Year:       2022,
		Plate:      "ABC 1234",
		Trans:      "AT",
		Seats:      5,
		RatePerDay: 1500,
	}
}

func TestAddVehicle(t *testing.T) {
	s := newTestService(t)

	v, err := s.AddVehicle(context.Background(), validVehicleRequest())
	require.NoError(t, err)
	require.Equal(t, money.FromPesos(1500), v.RatePerDay)
	// status defaults to Available when omitted
	require.Equal(t, store.VehicleAvailable, v.Status)
}

func TestAddVehicle_Validation(t *testing.T) {
	s := newTestService(t)

	req := validVehicleRequest()
	req.Trans = "CVT"
	req.Year = 1900

	_, err := s.AddVehicle(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Contains(t, appErr.Fields, "trans")
	require.Contains(t, appErr.Fields, "year")
}

func TestAddVehicle_DuplicatePlateConflicts(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, validVehicleRequest())
	require.NoError(t, err)

	req := validVehicleRequest()
	req.ID = "V2"
	_, err = s.AddVehicle(ctx, req)
	require.Error(t, err)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, appErr.Status)
}

func TestUpdateVehicle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, validVehicleRequest())
	require.NoError(t, err)

	rate := 1800.0
	status := "Maintenance"
	v, err := s.UpdateVehicle(ctx, "V1", &UpdateVehicleRequest{RatePerDay: &rate, Status: &status})
	require.NoError(t, err)
	require.Equal(t, money.FromPesos(1800), v.RatePerDay)
	require.Equal(t, store.VehicleMaintenance, v.Status)
	require.Equal(t, "Toyota", v.Make)

	_, err = s.UpdateVehicle(ctx, "NOPE", &UpdateVehicleRequest{RatePerDay: &rate})
	require.Error(t, err)
	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestListVehicles_BusyFlag(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, validVehicleRequest())
	require.NoError(t, err)

	req := validVehicleRequest()
	req.ID = "V2"
	req.Plate = "XYZ 9999"
	_, err = s.AddVehicle(ctx, req)
	require.NoError(t, err)

	pickup := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.repo.AddBooking(ctx, store.Booking{
		ID: "BK-AAAAAA", VehicleID: "V1", Status: store.BookingOngoing,
		Pickup: pickup, Dropoff: pickup.Add(72 * time.Hour),
	}))
	require.NoError(t, s.repo.AddBooking(ctx, store.Booking{
		ID: "BK-BBBBBB", VehicleID: "V2", Status: store.BookingCompleted,
		Pickup: pickup, Dropoff: pickup.Add(24 * time.Hour),
	}))

	views := s.ListVehicles("")
	require.Len(t, views, 2)

	byID := map[string]VehicleView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	require.True(t, byID["V1"].Busy)
	// completed bookings do not occupy the vehicle
	require.False(t, byID["V2"].Busy)
}

func TestListVehicles_Search(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, validVehicleRequest())
	require.NoError(t, err)

	require.Len(t, s.ListVehicles("vios"), 1)
	require.Len(t, s.ListVehicles("ABC"), 1)
	require.Empty(t, s.ListVehicles("fortuner"))
}
