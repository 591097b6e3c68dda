package booking

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	ctx := context.Background()
	repo := store.Open(ctx, store.NewMemStore(), store.Settings{
		DriverRatePerDay: money.FromPesos(800),
	})

	require.NoError(t, repo.AddVehicle(ctx, store.Vehicle{
		ID:         "V1",
		Type:       "Sedan",
		Make:       "Toyota",
		Model:      "Vios",
		Year:       2022,
		Plate:      "ABC 1234",
		Trans:      "AT",
		Seats:      5,
		RatePerDay: money.FromPesos(1500),
		Status:     store.VehicleAvailable,
	}))
	require.NoError(t, repo.AddCustomer(ctx, store.Customer{
		ID:    "CUS-0001",
		Name:  "Maria Santos",
		Phone: "0917 000 0001",
		Email: "maria@example.com",
	}))

	return NewService(repo)
}

func validRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		QuoteRequest: QuoteRequest{
			VehicleID:   "V1",
			Pickup:      "2026-03-01T09:00",
			Dropoff:     "2026-03-04T09:00",
			WithDriver:  true,
			DeliveryFee: 200,
			Deposit:     500,
		},
		CustomerID: "CUS-0001",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	s := newTestService(t)

	b, err := s.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^BK-[A-HJ-NP-Z2-9]{6}$`), b.ID)
	require.Equal(t, store.BookingReserved, b.Status)
	require.Equal(t, 3, b.Days)
	require.Equal(t, money.FromPesos(1500), b.RatePerDay)
	require.Equal(t, money.FromPesos(800), b.DriverRatePerDay)
	require.Equal(t, money.FromPesos(6600), b.Total)

	// billing record fields frozen from the vehicle and customer
	require.Equal(t, "ABC 1234", b.VehiclePlate)
	require.Equal(t, "Maria Santos", b.CustomerName)
	require.Equal(t, "0917 000 0001", b.CustomerPhone)
	require.Equal(t, "maria@example.com", b.CustomerEmail)
}

func TestCreateBooking_FrozenFieldsSurviveEdits(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	newName := "Maria Santos-Reyes"
	require.NoError(t, s.repo.UpdateCustomer(ctx, "CUS-0001", store.CustomerPatch{Name: &newName}))

	got, err := s.GetBooking(b.ID)
	require.NoError(t, err)
	require.Equal(t, "Maria Santos", got.CustomerName)
}

func TestCreateBooking_ValidationErrorsCollected(t *testing.T) {
	s := newTestService(t)

	req := validRequest()
	req.VehicleID = "NOPE"
	req.Pickup = "not a date"

	_, err := s.CreateBooking(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Contains(t, appErr.Fields, "vehicle_id")
	require.Contains(t, appErr.Fields, "pickup")
}

func TestCreateBooking_UnknownCustomer(t *testing.T) {
	s := newTestService(t)

	req := validRequest()
	req.CustomerID = "CUS-9999"

	_, err := s.CreateBooking(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Contains(t, appErr.Fields, "customer_id")
}

func TestCreateBooking_Conflict(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Pickup = "2026-03-02T09:00"
	req.Dropoff = "2026-03-05T09:00"

	_, err = s.CreateBooking(ctx, req)
	require.Error(t, err)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, appErr.Status)
	require.Equal(t, []string{first.ID}, appErr.Conflicts)
}

func TestCreateBooking_BackToBackAllowed(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Pickup = "2026-03-04T09:00"
	req.Dropoff = "2026-03-06T09:00"

	_, err = s.CreateBooking(ctx, req)
	require.NoError(t, err)
}

func TestCreateBooking_PrependsMostRecentFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Pickup = "2026-04-01T09:00"
	req.Dropoff = "2026-04-03T09:00"
	second, err := s.CreateBooking(ctx, req)
	require.NoError(t, err)

	list, total := s.ListBookings(ListFilters{}, 10, 0)
	require.Equal(t, int64(2), total)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestGetQuote_DoesNotMutate(t *testing.T) {
	s := newTestService(t)

	quote, err := s.GetQuote(&validRequest().QuoteRequest)
	require.NoError(t, err)
	require.Equal(t, money.FromPesos(6600), quote.Total)
	require.Empty(t, quote.Conflicts)

	_, total := s.ListBookings(ListFilters{}, 10, 0)
	require.Zero(t, total)
}

func TestGetQuote_ReportsConflictsWithoutRejecting(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	existing, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest().QuoteRequest
	req.Pickup = "2026-03-02T09:00"
	req.Dropoff = "2026-03-05T09:00"

	quote, err := s.GetQuote(&req)
	require.NoError(t, err)
	require.Len(t, quote.Conflicts, 1)
	require.Equal(t, existing.ID, quote.Conflicts[0].ID)
}

func TestAdvanceBooking(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	b, err = s.AdvanceBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, store.BookingOngoing, b.Status)

	b, err = s.AdvanceBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, store.BookingCompleted, b.Status)

	_, err = s.AdvanceBooking(ctx, b.ID)
	require.Error(t, err)
	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, appErr.Status)
}

func TestCancelBooking(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	b, err = s.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, store.BookingCancelled, b.Status)

	// terminal both ways
	_, err = s.CancelBooking(ctx, b.ID)
	require.Error(t, err)
	_, err = s.AdvanceBooking(ctx, b.ID)
	require.Error(t, err)
}

func TestListBookings_Filters(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	list, total := s.ListBookings(ListFilters{Query: "maria"}, 10, 0)
	require.Equal(t, int64(1), total)
	require.Equal(t, b.ID, list[0].ID)

	_, total = s.ListBookings(ListFilters{Query: "nobody"}, 10, 0)
	require.Zero(t, total)

	_, total = s.ListBookings(ListFilters{Status: "Cancelled"}, 10, 0)
	require.Zero(t, total)

	_, total = s.ListBookings(ListFilters{VehicleID: "V1"}, 10, 0)
	require.Equal(t, int64(1), total)
}

func TestUpcomingPickups(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	makeBooking := func(pickup, dropoff string) *store.Booking {
		req := validRequest()
		req.Pickup = pickup
		req.Dropoff = dropoff
		b, err := s.CreateBooking(ctx, req)
		require.NoError(t, err)
		return b
	}

	past := makeBooking("2026-02-01T09:00", "2026-02-02T09:00")
	soon := makeBooking("2026-03-01T09:00", "2026-03-02T09:00")
	later := makeBooking("2026-03-10T09:00", "2026-03-11T09:00")

	now := time.Date(2026, 2, 20, 15, 0, 0, 0, time.UTC)
	upcoming := s.UpcomingPickups(now, 5)
	require.Len(t, upcoming, 2)
	require.Equal(t, soon.ID, upcoming[0].ID)
	require.Equal(t, later.ID, upcoming[1].ID)

	// a pickup earlier today still counts
	sameDay := time.Date(2026, 2, 1, 23, 0, 0, 0, time.UTC)
	upcoming = s.UpcomingPickups(sameDay, 5)
	require.Len(t, upcoming, 3)
	require.Equal(t, past.ID, upcoming[0].ID)

	// limit applies after sorting
	upcoming = s.UpcomingPickups(sameDay, 1)
	require.Len(t, upcoming, 1)
	require.Equal(t, past.ID, upcoming[0].ID)
}
