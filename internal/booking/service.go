package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/internal/timeutil"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/carxpresspanabo/carxpress-rental/pkg/validation"
	"go.uber.org/zap"
)

// Service handles booking business logic
type Service struct {
	repo *store.Repository
}

// NewService creates a new booking service
func NewService(repo *store.Repository) *Service {
	return &Service{repo: repo}
}

// resolved is a quote request with timestamps parsed, defaults applied,
// and referenced records loaded.
type resolved struct {
	vehicle store.Vehicle
	pickup  time.Time
	dropoff time.Time
	params  QuoteParams
}

// resolve validates a quote request and fills in defaulted rates. All
// field problems are collected into one validation error rather than
// failing on the first.
func (s *Service) resolve(req *QuoteRequest) (*resolved, error) {
	verr := &validation.ValidationError{Errors: map[string]string{}}
	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			verr = ve
		} else {
			return nil, common.NewBadRequestError("invalid request", err)
		}
	}

	var pickup, dropoff *time.Time
	if req.Pickup != "" {
		if pickup = timeutil.ParseTimestamp(req.Pickup); pickup == nil {
			verr.AddError("pickup", "pickup must be a valid date-time")
		}
	}
	if req.Dropoff != "" {
		if dropoff = timeutil.ParseTimestamp(req.Dropoff); dropoff == nil {
			verr.AddError("dropoff", "dropoff must be a valid date-time")
		}
	}

	var vehicle store.Vehicle
	if req.VehicleID != "" {
		var ok bool
		if vehicle, ok = s.repo.FindVehicle(req.VehicleID); !ok {
			verr.AddError("vehicle_id", "vehicle not found")
		}
	}

	if verr.HasErrors() {
		return nil, common.NewValidationError(verr.Errors)
	}

	rate := vehicle.RatePerDay
	if req.RatePerDay != nil {
		rate = money.FromPesos(*req.RatePerDay)
	}

	driverRate := s.repo.Settings().DriverRatePerDay
	if req.DriverRatePerDay != nil {
		driverRate = money.FromPesos(*req.DriverRatePerDay)
	}

	return &resolved{
		vehicle: vehicle,
		pickup:  *pickup,
		dropoff: *dropoff,
		params: QuoteParams{
			RatePerDay:       rate,
			Days:             timeutil.DaysBetween(*pickup, *dropoff),
			WithDriver:       req.WithDriver,
			DriverRatePerDay: driverRate,
			DeliveryFee:      money.FromPesos(req.DeliveryFee),
			Deposit:          money.FromPesos(req.Deposit),
		},
	}, nil
}

// GetQuote prices a proposed rental and reports schedule conflicts
// without mutating any state.
func (s *Service) GetQuote(req *QuoteRequest) (*QuoteResponse, error) {
	res, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	conflicts := FindConflicts(res.vehicle.ID, res.pickup, res.dropoff, s.repo.Bookings())
	return &QuoteResponse{
		Quote:     ComputeQuote(res.params),
		Conflicts: summarizeConflicts(conflicts),
	}, nil
}

// CreateBooking validates the request, rejects conflicting schedules,
// and stores a Reserved booking with the vehicle and customer details
// frozen onto it.
func (s *Service) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*store.Booking, error) {
	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, common.NewValidationError(ve.Errors)
		}
		return nil, common.NewBadRequestError("invalid request", err)
	}

	res, err := s.resolve(&req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	customer, ok := s.repo.FindCustomer(req.CustomerID)
	if !ok {
		return nil, common.NewValidationError(map[string]string{
			"customer_id": "customer not found",
		})
	}

	if conflicts := FindConflicts(res.vehicle.ID, res.pickup, res.dropoff, s.repo.Bookings()); len(conflicts) > 0 {
		ids := make([]string, len(conflicts))
		for i, c := range conflicts {
			ids[i] = c.ID
		}
		return nil, common.NewConflictError("schedule conflicts with an existing booking", ids...)
	}

	quote := ComputeQuote(res.params)

	b := store.Booking{
		ID:               generateBookingID(),
		Status:           store.BookingReserved,
		VehicleID:        res.vehicle.ID,
		VehiclePlate:     res.vehicle.Plate,
		CustomerID:       customer.ID,
		CustomerName:     customer.Name,
		CustomerPhone:    customer.Phone,
		CustomerEmail:    customer.Email,
		Pickup:           res.pickup,
		Dropoff:          res.dropoff,
		Days:             quote.Days,
		RatePerDay:       res.params.RatePerDay,
		WithDriver:       res.params.WithDriver,
		DriverRatePerDay: res.params.DriverRatePerDay,
		DeliveryFee:      res.params.DeliveryFee,
		Deposit:          res.params.Deposit,
		Total:            quote.Total,
		Notes:            req.Notes,
		CreatedAt:        time.Now(),
	}

	if err := s.repo.AddBooking(ctx, b); err != nil {
		logger.WithContext(ctx).Error("failed to save booking",
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
		return nil, common.NewInternalServerError("failed to save booking")
	}

	logger.WithContext(ctx).Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("vehicle_id", b.VehicleID),
		zap.String("customer_id", b.CustomerID),
		zap.Int("days", b.Days),
	)

	return &b, nil
}

// GetBooking returns a booking by ID.
func (s *Service) GetBooking(id string) (*store.Booking, error) {
	b, ok := s.repo.FindBooking(id)
	if !ok {
		return nil, common.NewNotFoundError("booking not found", nil)
	}
	return &b, nil
}

// AdvanceBooking moves a booking one step along
// Reserved → Ongoing → Completed.
func (s *Service) AdvanceBooking(ctx context.Context, id string) (*store.Booking, error) {
	b, ok := s.repo.FindBooking(id)
	if !ok {
		return nil, common.NewNotFoundError("booking not found", nil)
	}

	next, err := NextStatus(b.Status)
	if err != nil {
		return nil, common.NewConflictError(err.Error())
	}

	if err := s.repo.UpdateBooking(ctx, id, store.BookingPatch{Status: &next}); err != nil {
		return nil, common.NewInternalServerError("failed to update booking")
	}

	logger.WithContext(ctx).Info("booking advanced",
		zap.String("booking_id", id),
		zap.String("from", string(b.Status)),
		zap.String("to", string(next)),
	)

	b.Status = next
	return &b, nil
}

// CancelBooking moves an active booking to Cancelled.
func (s *Service) CancelBooking(ctx context.Context, id string) (*store.Booking, error) {
	b, ok := s.repo.FindBooking(id)
	if !ok {
		return nil, common.NewNotFoundError("booking not found", nil)
	}

	if !CanCancel(b.Status) {
		return nil, common.NewConflictError(fmt.Sprintf("booking in status %q cannot be cancelled", b.Status))
	}

	cancelled := store.BookingCancelled
	if err := s.repo.UpdateBooking(ctx, id, store.BookingPatch{Status: &cancelled}); err != nil {
		return nil, common.NewInternalServerError("failed to update booking")
	}

	logger.WithContext(ctx).Info("booking cancelled", zap.String("booking_id", id))

	b.Status = cancelled
	return &b, nil
}

// ListBookings filters and paginates bookings, most recent first.
func (s *Service) ListBookings(filters ListFilters, limit, offset int) ([]store.Booking, int64) {
	all := s.repo.Bookings()
	q := strings.ToLower(filters.Query)

	matched := make([]store.Booking, 0, len(all))
	for _, b := range all {
		if filters.VehicleID != "" && b.VehicleID != filters.VehicleID {
			continue
		}
		if filters.Status != "" && string(b.Status) != filters.Status {
			continue
		}
		if q != "" && !matchesQuery(&b, q) {
			continue
		}
		matched = append(matched, b)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []store.Booking{}, total
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total
}

// UpcomingPickups returns the next bookings picking up today or later,
// soonest first.
func (s *Service) UpcomingPickups(now time.Time, limit int) []store.Booking {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var upcoming []store.Booking
	for _, b := range s.repo.Bookings() {
		if !b.Pickup.Before(startOfDay) {
			upcoming = append(upcoming, b)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Pickup.Before(upcoming[j].Pickup)
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	if upcoming == nil {
		upcoming = []store.Booking{}
	}
	return upcoming
}

func matchesQuery(b *store.Booking, q string) bool {
	for _, field := range []string{
		b.ID, b.VehicleID, b.VehiclePlate,
		b.CustomerName, b.CustomerPhone, b.CustomerEmail,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// bookingIDChars excludes easily confused characters.
const bookingIDChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateBookingID() string {
	id := make([]byte, 6)
	for i := range id {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(bookingIDChars))))
		id[i] = bookingIDChars[n.Int64()]
	}
	return fmt.Sprintf("BK-%s", string(id))
}
