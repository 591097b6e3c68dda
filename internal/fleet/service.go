package fleet

import (
	"context"
	"errors"
	"strings"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/carxpresspanabo/carxpress-rental/pkg/validation"
	"go.uber.org/zap"
)

// Service handles fleet business logic
type Service struct {
	repo *store.Repository
}

// NewService creates a new fleet service
func NewService(repo *store.Repository) *Service {
	return &Service{repo: repo}
}

// AddVehicle registers a new fleet unit. IDs and plates are unique; a
// clash is a conflict, not a validation problem.
func (s *Service) AddVehicle(ctx context.Context, req *CreateVehicleRequest) (*store.Vehicle, error) {
	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, common.NewValidationError(ve.Errors)
		}
		return nil, common.NewBadRequestError("invalid request", err)
	}

	status := store.VehicleStatus(req.Status)
	if status == "" {
		status = store.VehicleAvailable
	}

	v := store.Vehicle{
		ID:         req.ID,
		Type:       req.Type,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Plate:      req.Plate,
		Trans:      req.Trans,
		Seats:      req.Seats,
		RatePerDay: money.FromPesos(req.RatePerDay),
		Status:     status,
	}

	if err := s.repo.AddVehicle(ctx, v); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateID):
			return nil, common.NewConflictError("a vehicle with this ID already exists")
		case errors.Is(err, store.ErrDuplicatePlate):
			return nil, common.NewConflictError("a vehicle with this plate already exists")
		default:
			logger.WithContext(ctx).Error("failed to save vehicle", zap.String("vehicle_id", v.ID), zap.Error(err))
			return nil, common.NewInternalServerError("failed to save vehicle")
		}
	}

	logger.WithContext(ctx).Info("vehicle added", zap.String("vehicle_id", v.ID), zap.String("plate", v.Plate))
	return &v, nil
}

// UpdateVehicle patches an existing vehicle.
func (s *Service) UpdateVehicle(ctx context.Context, id string, req *UpdateVehicleRequest) (*store.Vehicle, error) {
	if _, ok := s.repo.FindVehicle(id); !ok {
		return nil, common.NewNotFoundError("vehicle not found", nil)
	}

	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, common.NewValidationError(ve.Errors)
		}
		return nil, common.NewBadRequestError("invalid request", err)
	}

	patch := store.VehiclePatch{
		Type:  req.Type,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
		Plate: req.Plate,
		Trans: req.Trans,
		Seats: req.Seats,
	}
	if req.RatePerDay != nil {
		rate := money.FromPesos(*req.RatePerDay)
		patch.RatePerDay = &rate
	}
	if req.Status != nil {
		status := store.VehicleStatus(*req.Status)
		patch.Status = &status
	}

	if err := s.repo.UpdateVehicle(ctx, id, patch); err != nil {
		logger.WithContext(ctx).Error("failed to update vehicle", zap.String("vehicle_id", id), zap.Error(err))
		return nil, common.NewInternalServerError("failed to update vehicle")
	}

	v, _ := s.repo.FindVehicle(id)
	return &v, nil
}

// GetVehicle returns a vehicle with its occupancy flag.
func (s *Service) GetVehicle(id string) (*VehicleView, error) {
	v, ok := s.repo.FindVehicle(id)
	if !ok {
		return nil, common.NewNotFoundError("vehicle not found", nil)
	}
	view := VehicleView{Vehicle: v, Busy: s.busy(v.ID)}
	return &view, nil
}

// ListVehicles returns vehicles matching the free-text query.
func (s *Service) ListVehicles(query string) []VehicleView {
	q := strings.ToLower(query)

	views := []VehicleView{}
	for _, v := range s.repo.Vehicles() {
		if q != "" && !matchesQuery(&v, q) {
			continue
		}
		views = append(views, VehicleView{Vehicle: v, Busy: s.busy(v.ID)})
	}
	return views
}

// busy reports whether the vehicle has an active booking.
func (s *Service) busy(vehicleID string) bool {
	for _, b := range s.repo.Bookings() {
		if b.VehicleID == vehicleID && b.Status.IsActive() {
			return true
		}
	}
	return false
}

func matchesQuery(v *store.Vehicle, q string) bool {
	for _, field := range []string{v.ID, v.Make, v.Model, v.Plate, v.Type} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
