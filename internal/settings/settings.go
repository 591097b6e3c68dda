// Package settings exposes the operator-tunable defaults and the
// company profile printed on receipts.
package settings

import (
	"context"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/carxpresspanabo/carxpress-rental/pkg/validation"
	"go.uber.org/zap"
)

// UpdateSettingsRequest replaces the settings object wholesale.
type UpdateSettingsRequest struct {
	DriverRatePerDay float64 `json:"driver_rate_per_day" validate:"gte=0"`
	CompanyName      string  `json:"company_name" validate:"omitempty,max=120"`
	CompanyAddress   string  `json:"company_address" validate:"omitempty,max=240"`
	CompanyPhone     string  `json:"company_phone" validate:"omitempty,max=40"`
}

// Service handles settings reads and updates.
type Service struct {
	repo *store.Repository
}

// NewService creates a new settings service
func NewService(repo *store.Repository) *Service {
	return &Service{repo: repo}
}

// GetSettings returns the current settings object.
func (s *Service) GetSettings() store.Settings {
	return s.repo.Settings()
}

// UpdateSettings replaces the settings object.
func (s *Service) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*store.Settings, error) {
	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, common.NewValidationError(ve.Errors)
		}
		return nil, common.NewBadRequestError("invalid request", err)
	}

	next := store.Settings{
		DriverRatePerDay: money.FromPesos(req.DriverRatePerDay),
		CompanyName:      req.CompanyName,
		CompanyAddress:   req.CompanyAddress,
		CompanyPhone:     req.CompanyPhone,
	}
	if err := s.repo.UpdateSettings(ctx, next); err != nil {
		logger.WithContext(ctx).Error("failed to update settings", zap.Error(err))
		return nil, common.NewInternalServerError("failed to update settings")
	}
	return &next, nil
}
