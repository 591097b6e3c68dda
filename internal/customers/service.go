package customers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/carxpresspanabo/carxpress-rental/pkg/validation"
	"go.uber.org/zap"
)

// Service handles customer business logic
type Service struct {
	repo *store.Repository
}

// NewService creates a new customer service
func NewService(repo *store.Repository) *Service {
	return &Service{repo: repo}
}

// AddCustomer registers a customer, generating a sequential CUS-NNNN
// ID when the request carries none.
func (s *Service) AddCustomer(ctx context.Context, req *CreateCustomerRequest) (*store.Customer, error) {
	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, common.NewValidationError(ve.Errors)
		}
		return nil, common.NewBadRequestError("invalid request", err)
	}

	c := store.Customer{
		ID:     strings.TrimSpace(req.ID),
		Name:   strings.TrimSpace(req.Name),
		Phone:  strings.TrimSpace(req.Phone),
		Email:  strings.TrimSpace(req.Email),
		IDType: strings.TrimSpace(req.IDType),
		IDNo:   strings.TrimSpace(req.IDNo),
	}
	if c.ID == "" {
		c.ID = s.nextID()
	}

	if err := s.repo.AddCustomer(ctx, c); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return nil, common.NewConflictError("a customer with this ID already exists")
		}
		logger.WithContext(ctx).Error("failed to save customer", zap.String("customer_id", c.ID), zap.Error(err))
		return nil, common.NewInternalServerError("failed to save customer")
	}

	logger.WithContext(ctx).Info("customer added", zap.String("customer_id", c.ID))
	return &c, nil
}

// UpdateCustomer patches an existing customer.
func (s *Service) UpdateCustomer(ctx context.Context, id string, req *UpdateCustomerRequest) (*store.Customer, error) {
	if _, ok := s.repo.FindCustomer(id); !ok {
		return nil, common.NewNotFoundError("customer not found", nil)
	}

	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, common.NewValidationError(ve.Errors)
		}
		return nil, common.NewBadRequestError("invalid request", err)
	}

	patch := store.CustomerPatch{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		IDType: req.IDType,
		IDNo:   req.IDNo,
	}
	if err := s.repo.UpdateCustomer(ctx, id, patch); err != nil {
		logger.WithContext(ctx).Error("failed to update customer", zap.String("customer_id", id), zap.Error(err))
		return nil, common.NewInternalServerError("failed to update customer")
	}

	c, _ := s.repo.FindCustomer(id)
	return &c, nil
}

// GetCustomer returns one customer by ID.
func (s *Service) GetCustomer(id string) (*store.Customer, error) {
	c, ok := s.repo.FindCustomer(id)
	if !ok {
		return nil, common.NewNotFoundError("customer not found", nil)
	}
	return &c, nil
}

// ListCustomers returns customers matching the free-text query.
func (s *Service) ListCustomers(query string) []store.Customer {
	q := strings.ToLower(query)

	out := []store.Customer{}
	for _, c := range s.repo.Customers() {
		if q != "" && !matchesQuery(&c, q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// nextID picks one past the highest existing CUS-NNNN suffix, so IDs
// stay unique even after manual entries.
func (s *Service) nextID() string {
	max := 0
	for _, c := range s.repo.Customers() {
		suffix, ok := strings.CutPrefix(c.ID, "CUS-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("CUS-%04d", max+1)
}

func matchesQuery(c *store.Customer, q string) bool {
	for _, field := range []string{c.ID, c.Name, c.Phone, c.Email, c.IDNo} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
