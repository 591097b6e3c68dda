package fleet

import (
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
)

// CreateVehicleRequest adds a fleet unit. Money fields are whole pesos.
type CreateVehicleRequest struct {
	ID         string  `json:"id" validate:"required"`
	Type       string  `json:"type" validate:"required,oneof=Hatchback Sedan MPV Pickup Van"`
	Make       string  `json:"make" validate:"required"`
	Model      string  `json:"model" validate:"required"`
	Year       int     `json:"year" validate:"required,gte=1980,lte=2100"`
	Plate      string  `json:"plate" validate:"required"`
	Trans      string  `json:"trans" validate:"required,transmission"`
	Seats      int     `json:"seats" validate:"required,gte=1,lte=30"`
	RatePerDay float64 `json:"rate_per_day" validate:"gte=0"`
	Status     string  `json:"status" validate:"omitempty,vehicle_status"`
}

// UpdateVehicleRequest patches a fleet unit. The ID cannot change.
type UpdateVehicleRequest struct {
	Type       *string  `json:"type" validate:"omitempty,oneof=Hatchback Sedan MPV Pickup Van"`
	Make       *string  `json:"make"`
	Model      *string  `json:"model"`
	Year       *int     `json:"year" validate:"omitempty,gte=1980,lte=2100"`
	Plate      *string  `json:"plate"`
	Trans      *string  `json:"trans" validate:"omitempty,transmission"`
	Seats      *int     `json:"seats" validate:"omitempty,gte=1,lte=30"`
	RatePerDay *float64 `json:"rate_per_day" validate:"omitempty,gte=0"`
	Status     *string  `json:"status" validate:"omitempty,vehicle_status"`
}

// VehicleView is a vehicle plus its live schedule occupancy.
type VehicleView struct {
	store.Vehicle
	Busy bool `json:"busy"`
}
