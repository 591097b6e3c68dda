// Package store holds the rental records and their persistence: a single
// snapshot of vehicles, customers, bookings, and settings, replaced
// wholesale on every mutation.
package store

import (
	"time"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
)

// VehicleStatus is the operator-set availability of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable      VehicleStatus = "Available"
	VehicleWithDriverOnly VehicleStatus = "With Driver Only"
	VehicleMaintenance    VehicleStatus = "Maintenance"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingReserved  BookingStatus = "Reserved"
	BookingOngoing   BookingStatus = "Ongoing"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// IsActive reports whether the booking counts against vehicle
// availability (Reserved or Ongoing).
func (s BookingStatus) IsActive() bool {
	return s == BookingReserved || s == BookingOngoing
}

// Vehicle is a fleet unit. The ID is immutable once assigned.
type Vehicle struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Make       string        `json:"make"`
	Model      string        `json:"model"`
	Year       int           `json:"year"`
	Plate      string        `json:"plate"`
	Trans      string        `json:"trans"`
	Seats      int           `json:"seats"`
	RatePerDay money.Cents   `json:"rate_per_day"`
	Status     VehicleStatus `json:"status"`
}

// Customer is a renter record. The ID is immutable once assigned.
type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	IDType string `json:"id_type"`
	IDNo   string `json:"id_no"`
}

// Booking is a rental reservation. The vehicle plate and customer
// contact fields are billing-record snapshots frozen at booking time;
// they do not follow later edits to the Vehicle or Customer.
type Booking struct {
	ID               string        `json:"id"`
	Status           BookingStatus `json:"status"`
	VehicleID        string        `json:"vehicle_id"`
	VehiclePlate     string        `json:"vehicle_plate"`
	CustomerID       string        `json:"customer_id"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    string        `json:"customer_phone"`
	CustomerEmail    string        `json:"customer_email,omitempty"`
	Pickup           time.Time     `json:"pickup"`
	Dropoff          time.Time     `json:"dropoff"`
	Days             int           `json:"days"`
	RatePerDay       money.Cents   `json:"rate_per_day"`
	WithDriver       bool          `json:"with_driver"`
	DriverRatePerDay money.Cents   `json:"driver_rate_per_day"`
	DeliveryFee      money.Cents   `json:"delivery_fee"`
	Deposit          money.Cents   `json:"deposit"`
	Total            money.Cents   `json:"total"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// Settings are operator-tunable defaults and the company profile printed
// on receipts.
type Settings struct {
	DriverRatePerDay money.Cents `json:"driver_rate_per_day"`
	CompanyName      string      `json:"company_name,omitempty"`
	CompanyAddress   string      `json:"company_address,omitempty"`
	CompanyPhone     string      `json:"company_phone,omitempty"`
}

// Snapshot is the entire persisted state. It is written as one JSON
// object; there is no finer-grained persistence unit.
type Snapshot struct {
	Vehicles  []Vehicle  `json:"vehicles"`
	Customers []Customer `json:"customers"`
	Bookings  []Booking  `json:"bookings"`
	Settings  Settings   `json:"settings"`
}

// NewSnapshot returns an empty snapshot carrying the given settings.
func NewSnapshot(settings Settings) *Snapshot {
	return &Snapshot{
		Vehicles:  []Vehicle{},
		Customers: []Customer{},
		Bookings:  []Booking{},
		Settings:  settings,
	}
}

// Clone deep-copies the snapshot. All record types are plain values, so
// copying the slices is sufficient.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Vehicles:  make([]Vehicle, len(s.Vehicles)),
		Customers: make([]Customer, len(s.Customers)),
		Bookings:  make([]Booking, len(s.Bookings)),
		Settings:  s.Settings,
	}
	copy(c.Vehicles, s.Vehicles)
	copy(c.Customers, s.Customers)
	copy(c.Bookings, s.Bookings)
	return c
}
