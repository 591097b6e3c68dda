package store

import (
	"context"
	"errors"
	"sync"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateID is returned when an added record reuses an ID.
	ErrDuplicateID = errors.New("record ID already exists")
	// ErrDuplicatePlate is returned when an added vehicle reuses a plate.
	ErrDuplicatePlate = errors.New("vehicle plate already exists")
)

// Repository owns the in-memory snapshot and serializes every mutation
// behind one mutex. Each mutation is applied to a copy, committed through
// the Persister, and only then made visible, so a failed commit leaves
// the prior state untouched.
type Repository struct {
	mu        sync.RWMutex
	snap      *Snapshot
	persister Persister
}

// Open loads the persisted snapshot, falling back to an empty snapshot
// with the given default settings when nothing is persisted or the
// persisted data cannot be parsed.
func Open(ctx context.Context, p Persister, defaults Settings) *Repository {
	snap, err := p.Load(ctx)
	if err != nil {
		logger.Warn("snapshot unreadable, starting from empty state", zap.Error(err))
		snap = nil
	}
	if snap == nil {
		snap = NewSnapshot(defaults)
	}
	if snap.Settings.DriverRatePerDay == 0 {
		snap.Settings.DriverRatePerDay = defaults.DriverRatePerDay
	}
	normalize(snap)
	return &Repository{snap: snap, persister: p}
}

// normalize replaces nil record slices so JSON output is always arrays.
func normalize(s *Snapshot) {
	if s.Vehicles == nil {
		s.Vehicles = []Vehicle{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.Bookings == nil {
		s.Bookings = []Booking{}
	}
}

// mutate applies fn to a copy of the snapshot, commits the copy, and
// swaps it in on success. On commit failure the visible state is the
// unchanged prior snapshot.
func (r *Repository) mutate(ctx context.Context, fn func(*Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snap.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := r.persister.Commit(ctx, next); err != nil {
		return err
	}
	r.snap = next
	return nil
}

// Vehicles returns a copy of all vehicles.
func (r *Repository) Vehicles() []Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Vehicle, len(r.snap.Vehicles))
	copy(out, r.snap.Vehicles)
	return out
}

// Customers returns a copy of all customers.
func (r *Repository) Customers() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Customer, len(r.snap.Customers))
	copy(out, r.snap.Customers)
	return out
}

// Bookings returns a copy of all bookings, most recent first.
func (r *Repository) Bookings() []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Booking, len(r.snap.Bookings))
	copy(out, r.snap.Bookings)
	return out
}

// Settings returns the current settings.
func (r *Repository) Settings() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap.Settings
}

// FindVehicle looks a vehicle up by ID.
func (r *Repository) FindVehicle(id string) (Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.snap.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// FindCustomer looks a customer up by ID.
func (r *Repository) FindCustomer(id string) (Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.snap.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// FindBooking looks a booking up by ID.
func (r *Repository) FindBooking(id string) (Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.snap.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}

// AddVehicle appends a vehicle, enforcing ID and plate uniqueness.
func (r *Repository) AddVehicle(ctx context.Context, v Vehicle) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		for _, existing := range s.Vehicles {
			if existing.ID == v.ID {
				return ErrDuplicateID
			}
			if existing.Plate == v.Plate {
				return ErrDuplicatePlate
			}
		}
		s.Vehicles = append(s.Vehicles, v)
		return nil
	})
}

// VehiclePatch carries optional vehicle field updates. The ID is
// immutable and deliberately absent.
type VehiclePatch struct {
	Type       *string        `json:"type,omitempty"`
	Make       *string        `json:"make,omitempty"`
	Model      *string        `json:"model,omitempty"`
	Year       *int           `json:"year,omitempty"`
	Plate      *string        `json:"plate,omitempty"`
	Trans      *string        `json:"trans,omitempty"`
	Seats      *int           `json:"seats,omitempty"`
	RatePerDay *money.Cents   `json:"rate_per_day,omitempty"`
	Status     *VehicleStatus `json:"status,omitempty"`
}

// UpdateVehicle patches a vehicle in place. Unknown IDs are a silent
// no-op per the store contract.
func (r *Repository) UpdateVehicle(ctx context.Context, id string, patch VehiclePatch) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		for i := range s.Vehicles {
			if s.Vehicles[i].ID != id {
				continue
			}
			v := &s.Vehicles[i]
			if patch.Type != nil {
				v.Type = *patch.Type
			}
			if patch.Make != nil {
				v.Make = *patch.Make
			}
			if patch.Model != nil {
				v.Model = *patch.Model
			}
			if patch.Year != nil {
				v.Year = *patch.Year
			}
			if patch.Plate != nil {
				v.Plate = *patch.Plate
			}
			if patch.Trans != nil {
				v.Trans = *patch.Trans
			}
			if patch.Seats != nil {
				v.Seats = *patch.Seats
			}
			if patch.RatePerDay != nil {
				v.RatePerDay = *patch.RatePerDay
			}
			if patch.Status != nil {
				v.Status = *patch.Status
			}
			return nil
		}
		return nil
	})
}

// AddCustomer appends a customer, enforcing ID uniqueness.
func (r *Repository) AddCustomer(ctx context.Context, c Customer) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		for _, existing := range s.Customers {
			if existing.ID == c.ID {
				return ErrDuplicateID
			}
		}
		s.Customers = append(s.Customers, c)
		return nil
	})
}

// CustomerPatch carries optional customer field updates.
type CustomerPatch struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	IDType *string `json:"id_type,omitempty"`
	IDNo   *string `json:"id_no,omitempty"`
}

// UpdateCustomer patches a customer in place; unknown IDs are a no-op.
func (r *Repository) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		for i := range s.Customers {
			if s.Customers[i].ID != id {
				continue
			}
			c := &s.Customers[i]
			if patch.Name != nil {
				c.Name = *patch.Name
			}
			if patch.Phone != nil {
				c.Phone = *patch.Phone
			}
			if patch.Email != nil {
				c.Email = *patch.Email
			}
			if patch.IDType != nil {
				c.IDType = *patch.IDType
			}
			if patch.IDNo != nil {
				c.IDNo = *patch.IDNo
			}
			return nil
		}
		return nil
	})
}

// AddBooking prepends a booking so the list stays most-recent-first.
func (r *Repository) AddBooking(ctx context.Context, b Booking) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		for _, existing := range s.Bookings {
			if existing.ID == b.ID {
				return ErrDuplicateID
			}
		}
		s.Bookings = append([]Booking{b}, s.Bookings...)
		return nil
	})
}

// BookingPatch carries optional booking field updates. Pricing and
// snapshot fields are frozen at creation and not patchable.
type BookingPatch struct {
	Status *BookingStatus `json:"status,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
}

// UpdateBooking patches a booking in place; unknown IDs are a no-op.
func (r *Repository) UpdateBooking(ctx context.Context, id string, patch BookingPatch) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		for i := range s.Bookings {
			if s.Bookings[i].ID != id {
				continue
			}
			b := &s.Bookings[i]
			if patch.Status != nil {
				b.Status = *patch.Status
			}
			if patch.Notes != nil {
				b.Notes = *patch.Notes
			}
			return nil
		}
		return nil
	})
}

// UpdateSettings replaces the settings object.
func (r *Repository) UpdateSettings(ctx context.Context, settings Settings) error {
	return r.mutate(ctx, func(s *Snapshot) error {
		s.Settings = settings
		return nil
	})
}
