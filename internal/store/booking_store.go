package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"fleetshare/internal/entities"
	apperrors "fleetshare/internal/errors"
)

// BookingsKey is the state-blob key the booking list lives under.
const BookingsKey = "fleetshare_bookings"

// StateRepository is the durable key-value blob store backing the bookings.
type StateRepository interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// BookingStore owns the canonical booking list: the in-memory slice plus its
// persisted mirror. It is the only shared mutable state in the service.
// Single-writer policy: Append is the one mutating operation, and it updates
// memory and the durable blob as a single step under the lock, so a reader
// never observes an in-memory booking that is not durable.
type BookingStore struct {
	mu       sync.Mutex
	repo     StateRepository
	bookings []entities.Booking
}

func NewBookingStore(repo StateRepository) *BookingStore {
	return &BookingStore{repo: repo}
}

// Load reads the persisted booking list. When no blob exists yet it seeds
// the two demo bookings and persists them. A blob that exists but fails to
// parse is surfaced as a PersistenceError; it is never overwritten with
// seed data, since the raw record may still be recoverable by hand.
func (s *BookingStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.repo.Get(BookingsKey)
	if err != nil {
		return apperrors.NewPersistenceError("load", err)
	}

	if !found {
		seeded := SeedBookings(time.Now())
		data, err := json.Marshal(seeded)
		if err != nil {
			return apperrors.NewPersistenceError("seed", err)
		}
		if err := s.repo.Put(BookingsKey, data); err != nil {
			return apperrors.NewPersistenceError("seed", err)
		}
		s.bookings = seeded
		logrus.Infof("No booking state found, seeded %d demo bookings", len(seeded))
		return nil
	}

	var bookings []entities.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return apperrors.NewPersistenceError("parse", err)
	}
	s.bookings = bookings
	logrus.Infof("Loaded %d bookings from state blob", len(bookings))
	return nil
}

// Append adds one booking and persists the updated list. Memory is only
// updated after the durable write succeeds; on failure the store is
// unchanged and the caller gets a PersistenceError.
func (s *BookingStore) Append(b entities.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]entities.Booking, len(s.bookings), len(s.bookings)+1)
	copy(updated, s.bookings)
	updated = append(updated, b)

	data, err := json.Marshal(updated)
	if err != nil {
		return apperrors.NewPersistenceError("save", err)
	}
	if err := s.repo.Put(BookingsKey, data); err != nil {
		return apperrors.NewPersistenceError("save", err)
	}

	s.bookings = updated
	return nil
}

// Snapshot returns a copy of the current booking list in store order.
// Derivations work on the copy, keeping the engine pure.
func (s *BookingStore) Snapshot() []entities.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entities.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	return snapshot
}

// SeedBookings builds the demo fixtures used on first start: one booking
// today and one two days out, same as the original demo data.
func SeedBookings(now time.Time) []entities.Booking {
	return []entities.Booking{
		{
			ID:          "b1",
			VehicleID:   "v1",
			UserID:      "user1",
			UserName:    "Carlos Silva",
			Destination: "Secretaria de Saúde",
			Date:        now.Format(time.DateOnly),
			Purpose:     "Reunião",
			Passengers:  2,
		},
		{
			ID:          "b2",
			VehicleID:   "v6",
			UserID:      "user2",
			UserName:    "Ana Souza",
			Destination: "Aeroporto",
			Date:        now.AddDate(0, 0, 2).Format(time.DateOnly),
			Purpose:     "Buscar visitante",
			Passengers:  1,
		},
	}
}
