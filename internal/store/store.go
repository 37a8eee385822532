package store

import (
	"sync"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// Store owns the three front-desk collections.  All reads hand out copies
// so that views cannot mutate shared state, and every mutation completes
// before the next begins.  The design assumes a single interactive user
// driving one operation at a time; the mutex only guards against
// accidental cross-goroutine use, it is not a multi-user discipline.
type Store struct {
	mu           sync.RWMutex
	guests       []model.Guest
	rooms        []model.Room
	reservations []model.Reservation
}

// New returns an empty Store. Call Seed to load the sample data set.
func New() *Store { return &Store{} }

// Guests returns a copy of the guest collection in insertion order.
func (s *Store) Guests() []model.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Guest, len(s.guests))
	copy(out, s.guests)
	return out
}

// Rooms returns a copy of the room collection in insertion order.
func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Reservations returns a copy of the reservation collection in insertion
// order, which for committed reservations is commit order.
func (s *Store) Reservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// AddGuest appends a guest record.
func (s *Store) AddGuest(g model.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests = append(s.guests, g)
}

// AddRoom appends a room record.
func (s *Store) AddRoom(r model.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, r)
}

// AppendReservation appends a committed reservation. Reservations are
// append-only in the booking workflow.
func (s *Store) AppendReservation(r model.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
}

// RoomByID resolves a room by its identifier. It returns ErrRoomNotFound
// when the id does not resolve.
func (s *Store) RoomByID(id string) (model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Room{}, ErrRoomNotFound
}

// GuestByEmail resolves a guest by email, the canonical guest key. It
// returns ErrGuestNotFound when no record carries the address.
func (s *Store) GuestByEmail(email string) (model.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.guests {
		if g.Email == email {
			return g, nil
		}
	}
	return model.Guest{}, ErrGuestNotFound
}

// AvailableRooms returns the rooms currently offered to the intake form.
// This offer list is the only double-booking guard: the commit itself does
// not re-check room status.
func (s *Store) AvailableRooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if r.Status == model.RoomAvailable {
			out = append(out, r)
		}
	}
	return out
}

// OccupyRoom sets the room's status to occupied regardless of its previous
// status. Availability is only enforced when the room list is offered to
// the caller, so a room whose status changed between offer and commit is
// still flipped. Unknown ids are ignored.
func (s *Store) OccupyRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i].Status = model.RoomOccupied
			return
		}
	}
}

// CreditGuest folds a committed stay into an existing guest's aggregates:
// one more reservation, amount added to total spent, and last visit set to
// the stay's check-in date. Last write wins on LastVisit, so a back-dated
// booking entered later overwrites a chronologically newer visit. It
// returns ErrGuestNotFound when the id does not resolve.
func (s *Store) CreditGuest(id string, amount int64, checkIn time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guests {
		if s.guests[i].ID == id {
			s.guests[i].TotalReservations++
			s.guests[i].TotalSpent += amount
			s.guests[i].LastVisit = checkIn
			return nil
		}
	}
	return ErrGuestNotFound
}
