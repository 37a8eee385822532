package store

import (
	"strings"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// SearchReservations returns the reservations whose guest name, room number
// or email matches the search term. Name and email matching is
// case-insensitive; room numbers are matched verbatim. An empty term
// matches everything.
func (s *Store) SearchReservations(term string) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lower := strings.ToLower(term)
	out := make([]model.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		if strings.Contains(strings.ToLower(r.GuestName), lower) ||
			strings.Contains(r.RoomNumber, term) ||
			strings.Contains(strings.ToLower(r.Email), lower) {
			out = append(out, r)
		}
	}
	return out
}

// SearchGuests returns the guests whose name, email or phone matches the
// search term. Phone numbers are matched verbatim.
func (s *Store) SearchGuests(term string) []model.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lower := strings.ToLower(term)
	out := make([]model.Guest, 0, len(s.guests))
	for _, g := range s.guests {
		if strings.Contains(strings.ToLower(g.Name), lower) ||
			strings.Contains(strings.ToLower(g.Email), lower) ||
			strings.Contains(g.Phone, term) {
			out = append(out, g)
		}
	}
	return out
}

// FilterRooms returns the rooms whose number or type matches the search
// term, optionally narrowed to a single status. A zero-value status
// matches every status.
func (s *Store) FilterRooms(term string, status model.RoomStatus) []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lower := strings.ToLower(term)
	out := make([]model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if !strings.Contains(r.Number, term) &&
			!strings.Contains(strings.ToLower(r.Type), lower) {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out
}
