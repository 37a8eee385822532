// Package report computes the read-only aggregations shown on the
// dashboard and reports pages.  Every function is a pure fold over the
// collections it receives; nothing here mutates state or depends on
// ordering beyond deterministic summation.
package report

import (
	"math"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// OccupancyRate returns the share of occupied rooms as a percentage
// rounded to the nearest integer.  An empty room set yields 0 rather than
// a division by zero.
func OccupancyRate(rooms []model.Room) int {
	if len(rooms) == 0 {
		return 0
	}
	occupied := 0
	for _, r := range rooms {
		if r.Status == model.RoomOccupied {
			occupied++
		}
	}
	return int(math.Round(float64(occupied) / float64(len(rooms)) * 100))
}

// AvailableRoomCount returns the number of rooms in the available status.
func AvailableRoomCount(rooms []model.Room) int {
	n := 0
	for _, r := range rooms {
		if r.Status == model.RoomAvailable {
			n++
		}
	}
	return n
}

// TotalRevenue sums the committed totals of a reservation set.
func TotalRevenue(reservations []model.Reservation) int64 {
	var sum int64
	for _, r := range reservations {
		sum += r.TotalAmount
	}
	return sum
}

// AverageStayNights returns the mean stay length, or 0 when there are no
// reservations.
func AverageStayNights(reservations []model.Reservation) float64 {
	if len(reservations) == 0 {
		return 0
	}
	nights := 0
	for _, r := range reservations {
		nights += r.Nights
	}
	return float64(nights) / float64(len(reservations))
}

// StatusCounts tallies reservations per lifecycle status.
func StatusCounts(reservations []model.Reservation) map[model.ReservationStatus]int {
	counts := make(map[model.ReservationStatus]int, 3)
	for _, r := range reservations {
		counts[r.Status]++
	}
	return counts
}

// RoomTypeStat aggregates the bookings committed against one room type.
// The type label is the snapshot taken at booking time, so renaming a room
// type later does not rewrite history.
type RoomTypeStat struct {
	Type     string
	Bookings int
	Revenue  int64
}

// RoomTypeStats groups a reservation set by room type, in first-seen
// order, aggregating booking count and revenue per type.
func RoomTypeStats(reservations []model.Reservation) []RoomTypeStat {
	index := make(map[string]int)
	stats := make([]RoomTypeStat, 0)
	for _, r := range reservations {
		i, ok := index[r.RoomType]
		if !ok {
			i = len(stats)
			index[r.RoomType] = i
			stats = append(stats, RoomTypeStat{Type: r.RoomType})
		}
		stats[i].Bookings++
		stats[i].Revenue += r.TotalAmount
	}
	return stats
}

// RepeatGuestCount returns how many guests have more than one committed
// reservation.
func RepeatGuestCount(guests []model.Guest) int {
	n := 0
	for _, g := range guests {
		if g.TotalReservations > 1 {
			n++
		}
	}
	return n
}

// GuestStatusCount returns how many guests carry the given status.
func GuestStatusCount(guests []model.Guest, status model.GuestStatus) int {
	n := 0
	for _, g := range guests {
		if g.Status == status {
			n++
		}
	}
	return n
}

// ArrivalsOn counts the reservations checking in on the given calendar
// day.
func ArrivalsOn(reservations []model.Reservation, day time.Time) int {
	n := 0
	for _, r := range reservations {
		if sameDay(r.CheckIn, day) {
			n++
		}
	}
	return n
}

// DeparturesOn counts the reservations checking out on the given calendar
// day.
func DeparturesOn(reservations []model.Reservation, day time.Time) int {
	n := 0
	for _, r := range reservations {
		if sameDay(r.CheckOut, day) {
			n++
		}
	}
	return n
}

// ArrivalRevenueOn sums the totals of the reservations checking in on the
// given calendar day, the "today's revenue" tile on the reports page.
func ArrivalRevenueOn(reservations []model.Reservation, day time.Time) int64 {
	var sum int64
	for _, r := range reservations {
		if sameDay(r.CheckIn, day) {
			sum += r.TotalAmount
		}
	}
	return sum
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
