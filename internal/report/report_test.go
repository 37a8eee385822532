package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOccupancyRateEmptyRoomSet(t *testing.T) {
	assert.Equal(t, 0, OccupancyRate(nil))
	assert.Equal(t, 0, OccupancyRate([]model.Room{}))
}

func TestOccupancyRateRoundsToNearestPercent(t *testing.T) {
	rooms := []model.Room{
		{ID: "1", Status: model.RoomOccupied},
		{ID: "2", Status: model.RoomAvailable},
		{ID: "3", Status: model.RoomMaintenance},
	}
	assert.Equal(t, 33, OccupancyRate(rooms))

	rooms[1].Status = model.RoomOccupied
	assert.Equal(t, 67, OccupancyRate(rooms))

	rooms[2].Status = model.RoomOccupied
	assert.Equal(t, 100, OccupancyRate(rooms))
}

func TestAvailableRoomCount(t *testing.T) {
	rooms := []model.Room{
		{Status: model.RoomAvailable},
		{Status: model.RoomOccupied},
		{Status: model.RoomAvailable},
		{Status: model.RoomMaintenance},
	}
	assert.Equal(t, 2, AvailableRoomCount(rooms))
}

func TestTotalRevenue(t *testing.T) {
	assert.Equal(t, int64(0), TotalRevenue(nil))

	reservations := []model.Reservation{
		{TotalAmount: 2400000},
		{TotalAmount: 1200000},
	}
	assert.Equal(t, int64(3600000), TotalRevenue(reservations))
}

func TestAverageStayNights(t *testing.T) {
	assert.Equal(t, 0.0, AverageStayNights(nil))

	reservations := []model.Reservation{{Nights: 3}, {Nights: 1}}
	assert.Equal(t, 2.0, AverageStayNights(reservations))
}

func TestStatusCounts(t *testing.T) {
	reservations := []model.Reservation{
		{Status: model.ReservationConfirmed},
		{Status: model.ReservationConfirmed},
		{Status: model.ReservationPending},
		{Status: model.ReservationCancelled},
	}
	counts := StatusCounts(reservations)
	assert.Equal(t, 2, counts[model.ReservationConfirmed])
	assert.Equal(t, 1, counts[model.ReservationPending])
	assert.Equal(t, 1, counts[model.ReservationCancelled])
}

func TestRoomTypeStatsGroupsBySnapshotType(t *testing.T) {
	reservations := []model.Reservation{
		{RoomType: "Superior", TotalAmount: 2400000},
		{RoomType: "Deluxe", TotalAmount: 1200000},
		{RoomType: "Superior", TotalAmount: 800000},
	}

	stats := RoomTypeStats(reservations)
	assert.Len(t, stats, 2)
	assert.Equal(t, RoomTypeStat{Type: "Superior", Bookings: 2, Revenue: 3200000}, stats[0])
	assert.Equal(t, RoomTypeStat{Type: "Deluxe", Bookings: 1, Revenue: 1200000}, stats[1])
}

func TestRoomTypeStatsReflectsNewBooking(t *testing.T) {
	before := []model.Reservation{{RoomType: "Suite", TotalAmount: 2000000}}
	after := append(before, model.Reservation{RoomType: "Suite", TotalAmount: 4000000})

	prev := RoomTypeStats(before)[0]
	next := RoomTypeStats(after)[0]

	assert.Equal(t, prev.Bookings+1, next.Bookings)
	assert.Equal(t, prev.Revenue+4000000, next.Revenue)
}

func TestRepeatGuestCount(t *testing.T) {
	guests := []model.Guest{
		{TotalReservations: 1},
		{TotalReservations: 2},
		{TotalReservations: 8},
	}
	assert.Equal(t, 2, RepeatGuestCount(guests))
}

func TestGuestStatusCount(t *testing.T) {
	guests := []model.Guest{
		{Status: model.GuestActive},
		{Status: model.GuestVIP},
		{Status: model.GuestActive},
		{Status: model.GuestInactive},
	}
	assert.Equal(t, 2, GuestStatusCount(guests, model.GuestActive))
	assert.Equal(t, 1, GuestStatusCount(guests, model.GuestVIP))
}

func TestTodayActivity(t *testing.T) {
	today := day(2024, 1, 15)
	reservations := []model.Reservation{
		{CheckIn: day(2024, 1, 15), CheckOut: day(2024, 1, 18), TotalAmount: 2400000},
		{CheckIn: day(2024, 1, 12), CheckOut: day(2024, 1, 15), TotalAmount: 1200000},
		{CheckIn: day(2024, 1, 16), CheckOut: day(2024, 1, 17), TotalAmount: 800000},
	}

	assert.Equal(t, 1, ArrivalsOn(reservations, today))
	assert.Equal(t, 1, DeparturesOn(reservations, today))
	assert.Equal(t, int64(2400000), ArrivalRevenueOn(reservations, today))
}
