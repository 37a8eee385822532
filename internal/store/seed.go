package store

import (
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// Seed loads the sample data set the front desk starts with: three guests,
// three rooms and one committed reservation. In a real deployment this
// would come from a backend; here it gives the views something to show
// from the first render.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guests = []model.Guest{
		{
			ID:                "1",
			Name:              "Ahmad Wijaya",
			Email:             "ahmad@email.com",
			Phone:             "081234567890",
			Address:           "Jl. Sudirman No. 123, Jakarta",
			JoinDate:          date(2023, 6, 15),
			TotalReservations: 5,
			TotalSpent:        7500000,
			LastVisit:         date(2024, 1, 15),
			Status:            model.GuestActive,
		},
		{
			ID:                "2",
			Name:              "Sari Dewi",
			Email:             "sari@email.com",
			Phone:             "081234567891",
			Address:           "Jl. Gatot Subroto No. 456, Jakarta",
			JoinDate:          date(2023, 8, 22),
			TotalReservations: 3,
			TotalSpent:        3600000,
			LastVisit:         date(2024, 1, 10),
			Status:            model.GuestActive,
		},
		{
			ID:                "3",
			Name:              "Budi Santoso",
			Email:             "budi@email.com",
			Phone:             "081234567892",
			Address:           "Jl. Thamrin No. 789, Jakarta",
			JoinDate:          date(2023, 3, 10),
			TotalReservations: 8,
			TotalSpent:        12000000,
			LastVisit:         date(2024, 1, 12),
			Status:            model.GuestVIP,
		},
	}

	s.rooms = []model.Room{
		{
			ID:          "1",
			Number:      "101",
			Type:        "Superior",
			Price:       800000,
			Status:      model.RoomAvailable,
			Amenities:   []string{"wifi", "tv", "ac"},
			Capacity:    2,
			Description: "Kamar nyaman dengan pemandangan kota",
		},
		{
			ID:          "2",
			Number:      "102",
			Type:        "Deluxe",
			Price:       1200000,
			Status:      model.RoomAvailable,
			Amenities:   []string{"wifi", "tv", "ac", "minibar"},
			Capacity:    3,
			Description: "Kamar luas dengan fasilitas lengkap",
		},
		{
			ID:          "3",
			Number:      "201",
			Type:        "Suite",
			Price:       2000000,
			Status:      model.RoomAvailable,
			Amenities:   []string{"wifi", "tv", "ac", "minibar", "balcony"},
			Capacity:    4,
			Description: "Suite mewah dengan balkon pribadi",
		},
	}

	s.reservations = []model.Reservation{
		{
			ID:          "1",
			GuestName:   "Ahmad Wijaya",
			GuestID:     "1",
			Email:       "ahmad@email.com",
			Phone:       "081234567890",
			RoomNumber:  "101",
			RoomID:      "1",
			RoomType:    "Superior",
			CheckIn:     date(2024, 1, 15),
			CheckOut:    date(2024, 1, 18),
			Status:      model.ReservationConfirmed,
			Price:       800000,
			Nights:      3,
			TotalAmount: 2400000,
			CreatedAt:   date(2024, 1, 10),
		},
	}
}

// date builds a UTC midnight timestamp, the representation used for every
// calendar date in the store.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
