package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// Commit turns a validated intake record into a reservation and applies
// the three cascading state changes, in order: the reservation is appended,
// the room is marked occupied, and the guest is upserted by email.  From
// the caller's point of view the commit is atomic; the sub-steps cannot
// individually fail once the room has resolved.
//
// The room's status is not re-checked here.  A room that left the
// available status between being offered and being committed is flipped to
// occupied all the same; availability is enforced solely by the offer list
// on the intake form.
//
// Guest de-duplication is keyed by email, never by name: a second
// reservation for a known address credits the existing guest record and
// the reservation's GuestID is derived from that record.
func Commit(st *store.Store, in Intake, now time.Time) (model.Reservation, error) {
	if errs := Validate(in, now); !errs.OK() {
		return model.Reservation{}, &ValidationError{Fields: errs}
	}

	room, err := st.RoomByID(in.RoomID)
	if err != nil {
		return model.Reservation{}, err
	}

	// Both parses succeeded during validation.
	checkIn, _ := time.Parse(time.DateOnly, in.CheckIn)
	checkOut, _ := time.Parse(time.DateOnly, in.CheckOut)
	nights, total := ComputeStay(checkIn, checkOut, room.Price)
	today := midnight(now)

	guest, lookupErr := st.GuestByEmail(in.Email)
	newGuest := errors.Is(lookupErr, store.ErrGuestNotFound)
	guestID := guest.ID
	if newGuest {
		guestID = uuid.NewString()
	}

	res := model.Reservation{
		ID:          uuid.NewString(),
		GuestName:   in.GuestName,
		GuestID:     guestID,
		Email:       in.Email,
		Phone:       in.Phone,
		RoomNumber:  room.Number,
		RoomID:      room.ID,
		RoomType:    room.Type,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      model.ReservationConfirmed,
		Price:       room.Price,
		Nights:      nights,
		TotalAmount: total,
		CreatedAt:   today,
	}

	st.AppendReservation(res)
	st.OccupyRoom(room.ID)
	if newGuest {
		st.AddGuest(model.Guest{
			ID:                guestID,
			Name:              in.GuestName,
			Email:             in.Email,
			Phone:             in.Phone,
			JoinDate:          today,
			TotalReservations: 1,
			TotalSpent:        total,
			LastVisit:         checkIn,
			Status:            model.GuestActive,
		})
	} else {
		// The guest was resolved above and cannot vanish mid-commit in a
		// single-user session.
		_ = st.CreditGuest(guestID, total, checkIn)
	}

	return res, nil
}
