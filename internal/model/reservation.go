package model

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPending   ReservationStatus = "pending"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a committed stay.  Guest and room display fields are
// snapshots captured at commit time: later edits to the Guest or Room
// records do not retroactively change past reservations, and TotalAmount is
// never recomputed even if the room's nightly price changes.
//
// Fields:
//  ID          – opaque identifier.
//  GuestName   – guest display name at commit time (snapshot).
//  GuestID     – identifier of the guest record.  Derived during commit
//                from the email lookup; email remains the canonical key.
//  Email       – guest email at commit time (snapshot).
//  Phone       – guest phone at commit time (snapshot).
//  RoomNumber  – room display label at commit time (snapshot).
//  RoomID      – identifier of the booked room.
//  RoomType    – room category at commit time (snapshot).
//  CheckIn     – arrival date.
//  CheckOut    – departure date, always strictly after CheckIn.
//  Status      – lifecycle state (confirmed, pending, cancelled).
//  Price       – nightly rate snapshot in whole rupiah.
//  Nights      – ceil((CheckOut − CheckIn) in days), always ≥ 1.
//  TotalAmount – Price × Nights, fixed at commit time.
//  CreatedAt   – day the reservation was committed, not a stay date.
type Reservation struct {
	ID          string
	GuestName   string
	GuestID     string
	Email       string
	Phone       string
	RoomNumber  string
	RoomID      string
	RoomType    string
	CheckIn     time.Time
	CheckOut    time.Time
	Status      ReservationStatus
	Price       int64
	Nights      int
	TotalAmount int64
	CreatedAt   time.Time
}
