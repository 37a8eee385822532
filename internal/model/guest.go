// Package model defines the entities managed by the front desk: guests,
// rooms and reservations.  The types mirror what the desk staff see on
// screen; aggregates on Guest are maintained by the booking workflow and
// must never be edited independently.
package model

import "time"

// GuestStatus classifies a guest for the guest directory.
type GuestStatus string

const (
	GuestActive   GuestStatus = "active"
	GuestVIP      GuestStatus = "vip"
	GuestInactive GuestStatus = "inactive"
)

// Guest is a person who has booked at least one stay.  Guests are
// de-duplicated by email: the booking workflow treats the email address as
// the canonical key and folds repeat bookings into the same record.
//
// Fields:
//  ID                – opaque identifier.
//  Name              – display name.
//  Email             – unique join key against reservations.
//  Phone             – contact number.
//  Address           – postal address (optional, may be empty).
//  JoinDate          – day the guest record was created.
//  TotalReservations – count of committed reservations for this guest.
//  TotalSpent        – sum of committed reservation totals, whole rupiah.
//  LastVisit         – check-in date of the most recently committed
//                      reservation.  Last write wins: a back-dated booking
//                      entered later overwrites a chronologically newer one.
//  Status            – directory status (active, vip, inactive).
type Guest struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	Address           string
	JoinDate          time.Time
	TotalReservations int
	TotalSpent        int64
	LastVisit         time.Time
	Status            GuestStatus
}
