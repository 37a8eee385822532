// Package booking implements the reservation workflow: validating an
// intake record, pricing the stay and committing the reservation with its
// cascading room and guest updates.  Everything here is driven by the
// intake form on the reservations page.
package booking

import "time"

// Intake is the raw reservation request as submitted by the intake form,
// before any validation.  Dates travel as "2006-01-02" strings because
// that is what the date fields produce; the validator parses them.
//
// SpecialRequests is collected by the form but not recorded on the
// reservation.
type Intake struct {
	GuestName       string
	Email           string
	Phone           string
	CheckIn         string
	CheckOut        string
	RoomID          string
	SpecialRequests string
}

// FieldErrors carries at most one human-readable error message per intake
// field.  An empty message means the field passed.  Using a fixed struct
// rather than a map keeps field coverage checkable at compile time.
type FieldErrors struct {
	GuestName string
	Email     string
	Phone     string
	CheckIn   string
	CheckOut  string
	RoomID    string
}

// OK reports whether the intake passed every rule.
func (e FieldErrors) OK() bool {
	return e == FieldErrors{}
}

// midnight truncates a timestamp to the start of its UTC calendar day,
// the representation used for every stored date.
func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
