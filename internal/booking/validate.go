package booking

import (
	"strings"
	"time"
)

// Validate checks an intake record against the front-desk business rules
// and returns one message per failing field.  Every rule is evaluated,
// none short-circuit, so multiple errors surface in a single pass.  The
// current time is a parameter so that the past-date rule stays a pure
// function of its inputs.
//
// The email check is deliberately just "contains an @"; anything stricter
// rejects addresses the desk staff legitimately enter.
func Validate(in Intake, now time.Time) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(in.GuestName) == "" {
		errs.GuestName = "guest name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		errs.Email = "email is required"
	}
	if !strings.Contains(in.Email, "@") {
		errs.Email = "email format is invalid"
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs.Phone = "phone number is required"
	}
	if in.CheckIn == "" {
		errs.CheckIn = "check-in date is required"
	}
	if in.CheckOut == "" {
		errs.CheckOut = "check-out date is required"
	}
	if in.RoomID == "" {
		errs.RoomID = "a room must be selected"
	}

	// Date ordering rules only apply when both dates were entered.
	if in.CheckIn != "" && in.CheckOut != "" {
		checkIn, inErr := time.Parse(time.DateOnly, in.CheckIn)
		checkOut, outErr := time.Parse(time.DateOnly, in.CheckOut)
		if inErr != nil {
			errs.CheckIn = "check-in date must be in YYYY-MM-DD format"
		}
		if outErr != nil {
			errs.CheckOut = "check-out date must be in YYYY-MM-DD format"
		}
		if inErr == nil && outErr == nil {
			today := midnight(now)
			if checkIn.Before(today) {
				errs.CheckIn = "check-in date cannot be in the past"
			}
			if !checkOut.After(checkIn) {
				errs.CheckOut = "check-out date must be after check-in"
			}
		}
	}

	return errs
}
