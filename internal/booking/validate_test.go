package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func validIntake() Intake {
	return Intake{
		GuestName: "Ahmad Wijaya",
		Email:     "ahmad@email.com",
		Phone:     "081234567890",
		CheckIn:   "2024-01-15",
		CheckOut:  "2024-01-18",
		RoomID:    "1",
	}
}

func TestValidateAcceptsCompleteIntake(t *testing.T) {
	errs := Validate(validIntake(), testNow)
	assert.True(t, errs.OK())
	assert.Equal(t, FieldErrors{}, errs)
}

func TestValidateRequiredGuestName(t *testing.T) {
	in := validIntake()
	in.GuestName = "   "
	errs := Validate(in, testNow)
	assert.NotEmpty(t, errs.GuestName)
	assert.Empty(t, errs.Email)
	assert.Empty(t, errs.Phone)
	assert.Empty(t, errs.CheckIn)
	assert.Empty(t, errs.CheckOut)
	assert.Empty(t, errs.RoomID)
}

func TestValidateRequiredEmail(t *testing.T) {
	in := validIntake()
	in.Email = ""
	errs := Validate(in, testNow)
	assert.NotEmpty(t, errs.Email)
	assert.Empty(t, errs.GuestName)
	assert.Empty(t, errs.Phone)
}

func TestValidateEmailFormat(t *testing.T) {
	in := validIntake()
	in.Email = "not-an-address"
	errs := Validate(in, testNow)
	assert.Equal(t, "email format is invalid", errs.Email)
}

func TestValidateRequiredPhone(t *testing.T) {
	in := validIntake()
	in.Phone = ""
	errs := Validate(in, testNow)
	assert.NotEmpty(t, errs.Phone)
	assert.Empty(t, errs.GuestName)
	assert.Empty(t, errs.Email)
}

func TestValidateRequiredDatesAndRoom(t *testing.T) {
	in := validIntake()
	in.CheckIn = ""
	in.CheckOut = ""
	in.RoomID = ""
	errs := Validate(in, testNow)
	assert.Equal(t, "check-in date is required", errs.CheckIn)
	assert.Equal(t, "check-out date is required", errs.CheckOut)
	assert.Equal(t, "a room must be selected", errs.RoomID)
}

func TestValidatePastCheckIn(t *testing.T) {
	in := validIntake()
	in.CheckIn = "2024-01-09"
	errs := Validate(in, testNow)
	assert.Equal(t, "check-in date cannot be in the past", errs.CheckIn)
}

func TestValidateCheckInTodayAllowed(t *testing.T) {
	in := validIntake()
	in.CheckIn = "2024-01-10"
	errs := Validate(in, testNow)
	assert.Empty(t, errs.CheckIn)
}

func TestValidateCheckOutMustBeAfterCheckIn(t *testing.T) {
	in := validIntake()
	in.CheckOut = in.CheckIn
	errs := Validate(in, testNow)
	assert.Equal(t, "check-out date must be after check-in", errs.CheckOut)
}

func TestValidateDateRulesNeedBothDates(t *testing.T) {
	// The past-date rule only fires when both dates are present.
	in := validIntake()
	in.CheckIn = "2020-01-01"
	in.CheckOut = ""
	errs := Validate(in, testNow)
	assert.Empty(t, errs.CheckIn)
	assert.Equal(t, "check-out date is required", errs.CheckOut)
}

func TestValidateBadDateFormat(t *testing.T) {
	in := validIntake()
	in.CheckIn = "15-01-2024"
	in.CheckOut = "18/01/2024"
	errs := Validate(in, testNow)
	assert.Equal(t, "check-in date must be in YYYY-MM-DD format", errs.CheckIn)
	assert.Equal(t, "check-out date must be in YYYY-MM-DD format", errs.CheckOut)
}

func TestValidateCollectsAllErrorsAtOnce(t *testing.T) {
	errs := Validate(Intake{}, testNow)
	assert.NotEmpty(t, errs.GuestName)
	assert.NotEmpty(t, errs.Email)
	assert.NotEmpty(t, errs.Phone)
	assert.NotEmpty(t, errs.CheckIn)
	assert.NotEmpty(t, errs.CheckOut)
	assert.NotEmpty(t, errs.RoomID)
	assert.False(t, errs.OK())
}
