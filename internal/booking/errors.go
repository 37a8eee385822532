package booking

import (
	"errors"

	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// ErrNoRoomsAvailable is returned by CheckAvailability when no room is in
// the available status.  It is a precondition warning for the intake form,
// not a commit failure: the form should show it before submission instead
// of offering an empty room list.
var ErrNoRoomsAvailable = errors.New("no rooms available")

// ValidationError wraps the per-field messages of a rejected intake.  It
// is always recoverable: the user corrects the fields and resubmits.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "reservation intake failed validation"
}

// CheckAvailability reports whether the store has any room to offer on the
// intake form.
func CheckAvailability(st *store.Store) error {
	if len(st.AvailableRooms()) == 0 {
		return ErrNoRoomsAvailable
	}
	return nil
}
