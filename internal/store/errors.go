// Package store holds the shared front-desk state: the guest, room and
// reservation collections.  A single Store is created by the application
// shell and handed to the booking workflow for mutation; views only ever
// receive copies.  These error values let callers distinguish failure
// scenarios without string matching.
package store

import "errors"

// ErrRoomNotFound is returned when a room id no longer resolves, for
// example when the room was removed between being offered on the intake
// form and the commit. Callers should surface this as a blocking error
// and require resubmission.
var ErrRoomNotFound = errors.New("room not found")

// ErrGuestNotFound is returned by email lookups when no guest record
// carries the given address. The booking workflow uses it to decide
// between inserting a fresh guest and crediting an existing one.
var ErrGuestNotFound = errors.New("guest not found")
