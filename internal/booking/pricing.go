package booking

import (
	"math"
	"time"
)

// ComputeStay derives the number of nights and the total amount for a stay
// from its date range and the room's nightly rate.  Nights is the ceiling
// of the day difference, so a partial-day drift between the two timestamps
// still counts as a full night.  The caller must have already enforced
// checkOut > checkIn; for a committed reservation nights is always >= 1.
func ComputeStay(checkIn, checkOut time.Time, nightly int64) (nights int, total int64) {
	diff := checkOut.Sub(checkIn)
	nights = int(math.Ceil(diff.Hours() / 24))
	total = int64(nights) * nightly
	return nights, total
}
