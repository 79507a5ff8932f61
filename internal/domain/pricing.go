package domain

import (
	"math"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// parseDate falls back to the zero time for malformed input; callers accept
// the resulting degenerate night count rather than rejecting the booking.
func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Nights is the ceiling of the difference between the two dates in whole
// days. There is no floor: a check-out not after check-in yields zero or a
// negative count, which pricing accepts.
func Nights(checkIn, checkOut string) int {
	in := parseDate(checkIn)
	out := parseDate(checkOut)
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// TotalPrice derives the stay price from the room's nightly rate and the
// stay length. Recomputed on every create and update.
func TotalPrice(roomType, checkIn, checkOut string) (int, error) {
	rate, err := NightlyRate(roomType)
	if err != nil {
		return 0, err
	}
	return rate * Nights(checkIn, checkOut), nil
}
