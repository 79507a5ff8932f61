package domain

import "time"

// CancellationNoticeDays is how many calendar days before check-in a
// booking must still be to remain cancellable.
const CancellationNoticeDays = 2

// CancellationAllowed reports whether cancellation is permitted at now:
// true iff now <= checkInDate - 2 calendar days.
//
// Only cancellation consults this policy. Updates recompute price but never
// re-check the window, so a booking inside the window can still be edited
// even though it cannot be cancelled.
func CancellationAllowed(checkInDate string, now time.Time) bool {
	in, err := time.Parse(DateLayout, checkInDate)
	if err != nil {
		// window cannot be verified, refuse
		return false
	}
	cutoff := in.AddDate(0, 0, -CancellationNoticeDays)
	return !now.After(cutoff)
}
