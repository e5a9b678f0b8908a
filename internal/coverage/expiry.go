package coverage

import "time"

// IsExpired reports whether a still-pending request's coverage date has
// already passed. Reviewed requests never expire. The coverage date counts
// as passed only after its whole day is over.
func IsExpired(coverageDate time.Time, status Status, now time.Time) bool {
	if status != StatusPending {
		return false
	}
	endOfDay := time.Date(
		coverageDate.Year(), coverageDate.Month(), coverageDate.Day(),
		23, 59, 59, 0, now.Location(),
	)
	return endOfDay.Before(now)
}
