package model

import "time"

// NearExpiryWindowDays is the day count defining the NEAR_EXPIRY range.
const NearExpiryWindowDays = 30

// ToDay truncates a timestamp to its calendar day in UTC. All expiry
// arithmetic works on calendar days, never on time of day.
func ToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClassifyStatus derives the lifecycle status of a batch from its expiry
// date relative to asOf:
//
//	EXPIRED      expiry < asOf
//	NEAR_EXPIRY  asOf <= expiry < asOf + 30 days (expiring today is near expiry)
//	GOOD         otherwise (asOf + 30 days itself is GOOD)
//
// The three ranges partition all dates with no gap or overlap. Every batch
// evaluated within one aggregation pass must use the same asOf so the
// partitioning stays consistent across the response.
func ClassifyStatus(expiryDate, asOf time.Time) BatchStatus {
	expiry := ToDay(expiryDate)
	today := ToDay(asOf)

	switch {
	case expiry.Before(today):
		return StatusExpired
	case expiry.Before(today.AddDate(0, 0, NearExpiryWindowDays)):
		return StatusNearExpiry
	default:
		return StatusGood
	}
}

// DaysUntilExpiry returns the calendar-day difference between asOf and the
// expiry date. Negative means already expired. Display only; classification
// goes through ClassifyStatus with the same day-difference convention.
func DaysUntilExpiry(expiryDate, asOf time.Time) int {
	expiry := ToDay(expiryDate)
	today := ToDay(asOf)
	return int(expiry.Sub(today).Hours() / 24)
}
