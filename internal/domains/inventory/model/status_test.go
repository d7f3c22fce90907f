package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyStatus(t *testing.T) {
	asOf := date(2025, 6, 15)

	tests := []struct {
		name   string
		expiry time.Time
		want   BatchStatus
	}{
		{"expired yesterday", date(2025, 6, 14), StatusExpired},
		{"expired long ago", date(2024, 1, 1), StatusExpired},
		{"expires today is near expiry, not expired", date(2025, 6, 15), StatusNearExpiry},
		{"expires tomorrow", date(2025, 6, 16), StatusNearExpiry},
		{"last day inside window", date(2025, 7, 14), StatusNearExpiry},
		{"exactly thirty days out is good", date(2025, 7, 15), StatusGood},
		{"far future", date(2026, 6, 15), StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.expiry, asOf))
		})
	}
}

func TestClassifyStatusIgnoresTimeOfDay(t *testing.T) {
	// 23:59 on the expiry day still counts as that calendar day.
	expiry := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	asOf := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, StatusNearExpiry, ClassifyStatus(expiry, asOf))
}

func TestClassifyStatusPartitionsEveryDay(t *testing.T) {
	// Every day in a two-year range maps to exactly one status, with the
	// transitions at the documented boundaries.
	asOf := date(2025, 6, 15)

	for offset := -365; offset <= 365; offset++ {
		expiry := asOf.AddDate(0, 0, offset)
		got := ClassifyStatus(expiry, asOf)

		switch {
		case offset < 0:
			assert.Equal(t, StatusExpired, got, "offset %d", offset)
		case offset < NearExpiryWindowDays:
			assert.Equal(t, StatusNearExpiry, got, "offset %d", offset)
		default:
			assert.Equal(t, StatusGood, got, "offset %d", offset)
		}
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	asOf := date(2025, 6, 15)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"today", date(2025, 6, 15), 0},
		{"tomorrow", date(2025, 6, 16), 1},
		{"next month", date(2025, 7, 15), 30},
		{"negative once expired", date(2025, 6, 10), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilExpiry(tt.expiry, asOf))
		})
	}
}

func TestToDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 18, 30, 45, 123, time.UTC)
	assert.Equal(t, date(2025, 6, 15), ToDay(in))
}
