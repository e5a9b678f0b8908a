package coverage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/zena-portal/zena-portal/internal/i18n"
)

// reference instant: Wednesday 2024-09-25.
func at(hour int) time.Time {
	return time.Date(2024, time.September, 25, hour, 0, 0, 0, time.UTC)
}

func TestValidateWindowBeforeCutoff(t *testing.T) {
	now := at(10)

	v := ValidateWindow(now, "2024-09-26", "09:00", DefaultCutoffHour, language.English)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Message)
}

func TestValidateWindowTomorrowAfterCutoff(t *testing.T) {
	now := at(15)

	v := ValidateWindow(now, "2024-09-26", "09:00", DefaultCutoffHour, language.English)
	assert.False(t, v.Valid)
	assert.Equal(t, i18n.T(language.English, i18n.SubmissionCutoffPassed), v.Message)

	// The day after tomorrow stays open regardless of the hour.
	v = ValidateWindow(now, "2024-09-27", "09:00", DefaultCutoffHour, language.English)
	assert.True(t, v.Valid)
}

func TestValidateWindowPastDates(t *testing.T) {
	for _, hour := range []int{0, 10, 15, 23} {
		now := at(hour)

		v := ValidateWindow(now, "2024-09-25", "09:00", DefaultCutoffHour, language.Amharic)
		assert.False(t, v.Valid, "same day at hour %d", hour)
		assert.Equal(t, i18n.T(language.Amharic, i18n.SubmissionWindowPassed), v.Message)

		v = ValidateWindow(now, "2024-09-20", "09:00", DefaultCutoffHour, language.Amharic)
		assert.False(t, v.Valid, "past date at hour %d", hour)
	}
}

func TestValidateWindowExactlyAtCutoff(t *testing.T) {
	v := ValidateWindow(at(13), "2024-09-26", "09:00", DefaultCutoffHour, language.English)
	assert.False(t, v.Valid)
}

func TestValidateWindowMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
	}{
		{"garbage date", "not-a-date", "09:00"},
		{"swapped format", "26-09-2024", "09:00"},
		{"garbage time", "2024-09-26", "morning"},
		{"empty date", "", "09:00"},
		{"empty time", "2024-09-26", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateWindow(at(10), tt.date, tt.clock, DefaultCutoffHour, language.English)
			assert.False(t, v.Valid)
			assert.Equal(t, i18n.T(language.English, i18n.InvalidDateTimeFormat), v.Message)
		})
	}
}

func TestValidateWindowAcceptsSecondsForm(t *testing.T) {
	v := ValidateWindow(at(10), "2024-09-26", "09:00:00", DefaultCutoffHour, language.English)
	assert.True(t, v.Valid)
}

func TestMinimumAllowedDate(t *testing.T) {
	// Before the cutoff the minimum is tomorrow (2024-09-26 = መስከረም 16).
	dt := MinimumAllowedDate(at(10), DefaultCutoffHour)
	assert.Equal(t, 2017, dt.Year)
	assert.Equal(t, 1, dt.Month)
	assert.Equal(t, 16, dt.Day)

	// Past it the minimum moves to the day after tomorrow.
	dt = MinimumAllowedDate(at(14), DefaultCutoffHour)
	assert.Equal(t, 17, dt.Day)
}

func TestIsExpired(t *testing.T) {
	now := at(10)

	assert.True(t, IsExpired(time.Date(2024, time.September, 24, 0, 0, 0, 0, time.UTC), StatusPending, now))
	// The coverage day itself is not over yet.
	assert.False(t, IsExpired(time.Date(2024, time.September, 25, 0, 0, 0, 0, time.UTC), StatusPending, now))
	assert.False(t, IsExpired(time.Date(2024, time.September, 26, 0, 0, 0, 0, time.UTC), StatusPending, now))
	// Reviewed requests never expire.
	assert.False(t, IsExpired(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), StatusAccepted, now))
	assert.False(t, IsExpired(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), StatusRejected, now))
}
