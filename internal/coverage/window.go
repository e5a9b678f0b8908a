package coverage

import (
	"time"

	"golang.org/x/text/language"

	"github.com/zena-portal/zena-portal/internal/ethiopic"
	"github.com/zena-portal/zena-portal/internal/i18n"
)

// DefaultCutoffHour is the wall-clock hour after which next-day coverage
// can no longer be requested. The upstream portal used 13:00 in its
// validator and 14:00 in its date-input helper; a single constant is
// applied everywhere here.
const DefaultCutoffHour = 13

// Verdict is the outcome of a submission-window check. A rejection is a
// normal, expected outcome carrying a user-facing reason; it is never an
// error condition and must not be retried automatically.
type Verdict struct {
	Valid   bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
}

// ValidateWindow decides whether a coverage request for the given
// Gregorian date ("2006-01-02") and 24-hour time ("15:04" or "15:04:05")
// may still be filed at instant now.
//
// Dates strictly before tomorrow are always rejected. Tomorrow is
// rejected once the current hour reaches cutoffHour; later dates are
// always accepted. Malformed inputs yield an invalid-format verdict
// rather than an error.
func ValidateWindow(now time.Time, dateISO, time24 string, cutoffHour int, lang language.Tag) Verdict {
	selected, err := time.ParseInLocation("2006-01-02", dateISO, now.Location())
	if err != nil {
		return Verdict{Valid: false, Message: i18n.T(lang, i18n.InvalidDateTimeFormat)}
	}
	if !validClock(time24) {
		return Verdict{Valid: false, Message: i18n.T(lang, i18n.InvalidDateTimeFormat)}
	}

	tomorrow := midnight(now).AddDate(0, 0, 1)

	if selected.Equal(tomorrow) && now.Hour() >= cutoffHour {
		return Verdict{Valid: false, Message: i18n.T(lang, i18n.SubmissionCutoffPassed)}
	}
	if selected.Before(tomorrow) {
		return Verdict{Valid: false, Message: i18n.T(lang, i18n.SubmissionWindowPassed)}
	}
	return Verdict{Valid: true}
}

// MinimumAllowedDate returns the earliest Ethiopian coverage date still
// open for submission: tomorrow, or the day after once the cutoff hour
// has passed.
func MinimumAllowedDate(now time.Time, cutoffHour int) ethiopic.DateTime {
	base := midnight(now).AddDate(0, 0, 1)
	if now.Hour() >= cutoffHour {
		base = base.AddDate(0, 0, 1)
	}
	c := ethiopic.FromGregorian(base)
	return ethiopic.DateTime{
		Date: c.Date(),
		Time: ethiopic.Time{Hour: 12, Minute: 0, Period: ethiopic.PeriodMorning},
	}
}

func validClock(time24 string) bool {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, time24); err == nil {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
