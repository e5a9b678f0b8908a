package ethiopic

import (
	"fmt"
	"time"
)

// newYearMonth/newYearDay fix the Ethiopian New Year at September 11.
// The true rule shifts the boundary to September 12 ahead of a Gregorian
// leap year; the fixed date is a known limitation kept for compatibility.
const (
	newYearMonth = time.September
	newYearDay   = 11
)

// monthStarts maps each Ethiopian month to its nominal Gregorian start as a
// (month, day) pair, Meskerem (September 11) first. Used by ToGregorian.
var monthStarts = [13][2]int{
	{9, 11}, {10, 11}, {11, 10}, {12, 10}, {1, 9}, {2, 8},
	{3, 10}, {4, 9}, {5, 9}, {6, 8}, {7, 8}, {8, 7}, {9, 6},
}

// Converted is the result of a Gregorian-to-Ethiopian conversion: the
// calendar date, the time of day on the Ethiopian clock, and preformatted
// display strings.
type Converted struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Period  Period
	Weekday string
	// DateString is "YYYY monthname DD"; TimeString is "H:MM".
	DateString string
	TimeString string
}

// Date returns just the calendar portion of the conversion.
func (c Converted) Date() Date {
	return Date{Year: c.Year, Month: c.Month, Day: c.Day}
}

// FromGregorian converts a Gregorian instant to the Ethiopian calendar.
//
// The Ethiopian year is gYear-7 on or after September 11 and gYear-8
// before it. The month and day follow from the day count since the New
// Year: twelve 30-day months, then Pagume.
func FromGregorian(t time.Time) Converted {
	newYear := time.Date(t.Year(), newYearMonth, newYearDay, 0, 0, 0, 0, t.Location())
	ethYear := t.Year() - 7
	if civil(t).Before(newYear) {
		ethYear = t.Year() - 8
		newYear = time.Date(t.Year()-1, newYearMonth, newYearDay, 0, 0, 0, 0, t.Location())
	}

	days := daysBetween(newYear, t)
	month := 1
	for days >= DaysInMonth(month) && month < 13 {
		days -= DaysInMonth(month)
		month++
	}
	day := days + 1
	if day > DaysInMonth(month) {
		day = DaysInMonth(month)
	}

	hour, minute, period := TimeFromClock(t.Hour(), t.Minute())

	return Converted{
		Year:       ethYear,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Period:     period,
		Weekday:    WeekdayNames[int(t.Weekday())],
		DateString: fmt.Sprintf("%d %s %d", ethYear, MonthNames[month-1], day),
		TimeString: fmt.Sprintf("%d:%02d", hour, minute),
	}
}

// ToGregorian converts an Ethiopian date to the Gregorian calendar.
//
// The Gregorian year is derived by adding the current Ethiopian/Gregorian
// year gap (computed from now, so the mapping self-calibrates across each
// New Year transition) and the day counts from the month's nominal
// Gregorian start. Round-tripping a FromGregorian result recovers the same
// calendar day except near month boundaries in Gregorian leap years, where
// the fixed start table drifts by one day.
func ToGregorian(ethYear, ethMonth, ethDay int, now time.Time) time.Time {
	offset := now.Year() - FromGregorian(now).Year
	gYear := ethYear + offset

	start := monthStarts[ethMonth-1]
	base := time.Date(gYear, time.Month(start[0]), start[1], 0, 0, 0, 0, now.Location())
	return base.AddDate(0, 0, ethDay-1)
}

// civil truncates an instant to midnight in its own location.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}
