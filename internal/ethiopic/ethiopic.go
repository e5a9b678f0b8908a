// Package ethiopic converts between the Gregorian and Ethiopian calendars
// and between standard 24-hour time and the Ethiopian 12-hour day-period
// clock. All functions are pure; callers supply the wall clock where one
// is needed.
//
// The Ethiopian calendar has twelve 30-day months followed by Pagume, a
// 5-or-6-day thirteenth month. The conversion here fixes the Ethiopian New
// Year at September 11 Gregorian and always permits Pagume day 6. Both are
// deliberate approximations kept for compatibility with the stored data.
package ethiopic

// Period is one of the three named blocks of the Ethiopian day.
type Period string

const (
	PeriodMorning   Period = "ጥዋት"
	PeriodAfternoon Period = "ከሰዓት"
	PeriodEvening   Period = "ማታ"
)

// Valid reports whether p is one of the three recognized period labels.
func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

// MonthNames holds the thirteen Ethiopian month names, Meskerem first.
var MonthNames = [13]string{
	"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሳስ", "ጥር", "የካቲት",
	"መጋቢት", "ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ",
}

// WeekdayNames holds the Ethiopian weekday names indexed by time.Weekday
// (Sunday first). The weekday cycle is shared with the Gregorian calendar;
// only the names differ.
var WeekdayNames = [7]string{
	"እሑድ", "ሰኞ", "ማክሰኞ", "ረቡዕ", "ሐሙስ", "ዓርብ", "ቅዳሜ",
}

// Date is an Ethiopian calendar date.
type Date struct {
	Year  int
	Month int // 1..13
	Day   int // 1..30, or 1..6 when Month is 13
}

// Time is an Ethiopian time of day.
type Time struct {
	Hour   int // 1..12
	Minute int // 0..59
	Period Period
}

// DateTime pairs a Date with a Time. ParseDate fills the time with a
// placeholder; the real time of day comes from ParseTime.
type DateTime struct {
	Date
	Time
}

// DaysInMonth returns the number of days accepted for the given Ethiopian
// month. Month 13 always reports 6 days (leap-year approximation).
func DaysInMonth(month int) int {
	if month == 13 {
		return 6
	}
	return 30
}
