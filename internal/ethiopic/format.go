package ethiopic

import (
	"fmt"
	"time"
)

// EraSuffix marks an Ethiopian-era year in formatted dates.
const EraSuffix = "ዓ.ም"

// FormatDate renders a Gregorian instant as an Ethiopian display date,
// e.g. "15 መስከረም 2017 ዓ.ም".
func FormatDate(t time.Time) string {
	c := FromGregorian(t)
	return fmt.Sprintf("%d %s %d %s", c.Day, MonthNames[c.Month-1], c.Year, EraSuffix)
}

// FormatCompleteDate prefixes FormatDate with the Ethiopian weekday name,
// e.g. "ማክሰኞ፣ 15 መስከረም 2017 ዓ.ም".
func FormatCompleteDate(t time.Time) string {
	return fmt.Sprintf("%s፣ %s", Weekday(t), FormatDate(t))
}

// Weekday returns the Ethiopian name of the instant's weekday. Ethiopian
// and Gregorian weekdays share the same cycle.
func Weekday(t time.Time) string {
	return WeekdayNames[int(t.Weekday())]
}

// FormatEthiopianDate renders an already-parsed Ethiopian date without
// converting through the Gregorian calendar.
func FormatEthiopianDate(d Date) string {
	return fmt.Sprintf("%d %s %d %s", d.Day, MonthNames[d.Month-1], d.Year, EraSuffix)
}

// FormatTime renders a stored 24-hour "HH:MM" or "HH:MM:SS" reading on the
// Ethiopian clock, e.g. "6:30 ከሰዓት". Malformed input is returned unchanged.
func FormatTime(clock string) string {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return clock
	}
	hour, minute, period := TimeFromClock(h, m)
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// FormatEthiopianTime renders a parsed Ethiopian time for display.
func FormatEthiopianTime(t Time) string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, t.Period)
}
