package ethiopic

import "fmt"

// TimeTo24Hour renders an Ethiopian clock reading as zero-padded
// "HH:MM:00", the form the storage layer keeps.
//
// The Ethiopian day begins at 06:00 standard time, so morning hour h is
// h+6 (hour 12 is 06:00), afternoon hour h is h+6 past noon (hour 12 is
// 18:00), and evening hour h is h+18 wrapping past midnight.
func TimeTo24Hour(hour, minute int, period Period) string {
	var h24 int
	switch period {
	case PeriodMorning:
		h24 = hour + 6
		if hour == 12 {
			h24 = 6
		}
	case PeriodAfternoon:
		h24 = hour + 6
		if hour == 12 {
			h24 = 18
		}
	default: // evening
		h24 = (hour + 18) % 24
		if hour == 12 {
			h24 = 18
		}
	}
	return fmt.Sprintf("%02d:%02d:00", h24, minute)
}

// TimeFromClock converts a standard 24-hour reading to the Ethiopian
// clock. Minutes pass through unchanged.
func TimeFromClock(hour24, minute int) (hour int, min int, period Period) {
	hour = (hour24 - 6 + 12) % 12
	if hour == 0 {
		hour = 12
	}
	switch {
	case hour24 >= 6 && hour24 < 12:
		period = PeriodMorning
	case hour24 >= 12 && hour24 < 18:
		period = PeriodAfternoon
	default:
		period = PeriodEvening
	}
	return hour, minute, period
}
