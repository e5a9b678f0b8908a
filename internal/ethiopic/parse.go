package ethiopic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDate reports a malformed or out-of-range date string.
	ErrInvalidDate = errors.New("invalid ethiopian date")
	// ErrInvalidTime reports a malformed or out-of-range time string.
	ErrInvalidTime = errors.New("invalid ethiopian time")
)

// ParseDate parses a user-entered Ethiopian date of the form "DD MM YYYY".
// The returned DateTime carries a placeholder time of 12:00 morning; the
// real time of day comes from ParseTime.
func ParseDate(s string) (*DateTime, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want \"DD MM YYYY\", got %q", ErrInvalidDate, s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: day %q", ErrInvalidDate, parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: month %q", ErrInvalidDate, parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: year %q", ErrInvalidDate, parts[2])
	}

	if month < 1 || month > 13 {
		return nil, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(month) {
		return nil, fmt.Errorf("%w: day %d out of range for month %d", ErrInvalidDate, day, month)
	}

	return &DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: Time{Hour: 12, Minute: 0, Period: PeriodMorning},
	}, nil
}

// ParseTime parses a user-entered Ethiopian time of the form "HH:MM PERIOD"
// where PERIOD is one of the three recognized period labels.
func ParseTime(s string) (*Time, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want \"HH:MM PERIOD\", got %q", ErrInvalidTime, s)
	}

	period := Period(parts[1])
	if !period.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidTime, parts[1])
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return nil, fmt.Errorf("%w: clock %q", ErrInvalidTime, parts[0])
	}
	hour, err := strconv.Atoi(clock[0])
	if err != nil {
		return nil, fmt.Errorf("%w: hour %q", ErrInvalidTime, clock[0])
	}
	minute, err := strconv.Atoi(clock[1])
	if err != nil {
		return nil, fmt.Errorf("%w: minute %q", ErrInvalidTime, clock[1])
	}

	if hour < 1 || hour > 12 {
		return nil, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hour)
	}
	if minute < 0 || minute > 59 {
		return nil, fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, minute)
	}

	return &Time{Hour: hour, Minute: minute, Period: period}, nil
}
