package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const secondsPerDay = 24 * 60 * 60

// Clock is a time of day with minute precision. Dates are irrelevant to bedtime math.
type Clock struct {
	Hour   int
	Minute int
}

// DefaultWakeTime is the wake time a new form starts with.
var DefaultWakeTime = Clock{Hour: 7, Minute: 0}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 {
		return Clock{}, fmt.Errorf("%w: time of day must be HH:MM, got %q", ErrInvalidInput, s)
	}

	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("%w: hour out of range in %q", ErrInvalidInput, s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: minute out of range in %q", ErrInvalidInput, s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// ClockFromSeconds folds any number of seconds onto a 24h dial.
func ClockFromSeconds(seconds int) Clock {
	seconds = ((seconds % secondsPerDay) + secondsPerDay) % secondsPerDay
	return Clock{Hour: seconds / 3600, Minute: (seconds % 3600) / 60}
}

// SecondsSinceMidnight is the model's "wake" feature.
func (c Clock) SecondsSinceMidnight() int {
	return c.Hour*3600 + c.Minute*60
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}
