package dateutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day with minute precision
type Clock struct {
	Hour   int
	Minute int
}

// OnTime is the canonical on-time arrival, 09:00
var OnTime = Clock{Hour: 9, Minute: 0}

// ParseClock parses an HH:MM string (00-23, 00-59)
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid minute in %q", s)
	}

	return Clock{Hour: h, Minute: m}, nil
}

// String formats the clock as HH:MM
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// IsOnTime reports whether c equals the canonical on-time value
func (c Clock) IsOnTime() bool {
	return c == OnTime
}
