// Package schedule answers whether a moment falls inside a blocking window
// of a plan and folds craving logs into savings metrics.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errorvalues "github.com/limbo/craveblock/internal/error_values"
)

const minutesPerDay = 24 * 60

var meridiemSuffix = regexp.MustCompile(`(?i)([ap])m$`)

// ClockTime is a wall-clock time of day, Hour in [0,23] and Minute in [0,59].
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock reads "HH:mm" or "hh:mm AM/PM" (suffix case-insensitive, minutes
// optional). Anything else, including out-of-range values, is reported as
// ErrUnparseableTime; callers decide on the fallback.
func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if m := meridiemSuffix.FindStringSubmatch(s); m != nil {
		hour, minute, err := splitClock(strings.TrimSpace(s[:len(s)-2]))
		if err != nil || hour > 12 {
			return ClockTime{}, unparseable(s)
		}
		isPM := strings.EqualFold(m[1], "p")
		switch {
		case isPM && hour < 12:
			hour += 12
		case !isPM && hour == 12:
			hour = 0
		}
		return newClock(s, hour, minute)
	}
	hour, minute, err := splitClock(s)
	if err != nil {
		return ClockTime{}, unparseable(s)
	}
	return newClock(s, hour, minute)
}

func splitClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 2 || parts[0] == "" {
		return 0, 0, errorvalues.ErrUnparseableTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute := 0
	if len(parts) == 2 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, err
		}
	}
	return hour, minute, nil
}

func newClock(raw string, hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, unparseable(raw)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func unparseable(raw string) error {
	return fmt.Errorf("%w: %q", errorvalues.ErrUnparseableTime, raw)
}
