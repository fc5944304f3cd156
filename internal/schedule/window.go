package schedule

import (
	"fmt"
	"strings"

	errorvalues "github.com/limbo/craveblock/internal/error_values"
)

// Interval is a parsed "start-end" window label. End before Start means the
// window runs past midnight.
type Interval struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func ParseWindow(label string) (Interval, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: window %q", errorvalues.ErrUnparseableTime, label)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

func (iv Interval) SpansMidnight() bool {
	return iv.End.Minutes() < iv.Start.Minutes()
}

// Contains reports whether minute-of-day m is inside the window, both ends inclusive.
func (iv Interval) Contains(m int) bool {
	start, end := iv.Start.Minutes(), iv.End.Minutes()
	if iv.SpansMidnight() {
		return m >= start || m <= end
	}
	return m >= start && m <= end
}

// MinutesUntilTransition is the time until the window ends when m is inside
// it, or until it next starts otherwise.
func (iv Interval) MinutesUntilTransition(m int) int {
	start, end := iv.Start.Minutes(), iv.End.Minutes()
	if iv.Contains(m) {
		switch {
		case iv.SpansMidnight() && m <= end:
			return end - m
		case iv.SpansMidnight():
			return minutesPerDay - m + end
		default:
			return end - m
		}
	}
	if m < start {
		return start - m
	}
	return minutesPerDay - m + start
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

func countdown(minutes int) Countdown {
	return Countdown{Hours: minutes / 60, Minutes: minutes % 60}
}
