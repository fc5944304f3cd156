package schedule

import (
	"errors"
	"math"
	"time"

	"github.com/limbo/craveblock/pkg/entity"
)

var errNoWindow = errors.New("no blocking window in schedule")

type Status struct {
	Window    string    `json:"currentWindow"`
	Weekend   bool      `json:"weekend"`
	InWindow  bool      `json:"inWindow"`
	IsBlocked bool      `json:"isBlocked"`
	TimeUntil Countdown `json:"timeUntilBlock"`
	Progress  int       `json:"progress"`
}

func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// ActiveSchedule picks the weekend or weekday set for the day of t.
func ActiveSchedule(plan *entity.BlockingPlan, t time.Time) entity.Schedule {
	if plan == nil {
		return nil
	}
	if IsWeekend(t) {
		return plan.WeekendSchedule
	}
	return plan.WeekdaySchedule
}

// CurrentWindow returns the window evaluated for t: only the first window of
// the active schedule is considered, whatever the others are set to.
func CurrentWindow(plan *entity.BlockingPlan, t time.Time) (entity.Window, Interval, error) {
	w, ok := ActiveSchedule(plan, t).First()
	if !ok {
		return entity.Window{}, Interval{}, errNoWindow
	}
	iv, err := ParseWindow(w.Label)
	if err != nil {
		return w, Interval{}, err
	}
	return w, iv, nil
}

// Evaluate computes the dashboard status for now. A missing plan, an empty
// schedule or an unparseable window label all give the not-blocked,
// zero-progress status instead of an error.
func Evaluate(plan *entity.BlockingPlan, now time.Time) Status {
	status := Status{Weekend: IsWeekend(now)}
	w, iv, err := CurrentWindow(plan, now)
	if err != nil {
		status.Window = w.Label
		return status
	}
	current := minuteOfDay(now)
	status.Window = w.Label
	status.InWindow = iv.Contains(current)
	status.IsBlocked = status.InWindow && w.Enabled
	status.TimeUntil = countdown(iv.MinutesUntilTransition(current))
	status.Progress = dayProgress(current)
	return status
}

// InBlockingWindow is the containment check used when filtering logs. The
// enabled flag of the window is not consulted.
func InBlockingWindow(plan *entity.BlockingPlan, t time.Time) bool {
	_, iv, err := CurrentWindow(plan, t)
	if err != nil {
		return false
	}
	return iv.Contains(minuteOfDay(t))
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func dayProgress(current int) int {
	p := int(math.Round(float64(current) / minutesPerDay * 100))
	return min(100, max(0, p))
}
