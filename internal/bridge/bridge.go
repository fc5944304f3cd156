// Package bridge builds the parameters the native blocking module is
// configured with and answers override requests the way it does.
package bridge

import (
	"errors"
	"fmt"
	"time"

	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
)

type BlockLevel int

const (
	LevelGentle BlockLevel = iota
	LevelBalanced
	LevelStrict
	LevelLockdown
)

var levelNames = [...]string{"gentle", "balanced", "strict", "lockdown"}

var levelMessages = [...]string{
	"Pause for 15 minutes. Still want it? You can override after reflecting.",
	"You've set a 30-minute pause. Take a breather, then decide.",
	"45-minute block in place. Confirm you really want to override.",
	"App is locked until your scheduled period ends. No override allowed.",
}

var levelDelays = [...]int{15, 30, 45, 0}

// LevelFor maps a plan's lock mode to the native block level. Unknown modes
// get the gentle level, as the native side does for unknown indexes.
func LevelFor(mode entity.LockMode) BlockLevel {
	switch mode {
	case entity.LockModeBalanced:
		return LevelBalanced
	case entity.LockModeStrict:
		return LevelStrict
	case entity.LockModeCompleteLockdown:
		return LevelLockdown
	default:
		return LevelGentle
	}
}

// LevelFromIndex mirrors setBlockLevel: out-of-range indexes fall back to gentle.
func LevelFromIndex(i int) BlockLevel {
	if i < int(LevelGentle) || i > int(LevelLockdown) {
		return LevelGentle
	}
	return BlockLevel(i)
}

func (l BlockLevel) valid() BlockLevel {
	return LevelFromIndex(int(l))
}

func (l BlockLevel) String() string {
	return levelNames[l.valid()]
}

func (l BlockLevel) Message() string {
	return levelMessages[l.valid()]
}

// OverrideDelay is how long a craving has to wait before it can be
// overridden. Lockdown has no delay because it cannot be overridden at all.
func (l BlockLevel) OverrideDelay() time.Duration {
	return time.Duration(levelDelays[l.valid()]) * time.Minute
}

type ScheduleConfig struct {
	WeekdayStart         schedule.ClockTime  `json:"weekdayStart"`
	WeekdayEnd           schedule.ClockTime  `json:"weekdayEnd"`
	WeekendStart         schedule.ClockTime  `json:"weekendStart"`
	WeekendEnd           schedule.ClockTime  `json:"weekendEnd"`
	CheatDay             string              `json:"cheatDay,omitempty"`
	CheatStart           *schedule.ClockTime `json:"cheatStart,omitempty"`
	CheatEnd             *schedule.ClockTime `json:"cheatEnd,omitempty"`
	BlockLevel           BlockLevel          `json:"blockLevel"`
	OverrideDelayMinutes int                 `json:"overrideDelayMinutes"`
}

// BuildScheduleConfig reads the first window of each schedule and the cheat
// meal slot. A cheat slot without a time range is left out rather than
// failing the whole configuration.
func BuildScheduleConfig(plan *entity.BlockingPlan) (ScheduleConfig, error) {
	if plan == nil {
		return ScheduleConfig{}, fmt.Errorf("%w: no plan", errorvalues.ErrInvalidSchedule)
	}
	weekday, err := firstInterval(plan.WeekdaySchedule, "weekday")
	if err != nil {
		return ScheduleConfig{}, err
	}
	weekend, err := firstInterval(plan.WeekendSchedule, "weekend")
	if err != nil {
		return ScheduleConfig{}, err
	}
	level := LevelFor(plan.LockMode)
	cfg := ScheduleConfig{
		WeekdayStart:         weekday.Start,
		WeekdayEnd:           weekday.End,
		WeekendStart:         weekend.Start,
		WeekendEnd:           weekend.End,
		BlockLevel:           level,
		OverrideDelayMinutes: int(level.OverrideDelay() / time.Minute),
	}
	if meal, ok := planner.ParseCheatMealSlot(plan.CheatMealSlot); ok {
		start, end := meal.Window.Start, meal.Window.End
		cfg.CheatDay = meal.Day.String()
		cfg.CheatStart, cfg.CheatEnd = &start, &end
	}
	return cfg, cfg.Validate()
}

func firstInterval(s entity.Schedule, direction string) (schedule.Interval, error) {
	w, ok := s.First()
	if !ok {
		return schedule.Interval{}, fmt.Errorf("%w: %s schedule is empty", errorvalues.ErrInvalidSchedule, direction)
	}
	iv, err := schedule.ParseWindow(w.Label)
	if err != nil {
		return schedule.Interval{}, errors.Join(errorvalues.ErrInvalidSchedule, err)
	}
	return iv, nil
}

// Validate applies the native side's range checks: hour 0-23, minute 0-59,
// and cheat start and end given together.
func (c ScheduleConfig) Validate() error {
	times := []struct {
		name string
		t    schedule.ClockTime
	}{
		{"weekdayStart", c.WeekdayStart},
		{"weekdayEnd", c.WeekdayEnd},
		{"weekendStart", c.WeekendStart},
		{"weekendEnd", c.WeekendEnd},
	}
	for _, v := range times {
		if err := validateTime(v.name, v.t); err != nil {
			return err
		}
	}
	if (c.CheatStart == nil) != (c.CheatEnd == nil) {
		return fmt.Errorf("%w: cheat start and end must be set together", errorvalues.ErrInvalidSchedule)
	}
	if c.CheatStart != nil {
		if err := validateTime("cheatStart", *c.CheatStart); err != nil {
			return err
		}
		if err := validateTime("cheatEnd", *c.CheatEnd); err != nil {
			return err
		}
	}
	return nil
}

func validateTime(name string, t schedule.ClockTime) error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: %s %02d:%02d out of range", errorvalues.ErrInvalidSchedule, name, t.Hour, t.Minute)
	}
	return nil
}

type Override struct {
	Level        BlockLevel `json:"level"`
	Message      string     `json:"message"`
	DelayMinutes int        `json:"delayMinutes"`
}

// TryOverride answers an override request. Lockdown refuses with its message.
func TryOverride(level BlockLevel) (Override, error) {
	level = level.valid()
	if level == LevelLockdown {
		return Override{}, fmt.Errorf("%w: %s", errorvalues.ErrOverrideNotAllowed, level.Message())
	}
	return Override{
		Level:        level,
		Message:      level.Message(),
		DelayMinutes: int(level.OverrideDelay() / time.Minute),
	}, nil
}

// InCheatWindow reports whether now is inside the plan's cheat meal slot, in
// which case monitoring is not started.
func InCheatWindow(plan *entity.BlockingPlan, now time.Time) bool {
	if plan == nil {
		return false
	}
	meal, ok := planner.ParseCheatMealSlot(plan.CheatMealSlot)
	return ok && meal.Contains(now)
}
