package planner

import (
	"strings"
	"time"

	"github.com/limbo/craveblock/internal/schedule"
)

type CheatMeal struct {
	Day    time.Weekday
	Window schedule.Interval
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseCheatMealSlot reads "Saturday, 11:00 AM-3:00 PM" as well as the
// comma-less "Saturday 11:00 AM-3:00 PM" written by edited plans. Manual
// option labels such as "Saturday Evening" resolve through the option table.
func ParseCheatMealSlot(slot string) (CheatMeal, bool) {
	slot = strings.TrimSpace(slot)
	if opt, ok := cheatMealOption(func(o CheatMealOption) bool { return strings.EqualFold(o.Label, slot) }); ok {
		day, _, _ := strings.Cut(opt.Label, " ")
		slot = day + ", " + opt.Time
	}

	day, rest, ok := strings.Cut(slot, ",")
	if !ok {
		day, rest, ok = strings.Cut(slot, " ")
		if !ok {
			return CheatMeal{}, false
		}
	}
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(day))]
	if !ok {
		return CheatMeal{}, false
	}
	iv, err := schedule.ParseWindow(rest)
	if err != nil {
		return CheatMeal{}, false
	}
	return CheatMeal{Day: wd, Window: iv}, true
}

// Contains reports whether t falls inside the cheat meal window. The part of
// a window past midnight belongs to the following day.
func (c CheatMeal) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	if !c.Window.Contains(m) {
		return false
	}
	if c.Window.SpansMidnight() && m <= c.Window.End.Minutes() {
		return t.Weekday() == (c.Day+1)%7
	}
	return t.Weekday() == c.Day
}
