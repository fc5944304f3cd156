package planner

import (
	"slices"

	"github.com/limbo/craveblock/pkg/entity"
)

const (
	DaysWeekdays = "weekdays"
	DaysWeekends = "weekends"
)

type manualWindow struct {
	label string
	slot  string
}

// The manual path always lays out the same seven windows; the selected
// time-of-day slots decide which of them are on.
var manualWindows = []manualWindow{
	{"Early Morning (5-9 AM)", "morning"},
	{"Late Morning (9-12 PM)", "morning"},
	{"Early Afternoon (12-3 PM)", "afternoon"},
	{"Late Afternoon (3-6 PM)", "afternoon"},
	{"Evening (6-9 PM)", "evening"},
	{"Late Night (9 PM-12 AM)", "evening"},
	{"Night (12-5 AM)", "night"},
}

type CheatMealOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

const DefaultCheatMealOption = "saturday_evening"

var CheatMealOptions = []CheatMealOption{
	{ID: "saturday_lunch", Label: "Saturday Lunch", Time: "12:00 PM-2:00 PM"},
	{ID: "saturday_evening", Label: "Saturday Evening", Time: "6:00 PM-9:00 PM"},
	{ID: "sunday_lunch", Label: "Sunday Lunch", Time: "12:00 PM-2:00 PM"},
	{ID: "sunday_evening", Label: "Sunday Evening", Time: "6:00 PM-9:00 PM"},
}

type ManualSelection struct {
	LockMode  entity.LockMode `json:"lockMode" validate:"omitempty,lock_mode"`
	Days      []string        `json:"days" validate:"dive,oneof=weekdays weekends"`
	Times     []string        `json:"times" validate:"dive,oneof=morning afternoon evening night"`
	CheatMeal string          `json:"cheatMeal"`
}

// ManualPlan builds a plan from explicit choices. A day type that was not
// selected gets an empty schedule, which the evaluator treats as never blocked.
func ManualPlan(sel ManualSelection) entity.BlockingPlan {
	plan := entity.BlockingPlan{
		LockMode:        sel.LockMode,
		WeekdaySchedule: entity.Schedule{},
		WeekendSchedule: entity.Schedule{},
		CheatMealSlot:   cheatMealLabel(sel.CheatMeal),
	}
	if plan.LockMode == "" {
		plan.LockMode = entity.LockModeGentle
	}
	if slices.Contains(sel.Days, DaysWeekdays) {
		plan.WeekdaySchedule = manualSchedule(sel.Times)
	}
	if slices.Contains(sel.Days, DaysWeekends) {
		plan.WeekendSchedule = manualSchedule(sel.Times)
	}
	return plan
}

func manualSchedule(times []string) entity.Schedule {
	s := make(entity.Schedule, 0, len(manualWindows))
	for _, w := range manualWindows {
		s = append(s, entity.Window{Label: w.label, Enabled: slices.Contains(times, w.slot)})
	}
	return s
}

func cheatMealLabel(id string) string {
	if opt, ok := cheatMealOption(func(o CheatMealOption) bool { return o.ID == id }); ok {
		return opt.Label
	}
	opt, _ := cheatMealOption(func(o CheatMealOption) bool { return o.ID == DefaultCheatMealOption })
	return opt.Label
}

func cheatMealOption(match func(CheatMealOption) bool) (CheatMealOption, bool) {
	i := slices.IndexFunc(CheatMealOptions, match)
	if i < 0 {
		return CheatMealOption{}, false
	}
	return CheatMealOptions[i], true
}
