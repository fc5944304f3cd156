// Package planner turns onboarding answers into a blocking plan.
package planner

import (
	"slices"
	"strings"

	"github.com/limbo/craveblock/pkg/entity"
)

// Candidate windows, in the order they appear in a derived schedule.
const (
	WindowEveningToMorning = "6:00 PM-9:00 AM"
	WindowWeekendExtended  = "12:00 PM-9:00 AM"
	WindowAfterDrinking    = "6:00 PM-3:00 AM"
	WindowFallback         = "4:00 PM-10:00 PM"
	WindowWeekendMorning   = "6:00 AM-9:00 AM"
)

var candidateWindows = []string{
	WindowEveningToMorning,
	WindowWeekendExtended,
	WindowAfterDrinking,
	WindowFallback,
	WindowWeekendMorning,
}

const (
	CheatMealWeekly   = "weekly"
	CheatMealBiWeekly = "bi-weekly"
)

var frequencyScores = map[string]int{
	"1-2 times a week": 1,
	"2-3 times a week": 2,
	"3-4 times a week": 3,
	"4-5 times a week": 4,
	"5+ times a week":  5,
}

var relationshipScores = map[string]int{
	"stop":              4,
	"planned":           3,
	"once_week":         3,
	"special_occasions": 2,
	"budget":            2,
	"mindful":           1,
}

var controlGoals = []string{"weight_loss", "save_money", "control"}

// Recommendation is the full output of Derive. The schedules hold every
// candidate window with its flag; Plan collapses them to what gets stored.
type Recommendation struct {
	BehaviorIntensity   float64         `json:"behaviorIntensity"`
	DesiredControlLevel float64         `json:"desiredControlLevel"`
	BlockingIntensity   float64         `json:"blockingIntensity"`
	LockMode            entity.LockMode `json:"lockMode"`
	WeekdaySchedule     entity.Schedule `json:"weekdaySchedule"`
	WeekendSchedule     entity.Schedule `json:"weekendSchedule"`
	CheatMealSlot       string          `json:"cheatMealSlot"`
	CheatMealFrequency  string          `json:"cheatMealFrequency"`
}

// Derive is pure: the same answers always give the same recommendation.
func Derive(a entity.OnboardingAnswers) Recommendation {
	behavior := BehaviorIntensity(a)
	control := DesiredControlLevel(a)
	intensity := behavior * control

	rec := Recommendation{
		BehaviorIntensity:   behavior,
		DesiredControlLevel: control,
		BlockingIntensity:   intensity,
		LockMode:            LockModeFor(intensity),
	}
	rec.WeekdaySchedule, rec.WeekendSchedule = deriveWindows(a.CravingPatterns, intensity)

	day, window, frequency := "Saturday", "11:00 AM-3:00 PM", CheatMealWeekly
	switch {
	case intensity > 0.8:
		window, frequency = "11:00 AM-1:00 PM", CheatMealBiWeekly
	case intensity > 0.6:
		window = "11:00 AM-2:00 PM"
	}
	triggers := a.CravingPatterns.Triggers
	if slices.Contains(triggers, "weekends") || slices.Contains(triggers, "after_drinking") {
		day = "Wednesday"
	}
	rec.CheatMealSlot = day + ", " + window
	rec.CheatMealFrequency = frequency
	return rec
}

// BehaviorIntensity scores current ordering behavior in [0,1].
func BehaviorIntensity(a entity.OnboardingAnswers) float64 {
	score := frequencyScores[a.TakeoutFrequency]
	if spend, ok := leadingNumber(a.SpendRange); ok {
		switch {
		case spend > 40:
			score += 3
		case spend > 25:
			score += 2
		case spend > 15:
			score += 1
		}
	}
	score += len(a.CravingPatterns.CravingTimes) + len(a.CravingPatterns.Triggers)
	return min(float64(score)/12, 1)
}

// DesiredControlLevel scores how much control the user asks for in [0,1].
func DesiredControlLevel(a entity.OnboardingAnswers) float64 {
	score := relationshipScores[a.HealthyRelationship]
	for _, g := range controlGoals {
		if slices.Contains(a.Goals, g) {
			score++
		}
	}
	if a.DesiredControl == "full" {
		score += 3
	} else {
		score++
	}
	return min(float64(score)/10, 1)
}

// LockModeFor maps blocking intensity to a lock mode. Everything up to 0.5,
// zero included, stays Gentle.
func LockModeFor(intensity float64) entity.LockMode {
	switch {
	case intensity > 0.75:
		return entity.LockModeStrict
	case intensity > 0.5:
		return entity.LockModeBalanced
	default:
		return entity.LockModeGentle
	}
}

func deriveWindows(p entity.CravingPatterns, intensity float64) (entity.Schedule, entity.Schedule) {
	weekday := make(entity.Schedule, 0, len(candidateWindows))
	for _, label := range candidateWindows {
		weekday = append(weekday, entity.Window{Label: label})
	}
	weekend := weekday.Clone()

	if slices.Contains(p.CravingTimes, "evening") ||
		slices.Contains(p.CravingTimes, "late_night") ||
		slices.Contains(p.Triggers, "after_work") {
		weekday = weekday.Set(WindowEveningToMorning, true)
		if intensity > 0.7 {
			weekday = weekday.Set(WindowFallback, true)
		}
	}
	if slices.Contains(p.Triggers, "weekends") {
		weekend = weekend.Set(WindowWeekendExtended, true)
		if intensity > 0.6 {
			weekend = weekend.Set(WindowWeekendMorning, true)
		}
	}
	if slices.Contains(p.Triggers, "after_drinking") {
		weekday = weekday.Set(WindowAfterDrinking, true)
		weekend = weekend.Set(WindowAfterDrinking, true)
	}
	noSignal := len(p.CravingTimes) == 0 && len(p.Triggers) == 0
	if noSignal || slices.Contains(p.CravingTimes, "other") {
		weekday = weekday.Set(WindowFallback, true)
		if intensity > 0.5 {
			weekend = weekend.Set(WindowWeekendMorning, true)
		}
	}
	return weekday, weekend
}

// AcceptOptions carries the edits a user makes on the plan review screen.
// Zero values keep the recommendation.
type AcceptOptions struct {
	WeekdayStart    string `json:"weekdayStart,omitempty" validate:"omitempty,clock"`
	WeekdayEnd      string `json:"weekdayEnd,omitempty" validate:"omitempty,clock"`
	WeekdayEnabled  *bool  `json:"weekdayEnabled,omitempty"`
	WeekendStart    string `json:"weekendStart,omitempty" validate:"omitempty,clock"`
	WeekendEnd      string `json:"weekendEnd,omitempty" validate:"omitempty,clock"`
	WeekendEnabled  *bool  `json:"weekendEnabled,omitempty"`
	CheatMealDay    string `json:"cheatMealDay,omitempty"`
	CheatMealWindow string `json:"cheatMealWindow,omitempty"`
}

// Plan collapses the recommendation into the stored plan: one window per day
// type, taken from the first candidate and its flag unless edited.
func (r Recommendation) Plan(opts AcceptOptions) entity.BlockingPlan {
	slot := r.CheatMealSlot
	if opts.CheatMealDay != "" && opts.CheatMealWindow != "" {
		slot = opts.CheatMealDay + " " + opts.CheatMealWindow
	}
	return entity.BlockingPlan{
		LockMode:        r.LockMode,
		CheatMealSlot:   slot,
		WeekdaySchedule: collapse(r.WeekdaySchedule, "6:00 PM-3:00 AM", opts.WeekdayStart, opts.WeekdayEnd, opts.WeekdayEnabled),
		WeekendSchedule: collapse(r.WeekendSchedule, "8:00 AM-3:00 AM", opts.WeekendStart, opts.WeekendEnd, opts.WeekendEnabled),
	}
}

func collapse(s entity.Schedule, fallback, start, end string, enabled *bool) entity.Schedule {
	label, on := fallback, true
	if w, ok := s.First(); ok {
		label, on = w.Label, w.Enabled
	}
	defStart, defEnd, _ := strings.Cut(label, "-")
	if start == "" {
		start = defStart
	}
	if end == "" {
		end = defEnd
	}
	if enabled != nil {
		on = *enabled
	}
	return entity.Schedule{{Label: start + "-" + end, Enabled: on}}
}
