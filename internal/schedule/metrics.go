package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/craveblock/pkg/entity"
)

type Metrics struct {
	MoneySaved      int `json:"moneySaved"`
	CaloriesAvoided int `json:"caloriesAvoided"`
	CravingsBlocked int `json:"cravingsBlocked"`
	CurrentStreak   int `json:"currentStreak"`
}

// ComputeMetrics folds logs into dashboard metrics. Log timestamps are read
// in the location of now, so calendar days follow the caller's wall clock.
func ComputeMetrics(plan *entity.BlockingPlan, logs []entity.CravingLog, now time.Time) Metrics {
	loc := now.Location()
	return Metrics{
		MoneySaved:      MoneySaved(plan, logs, loc),
		CaloriesAvoided: CaloriesAvoided(plan, logs, loc),
		CravingsBlocked: CravingsBlocked(plan, logs, loc),
		CurrentStreak:   CurrentStreak(plan, logs, now),
	}
}

func MoneySaved(plan *entity.BlockingPlan, logs []entity.CravingLog, loc *time.Location) int {
	total := 0.0
	for _, l := range blockedInWindow(plan, logs, loc) {
		total += l.SpendingAvoided
	}
	return int(math.Round(total))
}

func CaloriesAvoided(plan *entity.BlockingPlan, logs []entity.CravingLog, loc *time.Location) int {
	total := 0.0
	for _, l := range blockedInWindow(plan, logs, loc) {
		total += l.CaloriesAvoided
	}
	return int(math.Round(total))
}

func CravingsBlocked(plan *entity.BlockingPlan, logs []entity.CravingLog, loc *time.Location) int {
	return len(blockedInWindow(plan, logs, loc))
}

func blockedInWindow(plan *entity.BlockingPlan, logs []entity.CravingLog, loc *time.Location) []entity.CravingLog {
	out := make([]entity.CravingLog, 0, len(logs))
	for _, l := range logs {
		if l.IsSuccess && InBlockingWindow(plan, l.Timestamp.In(loc)) {
			out = append(out, l)
		}
	}
	return out
}

// CurrentStreak walks calendar days backwards from today. An in-window slip
// today resets the streak to zero. The walk stops at the first in-window slip
// or at the first log that does not belong to the day being counted, so a
// day without logs ends the streak. That includes today: three clean days
// before an unlogged today count as 0, not 3.
func CurrentStreak(plan *entity.BlockingPlan, logs []entity.CravingLog, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}
	loc := now.Location()
	sorted := make([]entity.CravingLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	today := startOfDay(now)
	slipped := func(l entity.CravingLog) bool {
		return !l.IsSuccess && InBlockingWindow(plan, l.Timestamp.In(loc))
	}
	for _, l := range sorted {
		if slipped(l) && startOfDay(l.Timestamp.In(loc)).Equal(today) {
			return 0
		}
	}

	streak := 0
	current := today
	for i, l := range sorted {
		if !startOfDay(l.Timestamp.In(loc)).Equal(current) {
			break
		}
		if slipped(l) {
			break
		}
		last := i == len(sorted)-1
		if last || !startOfDay(sorted[i+1].Timestamp.In(loc)).Equal(current) {
			streak++
			current = time.Date(current.Year(), current.Month(), current.Day()-1, 0, 0, 0, 0, loc)
		}
	}
	return streak
}

// SuccessRate is the share of blocked cravings in percent, 0 for no logs.
func SuccessRate(logs []entity.CravingLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	ok := 0
	for _, l := range logs {
		if l.IsSuccess {
			ok++
		}
	}
	return float64(ok) / float64(len(logs)) * 100
}

// FilterRange keeps logs with from <= timestamp <= to.
func FilterRange(logs []entity.CravingLog, from, to time.Time) []entity.CravingLog {
	out := make([]entity.CravingLog, 0)
	for _, l := range logs {
		if !l.Timestamp.Before(from) && !l.Timestamp.After(to) {
			out = append(out, l)
		}
	}
	return out
}

// DayBounds returns midnight of the day of t and midnight of the next day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := startOfDay(t)
	return start, time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
