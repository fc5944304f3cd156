package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-11 is a Wednesday, 2026-03-14 a Saturday.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		in       string
		expected schedule.ClockTime
		fails    bool
	}{
		{in: "18:00", expected: schedule.ClockTime{Hour: 18}},
		{in: "09:05", expected: schedule.ClockTime{Hour: 9, Minute: 5}},
		{in: " 7:30 ", expected: schedule.ClockTime{Hour: 7, Minute: 30}},
		{in: "6:00 PM", expected: schedule.ClockTime{Hour: 18}},
		{in: "6:00pm", expected: schedule.ClockTime{Hour: 18}},
		{in: "12:00 AM", expected: schedule.ClockTime{Hour: 0}},
		{in: "12:30 PM", expected: schedule.ClockTime{Hour: 12, Minute: 30}},
		{in: "11:59 PM", expected: schedule.ClockTime{Hour: 23, Minute: 59}},
		{in: "6 PM", expected: schedule.ClockTime{Hour: 18}},
		{in: "", fails: true},
		{in: "PM", fails: true},
		{in: "24:00", fails: true},
		{in: "13:00 PM", fails: true},
		{in: "10:60", fails: true},
		{in: "Early Morning (5", fails: true},
		{in: "1:2:3", fails: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := schedule.ParseClock(tc.in)
			if tc.fails {
				assert.ErrorIs(t, err, errorvalues.ErrUnparseableTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTwelveAndTwentyFourHourWindowsAgree(t *testing.T) {
	twelve, err := schedule.ParseWindow("6:00 PM-9:00 AM")
	require.NoError(t, err)
	twentyFour, err := schedule.ParseWindow("18:00-09:00")
	require.NoError(t, err)
	assert.Equal(t, twentyFour, twelve)
	assert.Equal(t, 18*60, twelve.Start.Minutes())
	assert.Equal(t, 9*60, twelve.End.Minutes())
}

func TestParseWindowRejectsLabels(t *testing.T) {
	for _, label := range []string{"Early Morning (5-9 AM)", "Saturday Evening", "18:00", "1-2-3"} {
		_, err := schedule.ParseWindow(label)
		assert.True(t, errors.Is(err, errorvalues.ErrUnparseableTime), label)
	}
}

func TestIntervalContains(t *testing.T) {
	overnight, err := schedule.ParseWindow("22:00-07:00")
	require.NoError(t, err)
	assert.True(t, overnight.SpansMidnight())
	assert.True(t, overnight.Contains(23*60+30))
	assert.True(t, overnight.Contains(3*60))
	assert.True(t, overnight.Contains(22*60))
	assert.True(t, overnight.Contains(7*60))
	assert.False(t, overnight.Contains(12*60))

	daytime, err := schedule.ParseWindow("4:00 PM-10:00 PM")
	require.NoError(t, err)
	assert.False(t, daytime.SpansMidnight())
	assert.True(t, daytime.Contains(16*60))
	assert.True(t, daytime.Contains(22*60))
	assert.False(t, daytime.Contains(22*60+1))
	assert.False(t, daytime.Contains(3*60))
}

func TestMinutesUntilTransition(t *testing.T) {
	overnight, _ := schedule.ParseWindow("22:00-07:00")
	daytime, _ := schedule.ParseWindow("16:00-22:00")
	testCases := []struct {
		name     string
		iv       schedule.Interval
		current  int
		expected int
	}{
		{"overnight, morning part", overnight, 3 * 60, 4 * 60},
		{"overnight, end minute", overnight, 7 * 60, 0},
		{"overnight, start minute", overnight, 22 * 60, 9 * 60},
		{"daytime, end minute", daytime, 22 * 60, 0},
		{"overnight, evening part", overnight, 23*60 + 30, 7*60 + 30},
		{"overnight, before start", overnight, 12 * 60, 10 * 60},
		{"daytime, inside", daytime, 17*60 + 15, 4*60 + 45},
		{"daytime, before start", daytime, 10 * 60, 6 * 60},
		{"daytime, after end", daytime, 23 * 60, 17 * 60},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.iv.MinutesUntilTransition(tc.current))
		})
	}
}

func testPlan() *entity.BlockingPlan {
	return &entity.BlockingPlan{
		LockMode:      entity.LockModeBalanced,
		CheatMealSlot: "Saturday, 11:00 AM-3:00 PM",
		WeekdaySchedule: entity.Schedule{
			{Label: "6:00 PM-9:00 AM", Enabled: true},
			{Label: "4:00 PM-10:00 PM", Enabled: true},
		},
		WeekendSchedule: entity.Schedule{
			{Label: "12:00 PM-9:00 AM", Enabled: false},
		},
	}
}

func TestEvaluate(t *testing.T) {
	plan := testPlan()
	t.Run("weekday inside enabled window", func(t *testing.T) {
		st := schedule.Evaluate(plan, at(11, 23, 30))
		assert.Equal(t, "6:00 PM-9:00 AM", st.Window)
		assert.False(t, st.Weekend)
		assert.True(t, st.InWindow)
		assert.True(t, st.IsBlocked)
		assert.Equal(t, schedule.Countdown{Hours: 9, Minutes: 30}, st.TimeUntil)
		assert.Equal(t, 98, st.Progress)
	})
	t.Run("end minute of overnight window", func(t *testing.T) {
		st := schedule.Evaluate(plan, at(11, 9, 0))
		assert.True(t, st.InWindow)
		assert.Equal(t, schedule.Countdown{}, st.TimeUntil)
	})
	t.Run("only the first window counts", func(t *testing.T) {
		// 17:00 is inside the second weekday window but not the first.
		st := schedule.Evaluate(plan, at(11, 17, 0))
		assert.False(t, st.InWindow)
		assert.False(t, st.IsBlocked)
		assert.Equal(t, schedule.Countdown{Hours: 1, Minutes: 0}, st.TimeUntil)
	})
	t.Run("weekend window disabled", func(t *testing.T) {
		st := schedule.Evaluate(plan, at(14, 13, 0))
		assert.True(t, st.Weekend)
		assert.True(t, st.InWindow)
		assert.False(t, st.IsBlocked)
	})
	t.Run("nil plan", func(t *testing.T) {
		st := schedule.Evaluate(nil, at(11, 12, 0))
		assert.False(t, st.IsBlocked)
		assert.Zero(t, st.Progress)
		assert.Empty(t, st.Window)
	})
	t.Run("empty schedule", func(t *testing.T) {
		st := schedule.Evaluate(&entity.BlockingPlan{}, at(11, 12, 0))
		assert.False(t, st.IsBlocked)
		assert.Zero(t, st.Progress)
	})
	t.Run("unparseable label", func(t *testing.T) {
		manual := &entity.BlockingPlan{WeekdaySchedule: entity.Schedule{{Label: "Early Morning (5-9 AM)", Enabled: true}}}
		st := schedule.Evaluate(manual, at(11, 6, 0))
		assert.Equal(t, "Early Morning (5-9 AM)", st.Window)
		assert.False(t, st.InWindow)
		assert.False(t, st.IsBlocked)
		assert.Zero(t, st.Progress)
	})
	t.Run("progress bounds", func(t *testing.T) {
		assert.Equal(t, 0, schedule.Evaluate(plan, at(11, 0, 0)).Progress)
		assert.Equal(t, 50, schedule.Evaluate(plan, at(11, 12, 0)).Progress)
		assert.Equal(t, 100, schedule.Evaluate(plan, at(11, 23, 59)).Progress)
	})
}

func TestPlanSurvivesSerialization(t *testing.T) {
	plan := testPlan()
	data, err := sonic.ConfigDefault.Marshal(plan)
	require.NoError(t, err)
	assert.Contains(t, string(data), `{"6:00 PM-9:00 AM":true,"4:00 PM-10:00 PM":true}`)

	var decoded entity.BlockingPlan
	require.NoError(t, sonic.ConfigDefault.Unmarshal(data, &decoded))
	assert.Equal(t, *plan, decoded)
	for _, moment := range []time.Time{at(11, 3, 0), at(11, 12, 0), at(11, 19, 0), at(14, 13, 0), at(15, 8, 0)} {
		assert.Equal(t, schedule.Evaluate(plan, moment), schedule.Evaluate(&decoded, moment))
	}
}

func TestComputeMetrics(t *testing.T) {
	plan := testPlan()
	now := at(11, 21, 0)
	t.Run("empty logs", func(t *testing.T) {
		assert.Equal(t, schedule.Metrics{}, schedule.ComputeMetrics(plan, nil, now))
		assert.Equal(t, schedule.Metrics{}, schedule.ComputeMetrics(plan, []entity.CravingLog{}, now))
	})
	t.Run("filter then reduce", func(t *testing.T) {
		logs := []entity.CravingLog{
			{Timestamp: at(11, 19, 0), IsSuccess: true, SpendingAvoided: 22.5, CaloriesAvoided: 800},
			{Timestamp: at(11, 8, 0), IsSuccess: true, SpendingAvoided: 17.5, CaloriesAvoided: 750.4},
			{Timestamp: at(11, 12, 0), IsSuccess: true, SpendingAvoided: 30, CaloriesAvoided: 900},
			{Timestamp: at(11, 20, 0), IsSuccess: false, SpendingAvoided: 40, CaloriesAvoided: 1000},
		}
		m := schedule.ComputeMetrics(plan, logs, now)
		assert.Equal(t, 40, m.MoneySaved)
		assert.Equal(t, 1550, m.CaloriesAvoided)
		assert.Equal(t, 2, m.CravingsBlocked)
		assert.Equal(t, 0, m.CurrentStreak)
	})
	t.Run("no plan blocks nothing", func(t *testing.T) {
		logs := []entity.CravingLog{{Timestamp: at(11, 19, 0), IsSuccess: true, SpendingAvoided: 22.5}}
		assert.Zero(t, schedule.ComputeMetrics(nil, logs, now).MoneySaved)
	})
}

func TestCurrentStreak(t *testing.T) {
	plan := testPlan()
	now := at(11, 21, 0)
	success := func(day, hour int) entity.CravingLog {
		return entity.CravingLog{Timestamp: at(day, hour, 0), IsSuccess: true}
	}
	slip := func(day, hour int) entity.CravingLog {
		return entity.CravingLog{Timestamp: at(day, hour, 0), IsSuccess: false}
	}
	testCases := []struct {
		name     string
		logs     []entity.CravingLog
		expected int
	}{
		{"no logs", nil, 0},
		{"three consecutive days", []entity.CravingLog{success(9, 19), success(11, 19), success(10, 19)}, 3},
		{"several logs a day", []entity.CravingLog{success(11, 19), success(11, 20), success(10, 22), success(10, 19)}, 2},
		{"slip today resets", []entity.CravingLog{success(9, 19), success(10, 19), success(11, 19), slip(11, 20)}, 0},
		{"slip today outside window ignored", []entity.CravingLog{slip(11, 12), success(10, 19)}, 2},
		{"gap ends streak", []entity.CravingLog{success(11, 19), success(9, 19), success(8, 19)}, 1},
		{"nothing logged today", []entity.CravingLog{success(10, 19), success(9, 19)}, 0},
		{"slip yesterday stops walk", []entity.CravingLog{success(11, 19), slip(10, 19), success(9, 19)}, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, schedule.CurrentStreak(plan, tc.logs, now))
		})
	}
}

func TestSuccessRateAndRanges(t *testing.T) {
	logs := []entity.CravingLog{
		{Timestamp: at(11, 19, 0), IsSuccess: true},
		{Timestamp: at(11, 8, 0), IsSuccess: false},
		{Timestamp: at(10, 12, 0), IsSuccess: true},
		{Timestamp: at(9, 12, 0), IsSuccess: true},
	}
	assert.Equal(t, 75.0, schedule.SuccessRate(logs))
	assert.Zero(t, schedule.SuccessRate(nil))

	from, to := schedule.DayBounds(at(11, 15, 0))
	assert.Equal(t, at(11, 0, 0), from)
	assert.Equal(t, at(12, 0, 0), to)
	today := schedule.FilterRange(logs, from, to)
	assert.Len(t, today, 2)
	assert.Len(t, schedule.FilterRange(logs, at(9, 12, 0), at(10, 12, 0)), 2)
}
