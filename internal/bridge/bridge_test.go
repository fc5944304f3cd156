package bridge_test

import (
	"testing"
	"time"

	"github.com/limbo/craveblock/internal/bridge"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	cases := []struct {
		mode  entity.LockMode
		level bridge.BlockLevel
		index int
		delay time.Duration
	}{
		{entity.LockModeGentle, bridge.LevelGentle, 0, 15 * time.Minute},
		{entity.LockModeBalanced, bridge.LevelBalanced, 1, 30 * time.Minute},
		{entity.LockModeStrict, bridge.LevelStrict, 2, 45 * time.Minute},
		{entity.LockModeCompleteLockdown, bridge.LevelLockdown, 3, 0},
		{"Unknown", bridge.LevelGentle, 0, 15 * time.Minute},
	}
	for _, c := range cases {
		t.Run(string(c.mode), func(t *testing.T) {
			level := bridge.LevelFor(c.mode)
			assert.Equal(t, c.level, level)
			assert.Equal(t, c.index, int(level))
			assert.Equal(t, c.delay, level.OverrideDelay())
		})
	}

	assert.Equal(t, bridge.LevelGentle, bridge.LevelFromIndex(7))
	assert.Equal(t, bridge.LevelGentle, bridge.LevelFromIndex(-1))
	assert.Equal(t, bridge.LevelStrict, bridge.LevelFromIndex(2))
	assert.Equal(t, "lockdown", bridge.LevelLockdown.String())
}

func TestTryOverride(t *testing.T) {
	got, err := bridge.TryOverride(bridge.LevelBalanced)
	require.NoError(t, err)
	assert.Equal(t, "You've set a 30-minute pause. Take a breather, then decide.", got.Message)
	assert.Equal(t, 30, got.DelayMinutes)

	got, err = bridge.TryOverride(bridge.LevelGentle)
	require.NoError(t, err)
	assert.Equal(t, 15, got.DelayMinutes)

	_, err = bridge.TryOverride(bridge.LevelLockdown)
	assert.ErrorIs(t, err, errorvalues.ErrOverrideNotAllowed)
	assert.Contains(t, err.Error(), "No override allowed")
}

func TestBuildScheduleConfig(t *testing.T) {
	plan := &entity.BlockingPlan{
		LockMode:        entity.LockModeStrict,
		CheatMealSlot:   "Saturday, 11:00 AM-3:00 PM",
		WeekdaySchedule: entity.Schedule{{Label: "6:00 PM-9:00 AM", Enabled: true}},
		WeekendSchedule: entity.Schedule{{Label: "12:00 PM-9:00 AM", Enabled: false}},
	}

	t.Run("derived plan", func(t *testing.T) {
		cfg, err := bridge.BuildScheduleConfig(plan)
		require.NoError(t, err)

		assert.Equal(t, schedule.ClockTime{Hour: 18}, cfg.WeekdayStart)
		assert.Equal(t, schedule.ClockTime{Hour: 9}, cfg.WeekdayEnd)
		assert.Equal(t, schedule.ClockTime{Hour: 12}, cfg.WeekendStart)
		assert.Equal(t, schedule.ClockTime{Hour: 9}, cfg.WeekendEnd)
		assert.Equal(t, "Saturday", cfg.CheatDay)
		require.NotNil(t, cfg.CheatStart)
		assert.Equal(t, schedule.ClockTime{Hour: 11}, *cfg.CheatStart)
		assert.Equal(t, schedule.ClockTime{Hour: 15}, *cfg.CheatEnd)
		assert.Equal(t, bridge.LevelStrict, cfg.BlockLevel)
		assert.Equal(t, 45, cfg.OverrideDelayMinutes)
	})

	t.Run("cheat slot without times is optional", func(t *testing.T) {
		p := *plan
		p.CheatMealSlot = "Whenever"
		cfg, err := bridge.BuildScheduleConfig(&p)
		require.NoError(t, err)
		assert.Nil(t, cfg.CheatStart)
		assert.Nil(t, cfg.CheatEnd)
	})

	t.Run("manual labels cannot be configured", func(t *testing.T) {
		p := *plan
		p.WeekdaySchedule = entity.Schedule{{Label: "Early Morning (5-9 AM)", Enabled: true}}
		_, err := bridge.BuildScheduleConfig(&p)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSchedule)
	})

	t.Run("empty schedule", func(t *testing.T) {
		p := *plan
		p.WeekendSchedule = entity.Schedule{}
		_, err := bridge.BuildScheduleConfig(&p)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSchedule)
	})

	t.Run("no plan", func(t *testing.T) {
		_, err := bridge.BuildScheduleConfig(nil)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSchedule)
	})
}

func TestScheduleConfigValidate(t *testing.T) {
	cfg := bridge.ScheduleConfig{WeekdayStart: schedule.ClockTime{Hour: 24}}
	assert.ErrorIs(t, cfg.Validate(), errorvalues.ErrInvalidSchedule)

	cfg = bridge.ScheduleConfig{WeekendEnd: schedule.ClockTime{Minute: 60}}
	assert.ErrorIs(t, cfg.Validate(), errorvalues.ErrInvalidSchedule)

	start := schedule.ClockTime{Hour: 12}
	cfg = bridge.ScheduleConfig{CheatStart: &start}
	assert.ErrorIs(t, cfg.Validate(), errorvalues.ErrInvalidSchedule)

	end := schedule.ClockTime{Hour: 14}
	cfg = bridge.ScheduleConfig{CheatStart: &start, CheatEnd: &end}
	assert.NoError(t, cfg.Validate())
}

func TestInCheatWindow(t *testing.T) {
	plan := &entity.BlockingPlan{CheatMealSlot: "Saturday Evening"}
	saturday := time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)

	assert.True(t, bridge.InCheatWindow(plan, saturday))
	assert.False(t, bridge.InCheatWindow(plan, saturday.Add(-3*time.Hour)))
	assert.False(t, bridge.InCheatWindow(plan, saturday.AddDate(0, 0, -3)))
	assert.False(t, bridge.InCheatWindow(nil, saturday))
	assert.False(t, bridge.InCheatWindow(&entity.BlockingPlan{CheatMealSlot: "Anytime"}, saturday))

	overnight := &entity.BlockingPlan{CheatMealSlot: "Friday, 10:00 PM-2:00 AM"}
	saturdayEarly := time.Date(2026, time.March, 14, 1, 0, 0, 0, time.UTC)
	assert.True(t, bridge.InCheatWindow(overnight, saturdayEarly))
	assert.False(t, bridge.InCheatWindow(overnight, saturdayEarly.AddDate(0, 0, -1)))
}
