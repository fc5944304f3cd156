package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/craveblock/internal/bridge"
	"github.com/limbo/craveblock/internal/cli"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planJSON = `{
	"lockMode": "Balanced",
	"cheatMealSlot": "Saturday, 11:00 AM-3:00 PM",
	"weekdaySchedule": {"6:00 PM-9:00 AM": true},
	"weekendSchedule": {"8:00 AM-3:00 AM": false}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.Bytes(), err
}

func TestStatusCommand(t *testing.T) {
	plan := writeFile(t, "plan.json", planJSON)
	out, err := run(t, "status", "-f", plan, "--at", "2026-03-11T20:00:00Z")
	require.NoError(t, err)
	var status schedule.Status
	require.NoError(t, sonic.Unmarshal(out, &status))
	assert.True(t, status.IsBlocked)
	assert.Equal(t, "6:00 PM-9:00 AM", status.Window)
	assert.Equal(t, 83, status.Progress)

	_, err = run(t, "status", "-f", plan, "--at", "tonight")
	assert.Error(t, err)
	_, err = run(t, "status")
	assert.Error(t, err)
}

func TestMetricsCommand(t *testing.T) {
	plan := writeFile(t, "plan.json", planJSON)
	logs := writeFile(t, "logs.json", `[
		{"timestamp": "2026-03-11T19:00:00Z", "isSuccess": true, "spendingAvoided": 20, "caloriesAvoided": 1300},
		{"timestamp": "2026-03-11T12:00:00Z", "isSuccess": true, "spendingAvoided": 20, "caloriesAvoided": 1300}
	]`)
	out, err := run(t, "metrics", "-p", plan, "-l", logs, "--at", "2026-03-11T20:00:00Z")
	require.NoError(t, err)
	var m schedule.Metrics
	require.NoError(t, sonic.Unmarshal(out, &m))
	assert.Equal(t, schedule.Metrics{MoneySaved: 20, CaloriesAvoided: 1300, CravingsBlocked: 1, CurrentStreak: 1}, m)
}

func TestBridgeCommand(t *testing.T) {
	out, err := run(t, "bridge", "-f", writeFile(t, "plan.json", planJSON))
	require.NoError(t, err)
	var cfg bridge.ScheduleConfig
	require.NoError(t, sonic.Unmarshal(out, &cfg))
	assert.Equal(t, schedule.ClockTime{Hour: 18}, cfg.WeekdayStart)
	assert.Equal(t, schedule.ClockTime{Hour: 3}, cfg.WeekendEnd)
	assert.Equal(t, bridge.LevelBalanced, cfg.BlockLevel)

	_, err = run(t, "bridge", "-f", writeFile(t, "empty.json", `{"weekdaySchedule": {}, "weekendSchedule": {}}`))
	assert.Error(t, err)
}

func TestDeriveCommand(t *testing.T) {
	answers := writeFile(t, "answers.json", `{
		"takeoutFrequency": "Daily",
		"estimatedCalories": "1,300",
		"goals": ["save_money"],
		"cravingPatterns": {"cravingTimes": ["Evening (6-9 PM)"], "triggers": ["stress"]}
	}`)
	out, err := run(t, "derive", "-f", answers)
	require.NoError(t, err)
	var rec planner.Recommendation
	require.NoError(t, sonic.Unmarshal(out, &rec))
	assert.NotEmpty(t, rec.LockMode)
	assert.NotEmpty(t, rec.WeekdaySchedule)
}

func TestOutlookCommand(t *testing.T) {
	out, err := run(t, "outlook", "--spend", "100", "--calories", "4000")
	require.NoError(t, err)
	var o planner.Outlook
	require.NoError(t, sonic.Unmarshal(out, &o))
	assert.Equal(t, planner.ThreeMonthOutlook(100, 4000), o)

	_, err = run(t, "outlook", "--spend", "-1")
	assert.Error(t, err)
}
