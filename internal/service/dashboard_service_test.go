package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/craveblock/internal/bridge"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/repository/mocks"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/internal/service"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	logsRepo := mocks.NewMockCravingLogsRepositoryI(ctrl)
	serv := service.NewDashboardService(profilesRepo, logsRepo)
	ctx := context.Background()
	now := time.Date(2026, time.March, 11, 20, 0, 0, 0, time.UTC)

	t.Run("status inside the weekday window", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
		status, err := serv.Status(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, "6:00 PM-9:00 AM", status.Window)
		assert.True(t, status.IsBlocked)
		assert.Equal(t, schedule.Countdown{Hours: 13, Minutes: 0}, status.TimeUntil)
		assert.Equal(t, 83, status.Progress)
	})
	t.Run("status without a plan", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		status, err := serv.Status(ctx, userID, now)
		require.NoError(t, err)
		assert.False(t, status.IsBlocked)
		assert.Zero(t, status.Progress)
	})
	t.Run("metrics", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
		logsRepo.EXPECT().ListAllByUser(gomock.Any(), userID).Return([]entity.CravingLog{
			{UserID: userID, Timestamp: now.Add(-time.Hour), IsSuccess: true, SpendingAvoided: 20, CaloriesAvoided: 1300},
			// outside the window, not counted
			{UserID: userID, Timestamp: now.Add(-8 * time.Hour), IsSuccess: true, SpendingAvoided: 20, CaloriesAvoided: 1300},
		}, nil)
		d, err := serv.Dashboard(ctx, userID, now)
		require.NoError(t, err)
		assert.True(t, d.Status.IsBlocked)
		assert.Equal(t, schedule.Metrics{MoneySaved: 20, CaloriesAvoided: 1300, CravingsBlocked: 1, CurrentStreak: 1}, d.Metrics)
	})
}

func TestBridgeAndOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewDashboardService(profilesRepo, mocks.NewMockCravingLogsRepositoryI(ctrl))
	ctx := context.Background()
	wednesday := time.Date(2026, time.March, 11, 20, 0, 0, 0, time.UTC)
	saturdayLunch := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	t.Run("bridge config", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
		cfg, err := serv.BridgeConfig(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, schedule.ClockTime{Hour: 18}, cfg.WeekdayStart)
		assert.Equal(t, schedule.ClockTime{Hour: 9}, cfg.WeekdayEnd)
		assert.Equal(t, schedule.ClockTime{Hour: 8}, cfg.WeekendStart)
		assert.Equal(t, schedule.ClockTime{Hour: 3}, cfg.WeekendEnd)
		assert.Equal(t, bridge.LevelBalanced, cfg.BlockLevel)
	})
	t.Run("bridge config without plan", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		_, err := serv.BridgeConfig(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSchedule)
	})
	t.Run("override balanced", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
		o, err := serv.Override(ctx, userID, wednesday)
		require.NoError(t, err)
		assert.Equal(t, 30, o.DelayMinutes)
	})
	t.Run("override refused in lockdown", func(t *testing.T) {
		p := storedProfile()
		p.Plan.LockMode = entity.LockModeCompleteLockdown
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(p, nil)
		_, err := serv.Override(ctx, userID, wednesday)
		assert.ErrorIs(t, err, errorvalues.ErrOverrideNotAllowed)
	})
	t.Run("nothing to override during cheat meal", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
		_, err := serv.Override(ctx, userID, saturdayLunch)
		assert.ErrorIs(t, err, errorvalues.ErrInCheatWindow)
	})
	t.Run("gentle without plan", func(t *testing.T) {
		profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		o, err := serv.Override(ctx, userID, wednesday)
		require.NoError(t, err)
		assert.Equal(t, bridge.LevelGentle, o.Level)
		assert.Equal(t, 15, o.DelayMinutes)
	})
}
