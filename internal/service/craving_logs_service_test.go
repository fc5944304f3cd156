package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/repository/mocks"
	"github.com/limbo/craveblock/internal/service"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var logTime = time.Date(2026, time.March, 11, 19, 0, 0, 0, time.UTC)

func TestCreateLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockCravingLogsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewCravingLogsService(logsRepo, profilesRepo)
	spending := 12.5

	testCases := []struct {
		Desc         string
		Error        error
		Req          service.CreateLogRequest
		Spending     float64
		Calories     float64
		MockPrepFunc func()
	}{
		{
			Desc:     "blocked craving credited from onboarding",
			Req:      service.CreateLogRequest{IsSuccess: true, BlockedApp: "Deliveroo", Timestamp: &logTime},
			Spending: 20,
			Calories: 1300,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
				logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:     "explicit spending wins",
			Req:      service.CreateLogRequest{IsSuccess: true, BlockedApp: "Deliveroo", Timestamp: &logTime, SpendingAvoided: &spending},
			Spending: 12.5,
			Calories: 1300,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(storedProfile(), nil)
				logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:     "default calories without onboarding",
			Req:      service.CreateLogRequest{IsSuccess: true, BlockedApp: "Uber Eats", Timestamp: &logTime},
			Spending: 0,
			Calories: 800,
			MockPrepFunc: func() {
				profilesRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
				logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc: "slip saves nothing",
			Req: service.CreateLogRequest{
				BlockedApp: "Just Eat",
				Timestamp:  &logTime,
				Intensity:  3,
				Trigger:    "stress",
				Emotion:    "tired",
			},
			MockPrepFunc: func() {
				logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "error missing app",
			Error:        errorvalues.ErrValidation,
			Req:          service.CreateLogRequest{IsSuccess: true},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error intensity out of range",
			Error:        errorvalues.ErrValidation,
			Req:          service.CreateLogRequest{BlockedApp: "Just Eat", Intensity: 5},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error unexisted user",
			Error: errorvalues.ErrUserNotFound,
			Req:   service.CreateLogRequest{BlockedApp: "Just Eat", Timestamp: &logTime},
			MockPrepFunc: func() {
				logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrOwnerNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			l, err := serv.CreateLog(ctx, userID, tc.Req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error != nil {
				return
			}
			require.NotNil(t, l)
			assert.Equal(t, userID, l.UserID)
			assert.Equal(t, "7:00 PM", l.TimeOfDay)
			assert.Equal(t, tc.Req.IsSuccess, l.IsSuccess)
			assert.InDelta(t, tc.Spending, l.SpendingAvoided, 1e-9)
			assert.InDelta(t, tc.Calories, l.CaloriesAvoided, 1e-9)
		})
	}
}

func TestGetLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockCravingLogsRepositoryI(ctrl)
	serv := service.NewCravingLogsService(logsRepo, mocks.NewMockProfilesRepositoryI(ctrl))
	ctx := context.Background()
	logs := []entity.CravingLog{
		{ID: uuid.New(), UserID: userID, Timestamp: logTime, IsSuccess: true},
		{ID: uuid.New(), UserID: userID, Timestamp: logTime.Add(-time.Hour), IsSuccess: true},
		{ID: uuid.New(), UserID: userID, Timestamp: logTime.Add(-26 * time.Hour)},
	}

	t.Run("paginated", func(t *testing.T) {
		logsRepo.EXPECT().ListByUser(gomock.Any(), userID, 2, 2).Return(logs[2:], nil)
		got, err := serv.GetLogs(ctx, userID, service.PaginationOpts{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
	t.Run("repository error", func(t *testing.T) {
		logsRepo.EXPECT().ListByUser(gomock.Any(), userID, 10, 0).Return(nil, errors.New("db down"))
		_, err := serv.GetLogs(ctx, userID, service.PaginationOpts{Limit: 10})
		assert.Error(t, err)
	})
	t.Run("range", func(t *testing.T) {
		from, to := logTime.Add(-2*time.Hour), logTime
		logsRepo.EXPECT().ListByUserInRange(gomock.Any(), userID, from, to).Return(logs[:2], nil)
		got, err := serv.GetLogsInRange(ctx, userID, from, to)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
	t.Run("reversed range", func(t *testing.T) {
		_, err := serv.GetLogsInRange(ctx, userID, logTime, logTime.Add(-time.Hour))
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("today", func(t *testing.T) {
		start := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)
		midnight := entity.CravingLog{ID: uuid.New(), UserID: userID, Timestamp: end}
		logsRepo.EXPECT().ListByUserInRange(gomock.Any(), userID, start, end).
			Return([]entity.CravingLog{midnight, logs[0], logs[1]}, nil)
		got, err := serv.GetTodayLogs(ctx, userID, logTime)
		require.NoError(t, err)
		assert.Equal(t, logs[:2], got)
	})
	t.Run("success rate", func(t *testing.T) {
		logsRepo.EXPECT().ListAllByUser(gomock.Any(), userID).Return(logs, nil)
		rate, err := serv.SuccessRate(ctx, userID)
		require.NoError(t, err)
		assert.InDelta(t, 200.0/3, rate, 1e-9)
	})
	t.Run("success rate without logs", func(t *testing.T) {
		logsRepo.EXPECT().ListAllByUser(gomock.Any(), userID).Return([]entity.CravingLog{}, nil)
		rate, err := serv.SuccessRate(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, rate)
	})
}

func TestDeleteLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockCravingLogsRepositoryI(ctrl)
	serv := service.NewCravingLogsService(logsRepo, mocks.NewMockProfilesRepositoryI(ctrl))
	logID := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			MockPrepFunc: func() {
				logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(&entity.CravingLog{ID: logID, UserID: userID}, nil)
				logsRepo.EXPECT().Delete(gomock.Any(), logID).Return(nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(&entity.CravingLog{ID: logID, UserID: uuid.New()}, nil)
			},
		},
		{
			Desc:  "error log not found",
			Error: errorvalues.ErrLogNotFound,
			MockPrepFunc: func() {
				logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(nil, errorvalues.ErrLogNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteLog(ctx, logID, userID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}
