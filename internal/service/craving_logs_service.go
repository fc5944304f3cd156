package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/repository"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
)

const timeOfDayLayout = "3:04 PM"

type CravingLogsService struct {
	logsRepo     repository.CravingLogsRepositoryI
	profilesRepo repository.ProfilesRepositoryI
}

func NewCravingLogsService(logsRepo repository.CravingLogsRepositoryI, profilesRepo repository.ProfilesRepositoryI) *CravingLogsService {
	if logsRepo == nil || profilesRepo == nil {
		log.Fatal("on craving logs service provided nil repos")
	}
	return &CravingLogsService{
		logsRepo:     logsRepo,
		profilesRepo: profilesRepo,
	}
}

// CreateLog stores a craving. A blocked craving is credited with the average
// spend and the calorie estimate from onboarding unless the request carries
// its own values; a slip saves nothing.
func (cls *CravingLogsService) CreateLog(ctx context.Context, uid uuid.UUID, req CreateLogRequest) (*entity.CravingLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	l := entity.CravingLog{
		UserID:     uid,
		Timestamp:  ts,
		TimeOfDay:  ts.Format(timeOfDayLayout),
		IsSuccess:  req.IsSuccess,
		Emotion:    req.Emotion,
		Trigger:    req.Trigger,
		Intensity:  req.Intensity,
		Notes:      req.Notes,
		BlockedApp: req.BlockedApp,
	}
	if req.IsSuccess && (req.SpendingAvoided == nil || req.CaloriesAvoided == nil) {
		profile, err := loadProfile(ctx, cls.profilesRepo, uid)
		if err != nil {
			return nil, err
		}
		l.SpendingAvoided = planner.AverageSpend(profile.Answers.SpendRange)
		l.CaloriesAvoided = float64(profile.Answers.EstimatedCalories)
		if l.CaloriesAvoided <= 0 {
			l.CaloriesAvoided = defaultMealCalories
		}
	}
	if req.SpendingAvoided != nil {
		l.SpendingAvoided = *req.SpendingAvoided
	}
	if req.CaloriesAvoided != nil {
		l.CaloriesAvoided = *req.CaloriesAvoided
	}
	err := cls.logsRepo.Create(ctx, &l)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrLogExists):
			return nil, err
		}
		return nil, errors.New("craving logs repository error: " + err.Error())
	}
	return &l, nil
}

func (cls *CravingLogsService) GetLogs(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.CravingLog, error) {
	logs, err := cls.logsRepo.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("craving logs repository error: " + err.Error())
	}
	return logs, nil
}

func (cls *CravingLogsService) GetLogsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.CravingLog, error) {
	if to.Before(from) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("range end is before its start"))
	}
	logs, err := cls.logsRepo.ListByUserInRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("craving logs repository error: " + err.Error())
	}
	return logs, nil
}

func (cls *CravingLogsService) GetTodayLogs(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.CravingLog, error) {
	start, end := schedule.DayBounds(now)
	logs, err := cls.logsRepo.ListByUserInRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("craving logs repository error: " + err.Error())
	}
	// the repository range is inclusive, next midnight belongs to tomorrow
	return schedule.FilterRange(logs, start, end.Add(-time.Nanosecond)), nil
}

func (cls *CravingLogsService) SuccessRate(ctx context.Context, uid uuid.UUID) (float64, error) {
	logs, err := cls.logsRepo.ListAllByUser(ctx, uid)
	if err != nil {
		return 0, errors.New("craving logs repository error: " + err.Error())
	}
	return schedule.SuccessRate(logs), nil
}

func (cls *CravingLogsService) DeleteLog(ctx context.Context, logID, uid uuid.UUID) error {
	l, err := cls.logsRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("craving logs repository error: " + err.Error())
	}
	if l.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = cls.logsRepo.Delete(ctx, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("craving logs repository error: " + err.Error())
	}
	return nil
}
