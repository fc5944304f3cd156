package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/onboarding"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/repository"
	"github.com/limbo/craveblock/pkg/entity"
)

// Used for the forecast when the user gave no estimate
const defaultMealCalories = 800

type OnboardingService struct {
	repo repository.ProfilesRepositoryI
}

func NewOnboardingService(profilesRepo repository.ProfilesRepositoryI) *OnboardingService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &OnboardingService{
		repo: profilesRepo,
	}
}

// loadProfile returns the stored profile, or an empty one for users who
// have not saved anything yet.
func loadProfile(ctx context.Context, repo repository.ProfilesRepositoryI, uid uuid.UUID) (*entity.Profile, error) {
	profile, err := repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return &entity.Profile{
				UserID:  uid,
				Answers: onboarding.Reset(),
				Plan: entity.BlockingPlan{
					WeekdaySchedule: entity.Schedule{},
					WeekendSchedule: entity.Schedule{},
				},
			}, nil
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return profile, nil
}

func (obs *OnboardingService) save(ctx context.Context, profile *entity.Profile) error {
	profile.UpdatedAt = time.Now()
	err := obs.repo.Upsert(ctx, profile)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("profiles repository error: " + err.Error())
	}
	return nil
}

func (obs *OnboardingService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	return loadProfile(ctx, obs.repo, uid)
}

func (obs *OnboardingService) PatchAnswers(ctx context.Context, uid uuid.UUID, patch onboarding.Patch) (entity.OnboardingAnswers, error) {
	if err := validateStruct(patch); err != nil {
		return entity.OnboardingAnswers{}, err
	}
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return entity.OnboardingAnswers{}, err
	}
	profile.Answers = onboarding.Apply(profile.Answers, patch)
	if err = obs.save(ctx, profile); err != nil {
		return entity.OnboardingAnswers{}, err
	}
	return profile.Answers, nil
}

func (obs *OnboardingService) Submit(ctx context.Context, uid uuid.UUID, req *SubmitRequest) (*entity.Profile, error) {
	if err := validatePlan(req.Plan); err != nil {
		return nil, err
	}
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return nil, err
	}
	profile.Answers = onboarding.Clone(req.Answers)
	profile.Plan = req.Plan
	profile.OnboardingCompleted = true
	if err = obs.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (obs *OnboardingService) Sync(ctx context.Context, uid uuid.UUID, req *SyncRequest) (*entity.Profile, error) {
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return nil, err
	}
	profile.Answers = onboarding.Clone(req.Answers)
	profile.Plan = req.Plan
	profile.Notifications = req.Notifications
	if err = obs.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (obs *OnboardingService) Recommendation(ctx context.Context, uid uuid.UUID) (planner.Recommendation, error) {
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return planner.Recommendation{}, err
	}
	return planner.Derive(profile.Answers), nil
}

func (obs *OnboardingService) AcceptRecommendation(ctx context.Context, uid uuid.UUID, opts planner.AcceptOptions) (entity.BlockingPlan, error) {
	if err := validateStruct(opts); err != nil {
		return entity.BlockingPlan{}, err
	}
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return entity.BlockingPlan{}, err
	}
	profile.Plan = planner.Derive(profile.Answers).Plan(opts)
	if err = obs.save(ctx, profile); err != nil {
		return entity.BlockingPlan{}, err
	}
	return profile.Plan, nil
}

func (obs *OnboardingService) ManualPlan(ctx context.Context, uid uuid.UUID, sel planner.ManualSelection) (entity.BlockingPlan, error) {
	if err := validateStruct(sel); err != nil {
		return entity.BlockingPlan{}, err
	}
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return entity.BlockingPlan{}, err
	}
	profile.Plan = planner.ManualPlan(sel)
	if err = obs.save(ctx, profile); err != nil {
		return entity.BlockingPlan{}, err
	}
	return profile.Plan, nil
}

func (obs *OnboardingService) UpdatePlan(ctx context.Context, uid uuid.UUID, plan entity.BlockingPlan) (entity.BlockingPlan, error) {
	if err := validatePlan(plan); err != nil {
		return entity.BlockingPlan{}, err
	}
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return entity.BlockingPlan{}, err
	}
	profile.Plan = plan
	if err = obs.save(ctx, profile); err != nil {
		return entity.BlockingPlan{}, err
	}
	return profile.Plan, nil
}

func (obs *OnboardingService) GetNotifications(ctx context.Context, uid uuid.UUID) (entity.NotificationSettings, error) {
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return entity.NotificationSettings{}, err
	}
	return profile.Notifications, nil
}

func (obs *OnboardingService) UpdateNotifications(ctx context.Context, uid uuid.UUID, req NotificationsRequest) (entity.NotificationSettings, error) {
	if err := validateStruct(req); err != nil {
		return entity.NotificationSettings{}, err
	}
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return entity.NotificationSettings{}, err
	}
	profile.Notifications = entity.NotificationSettings{
		Enabled:           req.Enabled,
		DailyReminder:     req.DailyReminder,
		CheatMealReminder: req.CheatMealReminder,
		WeeklySummary:     req.WeeklySummary,
	}
	if err = obs.save(ctx, profile); err != nil {
		return entity.NotificationSettings{}, err
	}
	return profile.Notifications, nil
}

func (obs *OnboardingService) Outlook(ctx context.Context, uid uuid.UUID) (*OutlookResponse, error) {
	profile, err := loadProfile(ctx, obs.repo, uid)
	if err != nil {
		return nil, err
	}
	calories := int(profile.Answers.EstimatedCalories)
	if calories <= 0 {
		calories = defaultMealCalories
	}
	forecast := planner.Forecast(planner.TakeoutHabits{
		Frequency:  profile.Answers.TakeoutFrequency,
		SpendRange: profile.Answers.SpendRange,
		Calories:   calories,
	})
	return &OutlookResponse{
		Forecast: forecast,
		Outlook:  planner.ThreeMonthOutlook(forecast.MonthlySpend, forecast.MonthlyCalories),
	}, nil
}

type planRequest struct {
	LockMode entity.LockMode `validate:"required,lock_mode"`
}

func validatePlan(plan entity.BlockingPlan) error {
	return validateStruct(planRequest{LockMode: plan.LockMode})
}
