package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/craveblock/internal/bridge"
	"github.com/limbo/craveblock/internal/onboarding"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Name     string `validate:"required,min=2,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type SubmitRequest struct {
	Answers entity.OnboardingAnswers
	Plan    entity.BlockingPlan
}

type SyncRequest struct {
	Answers       entity.OnboardingAnswers
	Plan          entity.BlockingPlan
	Notifications entity.NotificationSettings
}

type NotificationsRequest struct {
	Enabled           bool
	DailyReminder     string `validate:"omitempty,clock"`
	CheatMealReminder bool
	WeeklySummary     bool
}

type CreateLogRequest struct {
	IsSuccess bool
	Emotion   string `validate:"max=64"`
	Trigger   string `validate:"max=64"`
	Intensity int    `validate:"omitempty,min=1,max=3"`
	Notes     string `validate:"max=1000"`
	// App the craving was about
	BlockedApp string `validate:"required,max=100"`
	// Creation time when nil
	Timestamp       *time.Time
	SpendingAvoided *float64 `validate:"omitempty,min=0"`
	CaloriesAvoided *float64 `validate:"omitempty,min=0"`
}

type OutlookResponse struct {
	Forecast planner.ForecastResult `json:"forecast"`
	Outlook  planner.Outlook        `json:"outlook"`
}

type Dashboard struct {
	Status  schedule.Status  `json:"status"`
	Metrics schedule.Metrics `json:"metrics"`
}

//go:generate mockgen -source=interfaces.go -destination=mocks/services.go -package=mocks

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Removes user with profile and logs after password check
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type OnboardingServiceI interface {
	// Returns stored profile or a fresh one when user has not saved anything yet
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	PatchAnswers(ctx context.Context, uid uuid.UUID, patch onboarding.Patch) (entity.OnboardingAnswers, error)
	// Stores answers with the chosen plan and marks onboarding as completed
	Submit(ctx context.Context, uid uuid.UUID, req *SubmitRequest) (*entity.Profile, error)
	// Replaces whole profile with the device copy, last writer wins
	Sync(ctx context.Context, uid uuid.UUID, req *SyncRequest) (*entity.Profile, error)
	Recommendation(ctx context.Context, uid uuid.UUID) (planner.Recommendation, error)
	AcceptRecommendation(ctx context.Context, uid uuid.UUID, opts planner.AcceptOptions) (entity.BlockingPlan, error)
	ManualPlan(ctx context.Context, uid uuid.UUID, sel planner.ManualSelection) (entity.BlockingPlan, error)
	UpdatePlan(ctx context.Context, uid uuid.UUID, plan entity.BlockingPlan) (entity.BlockingPlan, error)
	GetNotifications(ctx context.Context, uid uuid.UUID) (entity.NotificationSettings, error)
	UpdateNotifications(ctx context.Context, uid uuid.UUID, req NotificationsRequest) (entity.NotificationSettings, error)
	Outlook(ctx context.Context, uid uuid.UUID) (*OutlookResponse, error)
}

type CravingLogsServiceI interface {
	CreateLog(ctx context.Context, uid uuid.UUID, req CreateLogRequest) (*entity.CravingLog, error)
	GetLogs(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.CravingLog, error)
	GetLogsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.CravingLog, error)
	// Logs of the calendar day of now, in the location of now
	GetTodayLogs(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.CravingLog, error)
	SuccessRate(ctx context.Context, uid uuid.UUID) (float64, error)
	DeleteLog(ctx context.Context, logID, uid uuid.UUID) error
}

type DashboardServiceI interface {
	Status(ctx context.Context, uid uuid.UUID, now time.Time) (schedule.Status, error)
	Dashboard(ctx context.Context, uid uuid.UUID, now time.Time) (*Dashboard, error)
	BridgeConfig(ctx context.Context, uid uuid.UUID) (bridge.ScheduleConfig, error)
	Override(ctx context.Context, uid uuid.UUID, now time.Time) (bridge.Override, error)
}
