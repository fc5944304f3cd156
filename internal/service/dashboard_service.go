package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/craveblock/internal/bridge"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/repository"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/pkg/entity"
)

// DashboardService evaluates the stored plan against a point in time. Every
// call reads the profile afresh, so nothing is shared between requests.
type DashboardService struct {
	profilesRepo repository.ProfilesRepositoryI
	logsRepo     repository.CravingLogsRepositoryI
}

func NewDashboardService(profilesRepo repository.ProfilesRepositoryI, logsRepo repository.CravingLogsRepositoryI) *DashboardService {
	if profilesRepo == nil || logsRepo == nil {
		log.Fatal("on dashboard service provided nil repos")
	}
	return &DashboardService{
		profilesRepo: profilesRepo,
		logsRepo:     logsRepo,
	}
}

func (ds *DashboardService) Status(ctx context.Context, uid uuid.UUID, now time.Time) (schedule.Status, error) {
	profile, err := loadProfile(ctx, ds.profilesRepo, uid)
	if err != nil {
		return schedule.Status{}, err
	}
	return schedule.Evaluate(&profile.Plan, now), nil
}

func (ds *DashboardService) Dashboard(ctx context.Context, uid uuid.UUID, now time.Time) (*Dashboard, error) {
	profile, err := loadProfile(ctx, ds.profilesRepo, uid)
	if err != nil {
		return nil, err
	}
	logs, err := ds.logsRepo.ListAllByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("craving logs repository error: " + err.Error())
	}
	return &Dashboard{
		Status:  schedule.Evaluate(&profile.Plan, now),
		Metrics: schedule.ComputeMetrics(&profile.Plan, logs, now),
	}, nil
}

func (ds *DashboardService) BridgeConfig(ctx context.Context, uid uuid.UUID) (bridge.ScheduleConfig, error) {
	profile, err := loadProfile(ctx, ds.profilesRepo, uid)
	if err != nil {
		return bridge.ScheduleConfig{}, err
	}
	return bridge.BuildScheduleConfig(&profile.Plan)
}

// Override asks to lift the current block. There is nothing to lift inside
// the cheat meal window, and lockdown never allows it.
func (ds *DashboardService) Override(ctx context.Context, uid uuid.UUID, now time.Time) (bridge.Override, error) {
	profile, err := loadProfile(ctx, ds.profilesRepo, uid)
	if err != nil {
		return bridge.Override{}, err
	}
	if bridge.InCheatWindow(&profile.Plan, now) {
		return bridge.Override{}, errorvalues.ErrInCheatWindow
	}
	mode := profile.Plan.LockMode
	if mode == "" {
		mode = entity.LockModeGentle
	}
	return bridge.TryOverride(bridge.LevelFor(mode))
}
