// @title CraveBlock API
// @description API for the CraveBlock takeout-craving blocker: onboarding, blocking plans, craving logs
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/limbo/craveblock/internal/api"
	"github.com/limbo/craveblock/internal/repository"
	"github.com/limbo/craveblock/internal/service"
	"github.com/limbo/craveblock/pkg/cleanup"
	"github.com/limbo/craveblock/pkg/config"
	jwtservice "github.com/limbo/craveblock/pkg/jwt_service"
	"github.com/limbo/craveblock/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(logger.New(cfg.LogLevel, cfg.LogFile))
	defer cleanup.CleanUp()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.NewStore(ctx, cfg.StorageBackend, &repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}, cfg.SQLitePath)
	if err != nil {
		slog.Error("opening storage error", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		return
	}
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(store.Users),
		OnboardingService:  service.NewOnboardingService(store.Profiles),
		CravingLogsService: service.NewCravingLogsService(store.Logs, store.Profiles),
		DashboardService:   service.NewDashboardService(store.Profiles, store.Logs),
		JwtService:         jwtservice.New(cfg.JWTSecret, cfg.TokenTTL),
		Location:           loc,
	})
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
