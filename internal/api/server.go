package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/craveblock/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	onboardingService  service.OnboardingServiceI
	cravingLogsService service.CravingLogsServiceI
	dashboardService   service.DashboardServiceI
	jwtService         JWTServiceI
	location           *time.Location
}

type ServicesList struct {
	UserService        service.UserServiceI
	OnboardingService  service.OnboardingServiceI
	CravingLogsService service.CravingLogsServiceI
	DashboardService   service.DashboardServiceI
	JwtService         JWTServiceI
	// Used to evaluate plans when a request names no time zone. UTC if nil
	Location *time.Location
}

func New(servicesOptions *ServicesList) *Server {
	loc := servicesOptions.Location
	if loc == nil {
		loc = time.UTC
	}
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		onboardingService:  servicesOptions.OnboardingService,
		cravingLogsService: servicesOptions.CravingLogsService,
		dashboardService:   servicesOptions.DashboardService,
		jwtService:         servicesOptions.JwtService,
		location:           loc,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(middleware.Recoverer, s.MetricsMiddleware, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/plan/cheat-meal-options", s.GetCheatMealOptions)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/auth/logout", s.Logout)

			r.Get("/profile", s.GetProfile)
			r.Delete("/profile", s.DeleteAccount)
			r.Patch("/onboarding", s.PatchOnboarding)
			r.Post("/onboarding/submit", s.SubmitOnboarding)
			r.Put("/sync", s.Sync)
			r.Get("/outlook", s.GetOutlook)
			r.Get("/settings/notifications", s.GetNotifications)
			r.Put("/settings/notifications", s.UpdateNotifications)

			r.Get("/plan/recommendation", s.GetRecommendation)
			r.Post("/plan/accept", s.AcceptPlan)
			r.Post("/plan/manual", s.ManualPlan)
			r.Put("/plan", s.UpdatePlan)
			r.Get("/plan/status", s.GetStatus)
			r.Get("/plan/bridge", s.GetBridgeConfig)
			r.Post("/plan/override", s.Override)
			r.Get("/dashboard", s.GetDashboard)

			r.Post("/logs", s.CreateLog)
			r.Get("/logs", s.GetLogs)
			r.Get("/logs/range", s.GetLogsInRange)
			r.Get("/logs/today", s.GetTodayLogs)
			r.Get("/logs/success-rate", s.GetSuccessRate)
			r.Delete("/logs/{id}", s.DeleteLog)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
