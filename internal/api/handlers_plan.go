package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/craveblock/internal/onboarding"
	"github.com/limbo/craveblock/internal/planner"
	"github.com/limbo/craveblock/internal/schedule"
	"github.com/limbo/craveblock/internal/service"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/limbo/craveblock/pkg/httputil"
)

type SubmitOnboardingRequest struct {
	Answers entity.OnboardingAnswers `json:"answers"`
	Plan    entity.BlockingPlan      `json:"blockingPlan"`
}

type SyncRequest struct {
	Answers       entity.OnboardingAnswers    `json:"answers"`
	Plan          entity.BlockingPlan         `json:"blockingPlan"`
	Notifications entity.NotificationSettings `json:"notifications"`
}

type NotificationsRequest struct {
	Enabled           bool   `json:"enabled"`
	DailyReminder     string `json:"dailyReminder"`
	CheatMealReminder bool   `json:"cheatMealReminder"`
	WeeklySummary     bool   `json:"weeklySummary"`
}

type StatusResponse struct {
	At     time.Time       `json:"at"`
	Status schedule.Status `json:"status"`
}

func (s *Server) PatchOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("patch onboarding error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var patch onboarding.Patch
	if !decodeBody(w, r, logger, "patch onboarding", &patch) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	answers, err := s.onboardingService.PatchAnswers(ctx, uid, patch)
	if err != nil {
		writeServiceError(w, logger, "patch onboarding", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, answers)
	logger.Info("onboarding answers patched")
}

func (s *Server) SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit onboarding error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitOnboardingRequest
	if !decodeBody(w, r, logger, "submit onboarding", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.onboardingService.Submit(ctx, uid, &service.SubmitRequest{
		Answers: req.Answers,
		Plan:    req.Plan,
	})
	if err != nil {
		writeServiceError(w, logger, "submit onboarding", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("onboarding completed")
}

func (s *Server) Sync(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SyncRequest
	if !decodeBody(w, r, logger, "sync", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.onboardingService.Sync(ctx, uid, &service.SyncRequest{
		Answers:       req.Answers,
		Plan:          req.Plan,
		Notifications: req.Notifications,
	})
	if err != nil {
		writeServiceError(w, logger, "sync", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("profile synced")
}

func (s *Server) GetCheatMealOptions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"default": planner.DefaultCheatMealOption,
		"options": planner.CheatMealOptions,
	})
}

func (s *Server) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recommendation error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rec, err := s.onboardingService.Recommendation(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "recommendation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
	logger.Info("recommendation provided")
}

func (s *Server) AcceptPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("accept plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var opts planner.AcceptOptions
	if r.ContentLength != 0 && !decodeBody(w, r, logger, "accept plan", &opts) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	plan, err := s.onboardingService.AcceptRecommendation(ctx, uid, opts)
	if err != nil {
		writeServiceError(w, logger, "accept plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("recommended plan accepted")
}

func (s *Server) ManualPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("manual plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var sel planner.ManualSelection
	if !decodeBody(w, r, logger, "manual plan", &sel) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	plan, err := s.onboardingService.ManualPlan(ctx, uid, sel)
	if err != nil {
		writeServiceError(w, logger, "manual plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("manual plan stored")
}

func (s *Server) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var plan entity.BlockingPlan
	if !decodeBody(w, r, logger, "update plan", &plan) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stored, err := s.onboardingService.UpdatePlan(ctx, uid, plan)
	if err != nil {
		writeServiceError(w, logger, "update plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stored)
	logger.Info("plan updated")
}

func (s *Server) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get notifications error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	settings, err := s.onboardingService.GetNotifications(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get notifications", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update notifications error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req NotificationsRequest
	if !decodeBody(w, r, logger, "update notifications", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	settings, err := s.onboardingService.UpdateNotifications(ctx, uid, service.NotificationsRequest{
		Enabled:           req.Enabled,
		DailyReminder:     req.DailyReminder,
		CheatMealReminder: req.CheatMealReminder,
		WeeklySummary:     req.WeeklySummary,
	})
	if err != nil {
		writeServiceError(w, logger, "update notifications", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("notification settings updated")
}

func (s *Server) GetOutlook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("outlook error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	outlook, err := s.onboardingService.Outlook(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "outlook", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, outlook)
}

func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	now, err := s.requestTime(r)
	if err != nil {
		writeServiceError(w, logger, "status", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	status, err := s.dashboardService.Status(ctx, uid, now)
	if err != nil {
		writeServiceError(w, logger, "status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StatusResponse{At: now, Status: status})
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	now, err := s.requestTime(r)
	if err != nil {
		writeServiceError(w, logger, "dashboard", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	dashboard, err := s.dashboardService.Dashboard(ctx, uid, now)
	if err != nil {
		writeServiceError(w, logger, "dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}

func (s *Server) GetBridgeConfig(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("bridge config error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	cfg, err := s.dashboardService.BridgeConfig(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "bridge config", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cfg)
}

func (s *Server) Override(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("override error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	now, err := s.requestTime(r)
	if err != nil {
		writeServiceError(w, logger, "override", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	o, err := s.dashboardService.Override(ctx, uid, now)
	if err != nil {
		writeServiceError(w, logger, "override", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, o)
	logger.Info("override granted", "level", o.Level.String())
}
