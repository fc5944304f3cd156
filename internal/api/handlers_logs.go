package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/service"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/limbo/craveblock/pkg/httputil"
)

type CreateLogRequest struct {
	IsSuccess       bool       `json:"isSuccess"`
	Emotion         string     `json:"emotion"`
	Trigger         string     `json:"trigger"`
	Intensity       int        `json:"intensity"`
	Notes           string     `json:"notes"`
	BlockedApp      string     `json:"blockedApp"`
	Timestamp       *time.Time `json:"timestamp,omitempty"`
	SpendingAvoided *float64   `json:"spendingAvoided,omitempty"`
	CaloriesAvoided *float64   `json:"caloriesAvoided,omitempty"`
}

type GetLogsResponse struct {
	UserID string              `json:"uid"`
	Page   int                 `json:"page"`
	Limit  int                 `json:"limit"`
	Logs   []entity.CravingLog `json:"logs"`
}

func (s *Server) CreateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateLogRequest
	if !decodeBody(w, r, logger, "create log", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	l, err := s.cravingLogsService.CreateLog(ctx, uid, service.CreateLogRequest{
		IsSuccess:       req.IsSuccess,
		Emotion:         req.Emotion,
		Trigger:         req.Trigger,
		Intensity:       req.Intensity,
		Notes:           req.Notes,
		BlockedApp:      req.BlockedApp,
		Timestamp:       req.Timestamp,
		SpendingAvoided: req.SpendingAvoided,
		CaloriesAvoided: req.CaloriesAvoided,
	})
	if err != nil {
		writeServiceError(w, logger, "create log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, l)
	logger.Info("craving logged", "blocked", l.IsSuccess)
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.cravingLogsService.GetLogs(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "get logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLogsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Logs:   logs,
	})
	logger.Info("logs provided")
}

func (s *Server) GetLogsInRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs in range error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, errFrom := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	to, errTo := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err = errors.Join(errFrom, errTo); err != nil {
		logger.Error("get logs in range error: invalid bounds")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be RFC3339 timestamps", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.cravingLogsService.GetLogsInRange(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "get logs in range", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logs": logs})
}

func (s *Server) GetTodayLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get today logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	now, err := s.requestTime(r)
	if err != nil {
		writeServiceError(w, logger, "get today logs", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.cravingLogsService.GetTodayLogs(ctx, uid, now)
	if err != nil {
		writeServiceError(w, logger, "get today logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logs": logs})
}

func (s *Server) GetSuccessRate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("success rate error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	rate, err := s.cravingLogsService.SuccessRate(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "success rate", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"successRate": rate})
}

func (s *Server) DeleteLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("log deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.cravingLogsService.DeleteLog(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrLogNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("log deletion error: unexist log or different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "log doesn't exist", nil)
		default:
			writeServiceError(w, logger, "log deletion", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("log deleted")
}
