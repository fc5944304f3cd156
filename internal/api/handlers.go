package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/internal/service"
	"github.com/limbo/craveblock/pkg/entity"
	"github.com/limbo/craveblock/pkg/httputil"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type ProfileResponse struct {
	User *entity.User `json:"user"`
	*entity.Profile
}

type AuthResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
}

// errorStatus maps service errors to a status code and a client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, errorvalues.ErrUnparseableTime):
		return http.StatusBadRequest, "invalid time"
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, errorvalues.ErrLogNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		return http.StatusNotFound, "log doesn't exist"
	case errors.Is(err, errorvalues.ErrUserExists):
		return http.StatusConflict, "user with such email already exists"
	case errors.Is(err, errorvalues.ErrLogExists):
		return http.StatusConflict, "log already exists"
	case errors.Is(err, errorvalues.ErrInCheatWindow):
		return http.StatusConflict, "cheat meal window is active, nothing is blocked"
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return http.StatusForbidden, "invalid email or password"
	case errors.Is(err, errorvalues.ErrOverrideNotAllowed):
		return http.StatusForbidden, "override not allowed"
	case errors.Is(err, errorvalues.ErrInvalidSchedule):
		return http.StatusUnprocessableEntity, "plan has no usable schedule"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code, msg := errorStatus(err)
	if code == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, msg, nil)
		return
	}
	logger.Error(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, code, msg, err)
}

// decodeBody reads a JSON body into dst and reports a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// requestTime resolves the instant a plan is evaluated at. "at" is RFC3339
// and keeps its offset unless "tz" names an IANA zone; without either the
// current time in the server location is used.
func (s *Server) requestTime(r *http.Request) (time.Time, error) {
	q := r.URL.Query()
	var loc *time.Location
	if tz := strings.TrimSpace(q.Get("tz")); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, errors.Join(errorvalues.ErrValidation, err)
		}
		loc = l
	}
	at := time.Now().In(s.location)
	if raw := strings.TrimSpace(q.Get("at")); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, errors.Join(errorvalues.ErrValidation, err)
		}
		at = t
	}
	if loc != nil {
		at = at.In(loc)
	}
	return at, nil
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("registering error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such email doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
	logger.Info("successful login")
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	claims, ok := getClaimsFromContext(r)
	if !ok {
		logger.Error("logout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.jwtService.Revoke(claims.ID, expiresAt)
	w.WriteHeader(http.StatusNoContent)
	logger.Info("signed out")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	profile, err := s.onboardingService.GetProfile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{User: user, Profile: profile})
	logger.Info("profile provided")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, logger, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	if claims, ok := getClaimsFromContext(r); ok && claims.ExpiresAt != nil {
		s.jwtService.Revoke(claims.ID, claims.ExpiresAt.Time)
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}
