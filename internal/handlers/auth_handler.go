package handlers

import (
	"log/slog"
	"net/http"

	"classboard/internal/middleware"
	"classboard/internal/model"
	"classboard/internal/service"
	"classboard/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register creates a user account and opens a session in one step.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	session, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Warn("Error registering user in service", slog.Any("error", err), slog.String("username", req.Username))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", session.User.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, session)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Error logging in", slog.Any("error", err), slog.String("username", req.Username))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User logged in successfully", slog.String("user_id", session.User.ID))
	webutil.RespondWithJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Logout"))

	if err := h.service.Logout(r.Context()); err != nil {
		logger.Error("Error logging out in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User logged out successfully")
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the user resolved from the session token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Me"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "No session user found.", "", model.ErrInvalidCredentials)
		webutil.HandleError(w, logger, appErr)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user))
}
