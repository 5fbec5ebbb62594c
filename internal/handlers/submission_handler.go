package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"classboard/internal/middleware"
	"classboard/internal/model"
	"classboard/internal/service"
	"classboard/internal/webutil"
)

type SubmissionHandler struct {
	service service.SubmissionService
	logger  *slog.Logger
}

func NewSubmissionHandler(s service.SubmissionService, logger *slog.Logger) *SubmissionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionHandler{
		service: s,
		logger:  logger,
	}
}

// PostSubmission appends a submission for the session user.
func (h *SubmissionHandler) PostSubmission(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSubmission"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "No session user found.", "", model.ErrInvalidCredentials)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("student_id", user.ID))

	var req model.SubmitRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	sub, err := h.service.Submit(r.Context(), user.ID, &req)
	if err != nil {
		logger.Warn("Error submitting in service", slog.Any("error", err), slog.String("assignment_id", req.AssignmentID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Submission recorded", slog.String("assignment_id", sub.AssignmentID))
	webutil.RespondWithJSON(w, http.StatusCreated, sub)
}

// GetLatestSubmission answers the "has this student submitted?" lookup.
// Defaults to the session user; instructors can pass ?student_id=.
func (h *SubmissionHandler) GetLatestSubmission(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLatestSubmission"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "No session user found.", "", model.ErrInvalidCredentials)
		webutil.HandleError(w, logger, appErr)
		return
	}

	assignmentID := chi.URLParam(r, "assignment_id")
	studentID := r.URL.Query().Get("student_id")
	if studentID == "" {
		studentID = user.ID
	}
	if studentID != user.ID && user.Role != model.RoleInstructor {
		logger.Warn("Student requested another student's submission", slog.String("student_id", studentID))
		appErr := model.NewAppError("FORBIDDEN", "Students can only view their own submissions.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("assignment_id", assignmentID), slog.String("student_id", studentID))

	sub, err := h.service.Latest(r.Context(), assignmentID, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No submission found")
		} else {
			logger.Error("Error looking up submission in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, sub)
}

// GetSubmissions lists every submission for an assignment, oldest first.
func (h *SubmissionHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSubmissions"))

	assignmentID := chi.URLParam(r, "assignment_id")
	logger = logger.With(slog.String("assignment_id", assignmentID))

	subs, err := h.service.ListForAssignment(r.Context(), assignmentID)
	if err != nil {
		logger.Error("Error listing submissions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, subs)
}
