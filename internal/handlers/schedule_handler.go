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

type ScheduleHandler struct {
	service service.ScheduleService
	logger  *slog.Logger
}

func NewScheduleHandler(s service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleHandler{
		service: s,
		logger:  logger,
	}
}

// GetTasks lists the task board, filtered by ?q= when present.
func (h *ScheduleHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTasks"))

	tasks, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.Error("Error listing schedule tasks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, tasks)
}

func (h *ScheduleHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTask"))

	var req model.AddTaskRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	task, err := h.service.Add(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating schedule task in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Schedule task created", slog.String("task_id", task.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, task)
}

// DeleteTasks removes the selected tasks in one batch.
func (h *ScheduleHandler) DeleteTasks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTasks"))

	var req model.DeleteTasksRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.Delete(r.Context(), req.IDs); err != nil {
		logger.Error("Error deleting schedule tasks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Schedule tasks deleted", slog.Int("count", len(req.IDs)))
	w.WriteHeader(http.StatusNoContent)
}

// PostNote appends a note to the task thread, authored by the session user.
func (h *ScheduleHandler) PostNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostNote"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "No session user found.", "", model.ErrInvalidCredentials)
		webutil.HandleError(w, logger, appErr)
		return
	}

	taskID := chi.URLParam(r, "task_id")
	logger = logger.With(slog.String("task_id", taskID))

	var req model.AddNoteRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	task, err := h.service.AddNote(r.Context(), taskID, user.Username, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Schedule task not found", slog.Any("error", err))
		} else {
			logger.Warn("Error appending note in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Note appended successfully")
	webutil.RespondWithJSON(w, http.StatusCreated, task)
}
