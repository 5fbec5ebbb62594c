package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"classboard/internal/model"
	"classboard/internal/service"
	"classboard/internal/webutil"
)

type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		service: s,
		logger:  logger,
	}
}

func (h *CourseHandler) PostCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCourse"))

	var req model.CreateCourseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.Create(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating course in service", slog.Any("error", err), slog.String("code", req.Code))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course created successfully", slog.String("course_id", course.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourses"))

	courses, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("Error listing courses in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourse"))

	courseID := chi.URLParam(r, "course_id")
	logger = logger.With(slog.String("course_id", courseID))

	course, err := h.service.Get(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Course not found", slog.Any("error", err))
		} else {
			logger.Error("Error getting course from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, course)
}

// PutCourse replaces the whole course object. Content mutations normally go
// through the dedicated append endpoints; this exists for edits to the course
// header fields.
func (h *CourseHandler) PutCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCourse"))

	courseID := chi.URLParam(r, "course_id")
	logger = logger.With(slog.String("course_id", courseID))

	var course model.Course
	if err := webutil.DecodeJSONBody(r, &course); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	course.ID = courseID

	updated, err := h.service.Update(r.Context(), &course)
	if err != nil {
		logger.Error("Error updating course in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCourse"))

	courseID := chi.URLParam(r, "course_id")
	logger = logger.With(slog.String("course_id", courseID))

	if err := h.service.Delete(r.Context(), courseID); err != nil {
		logger.Error("Error deleting course in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Course deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) PostModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostModule"))

	courseID := chi.URLParam(r, "course_id")
	logger = logger.With(slog.String("course_id", courseID))

	var req model.AddModuleRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.AddModule(r.Context(), courseID, &req)
	if err != nil {
		logger.Error("Error adding module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module added successfully")
	webutil.RespondWithJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostItem"))

	courseID := chi.URLParam(r, "course_id")
	moduleID := chi.URLParam(r, "module_id")
	logger = logger.With(slog.String("course_id", courseID), slog.String("module_id", moduleID))

	var req model.AddItemRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.AddItem(r.Context(), courseID, moduleID, &req)
	if err != nil {
		logger.Error("Error adding item in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Item added successfully")
	webutil.RespondWithJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) PostAssignment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAssignment"))

	courseID := chi.URLParam(r, "course_id")
	logger = logger.With(slog.String("course_id", courseID))

	var req model.AddAssignmentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.AddAssignment(r.Context(), courseID, &req)
	if err != nil {
		logger.Error("Error adding assignment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assignment added successfully")
	webutil.RespondWithJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) PostQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuiz"))

	courseID := chi.URLParam(r, "course_id")
	logger = logger.With(slog.String("course_id", courseID))

	var req model.AddQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.AddQuiz(r.Context(), courseID, &req)
	if err != nil {
		logger.Error("Error adding quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz added successfully")
	webutil.RespondWithJSON(w, http.StatusCreated, course)
}
