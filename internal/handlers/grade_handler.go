package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"classboard/internal/middleware"
	"classboard/internal/model"
	"classboard/internal/service"
	"classboard/internal/webutil"
)

type GradeHandler struct {
	service service.GradeService
	logger  *slog.Logger
}

func NewGradeHandler(s service.GradeService, logger *slog.Logger) *GradeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GradeHandler{
		service: s,
		logger:  logger,
	}
}

// PostGrade records an instructor-entered grade. Recording replaces any prior
// grade for the same (assignment, student) pair.
func (h *GradeHandler) PostGrade(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGrade"))

	var req model.RecordGradeRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	grade, err := h.service.Record(r.Context(), &req)
	if err != nil {
		logger.Warn("Error recording grade in service", slog.Any("error", err),
			slog.String("assignment_id", req.AssignmentID),
			slog.String("student_id", req.StudentID),
		)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Grade recorded successfully", slog.String("grade_id", grade.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, grade)
}

// PostQuizAttempt scores the current user's answers and records the result.
func (h *GradeHandler) PostQuizAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuizAttempt"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "No session user found.", "", model.ErrInvalidCredentials)
		webutil.HandleError(w, logger, appErr)
		return
	}

	quizID := chi.URLParam(r, "quiz_id")
	logger = logger.With(slog.String("quiz_id", quizID), slog.String("student_id", user.ID))

	var req model.QuizAttemptRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	grade, err := h.service.SubmitQuizAttempt(r.Context(), user.ID, quizID, req.Answers)
	if err != nil {
		logger.Warn("Error scoring quiz attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz attempt scored", slog.Int("score", grade.Score))
	webutil.RespondWithJSON(w, http.StatusCreated, grade)
}

// GetCourseGrades returns a student's grades in the course with the rounded
// average. Defaults to the session user; instructors can pass ?student_id=.
func (h *GradeHandler) GetCourseGrades(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourseGrades"))

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "No session user found.", "", model.ErrInvalidCredentials)
		webutil.HandleError(w, logger, appErr)
		return
	}

	courseID := chi.URLParam(r, "course_id")
	studentID := r.URL.Query().Get("student_id")
	if studentID == "" {
		studentID = user.ID
	}
	if studentID != user.ID && user.Role != model.RoleInstructor {
		logger.Warn("Student requested another student's grades", slog.String("student_id", studentID))
		appErr := model.NewAppError("FORBIDDEN", "Students can only view their own grades.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("course_id", courseID), slog.String("student_id", studentID))

	grades, err := h.service.GradesForStudent(r.Context(), courseID, studentID)
	if err != nil {
		logger.Warn("Error listing grades in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, grades)
}
