package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classboard/internal/config"
	"classboard/internal/middleware"
	"classboard/internal/model"
	"classboard/internal/repository"
	"classboard/internal/service"
	"classboard/internal/store"
)

// setupAPI wires the full stack over an in-memory store and returns the
// router, mirroring the production route layout.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Session.Secret = "integration-secret"
	cfg.Session.TTLMinutes = 60

	st := store.NewMemStore()
	userRepo := repository.NewStoreUserRepository(st, testLogger)
	courseRepo := repository.NewStoreCourseRepository(st, testLogger)
	subRepo := repository.NewStoreSubmissionRepository(st, testLogger)
	sessionRepo := repository.NewStoreSessionRepository(st, testLogger)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg, testLogger)
	courseService := service.NewCourseService(courseRepo, testLogger)
	gradeService := service.NewGradeService(courseRepo, testLogger)
	submissionService := service.NewSubmissionService(subRepo, courseRepo, testLogger)

	authHandler := NewAuthHandler(authService, testLogger)
	courseHandler := NewCourseHandler(courseService, testLogger)
	gradeHandler := NewGradeHandler(gradeService, testLogger)
	submissionHandler := NewSubmissionHandler(submissionService, testLogger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionMiddleware(cfg, userRepo))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", courseHandler.GetCourses)
				r.Get("/{course_id}", courseHandler.GetCourse)
				r.Get("/{course_id}/grades", gradeHandler.GetCourseGrades)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireInstructor)
					r.Post("/", courseHandler.PostCourse)
					r.Post("/{course_id}/assignments", courseHandler.PostAssignment)
					r.Post("/{course_id}/quizzes", courseHandler.PostQuiz)
				})
			})

			r.With(middleware.RequireInstructor).Post("/grades", gradeHandler.PostGrade)
			r.Post("/quizzes/{quiz_id}/attempts", gradeHandler.PostQuizAttempt)
			r.Post("/submissions", submissionHandler.PostSubmission)
			r.Get("/assignments/{assignment_id}/submissions/latest", submissionHandler.GetLatestSubmission)
		})
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, router http.Handler, username, role string) model.SessionResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"password": "pw",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session
}

func Test_API_AuthFlow(t *testing.T) {
	router := setupAPI(t)

	session := registerUser(t, router, "ana", "student")

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"username": "ana",
			"password": "other",
			"role":     "student",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "ana",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token resolves the session user", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", session.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var user model.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "ana", user.Username)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func Test_API_GradingFlow(t *testing.T) {
	router := setupAPI(t)

	instructor := registerUser(t, router, "prof", "instructor")
	student := registerUser(t, router, "stu", "student")

	// Instructor sets up a course with an assignment.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", instructor.Token, map[string]string{
		"name": "Algorithms",
		"code": "CS201",
		"term": "Spring 2026",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var course model.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))

	t.Run("students cannot create courses", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", student.Token, map[string]string{
			"name": "Rogue", "code": "X1", "term": "Never",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec = doJSON(t, router, http.MethodPost, "/api/v1/courses/"+course.ID+"/assignments", instructor.Token, map[string]any{
		"title":   "Homework 1",
		"dueDate": "2026-04-01",
		"dueTime": "23:59",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
	require.Len(t, course.Assignments, 1)
	assignmentID := course.Assignments[0].ID

	// Student submits, then the instructor grades it.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/submissions", student.Token, map[string]any{
		"assignmentId": assignmentID,
		"text":         "my answer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/assignments/"+assignmentID+"/submissions/latest", student.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/grades", instructor.Token, map[string]any{
		"assignmentId": assignmentID,
		"studentId":    student.User.ID,
		"score":        92,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Re-grading replaces the prior entry instead of adding a second one.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/grades", instructor.Token, map[string]any{
		"assignmentId": assignmentID,
		"studentId":    student.User.ID,
		"score":        95,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/courses/"+course.ID+"/grades", student.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var grades model.CourseGradesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grades))
	require.Len(t, grades.Grades, 1)
	assert.Equal(t, 95, grades.Grades[0].Score)
	assert.Equal(t, 95, grades.Average)

	t.Run("grading an unknown assignment is a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/grades", instructor.Token, map[string]any{
			"assignmentId": "missing",
			"studentId":    student.User.ID,
			"score":        50,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_API_QuizAttempt(t *testing.T) {
	router := setupAPI(t)

	instructor := registerUser(t, router, "prof", "instructor")
	student := registerUser(t, router, "stu", "student")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/courses", instructor.Token, map[string]string{
		"name": "Calculus", "code": "MATH101", "term": "Spring 2026",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var course model.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/courses/"+course.ID+"/quizzes", instructor.Token, map[string]any{
		"title":   "Limits Quiz",
		"dueDate": "2026-04-10",
		"questions": []map[string]any{
			{"text": "q1", "options": []string{"a", "b", "c", "d"}, "correct": 0},
			{"text": "q2", "options": []string{"a", "b", "c", "d"}, "correct": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
	require.Len(t, course.Quizzes, 1)
	quizID := course.Quizzes[0].ID

	rec = doJSON(t, router, http.MethodPost, "/api/v1/quizzes/"+quizID+"/attempts", student.Token, map[string]any{
		"answers": map[string]int{"0": 0, "1": 2},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var grade model.Grade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grade))
	assert.Equal(t, 50, grade.Score)
	assert.Equal(t, model.GradeQuiz, grade.Type)
}
