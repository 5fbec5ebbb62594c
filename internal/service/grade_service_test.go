package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"classboard/internal/model"
	"classboard/internal/repository/mocks"
)

func Test_ScoreQuiz(t *testing.T) {
	threeQuestions := &model.Quiz{
		ID:    "quiz-1",
		Title: "Midterm",
		Questions: []model.Question{
			{Text: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 0},
			{Text: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 1},
			{Text: "q3", Options: []string{"a", "b", "c", "d"}, Correct: 2},
		},
	}

	tests := []struct {
		name      string
		quiz      *model.Quiz
		answers   map[int]int
		wantScore int
		wantErr   error
	}{
		{
			name:      "all answers correct",
			quiz:      threeQuestions,
			answers:   map[int]int{0: 0, 1: 1, 2: 2},
			wantScore: 100,
		},
		{
			name:      "one of three correct rounds up",
			quiz:      threeQuestions,
			answers:   map[int]int{0: 0, 1: 3, 2: 3},
			wantScore: 33,
		},
		{
			name:      "two of three correct rounds up",
			quiz:      threeQuestions,
			answers:   map[int]int{0: 0, 1: 1, 2: 3},
			wantScore: 67,
		},
		{
			name:      "unanswered questions count as wrong",
			quiz:      threeQuestions,
			answers:   map[int]int{0: 0},
			wantScore: 33,
		},
		{
			name:      "no answers at all",
			quiz:      threeQuestions,
			answers:   map[int]int{},
			wantScore: 0,
		},
		{
			name:    "quiz without questions cannot be scored",
			quiz:    &model.Quiz{ID: "quiz-empty", Questions: []model.Question{}},
			answers: map[int]int{},
			wantErr: model.ErrInvalidQuiz,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ScoreQuiz(tt.quiz, tt.answers)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)

			// Scoring is pure; the same answers always yield the same score.
			again, err := ScoreQuiz(tt.quiz, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, score, again)
		})
	}
}

func Test_AverageForStudent(t *testing.T) {
	tests := []struct {
		name      string
		grades    []model.Grade
		studentID string
		want      int
	}{
		{
			name: "mean of three scores",
			grades: []model.Grade{
				{AssignmentID: "a1", StudentID: "stu-1", Score: 80},
				{AssignmentID: "a2", StudentID: "stu-1", Score: 90},
				{AssignmentID: "a3", StudentID: "stu-1", Score: 70},
			},
			studentID: "stu-1",
			want:      80,
		},
		{
			name: "mean rounds to nearest integer",
			grades: []model.Grade{
				{AssignmentID: "a1", StudentID: "stu-1", Score: 85},
				{AssignmentID: "a2", StudentID: "stu-1", Score: 90},
			},
			studentID: "stu-1",
			want:      88,
		},
		{
			name:      "no grades yields zero",
			grades:    []model.Grade{},
			studentID: "stu-1",
			want:      0,
		},
		{
			name: "other students' grades are ignored",
			grades: []model.Grade{
				{AssignmentID: "a1", StudentID: "stu-2", Score: 40},
				{AssignmentID: "a1", StudentID: "stu-1", Score: 100},
			},
			studentID: "stu-1",
			want:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &model.Course{ID: "c1", Grades: tt.grades}
			assert.Equal(t, tt.want, AverageForStudent(course, tt.studentID))
		})
	}
}

func Test_gradeService_Record(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	course := model.Course{
		ID:   "course-1",
		Name: "Algorithms",
		Assignments: []model.Assignment{
			{ID: "assign-1", Title: "Homework 1"},
		},
		Grades: []model.Grade{
			{ID: "grade-old", AssignmentID: "assign-1", StudentID: "stu-1", Title: "Homework 1", Score: 55},
			{ID: "grade-other", AssignmentID: "assign-1", StudentID: "stu-2", Title: "Homework 1", Score: 70},
		},
	}

	tests := []struct {
		name       string
		req        *model.RecordGradeRequest
		setupMock  func(m *mocks.CourseRepository, captured **model.Course)
		wantErr    error
		wantGrades int // grades persisted for the course after recording
	}{
		{
			name: "recording replaces the prior grade for the pair",
			req:  &model.RecordGradeRequest{AssignmentID: "assign-1", StudentID: "stu-1", Score: 92},
			setupMock: func(m *mocks.CourseRepository, captured **model.Course) {
				c := course
				m.On("FindByTaskID", ctx, "assign-1").Return(&c, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*model.Course")).
					Run(func(args mock.Arguments) {
						*captured = args.Get(1).(*model.Course)
					}).Return(nil).Once()
			},
			wantGrades: 2, // stu-2's grade plus the replacement
		},
		{
			name: "unknown assignment id",
			req:  &model.RecordGradeRequest{AssignmentID: "assign-missing", StudentID: "stu-1", Score: 92},
			setupMock: func(m *mocks.CourseRepository, captured **model.Course) {
				m.On("FindByTaskID", ctx, "assign-missing").Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrAssignmentNotFound,
		},
		{
			name: "storage failure on lookup propagates",
			req:  &model.RecordGradeRequest{AssignmentID: "assign-1", StudentID: "stu-1", Score: 92},
			setupMock: func(m *mocks.CourseRepository, captured **model.Course) {
				m.On("FindByTaskID", ctx, "assign-1").Return(nil, errors.New("store unavailable")).Once()
			},
			wantErr: errors.New("store unavailable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseRepo := mocks.NewCourseRepository(t)
			var captured *model.Course
			if tt.setupMock != nil {
				tt.setupMock(mockCourseRepo, &captured)
			}
			gradeService := NewGradeService(mockCourseRepo, testLogger)

			grade, err := gradeService.Record(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, grade)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, grade)
			assert.Equal(t, tt.req.Score, grade.Score)
			assert.Equal(t, 100, grade.MaxScore)
			assert.Equal(t, "Homework 1", grade.Title)
			assert.Equal(t, model.GradeAssignment, grade.Type)

			require.NotNil(t, captured)
			assert.Len(t, captured.Grades, tt.wantGrades)
			// Exactly one grade per (assignment, student) pair survives.
			count := 0
			for _, g := range captured.Grades {
				if g.AssignmentID == tt.req.AssignmentID && g.StudentID == tt.req.StudentID {
					count++
					assert.Equal(t, tt.req.Score, g.Score)
				}
			}
			assert.Equal(t, 1, count)
		})
	}
}

func Test_gradeService_SubmitQuizAttempt(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	course := model.Course{
		ID: "course-1",
		Quizzes: []model.Quiz{
			{
				ID:    "quiz-1",
				Title: "Pop Quiz",
				Questions: []model.Question{
					{Text: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 1},
					{Text: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 2},
				},
			},
			{ID: "quiz-empty", Title: "Draft", Questions: []model.Question{}},
		},
	}

	t.Run("scores and records the attempt", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		c := course
		mockCourseRepo.On("FindByTaskID", ctx, "quiz-1").Return(&c, nil).Once()
		var captured *model.Course
		mockCourseRepo.On("Update", ctx, mock.AnythingOfType("*model.Course")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*model.Course)
			}).Return(nil).Once()
		gradeService := NewGradeService(mockCourseRepo, testLogger)

		grade, err := gradeService.SubmitQuizAttempt(ctx, "stu-1", "quiz-1", map[int]int{0: 1, 1: 0})

		require.NoError(t, err)
		assert.Equal(t, 50, grade.Score)
		assert.Equal(t, model.GradeQuiz, grade.Type)
		assert.Equal(t, "Pop Quiz", grade.Title)
		require.NotNil(t, captured)
		assert.Len(t, captured.Grades, 1)
	})

	t.Run("quiz without questions is rejected before recording", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		c := course
		mockCourseRepo.On("FindByTaskID", ctx, "quiz-empty").Return(&c, nil).Once()
		gradeService := NewGradeService(mockCourseRepo, testLogger)

		grade, err := gradeService.SubmitQuizAttempt(ctx, "stu-1", "quiz-empty", map[int]int{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidQuiz)
		assert.Nil(t, grade)
	})

	t.Run("unknown quiz id", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		mockCourseRepo.On("FindByTaskID", ctx, "quiz-missing").Return(nil, model.ErrNotFound).Once()
		gradeService := NewGradeService(mockCourseRepo, testLogger)

		_, err := gradeService.SubmitQuizAttempt(ctx, "stu-1", "quiz-missing", map[int]int{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrAssignmentNotFound)
	})
}

func Test_gradeService_GradesForStudent(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	course := model.Course{
		ID: "course-1",
		Grades: []model.Grade{
			{ID: "g1", AssignmentID: "a1", StudentID: "stu-1", Score: 80},
			{ID: "g2", AssignmentID: "a2", StudentID: "stu-1", Score: 90},
			{ID: "g3", AssignmentID: "a1", StudentID: "stu-2", Score: 40},
			{ID: "g4", AssignmentID: "a3", StudentID: "stu-1", Score: 70},
		},
	}

	t.Run("returns the student's grades with the rounded average", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		c := course
		mockCourseRepo.On("FindByID", ctx, "course-1").Return(&c, nil).Once()
		gradeService := NewGradeService(mockCourseRepo, testLogger)

		resp, err := gradeService.GradesForStudent(ctx, "course-1", "stu-1")

		require.NoError(t, err)
		assert.Len(t, resp.Grades, 3)
		assert.Equal(t, 80, resp.Average)
	})

	t.Run("unknown course", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		mockCourseRepo.On("FindByID", ctx, "course-missing").Return(nil, model.ErrNotFound).Once()
		gradeService := NewGradeService(mockCourseRepo, testLogger)

		_, err := gradeService.GradesForStudent(ctx, "course-missing", "stu-1")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
