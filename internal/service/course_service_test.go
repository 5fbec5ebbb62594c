package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"classboard/internal/model"
	"classboard/internal/repository/mocks"
)

func Test_courseService_Create(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name      string
		req       *model.CreateCourseRequest
		setupMock func(m *mocks.CourseRepository)
		wantErr   error
	}{
		{
			name: "complete request creates the course",
			req:  &model.CreateCourseRequest{Name: "Algorithms", Code: "CS201", Term: "Spring 2026"},
			setupMock: func(m *mocks.CourseRepository) {
				m.On("Create", ctx, mock.AnythingOfType("*model.Course")).Return(nil).Once()
			},
		},
		{
			name:      "missing name is rejected",
			req:       &model.CreateCourseRequest{Name: "", Code: "CS201", Term: "Spring 2026"},
			setupMock: func(m *mocks.CourseRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "missing code is rejected",
			req:       &model.CreateCourseRequest{Name: "Algorithms", Code: "", Term: "Spring 2026"},
			setupMock: func(m *mocks.CourseRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseRepo := mocks.NewCourseRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(mockCourseRepo)
			}
			courseService := NewCourseService(mockCourseRepo, testLogger)

			course, err := courseService.Create(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, course)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, course)
			assert.NotEmpty(t, course.ID)
			assert.Equal(t, tt.req.Name, course.Name)
			assert.NotEmpty(t, course.Color)
			assert.NotEmpty(t, course.Icon)
			// Collections start empty, never nil, so JSON stays [] not null.
			assert.NotNil(t, course.Modules)
			assert.NotNil(t, course.Assignments)
			assert.NotNil(t, course.Quizzes)
			assert.NotNil(t, course.Grades)
		})
	}
}

func Test_courseService_AddModule(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	course := model.Course{
		ID:      "course-1",
		Modules: []model.Module{{ID: "mod-1", Title: "Week 1", Items: []model.Item{}}},
	}

	t.Run("appends without touching existing modules", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		c := course
		mockCourseRepo.On("FindByID", ctx, "course-1").Return(&c, nil).Once()
		mockCourseRepo.On("Update", ctx, mock.AnythingOfType("*model.Course")).Return(nil).Once()
		courseService := NewCourseService(mockCourseRepo, testLogger)

		updated, err := courseService.AddModule(ctx, "course-1", &model.AddModuleRequest{Title: "Week 2"})

		require.NoError(t, err)
		require.Len(t, updated.Modules, 2)
		assert.Equal(t, "Week 1", updated.Modules[0].Title)
		assert.Equal(t, "Week 2", updated.Modules[1].Title)
		assert.NotEmpty(t, updated.Modules[1].ID)
	})

	t.Run("unknown course", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		mockCourseRepo.On("FindByID", ctx, "course-missing").Return(nil, model.ErrNotFound).Once()
		courseService := NewCourseService(mockCourseRepo, testLogger)

		_, err := courseService.AddModule(ctx, "course-missing", &model.AddModuleRequest{Title: "Week 2"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_courseService_AddItem(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	course := model.Course{
		ID: "course-1",
		Modules: []model.Module{
			{ID: "mod-1", Title: "Week 1", Items: []model.Item{{Title: "Intro", Type: model.ItemPage}}},
			{ID: "mod-2", Title: "Week 2", Items: []model.Item{}},
		},
	}

	t.Run("appends to the addressed module only", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		c := course
		mockCourseRepo.On("FindByID", ctx, "course-1").Return(&c, nil).Once()
		mockCourseRepo.On("Update", ctx, mock.AnythingOfType("*model.Course")).Return(nil).Once()
		courseService := NewCourseService(mockCourseRepo, testLogger)

		updated, err := courseService.AddItem(ctx, "course-1", "mod-2", &model.AddItemRequest{Title: "Reading", Type: model.ItemPage})

		require.NoError(t, err)
		assert.Len(t, updated.Modules[0].Items, 1)
		require.Len(t, updated.Modules[1].Items, 1)
		assert.Equal(t, "Reading", updated.Modules[1].Items[0].Title)
	})

	t.Run("unknown module", func(t *testing.T) {
		mockCourseRepo := mocks.NewCourseRepository(t)
		c := course
		mockCourseRepo.On("FindByID", ctx, "course-1").Return(&c, nil).Once()
		courseService := NewCourseService(mockCourseRepo, testLogger)

		_, err := courseService.AddItem(ctx, "course-1", "mod-missing", &model.AddItemRequest{Title: "Reading", Type: model.ItemPage})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_courseService_AddQuiz(t *testing.T) {
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validQuestion := model.QuestionRequest{
		Text:    "What is 2+2?",
		Options: []string{"3", "4", "5", "6"},
		Correct: 1,
	}

	tests := []struct {
		name      string
		req       *model.AddQuizRequest
		setupMock func(m *mocks.CourseRepository)
		wantErr   error
	}{
		{
			name: "valid quiz is appended",
			req: &model.AddQuizRequest{
				Title:     "Quiz 1",
				DueDate:   "2026-04-01",
				Questions: []model.QuestionRequest{validQuestion},
			},
			setupMock: func(m *mocks.CourseRepository) {
				m.On("FindByID", ctx, "course-1").
					Return(&model.Course{ID: "course-1", Quizzes: []model.Quiz{}}, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*model.Course")).Return(nil).Once()
			},
		},
		{
			name:      "quiz with no questions is rejected",
			req:       &model.AddQuizRequest{Title: "Quiz 1", Questions: []model.QuestionRequest{}},
			setupMock: func(m *mocks.CourseRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "question with three options is rejected",
			req: &model.AddQuizRequest{
				Title: "Quiz 1",
				Questions: []model.QuestionRequest{
					{Text: "q", Options: []string{"a", "b", "c"}, Correct: 0},
				},
			},
			setupMock: func(m *mocks.CourseRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "correct index out of range is rejected",
			req: &model.AddQuizRequest{
				Title: "Quiz 1",
				Questions: []model.QuestionRequest{
					{Text: "q", Options: []string{"a", "b", "c", "d"}, Correct: 4},
				},
			},
			setupMock: func(m *mocks.CourseRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "empty option text is rejected",
			req: &model.AddQuizRequest{
				Title: "Quiz 1",
				Questions: []model.QuestionRequest{
					{Text: "q", Options: []string{"a", "", "c", "d"}, Correct: 0},
				},
			},
			setupMock: func(m *mocks.CourseRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourseRepo := mocks.NewCourseRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(mockCourseRepo)
			}
			courseService := NewCourseService(mockCourseRepo, testLogger)

			updated, err := courseService.AddQuiz(ctx, "course-1", tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, updated.Quizzes, 1)
			assert.Equal(t, tt.req.Title, updated.Quizzes[0].Title)
			assert.NotEmpty(t, updated.Quizzes[0].ID)
		})
	}
}
