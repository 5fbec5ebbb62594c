package service

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"classboard/internal/model"
	"classboard/internal/repository"
)

// Cosmetic palettes assigned round-robin-by-chance at course creation.
var (
	courseColors = []string{
		"bg-blue-500", "bg-emerald-500", "bg-rose-500",
		"bg-amber-500", "bg-purple-500", "bg-pink-500",
		"bg-indigo-500", "bg-teal-500", "bg-cyan-500",
	}
	courseIcons = []string{"💻", "📐", "📝", "🌍", "⚡", "🎨", "🔬", "📊", "🎵"}
)

// CourseService owns the course aggregate: course CRUD plus the append
// operations for modules, items, assignments and quizzes. Every content
// mutation builds a fresh course value and funnels through Update, the single
// whole-object replacement entry point.
type CourseService interface {
	Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error)
	Update(ctx context.Context, course *model.Course) (*model.Course, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	AddModule(ctx context.Context, courseID string, req *model.AddModuleRequest) (*model.Course, error)
	AddItem(ctx context.Context, courseID, moduleID string, req *model.AddItemRequest) (*model.Course, error)
	AddAssignment(ctx context.Context, courseID string, req *model.AddAssignmentRequest) (*model.Course, error)
	AddQuiz(ctx context.Context, courseID string, req *model.AddQuizRequest) (*model.Course, error)
}

type courseService struct {
	courses repository.CourseRepository
	logger  *slog.Logger
}

func NewCourseService(courses repository.CourseRepository, logger *slog.Logger) CourseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &courseService{courses: courses, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if req.Name == "" || req.Code == "" || req.Term == "" {
		return nil, model.ErrInvalidInput
	}
	course := &model.Course{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Term:        req.Term,
		Color:       courseColors[rand.IntN(len(courseColors))],
		Icon:        courseIcons[rand.IntN(len(courseIcons))],
		Modules:     []model.Module{},
		Assignments: []model.Assignment{},
		Quizzes:     []model.Quiz{},
		Grades:      []model.Grade{},
	}
	if err := s.courses.Create(ctx, course); err != nil {
		s.logger.Error("Error creating course", "error", err, "code", req.Code)
		return nil, err
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, course *model.Course) (*model.Course, error) {
	if course.ID == "" {
		return nil, model.ErrInvalidInput
	}
	if err := s.courses.Update(ctx, course); err != nil {
		s.logger.Error("Error updating course", "error", err, "course_id", course.ID)
		return nil, err
	}
	return course, nil
}

// Delete removes the course only. Submissions and grades referencing its
// assignment ids are retained as historical records.
func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		s.logger.Error("Error deleting course", "error", err, "course_id", id)
		return err
	}
	return nil
}

func (s *courseService) Get(ctx context.Context, id string) (*model.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) AddModule(ctx context.Context, courseID string, req *model.AddModuleRequest) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	next := *course
	next.Modules = append(append([]model.Module{}, course.Modules...), model.Module{
		ID:    uuid.NewString(),
		Title: req.Title,
		Items: []model.Item{},
	})
	return s.Update(ctx, &next)
}

func (s *courseService) AddItem(ctx context.Context, courseID, moduleID string, req *model.AddItemRequest) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	next := *course
	next.Modules = append([]model.Module{}, course.Modules...)
	for i := range next.Modules {
		if next.Modules[i].ID == moduleID {
			mod := next.Modules[i]
			mod.Items = append(append([]model.Item{}, mod.Items...), model.Item{
				Title: req.Title,
				Type:  req.Type,
			})
			next.Modules[i] = mod
			return s.Update(ctx, &next)
		}
	}
	return nil, model.ErrNotFound
}

func (s *courseService) AddAssignment(ctx context.Context, courseID string, req *model.AddAssignmentRequest) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	files := req.Files
	if files == nil {
		files = []string{}
	}
	next := *course
	next.Assignments = append(append([]model.Assignment{}, course.Assignments...), model.Assignment{
		ID:          uuid.NewString(),
		Title:       req.Title,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Files:       files,
		MaxAttempts: req.MaxAttempts,
	})
	return s.Update(ctx, &next)
}

func (s *courseService) AddQuiz(ctx context.Context, courseID string, req *model.AddQuizRequest) (*model.Course, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	next := *course
	next.Quizzes = append(append([]model.Quiz{}, course.Quizzes...), model.Quiz{
		ID:          uuid.NewString(),
		Title:       req.Title,
		DueDate:     req.DueDate,
		MaxAttempts: req.MaxAttempts,
		Questions:   questions,
	})
	return s.Update(ctx, &next)
}

// buildQuestions checks the quiz invariants: at least one question, each with
// non-empty text, exactly four non-empty options, and a correct index in
// [0,3].
func buildQuestions(reqs []model.QuestionRequest) ([]model.Question, error) {
	if len(reqs) == 0 {
		return nil, model.ErrInvalidInput
	}
	questions := make([]model.Question, 0, len(reqs))
	for _, q := range reqs {
		if q.Text == "" || len(q.Options) != 4 {
			return nil, model.ErrInvalidInput
		}
		for _, opt := range q.Options {
			if opt == "" {
				return nil, model.ErrInvalidInput
			}
		}
		if q.Correct < 0 || q.Correct > 3 {
			return nil, model.ErrInvalidInput
		}
		questions = append(questions, model.Question{
			Text:    q.Text,
			Options: append([]string{}, q.Options...),
			Correct: q.Correct,
		})
	}
	return questions, nil
}
