package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"classboard/internal/model"
	"classboard/internal/repository"
)

// GradeService records grades and scores quiz attempts. A grade is unique per
// (assignment, student) pair: recording a new one atomically replaces any
// prior entry for the pair inside the owning course.
type GradeService interface {
	Record(ctx context.Context, req *model.RecordGradeRequest) (*model.Grade, error)
	SubmitQuizAttempt(ctx context.Context, studentID, quizID string, answers map[int]int) (*model.Grade, error)
	GradesForStudent(ctx context.Context, courseID, studentID string) (*model.CourseGradesResponse, error)
}

type gradeService struct {
	courses repository.CourseRepository
	logger  *slog.Logger
}

func NewGradeService(courses repository.CourseRepository, logger *slog.Logger) GradeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &gradeService{courses: courses, logger: logger}
}

// ScoreQuiz grades a completed attempt. answers maps question index to the
// selected option index; unanswered questions are absent. The score is the
// percentage of correct answers rounded half-up to the nearest integer. A
// quiz with no questions cannot be scored.
func ScoreQuiz(quiz *model.Quiz, answers map[int]int) (int, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return 0, model.ErrInvalidQuiz
	}
	correct := 0
	for i, q := range quiz.Questions {
		if selected, ok := answers[i]; ok && selected == q.Correct {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(total) * 100)), nil
}

// AverageForStudent is the arithmetic mean of the student's scores in the
// course, rounded to the nearest integer. No grades means 0, never an error.
func AverageForStudent(course *model.Course, studentID string) int {
	sum, count := 0, 0
	for _, g := range course.Grades {
		if g.StudentID == studentID {
			sum += g.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

func (s *gradeService) Record(ctx context.Context, req *model.RecordGradeRequest) (*model.Grade, error) {
	course, err := s.courses.FindByTaskID(ctx, req.AssignmentID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrAssignmentNotFound
	}
	if err != nil {
		s.logger.Error("Error resolving grade owner", "error", err, "assignment_id", req.AssignmentID)
		return nil, err
	}

	title, gradeType := taskTitle(course, req.AssignmentID)
	grade := &model.Grade{
		ID:           uuid.NewString(),
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Title:        title,
		Score:        req.Score,
		MaxScore:     100,
		Date:         time.Now().Format(model.DateLayout),
		Type:         gradeType,
	}
	if err := s.record(ctx, course, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// SubmitQuizAttempt scores the attempt and records the result as the
// student's grade for the quiz.
func (s *gradeService) SubmitQuizAttempt(ctx context.Context, studentID, quizID string, answers map[int]int) (*model.Grade, error) {
	course, err := s.courses.FindByTaskID(ctx, quizID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrAssignmentNotFound
	}
	if err != nil {
		s.logger.Error("Error resolving quiz owner", "error", err, "quiz_id", quizID)
		return nil, err
	}

	var quiz *model.Quiz
	for i := range course.Quizzes {
		if course.Quizzes[i].ID == quizID {
			quiz = &course.Quizzes[i]
			break
		}
	}
	if quiz == nil {
		return nil, model.ErrAssignmentNotFound
	}

	score, err := ScoreQuiz(quiz, answers)
	if err != nil {
		return nil, err
	}
	grade := &model.Grade{
		ID:           uuid.NewString(),
		AssignmentID: quiz.ID,
		StudentID:    studentID,
		Title:        quiz.Title,
		Score:        score,
		MaxScore:     100,
		Date:         time.Now().Format(model.DateLayout),
		Type:         model.GradeQuiz,
	}
	if err := s.record(ctx, course, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

func (s *gradeService) GradesForStudent(ctx context.Context, courseID, studentID string) (*model.CourseGradesResponse, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	grades := []model.Grade{}
	for _, g := range course.Grades {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	return &model.CourseGradesResponse{
		Grades:  grades,
		Average: AverageForStudent(course, studentID),
	}, nil
}

// record drops any existing grade for the (assignment, student) pair, appends
// the new one, and persists the course in a single whole-object update.
func (s *gradeService) record(ctx context.Context, course *model.Course, grade *model.Grade) error {
	next := *course
	next.Grades = make([]model.Grade, 0, len(course.Grades)+1)
	for _, g := range course.Grades {
		if g.AssignmentID == grade.AssignmentID && g.StudentID == grade.StudentID {
			continue
		}
		next.Grades = append(next.Grades, g)
	}
	next.Grades = append(next.Grades, *grade)

	if err := s.courses.Update(ctx, &next); err != nil {
		s.logger.Error("Error persisting grade", "error", err,
			"assignment_id", grade.AssignmentID,
			"student_id", grade.StudentID,
		)
		return err
	}
	return nil
}

func taskTitle(course *model.Course, taskID string) (string, model.GradeType) {
	for _, a := range course.Assignments {
		if a.ID == taskID {
			return a.Title, model.GradeAssignment
		}
	}
	for _, q := range course.Quizzes {
		if q.ID == taskID {
			return q.Title, model.GradeQuiz
		}
	}
	return "", model.GradeAssignment
}
