package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"classboard/internal/model"
	"classboard/internal/repository"
)

// SubmissionService appends attempt artifacts and answers the derived
// "submitted?" lookups. Repeated submissions below the attempt cap coexist;
// the latest one is simply the last appended entry for the pair.
type SubmissionService interface {
	Submit(ctx context.Context, studentID string, req *model.SubmitRequest) (*model.Submission, error)
	Latest(ctx context.Context, assignmentID, studentID string) (*model.Submission, error)
	ListForAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error)
}

type submissionService struct {
	subs    repository.SubmissionRepository
	courses repository.CourseRepository
	logger  *slog.Logger
}

func NewSubmissionService(subs repository.SubmissionRepository, courses repository.CourseRepository, logger *slog.Logger) SubmissionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &submissionService{subs: subs, courses: courses, logger: logger}
}

func (s *submissionService) Submit(ctx context.Context, studentID string, req *model.SubmitRequest) (*model.Submission, error) {
	course, err := s.courses.FindByTaskID(ctx, req.AssignmentID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrAssignmentNotFound
	}
	if err != nil {
		s.logger.Error("Error resolving submission target", "error", err, "assignment_id", req.AssignmentID)
		return nil, err
	}

	maxAttempts := attemptCap(course, req.AssignmentID)
	if maxAttempts != model.UnlimitedAttempts {
		used, err := s.countAttempts(ctx, req.AssignmentID, studentID)
		if err != nil {
			return nil, err
		}
		if used >= maxAttempts {
			return nil, model.ErrTooManyAttempts
		}
	}

	fileNames := req.FileNames
	if fileNames == nil {
		fileNames = []string{}
	}
	sub := &model.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    studentID,
		Text:         req.Text,
		FileNames:    fileNames,
		Date:         time.Now().Format(model.DateLayout),
	}
	if err := s.subs.Append(ctx, sub); err != nil {
		s.logger.Error("Error appending submission", "error", err,
			"assignment_id", req.AssignmentID,
			"student_id", studentID,
		)
		return nil, err
	}
	return sub, nil
}

// Latest returns the most recently appended submission for the pair.
func (s *submissionService) Latest(ctx context.Context, assignmentID, studentID string) (*model.Submission, error) {
	subs, err := s.subs.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].AssignmentID == assignmentID && subs[i].StudentID == studentID {
			return &subs[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *submissionService) ListForAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	subs, err := s.subs.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []model.Submission{}
	for _, sub := range subs {
		if sub.AssignmentID == assignmentID {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

func (s *submissionService) countAttempts(ctx context.Context, assignmentID, studentID string) (int, error) {
	subs, err := s.subs.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, sub := range subs {
		if sub.AssignmentID == assignmentID && sub.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

func attemptCap(course *model.Course, taskID string) int {
	for _, a := range course.Assignments {
		if a.ID == taskID {
			return a.MaxAttempts
		}
	}
	for _, q := range course.Quizzes {
		if q.ID == taskID {
			return q.MaxAttempts
		}
	}
	return model.UnlimitedAttempts
}
