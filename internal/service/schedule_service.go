package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"classboard/internal/model"
	"classboard/internal/repository"
)

// ScheduleService manages the course-independent task board: tasks with
// priorities and append-only note threads.
type ScheduleService interface {
	List(ctx context.Context) ([]model.ScheduleTask, error)
	Add(ctx context.Context, req *model.AddTaskRequest) (*model.ScheduleTask, error)
	Delete(ctx context.Context, ids []string) error
	AddNote(ctx context.Context, taskID, author string, req *model.AddNoteRequest) (*model.ScheduleTask, error)
	Search(ctx context.Context, query string) ([]model.ScheduleTask, error)
}

type scheduleService struct {
	tasks  repository.ScheduleRepository
	logger *slog.Logger
}

func NewScheduleService(tasks repository.ScheduleRepository, logger *slog.Logger) ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &scheduleService{tasks: tasks, logger: logger}
}

func (s *scheduleService) List(ctx context.Context) ([]model.ScheduleTask, error) {
	return s.tasks.List(ctx)
}

func (s *scheduleService) Add(ctx context.Context, req *model.AddTaskRequest) (*model.ScheduleTask, error) {
	task := &model.ScheduleTask{
		ID:         uuid.NewString(),
		Title:      req.Title,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
		DueTime:    req.DueTime,
		Priority:   req.Priority,
		Notes:      []model.Note{},
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error("Error creating schedule task", "error", err, "title", req.Title)
		return nil, err
	}
	return task, nil
}

func (s *scheduleService) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return model.ErrInvalidInput
	}
	if err := s.tasks.DeleteMany(ctx, ids); err != nil {
		s.logger.Error("Error deleting schedule tasks", "error", err, "count", len(ids))
		return err
	}
	return nil
}

// AddNote appends to the task's thread. Notes are never edited or removed
// afterwards. A note is either text or a file reference; file notes get a
// generated text line so threads stay readable.
func (s *scheduleService) AddNote(ctx context.Context, taskID, author string, req *model.AddNoteRequest) (*model.ScheduleTask, error) {
	if req.Text == "" && req.FileName == "" {
		return nil, model.ErrInvalidInput
	}
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note := model.Note{
		ID:     uuid.NewString(),
		Author: author,
		Text:   req.Text,
		Time:   now.Format("15:04"),
		Date:   now.Format("Jan 2"),
	}
	if req.FileName != "" {
		note.FileName = req.FileName
		note.IsImage = req.IsImage
		note.IsFile = !req.IsImage
		if note.Text == "" {
			if note.IsImage {
				note.Text = "Sent an image"
			} else {
				note.Text = fmt.Sprintf("Sent a file: %s", req.FileName)
			}
		}
	}

	next := *task
	next.Notes = append(append([]model.Note{}, task.Notes...), note)
	if err := s.tasks.Update(ctx, &next); err != nil {
		s.logger.Error("Error appending note", "error", err, "task_id", taskID)
		return nil, err
	}
	return &next, nil
}

// Search is a case-insensitive substring match on title or assignee,
// preserving the collection order.
func (s *scheduleService) Search(ctx context.Context, query string) ([]model.ScheduleTask, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return tasks, nil
	}
	q := strings.ToLower(query)
	matched := []model.ScheduleTask{}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.AssignedTo), q) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
