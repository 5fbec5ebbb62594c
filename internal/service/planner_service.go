package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"classboard/internal/model"
	"classboard/internal/repository"
)

// MaxDayMarkers caps the compact per-day markers in the month grid; the full
// event list is always available alongside.
const MaxDayMarkers = 3

// PlannerService is the derived-view half of the core: the to-do list and the
// calendar index. Both are pure functions of the current collections,
// recomputed on every call — nothing here is cached or persisted. Custom
// events are the one exception to statelessness: they live in memory for the
// duration of the process, scoped to the running session, and are never
// written to the store.
type PlannerService interface {
	Todos(ctx context.Context) ([]model.TodoItem, error)
	Calendar(ctx context.Context, year int, month time.Month) ([]model.CalendarDay, error)
	AddEvent(req *model.AddEventRequest) model.CustomEvent
}

type plannerService struct {
	courses repository.CourseRepository
	logger  *slog.Logger

	mu     sync.Mutex
	events []model.CustomEvent
}

func NewPlannerService(courses repository.CourseRepository, logger *slog.Logger) PlannerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &plannerService{courses: courses, logger: logger}
}

// Todos flattens every course's assignments and quizzes into one list,
// annotated with the owning course, ascending by due date. Ties and
// unparseable dates keep their original course/content order.
func (s *plannerService) Todos(ctx context.Context) ([]model.TodoItem, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	todos := []model.TodoItem{}
	for _, course := range courses {
		for _, a := range course.Assignments {
			todos = append(todos, model.TodoItem{
				ID:          a.ID,
				Title:       a.Title,
				DueDate:     a.DueDate,
				Kind:        model.EventAssignment,
				CourseID:    course.ID,
				CourseName:  course.Name,
				CourseCode:  course.Code,
				CourseColor: course.Color,
			})
		}
		for _, q := range course.Quizzes {
			todos = append(todos, model.TodoItem{
				ID:          q.ID,
				Title:       q.Title,
				DueDate:     q.DueDate,
				Kind:        model.EventQuiz,
				CourseID:    course.ID,
				CourseName:  course.Name,
				CourseCode:  course.Code,
				CourseColor: course.Color,
			})
		}
	}

	sort.SliceStable(todos, func(i, j int) bool {
		ti, iok := parseDueDate(todos[i].DueDate)
		tj, jok := parseDueDate(todos[j].DueDate)
		if iok != jok {
			return iok // dated entries before undated ones
		}
		if !iok {
			return false
		}
		return ti.Before(tj)
	})
	return todos, nil
}

// Calendar indexes the displayed month: custom events plus every assignment
// and quiz due in it, grouped by day. Recomputation is idempotent — moving to
// another month and back yields the identical index, and never discards
// custom events or course-derived entries.
func (s *plannerService) Calendar(ctx context.Context, year int, month time.Month) ([]model.CalendarDay, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	events := []model.CalendarEvent{}
	s.mu.Lock()
	for _, ev := range s.events {
		events = append(events, model.CalendarEvent{
			Date:  ev.Date,
			Title: ev.Title,
			Kind:  model.EventCustom,
		})
	}
	s.mu.Unlock()
	for _, course := range courses {
		for _, a := range course.Assignments {
			events = append(events, model.CalendarEvent{
				Date:     a.DueDate,
				Title:    a.Title,
				Kind:     model.EventAssignment,
				CourseID: course.ID,
				ItemID:   a.ID,
			})
		}
		for _, q := range course.Quizzes {
			events = append(events, model.CalendarEvent{
				Date:     q.DueDate,
				Title:    q.Title,
				Kind:     model.EventQuiz,
				CourseID: course.ID,
				ItemID:   q.ID,
			})
		}
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	byDay := map[int][]model.CalendarEvent{}
	for _, ev := range events {
		t, ok := parseDueDate(ev.Date)
		if !ok || len(ev.Date) < len(prefix) || ev.Date[:len(prefix)] != prefix {
			continue
		}
		byDay[t.Day()] = append(byDay[t.Day()], ev)
	}

	days := make([]model.CalendarDay, 0, len(byDay))
	for day, evs := range byDay {
		markers := make([]model.EventKind, 0, MaxDayMarkers)
		for _, ev := range evs[:min(len(evs), MaxDayMarkers)] {
			markers = append(markers, ev.Kind)
		}
		days = append(days, model.CalendarDay{Day: day, Events: evs, Markers: markers})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days, nil
}

// AddEvent registers a session-scoped calendar annotation.
func (s *plannerService) AddEvent(req *model.AddEventRequest) model.CustomEvent {
	ev := model.CustomEvent{
		Title: req.Title,
		Date:  req.Date,
		Time:  req.Time,
		Type:  model.EventCustom,
	}
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	return ev
}

func parseDueDate(s string) (time.Time, bool) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
