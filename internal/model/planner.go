package model

// EventKind tags a calendar entry.
type EventKind string

const (
	EventCustom     EventKind = "event"
	EventAssignment EventKind = "assignment"
	EventQuiz       EventKind = "quiz"
)

// CustomEvent is a calendar-only annotation, scoped to the running session.
// It is never persisted and is not tied to a course.
type CustomEvent struct {
	Title string    `json:"title"`
	Date  string    `json:"date"`
	Time  string    `json:"time,omitempty"`
	Type  EventKind `json:"type"`
}

type AddEventRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string `json:"time"`
}

// TodoItem is one entry of the derived to-do list: an assignment or quiz
// annotated with its owning course.
type TodoItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     string    `json:"dueDate"`
	Kind        EventKind `json:"type"`
	CourseID    string    `json:"courseId"`
	CourseName  string    `json:"courseName"`
	CourseCode  string    `json:"courseCode"`
	CourseColor string    `json:"courseColor"`
}

// CalendarEvent is one derived entry in the month index.
type CalendarEvent struct {
	Date     string    `json:"date"`
	Title    string    `json:"title"`
	Kind     EventKind `json:"type"`
	CourseID string    `json:"courseId,omitempty"`
	ItemID   string    `json:"itemId,omitempty"`
}

// CalendarDay is the per-day view: the full event list plus up to three
// markers for the compact month grid.
type CalendarDay struct {
	Day     int             `json:"day"`
	Events  []CalendarEvent `json:"events"`
	Markers []EventKind     `json:"markers"`
}
