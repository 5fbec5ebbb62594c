package model

// Priority of a schedule task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Note is one entry in a task's thread. Notes are append-only: never edited
// or deleted once added.
type Note struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Text     string `json:"text"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	IsImage  bool   `json:"isImage"`
	IsFile   bool   `json:"isFile"`
	FileName string `json:"fileName,omitempty"`
}

// ScheduleTask lives in its own collection, independent of any course. Its
// due date serializes as "due" on the wire; internally it is the same
// normalized DateLayout string the course domain uses.
type ScheduleTask struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	AssignedTo string   `json:"assignedTo"`
	DueDate    string   `json:"due"`
	DueTime    string   `json:"dueTime"`
	Priority   Priority `json:"priority"`
	Notes      []Note   `json:"notes"`
}

type AddTaskRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	AssignedTo string   `json:"assignedTo" validate:"required,min=1,max=100"`
	DueDate    string   `json:"due" validate:"required,datetime=2006-01-02"`
	DueTime    string   `json:"dueTime"`
	Priority   Priority `json:"priority" validate:"required,oneof=High Medium Low"`
}

type DeleteTasksRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// AddNoteRequest appends a note to a task thread. Either Text or FileName
// must be present; file notes are flagged IsImage or IsFile by the service.
type AddNoteRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
	IsImage  bool   `json:"isImage"`
}
