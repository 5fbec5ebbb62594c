package model

// DateLayout is the wire format for all due dates ("2026-03-26"). Dates are
// carried as strings end to end and only parsed where ordering matters.
const DateLayout = "2006-01-02"

// UnlimitedAttempts marks an assignment or quiz without an attempt cap.
const UnlimitedAttempts = 0

// ItemType tags the lightweight content references inside a module. An item
// of type "assignment" is purely descriptive; it does not create a gradable
// Assignment record.
type ItemType string

const (
	ItemPage       ItemType = "page"
	ItemAssignment ItemType = "assignment"
	ItemQuiz       ItemType = "quiz"
	ItemFile       ItemType = "file"
	ItemDiscussion ItemType = "discussion"
)

type Item struct {
	Title string   `json:"title"`
	Type  ItemType `json:"type"`
}

// Module is an ordered content folder within a course.
type Module struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Assignment is a gradable task owned by exactly one course. MaxAttempts of
// UnlimitedAttempts (0) means no cap.
type Assignment struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DueDate     string   `json:"dueDate"`
	DueTime     string   `json:"dueTime"`
	Files       []string `json:"files"`
	MaxAttempts int      `json:"maxAttempts"`
}

// Question holds exactly four options; Correct indexes into Options.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	DueDate     string     `json:"dueDate"`
	MaxAttempts int        `json:"maxAttempts"`
	Questions   []Question `json:"questions"`
}

// GradeType distinguishes what produced the grade.
type GradeType string

const (
	GradeAssignment GradeType = "assignment"
	GradeQuiz       GradeType = "quiz"
)

// Grade records one student's outcome on one assignment or quiz. At most one
// grade exists per (AssignmentID, StudentID) pair; recording a new one
// replaces any prior entry for the pair.
type Grade struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	StudentID    string    `json:"studentId"`
	Title        string    `json:"title"`
	Score        int       `json:"score"`
	MaxScore     int       `json:"maxScore"`
	Date         string    `json:"date"`
	Type         GradeType `json:"type"`
}

// Course is the top-level aggregate: ordered modules, assignments, quizzes
// and grades, plus cosmetic color/icon assigned at creation. Mutations build
// a new value and replace the stored course wholesale; nested slices are
// never edited in place.
type Course struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	Term        string       `json:"term"`
	Color       string       `json:"color"`
	Icon        string       `json:"icon"`
	Modules     []Module     `json:"modules"`
	Assignments []Assignment `json:"assignments"`
	Quizzes     []Quiz       `json:"quizzes"`
	Grades      []Grade      `json:"grades"`
}

type CreateCourseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Code string `json:"code" validate:"required,min=1,max=50"`
	Term string `json:"term" validate:"required,min=1,max=50"`
}

type AddModuleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

type AddItemRequest struct {
	Title string   `json:"title" validate:"required,min=1,max=200"`
	Type  ItemType `json:"type" validate:"required,oneof=page assignment quiz file discussion"`
}

type AddAssignmentRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	DueDate     string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	DueTime     string   `json:"dueTime" validate:"required"`
	Files       []string `json:"files"`
	MaxAttempts int      `json:"maxAttempts" validate:"min=0"`
}

type QuestionRequest struct {
	Text    string   `json:"text" validate:"required"`
	Options []string `json:"options" validate:"required,len=4,dive,required"`
	Correct int      `json:"correct" validate:"min=0,max=3"`
}

type AddQuizRequest struct {
	Title       string            `json:"title" validate:"required,min=1,max=200"`
	DueDate     string            `json:"dueDate" validate:"required,datetime=2006-01-02"`
	MaxAttempts int               `json:"maxAttempts" validate:"min=0"`
	Questions   []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// RecordGradeRequest is the instructor grading form.
type RecordGradeRequest struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	StudentID    string `json:"studentId" validate:"required"`
	Score        int    `json:"score" validate:"min=0,max=100"`
}

// QuizAttemptRequest maps question index to selected option index.
// Unanswered questions are simply absent.
type QuizAttemptRequest struct {
	Answers map[int]int `json:"answers" validate:"required"`
}

// CourseGradesResponse is the student grade view for one course.
type CourseGradesResponse struct {
	Grades  []Grade `json:"grades"`
	Average int     `json:"average"`
}
