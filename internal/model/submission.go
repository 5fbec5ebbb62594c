package model

// Submission is a student's attempt artifact for an assignment or quiz.
// Several submissions may coexist for the same (AssignmentID, StudentID)
// pair; "latest" means the last appended entry.
type Submission struct {
	AssignmentID string   `json:"assignmentId"`
	StudentID    string   `json:"studentId"`
	Text         string   `json:"text"`
	FileNames    []string `json:"fileNames"`
	Date         string   `json:"date"`
}

type SubmitRequest struct {
	AssignmentID string   `json:"assignmentId" validate:"required"`
	Text         string   `json:"text"`
	FileNames    []string `json:"fileNames"`
}
