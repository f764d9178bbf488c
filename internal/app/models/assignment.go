package models

// Assignment represents an assignment record from the 'assignments' table.
// The due date is stored as an opaque string; its format is not validated.
type Assignment struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	DueDate  string `json:"due_date" db:"due_date"`
	CourseID int64  `json:"course_id" db:"course_id"`
}
