package models

// Course represents a course record from the 'courses' table.
// A course exclusively owns its assignments; deleting the course
// removes them as well. Instructor and student memberships live in
// separate association tables and have independent lifetimes.
type Course struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}
