package dto

// Request bodies use pointer fields so a missing field can be told apart
// from an empty one; the services decide which of the two is acceptable.

// CreateCourseRequest is the body of POST /api/courses/
type CreateCourseRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

// CreateUserRequest is the body of POST /api/users/
type CreateUserRequest struct {
	Name  *string `json:"name"`
	NetID *string `json:"netid"`
}

// EnrollUserRequest is the body of POST /api/courses/{id}/add/
type EnrollUserRequest struct {
	UserID *int64  `json:"user_id"`
	Type   *string `json:"type"`
}

// CreateAssignmentRequest is the body of POST /api/courses/{id}/assignment/
type CreateAssignmentRequest struct {
	Title   *string `json:"title"`
	DueDate *string `json:"due_date"`
}
