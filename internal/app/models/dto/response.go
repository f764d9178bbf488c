package dto

// Responses come in two tiers. The full form is used when the entity is the
// direct subject of a response; the summary form is used when it appears
// nested inside another entity. Nesting summaries instead of full forms is
// what keeps the course/user cycle from expanding without bound.

// CourseSummary is the reduced course representation nested in other payloads
type CourseSummary struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CourseResponse is the full course representation
type CourseResponse struct {
	ID          int64                `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Assignments []AssignmentResponse `json:"assignments"`
	Instructors []UserSummary        `json:"instructors"`
	Students    []UserSummary        `json:"students"`
}

// CourseListResponse is the envelope of GET /api/courses/
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// UserSummary is the reduced user representation nested in course payloads
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netid"`
}

// UserResponse is the full user representation. Courses lists instructor
// memberships first, then student memberships, each in enrollment order.
type UserResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	NetID   string          `json:"netid"`
	Courses []CourseSummary `json:"courses"`
}

// AssignmentResponse is the full assignment representation. Assignments are
// never nested inside other entities, so there is no summary form.
type AssignmentResponse struct {
	ID      int64         `json:"id"`
	Title   string        `json:"title"`
	DueDate string        `json:"due_date"`
	Course  CourseSummary `json:"course"`
}

// ErrorResponse is the envelope of every failure response
type ErrorResponse struct {
	Error string `json:"error"`
}
