package models

// Role defines the membership role of a user within a course
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// RoleFromString maps an enrollment type value to a Role. Any value other
// than "instructor" enrolls as a student; unrecognized types are not
// rejected.
func RoleFromString(s string) Role {
	if s == string(RoleInstructor) {
		return RoleInstructor
	}
	return RoleStudent
}
