package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aydink/cms/internal/app/models"
	"github.com/aydink/cms/internal/app/models/dto"
	"github.com/aydink/cms/internal/app/repositories"
	"github.com/aydink/cms/internal/pkg/apperrors"
)

// CourseService handles course-related operations: CRUD on courses,
// enrollments and course-scoped assignment creation.
type CourseService struct {
	courses     repositories.CourseRepository
	users       repositories.UserRepository
	assignments repositories.AssignmentRepository
	enrollments repositories.EnrollmentRepository
	logger      zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courses repositories.CourseRepository,
	users repositories.UserRepository,
	assignments repositories.AssignmentRepository,
	enrollments repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courses:     courses,
		users:       users,
		assignments: assignments,
		enrollments: enrollments,
		logger:      logger,
	}
}

func provided(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// ListCourses retrieves all courses in creation order, each in full form.
func (s *CourseService) ListCourses(ctx context.Context) (*dto.CourseListResponse, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		response, err := s.buildCourseResponse(ctx, &courses[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}

	return &dto.CourseListResponse{Courses: responses}, nil
}

// CreateCourse validates and persists a new course. The code is checked
// before the name.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if !provided(req.Code) {
		return nil, apperrors.NewValidationError("Invalid course code")
	}
	if !provided(req.Name) {
		return nil, apperrors.NewValidationError("Invalid course name")
	}

	course := &models.Course{
		Code: *req.Code,
		Name: *req.Name,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", course.ID).Str("code", course.Code).Msg("Course created")

	// A fresh course has no assignments or members yet
	return &dto.CourseResponse{
		ID:          course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Assignments: []dto.AssignmentResponse{},
		Instructors: []dto.UserSummary{},
		Students:    []dto.UserSummary{},
	}, nil
}

// GetCourse retrieves a course by ID in full form.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.buildCourseResponse(ctx, course)
}

// DeleteCourse removes a course and everything it owns, returning the
// course's last serialized snapshot.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.buildCourseResponse(ctx, course)
	if err != nil {
		return nil, err
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", id).Msg("Course deleted")

	return snapshot, nil
}

// EnrollUser adds a user to a course under a role. The course is looked up
// before the body is validated, so a missing course wins over a missing
// field. A type other than "instructor" enrolls the user as a student.
func (s *CourseService) EnrollUser(ctx context.Context, courseID int64, req dto.EnrollUserRequest) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if req.UserID == nil {
		return nil, apperrors.NewValidationError("Invalid input: user_id is not provided")
	}
	if req.Type == nil {
		return nil, apperrors.NewValidationError("Invalid input: enrollment type is not provided")
	}

	user, err := s.users.GetByID(ctx, *req.UserID)
	if err != nil {
		return nil, err
	}

	role := models.RoleFromString(*req.Type)
	if err := s.enrollments.Add(ctx, course.ID, user.ID, role); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("courseId", course.ID).
		Int64("userId", user.ID).
		Str("role", string(role)).
		Msg("User enrolled")

	return s.buildCourseResponse(ctx, course)
}

// CreateAssignment creates an assignment owned by a course. The course is
// looked up before the body is validated; the title is checked before the
// due date.
func (s *CourseService) CreateAssignment(ctx context.Context, courseID int64, req dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if !provided(req.Title) {
		return nil, apperrors.NewValidationError("Invalid input: assignment title is not provided")
	}
	if !provided(req.DueDate) {
		return nil, apperrors.NewValidationError("Invalid input: assignment due date is not provided")
	}

	assignment := &models.Assignment{
		Title:    *req.Title,
		DueDate:  *req.DueDate,
		CourseID: course.ID,
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("assignmentId", assignment.ID).
		Int64("courseId", course.ID).
		Msg("Assignment created")

	response := assignmentResponse(assignment, course)
	return &response, nil
}

// buildCourseResponse assembles the full form of a course: its assignments
// in full form and its members as summaries.
func (s *CourseService) buildCourseResponse(ctx context.Context, course *models.Course) (*dto.CourseResponse, error) {
	assignments, err := s.assignments.GetByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	instructors, err := s.enrollments.GetUsersByCourse(ctx, course.ID, models.RoleInstructor)
	if err != nil {
		return nil, err
	}

	students, err := s.enrollments.GetUsersByCourse(ctx, course.ID, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	assignmentResponses := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		assignmentResponses = append(assignmentResponses, assignmentResponse(&assignments[i], course))
	}

	return &dto.CourseResponse{
		ID:          course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Assignments: assignmentResponses,
		Instructors: userSummaries(instructors),
		Students:    userSummaries(students),
	}, nil
}
