package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/aydink/cms/internal/app/models"
	"github.com/aydink/cms/internal/app/repositories"
	"github.com/aydink/cms/internal/pkg/apperrors"
)

// In-memory repositories backing the service tests. They share one store so
// cascade behavior can be observed across entity types, and they mirror the
// SQL implementations: identity assignment, creation order, unique edges.

type edge struct {
	courseID int64
	userID   int64
}

type fakeStore struct {
	courses     map[int64]models.Course
	users       map[int64]models.User
	assignments []models.Assignment

	instructorEdges []edge
	studentEdges    []edge

	nextCourseID     int64
	nextUserID       int64
	nextAssignmentID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courses: make(map[int64]models.Course),
		users:   make(map[int64]models.User),
	}
}

func (s *fakeStore) edgesForRole(role models.Role) *[]edge {
	if role == models.RoleInstructor {
		return &s.instructorEdges
	}
	return &s.studentEdges
}

type fakeCourseRepo struct{ store *fakeStore }

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.store.nextCourseID++
	course.ID = r.store.nextCourseID
	r.store.courses[course.ID] = *course
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.store.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &course, nil
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0, len(r.store.courses))
	for _, course := range r.store.courses {
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}

	var kept []models.Assignment
	for _, assignment := range r.store.assignments {
		if assignment.CourseID != id {
			kept = append(kept, assignment)
		}
	}
	r.store.assignments = kept

	for _, edges := range []*[]edge{&r.store.instructorEdges, &r.store.studentEdges} {
		var remaining []edge
		for _, e := range *edges {
			if e.courseID != id {
				remaining = append(remaining, e)
			}
		}
		*edges = remaining
	}

	delete(r.store.courses, id)
	return nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.store.nextUserID++
	user.ID = r.store.nextUserID
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

type fakeAssignmentRepo struct{ store *fakeStore }

func (r *fakeAssignmentRepo) Create(_ context.Context, assignment *models.Assignment) error {
	r.store.nextAssignmentID++
	assignment.ID = r.store.nextAssignmentID
	r.store.assignments = append(r.store.assignments, *assignment)
	return nil
}

func (r *fakeAssignmentRepo) GetByCourseID(_ context.Context, courseID int64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	for _, assignment := range r.store.assignments {
		if assignment.CourseID == courseID {
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

type fakeEnrollmentRepo struct{ store *fakeStore }

func (r *fakeEnrollmentRepo) Add(_ context.Context, courseID, userID int64, role models.Role) error {
	edges := r.store.edgesForRole(role)
	for _, e := range *edges {
		if e.courseID == courseID && e.userID == userID {
			return nil
		}
	}
	*edges = append(*edges, edge{courseID: courseID, userID: userID})
	return nil
}

func (r *fakeEnrollmentRepo) GetUsersByCourse(_ context.Context, courseID int64, role models.Role) ([]models.User, error) {
	var users []models.User
	for _, e := range *r.store.edgesForRole(role) {
		if e.courseID == courseID {
			users = append(users, r.store.users[e.userID])
		}
	}
	return users, nil
}

func (r *fakeEnrollmentRepo) GetCoursesByUser(_ context.Context, userID int64, role models.Role) ([]models.Course, error) {
	var courses []models.Course
	for _, e := range *r.store.edgesForRole(role) {
		if e.userID == userID {
			courses = append(courses, r.store.courses[e.courseID])
		}
	}
	return courses, nil
}

func newTestServices() (*CourseService, *UserService, *fakeStore) {
	store := newFakeStore()
	courses := &fakeCourseRepo{store: store}
	users := &fakeUserRepo{store: store}
	assignments := &fakeAssignmentRepo{store: store}
	enrollments := &fakeEnrollmentRepo{store: store}

	logger := zerolog.Nop()
	courseService := NewCourseService(courses, users, assignments, enrollments, logger)
	userService := NewUserService(users, enrollments, logger)
	return courseService, userService, store
}

var (
	_ repositories.CourseRepository     = (*fakeCourseRepo)(nil)
	_ repositories.UserRepository       = (*fakeUserRepo)(nil)
	_ repositories.AssignmentRepository = (*fakeAssignmentRepo)(nil)
	_ repositories.EnrollmentRepository = (*fakeEnrollmentRepo)(nil)
)
