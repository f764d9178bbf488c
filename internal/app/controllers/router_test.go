package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aydink/cms/internal/app/controllers"
	"github.com/aydink/cms/internal/app/models"
	"github.com/aydink/cms/internal/app/routes"
	"github.com/aydink/cms/internal/app/services"
	"github.com/aydink/cms/internal/pkg/apperrors"
)

// The handler tests run the real router, services and controllers over
// in-memory repositories, so everything except the pgx layer is exercised
// end to end.

type edge struct {
	courseID int64
	userID   int64
}

type memStore struct {
	courses     map[int64]models.Course
	users       map[int64]models.User
	assignments []models.Assignment

	instructorEdges []edge
	studentEdges    []edge

	nextID int64
}

func (s *memStore) edgesForRole(role models.Role) *[]edge {
	if role == models.RoleInstructor {
		return &s.instructorEdges
	}
	return &s.studentEdges
}

type memCourseRepo struct{ s *memStore }

func (r *memCourseRepo) Create(_ context.Context, c *models.Course) error {
	r.s.nextID++
	c.ID = r.s.nextID
	r.s.courses[c.ID] = *c
	return nil
}

func (r *memCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (r *memCourseRepo) GetAll(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	var kept []models.Assignment
	for _, a := range r.s.assignments {
		if a.CourseID != id {
			kept = append(kept, a)
		}
	}
	r.s.assignments = kept
	for _, edges := range []*[]edge{&r.s.instructorEdges, &r.s.studentEdges} {
		var remaining []edge
		for _, e := range *edges {
			if e.courseID != id {
				remaining = append(remaining, e)
			}
		}
		*edges = remaining
	}
	delete(r.s.courses, id)
	return nil
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.s.nextID++
	u.ID = r.s.nextID
	r.s.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

type memAssignmentRepo struct{ s *memStore }

func (r *memAssignmentRepo) Create(_ context.Context, a *models.Assignment) error {
	r.s.nextID++
	a.ID = r.s.nextID
	r.s.assignments = append(r.s.assignments, *a)
	return nil
}

func (r *memAssignmentRepo) GetByCourseID(_ context.Context, courseID int64) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range r.s.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memEnrollmentRepo struct{ s *memStore }

func (r *memEnrollmentRepo) Add(_ context.Context, courseID, userID int64, role models.Role) error {
	edges := r.s.edgesForRole(role)
	for _, e := range *edges {
		if e.courseID == courseID && e.userID == userID {
			return nil
		}
	}
	*edges = append(*edges, edge{courseID: courseID, userID: userID})
	return nil
}

func (r *memEnrollmentRepo) GetUsersByCourse(_ context.Context, courseID int64, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, e := range *r.s.edgesForRole(role) {
		if e.courseID == courseID {
			out = append(out, r.s.users[e.userID])
		}
	}
	return out, nil
}

func (r *memEnrollmentRepo) GetCoursesByUser(_ context.Context, userID int64, role models.Role) ([]models.Course, error) {
	var out []models.Course
	for _, e := range *r.s.edgesForRole(role) {
		if e.userID == userID {
			out = append(out, r.s.courses[e.courseID])
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{
		courses: make(map[int64]models.Course),
		users:   make(map[int64]models.User),
	}

	logger := zerolog.Nop()
	courseService := services.NewCourseService(
		&memCourseRepo{s: store},
		&memUserRepo{s: store},
		&memAssignmentRepo{s: store},
		&memEnrollmentRepo{s: store},
		logger,
	)
	userService := services.NewUserService(&memUserRepo{s: store}, &memEnrollmentRepo{s: store}, logger)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(courseService),
		controllers.NewUserController(userService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}
