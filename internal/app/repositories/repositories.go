package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/cms/internal/app/models"
)

// The services program against these interfaces; the pgx implementations
// below are swapped for in-memory ones in tests.

// CourseRepository handles persistence of courses
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository handles persistence of users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AssignmentRepository handles persistence of assignments
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByCourseID(ctx context.Context, courseID int64) ([]models.Assignment, error)
}

// EnrollmentRepository handles the course/user membership edges
type EnrollmentRepository interface {
	Add(ctx context.Context, courseID, userID int64, role models.Role) error
	GetUsersByCourse(ctx context.Context, courseID int64, role models.Role) ([]models.User, error)
	GetCoursesByUser(ctx context.Context, userID int64, role models.Role) ([]models.Course, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     CourseRepository
	UserRepository       UserRepository
	AssignmentRepository AssignmentRepository
	EnrollmentRepository EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:     NewCourseRepository(db),
		UserRepository:       NewUserRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
