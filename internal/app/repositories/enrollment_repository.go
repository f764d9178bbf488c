package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydink/cms/internal/app/models"
	"github.com/aydink/cms/internal/pkg/dberrors"
)

// enrollmentRepository handles the course/user association tables. Each role
// has its own table, so a user can hold both roles in the same course.
type enrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{
		db: pool,
	}
}

// tableForRole maps a role onto its association table
func tableForRole(role models.Role) string {
	if role == models.RoleInstructor {
		return "course_instructors"
	}
	return "course_students"
}

// Add inserts a membership edge. Each table carries a UNIQUE (course_id,
// user_id) constraint; re-enrolling an existing pair under the same role is
// a no-op.
func (r *enrollmentRepository) Add(ctx context.Context, courseID, userID int64, role models.Role) error {
	query := squirrel.Insert(tableForRole(role)).
		Columns("course_id", "user_id").
		Values(courseID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("error adding enrollment: %w", err)
	}

	return nil
}

// GetUsersByCourse retrieves the members of a course under a role, in
// enrollment order.
func (r *enrollmentRepository) GetUsersByCourse(ctx context.Context, courseID int64, role models.Role) ([]models.User, error) {
	query := squirrel.Select("u.id", "u.name", "u.netid").
		From(tableForRole(role) + " e").
		Join("users u ON u.id = e.user_id").
		Where("e.course_id = ?", courseID).
		OrderBy("e.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.NetID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetCoursesByUser retrieves the courses a user belongs to under a role, in
// enrollment order.
func (r *enrollmentRepository) GetCoursesByUser(ctx context.Context, userID int64, role models.Role) ([]models.Course, error) {
	query := squirrel.Select("c.id", "c.code", "c.name").
		From(tableForRole(role) + " e").
		Join("courses c ON c.id = e.course_id").
		Where("e.user_id = ?", userID).
		OrderBy("e.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
