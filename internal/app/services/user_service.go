package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aydink/cms/internal/app/models"
	"github.com/aydink/cms/internal/app/models/dto"
	"github.com/aydink/cms/internal/app/repositories"
	"github.com/aydink/cms/internal/pkg/apperrors"
)

// UserService handles user-related operations
type UserService struct {
	users       repositories.UserRepository
	enrollments repositories.EnrollmentRepository
	logger      zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	users repositories.UserRepository,
	enrollments repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		users:       users,
		enrollments: enrollments,
		logger:      logger,
	}
}

// CreateUser validates and persists a new user. The name is checked before
// the netid so the two failures stay distinguishable.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !provided(req.Name) {
		return nil, apperrors.NewValidationError("Invalid input: user name is not provided")
	}
	if !provided(req.NetID) {
		return nil, apperrors.NewValidationError("Invalid input: user netid is not provided")
	}

	user := &models.User{
		Name:  *req.Name,
		NetID: *req.NetID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("netid", user.NetID).Msg("User created")

	return &dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		NetID:   user.NetID,
		Courses: []dto.CourseSummary{},
	}, nil
}

// GetUser retrieves a user by ID in full form. The courses collection lists
// instructor memberships first, then student memberships, each in enrollment
// order.
func (s *UserService) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	teaching, err := s.enrollments.GetCoursesByUser(ctx, user.ID, models.RoleInstructor)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.GetCoursesByUser(ctx, user.ID, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	courses := courseSummaries(teaching)
	courses = append(courses, courseSummaries(enrolled)...)

	return &dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		NetID:   user.NetID,
		Courses: courses,
	}, nil
}
