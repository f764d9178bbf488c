package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aydink/cms/internal/app/models/dto"
	"github.com/aydink/cms/internal/pkg/apperrors"
)

func TestCreateUser(t *testing.T) {
	_, userService, _ := newTestServices()

	user := createUser(t, userService, "Ann", "ab1")
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ab1", user.NetID)
	assert.NotNil(t, user.Courses)
	assert.Empty(t, user.Courses)
}

func TestCreateUserValidationOrder(t *testing.T) {
	_, userService, _ := newTestServices()
	ctx := context.Background()

	// Name is validated before netid; the two messages stay distinct
	_, err := userService.CreateUser(ctx, dto.CreateUserRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "Invalid input: user name is not provided", err.Error())

	_, err = userService.CreateUser(ctx, dto.CreateUserRequest{
		Name: strPtr(""),
		NetID: strPtr("ab1"),
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid input: user name is not provided", err.Error())

	_, err = userService.CreateUser(ctx, dto.CreateUserRequest{
		Name: strPtr("Ann"),
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid input: user netid is not provided", err.Error())
}

func TestGetUserNotFound(t *testing.T) {
	_, userService, _ := newTestServices()

	_, err := userService.GetUser(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetUserCourseOrdering(t *testing.T) {
	courseService, userService, _ := newTestServices()
	ctx := context.Background()

	algo := createCourse(t, courseService, "CS4820", "Algorithms")
	intro := createCourse(t, courseService, "CS1110", "Intro to Computing")
	ann := createUser(t, userService, "Ann", "ab1")

	// Enrolled as a student first, then as an instructor elsewhere
	_, err := courseService.EnrollUser(ctx, intro.ID, dto.EnrollUserRequest{
		UserID: i64Ptr(ann.ID),
		Type:   strPtr("student"),
	})
	require.NoError(t, err)
	_, err = courseService.EnrollUser(ctx, algo.ID, dto.EnrollUserRequest{
		UserID: i64Ptr(ann.ID),
		Type:   strPtr("instructor"),
	})
	require.NoError(t, err)

	user, err := userService.GetUser(ctx, ann.ID)
	require.NoError(t, err)

	// Instructor memberships come first regardless of enrollment time
	require.Len(t, user.Courses, 2)
	assert.Equal(t, dto.CourseSummary{ID: algo.ID, Code: "CS4820", Name: "Algorithms"}, user.Courses[0])
	assert.Equal(t, dto.CourseSummary{ID: intro.ID, Code: "CS1110", Name: "Intro to Computing"}, user.Courses[1])
}

func TestGetUserBothRolesSameCourse(t *testing.T) {
	courseService, userService, _ := newTestServices()
	ctx := context.Background()

	course := createCourse(t, courseService, "CS1110", "Intro to Computing")
	ann := createUser(t, userService, "Ann", "ab1")

	for _, role := range []string{"instructor", "student"} {
		_, err := courseService.EnrollUser(ctx, course.ID, dto.EnrollUserRequest{
			UserID: i64Ptr(ann.ID),
			Type:   strPtr(role),
		})
		require.NoError(t, err)
	}

	// The two roles are independent memberships, so the course shows up once
	// per role
	user, err := userService.GetUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, user.Courses, 2)
	assert.Equal(t, user.Courses[0], user.Courses[1])
}
