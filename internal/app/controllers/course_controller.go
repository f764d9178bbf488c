package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aydink/cms/internal/app/models/dto"
	"github.com/aydink/cms/internal/app/services"
	"github.com/aydink/cms/internal/middleware"
	"github.com/aydink/cms/internal/pkg/apperrors"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// courseIDParam parses the course id path parameter. A non-integer id never
// names an existing course, so it reports "not found" rather than a
// validation failure.
func courseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrCourseNotFound)
		return 0, false
	}
	return id, true
}

// ListCourses handles GET /api/courses/
func (c *CourseController) ListCourses(ctx *gin.Context) {
	response, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateCourse handles POST /api/courses/
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// GetCourse handles GET /api/courses/{id}/
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/courses/{id}/ and responds with the
// deleted course's last snapshot.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.DeleteCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// EnrollUser handles POST /api/courses/{id}/add/
func (c *CourseController) EnrollUser(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	// An absent body behaves like an empty one; the service checks course
	// existence before field presence.
	var req dto.EnrollUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	course, err := c.courseService.EnrollUser(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateAssignment handles POST /api/courses/{id}/assignment/
func (c *CourseController) CreateAssignment(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	assignment, err := c.courseService.CreateAssignment(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, assignment)
}
