package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/cms/internal/app/models/dto"
	"github.com/aydink/cms/internal/pkg/apperrors"
	"github.com/aydink/cms/internal/pkg/logger"
)

// HandleAPIError maps application errors to status codes and the
// {"error": <message>} envelope. Validation failures surface their
// field-specific message; unknown errors are logged and reported as 500.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Course not found"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Assignment not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Message})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
