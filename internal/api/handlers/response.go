package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	apperrors "company-services-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"department with id 7 not found"`
}

// SuccessResponse wraps the payload of a successful call
type SuccessResponse struct {
	Success interface{} `json:"success"`
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}

func respondSuccess(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, SuccessResponse{Success: payload})
}

// queryID reads a positive integer query parameter, writing a 400 when it is
// missing or malformed
func queryID(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		respondError(c, apperrors.NewValidationError(name, "is required"))
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, apperrors.NewValidationError(name, fmt.Sprintf("%q is not an integer", raw)))
		return 0, false
	}
	return id, true
}

// bindBody decodes a JSON or form body into req, writing a 400 on failure
func bindBody(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		respondError(c, apperrors.NewValidationError("", "invalid request body: "+err.Error()))
		return false
	}
	return true
}
