// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"esim_portal_backend/platform/apperr"
	"esim_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRequest   = "invalid request"
	MsgValidationFailed = "validation failed"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// BindJSON decodes and validates a JSON body into req. On failure it writes a
// 400 response and returns false.
func BindJSON(c *gin.Context, val *validator.Validator, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		Error(c, http.StatusBadRequest, MsgInvalidRequest, nil)
		return false
	}
	if err := val.Struct(req); err != nil {
		Error(c, http.StatusBadRequest, MsgValidationFailed, validator.FieldErrors(err))
		return false
	}
	return true
}

// HandleError maps domain errors to HTTP responses.
// A typed *apperr.Error uses its Kind to pick the status code; anything else
// is treated as an internal error and its message is not exposed.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	_ = c.Error(err)

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Error:   domainErr.Message,
			Details: domainErr.Details,
		})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	return true
}
