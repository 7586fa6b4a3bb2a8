package errors

import (
	"fmt"
	"io"
	"net/http"

	"codeberg.org/devops-project/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers:
//   - Use errors.InternalError(), errors.NotFound(), etc. to respond
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller decide how to log and respond

// standard error codes
const (
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeTooManyRequests  = "too_many_requests"
	CodeServerError      = "server_error"
)

// PanicError wraps a value recovered from a panicking handler
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 405 method not allowed error
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error:   CodeMethodNotAllowed,
		Message: c.Request.Method + " not allowed on " + c.Request.URL.Path,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	info := classifyError(err)

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"category", info.category,
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: info.sanitized,
	})
}

// handler for gin's NoRoute hook
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		NotFound(c, "")
	}
}

// handler for gin's NoMethod hook, needs engine.HandleMethodNotAllowed
func NoMethod() gin.HandlerFunc {
	return MethodNotAllowed
}

// recovers handler panics into a 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		InternalError(c, "internal server error", &PanicError{Value: recovered})
	})
}

