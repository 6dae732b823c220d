package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error kinds surfaced by the service layer. The availability engine never
// produces errors; these classify failures of its collaborators.
const (
	KindNotFound     = "notFound"
	KindConflict     = "conflict"
	KindUnauthorized = "unauthorized"
	KindBadRequest   = "badRequest"
	KindInternal     = "internal"
)

// APIError is a service-layer error carrying a kind so handlers can map it
// to an HTTP status without string matching.
type APIError struct {
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewNotFoundError(msg string) error {
	return &APIError{Kind: KindNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &APIError{Kind: KindConflict, Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &APIError{Kind: KindUnauthorized, Message: msg}
}

func NewBadRequestError(msg string) error {
	return &APIError{Kind: KindBadRequest, Message: msg}
}

// StatusForError maps a service error to an HTTP status code.
func StatusForError(err error) int {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
