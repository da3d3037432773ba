package errors

import (
	"fmt"
	"net/http"
)

// Domain-specific error codes for consistent API responses

// Action library errors
var (
	ErrLibraryNotFound    = &AppError{Code: "LIBRARY_NOT_FOUND", Message: "Action library not found", HTTPStatus: http.StatusNotFound}
	ErrLibraryInvalid     = &AppError{Code: "LIBRARY_INVALID", Message: "Action library failed validation", HTTPStatus: http.StatusBadRequest}
	ErrDuplicateAction    = &AppError{Code: "DUPLICATE_ACTION", Message: "Two actions in the library share a name", HTTPStatus: http.StatusBadRequest}
	ErrActionNameRequired = &AppError{Code: "ACTION_NAME_REQUIRED", Message: "Action name must not be empty", HTTPStatus: http.StatusBadRequest}
)

// Plan request errors
var (
	ErrGoalRequired       = &AppError{Code: "GOAL_REQUIRED", Message: "Goal state must not be empty", HTTPStatus: http.StatusBadRequest}
	ErrGoalValueUnknown   = &AppError{Code: "GOAL_VALUE_UNKNOWN", Message: "Goal predicates must be true or false, never unknown", HTTPStatus: http.StatusBadRequest}
	ErrWorldStateInvalid  = &AppError{Code: "WORLD_STATE_INVALID", Message: "World state failed validation", HTTPStatus: http.StatusBadRequest}
	ErrNoSolutionFound    = &AppError{Code: "NO_SOLUTION_FOUND", Message: "No acyclic action sequence reaches the goal", HTTPStatus: http.StatusUnprocessableEntity}
	ErrNoExecutableAction = &AppError{Code: "NO_EXECUTABLE_ACTION", Message: "No action in the library is executable from the initial state", HTTPStatus: http.StatusUnprocessableEntity}
	ErrSearchBudget       = &AppError{Code: "SEARCH_BUDGET_EXCEEDED", Message: "Search exceeded its node budget before finding a plan", HTTPStatus: http.StatusUnprocessableEntity}
)

// Authentication errors
var (
	ErrAuthTokenExpired = &AppError{Code: "AUTH_TOKEN_EXPIRED", Message: "Authentication token has expired", HTTPStatus: http.StatusUnauthorized}
	ErrAuthTokenInvalid = &AppError{Code: "AUTH_TOKEN_INVALID", Message: "Authentication token is invalid", HTTPStatus: http.StatusUnauthorized}
	ErrAuthMissingToken = &AppError{Code: "AUTH_MISSING_TOKEN", Message: "Authorization header is missing a bearer token", HTTPStatus: http.StatusUnauthorized}
)

// Storage errors
var (
	ErrDatabaseConnection = &AppError{Code: "DATABASE_ERROR", Message: "Database connection error", HTTPStatus: http.StatusServiceUnavailable}
	ErrDatabaseTimeout    = &AppError{Code: "DATABASE_TIMEOUT", Message: "Database operation timed out", HTTPStatus: http.StatusGatewayTimeout}
	ErrCacheUnavailable   = &AppError{Code: "CACHE_UNAVAILABLE", Message: "Cache backend is unavailable", HTTPStatus: http.StatusServiceUnavailable}
)

// Helper functions for dynamic errors

// NewNotFound returns a NotFound error with a custom message
func NewNotFound(format string, args ...any) error {
	return &AppError{
		Code:       ErrNotFound.Code,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: ErrNotFound.HTTPStatus,
	}
}

// NewInvalidInput returns an InvalidInput error with a custom message
func NewInvalidInput(format string, args ...any) error {
	return &AppError{
		Code:       ErrInvalidInput.Code,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: ErrInvalidInput.HTTPStatus,
	}
}

// NewInternalError returns an AppError for internal errors
func NewInternalError(format string, args ...any) error {
	return &AppError{
		Code:       ErrInternalServer.Code,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: ErrInternalServer.HTTPStatus,
	}
}
