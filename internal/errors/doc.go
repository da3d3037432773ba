// Package errors provides standardized error handling for the planner API.
//
// # Core Types
//
//   - AppError: Application-level error with HTTP context, error code, and message
//   - ErrorResponse: JSON structure for API error responses
//
// # Usage
//
// Using predefined errors:
//
//	if library == nil {
//	    return errors.ErrLibraryNotFound
//	}
//
// Wrapping errors with context:
//
//	if err := store.Load(ctx, id); err != nil {
//	    return errors.Wrap(errors.ErrInternalServer, "failed to load action library", err)
//	}
//
// Creating custom errors:
//
//	return errors.New("CUSTOM_ERROR", "Something went wrong", http.StatusBadRequest)
//
// Responding to HTTP requests:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if err := doSomething(); err != nil {
//	        errors.RespondWithError(w, err)
//	        return
//	    }
//	}
//
// # Error Categories
//
// Domain-specific errors are defined in domain.go:
//   - Library: ErrLibraryNotFound, ErrDuplicateAction, etc.
//   - Plan request: ErrGoalRequired, ErrNoSolutionFound, ErrSearchBudget, etc.
//   - Authentication: ErrAuthTokenExpired, ErrAuthTokenInvalid, etc.
//   - Storage: ErrDatabaseConnection, ErrCacheUnavailable, etc.
package errors
