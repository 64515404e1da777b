// Package errs provides standardized error types for the refill station service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle:
//   - ValueIsRequiredError / ValueIsInvalidError: creation-time validation failures
//   - ObjectNotFoundError: operations referencing an unknown object
//   - IllegalTransitionError: status changes outside the lifecycle graph
//   - ActionIsForbiddenError: role-restricted operations (customer cancellation rules)
//   - ServiceUnavailableError: ordering refused while the website gate is disabled
//   - VersionConflictError: conditional writes rejected on stale state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// No internal detail beyond the stable kind and a human-readable reason is
// exposed across the service boundary.
package errs
