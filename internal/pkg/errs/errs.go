package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors used for classification with errors.Is.
// Each typed error below unwraps to exactly one of these.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrObjectNotFound       = errors.New("object not found")
	ErrIllegalTransition    = errors.New("illegal transition")
	ErrActionIsForbidden    = errors.New("action is forbidden")
	ErrServiceIsUnavailable = errors.New("service is unavailable")
	ErrVersionConflict      = errors.New("version conflict")
)

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IllegalTransitionError indicates a status change that is not present in the
// lifecycle transition graph. The order is left unmodified when it is returned.
type IllegalTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given source and target states.
func NewIllegalTransitionError(from string, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError wrapping an underlying cause.
func NewIllegalTransitionErrorWithCause(from string, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrIllegalTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ActionIsForbiddenError indicates that the acting role is not allowed to
// perform the requested operation.
type ActionIsForbiddenError struct {
	Reason string
	Cause  error
}

// NewActionIsForbiddenError creates an ActionIsForbiddenError with a human-readable reason.
func NewActionIsForbiddenError(reason string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Reason: reason}
}

// NewActionIsForbiddenErrorWithCause creates an ActionIsForbiddenError wrapping an underlying cause.
func NewActionIsForbiddenErrorWithCause(reason string, cause error) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Reason: reason, Cause: cause}
}

func (e *ActionIsForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrActionIsForbidden, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrActionIsForbidden, e.Reason)
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

// ServiceUnavailableError indicates that an operation was refused because the
// service is administratively disabled. Reason carries the staff-provided
// explanation and is safe to surface to callers.
type ServiceUnavailableError struct {
	Reason string
	Cause  error
}

// NewServiceUnavailableError creates a ServiceUnavailableError with the staff-provided reason.
func NewServiceUnavailableError(reason string) *ServiceUnavailableError {
	return &ServiceUnavailableError{Reason: reason}
}

// NewServiceUnavailableErrorWithCause creates a ServiceUnavailableError wrapping an underlying cause.
func NewServiceUnavailableErrorWithCause(reason string, cause error) *ServiceUnavailableError {
	return &ServiceUnavailableError{Reason: reason, Cause: cause}
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrServiceIsUnavailable, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrServiceIsUnavailable, e.Reason)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return ErrServiceIsUnavailable
}

// VersionConflictError indicates that a conditional write found the object in a
// different state than expected and was rejected instead of overwriting it.
type VersionConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewVersionConflictError creates a VersionConflictError for the given parameter and identifier.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping an underlying cause.
func NewVersionConflictErrorWithCause(paramName string, id any, cause error) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrVersionConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionConflict, e.ID)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
