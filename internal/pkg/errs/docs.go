// Package errs provides standardized error types for the ReCo workflow service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Validation errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//
// Workflow errors:
//   - ObjectNotFoundError: a referenced record (or approved request) is absent
//   - InvalidTransitionError: a status change is not in the adjacency table
//   - ConflictError: a uniqueness or exclusivity rule is violated
//   - PreconditionFailedError: a business precondition does not hold
//   - PermissionDeniedError: the caller lacks the capability for the action
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict) usable with errors.Is
//   - A struct type with fields for error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs
