// Package errs provides standardized error types for the cargospace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the booking core:
//   - ObjectNotFoundError: a referenced entity is absent
//   - ObjectAlreadyExistsError: a uniqueness invariant would be violated
//   - ConflictError: valid entities, violated operation precondition
//   - ValueIsInvalidError / ValueIsRequiredError: malformed input
//   - InvalidTransitionError: illegal lifecycle move
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// All errors are recoverable-by-caller signals, never process-fatal. The
// HTTP boundary maps each sentinel to a transport status code; the core only
// ever deals in these types.
package errs
