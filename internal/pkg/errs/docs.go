// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Generic value errors raised during validation and lookup:
//     ObjectNotFoundError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ValueIsRequiredError.
//   - The fulfillment failure taxonomy returned by courier operations:
//     ForbiddenError, ConflictError, InvalidStateError, TooManyAttemptsError,
//     AlreadyProcessedError, InsufficientBalanceError,
//     PartialAvailabilityError.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them to status codes the same way.
package errs
