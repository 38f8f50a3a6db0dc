// Package errs provides standardized error types for the zone delivery service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For numeric input outside an allowed interval
//   - ObjectNotFoundError: For when a zone, courier or order cannot be found
//   - ConflictError: For operations rejected by current state (taken names, assigned zones)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any of these errors, including ones combined with errors.Join or
// wrapped with fmt.Errorf, onto a small stable set of kinds (NotFound, Conflict,
// InvalidInput, Internal) that transport layers translate into responses.
package errs
