// Package guard lets value objects, aggregates, commands and queries tell a value
// built by its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through their
// constructors. Its zero value reports "not constructed".
//
// The guard holds one flag that only NewConstructorGuard sets. A struct literal
// or a zero value never carries it, so Validate fails for values that skipped
// their constructor and with it the invariant checks.
//
// Example usage:
//
//	type Zone struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewZone(name string) (*Zone, error) {
//	    return &Zone{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (z *Zone) Validate() error {
//	    return z.guard.Validate(ErrZoneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
// Call it only at the end of a constructor, once every field has been
// validated.
//
// Returns:
//   - ConstructorGuard: a guard whose Validate always returns nil
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the owner was created by its constructor.
//
// Parameters:
//   - validationError: the error to return for an unconstructed owner,
//     usually a package-level ErrXIsNotConstructed
//
// Returns:
//   - nil when the owner was constructed
//   - validationError, or ErrDefaultConstructorGuard when it is nil, otherwise
//
// Example:
//
//	if err := loc.guard.Validate(ErrLocationIsNotConstructed); err != nil {
//	    return err
//	}
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
