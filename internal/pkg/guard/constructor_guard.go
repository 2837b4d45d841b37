// Package guard provides ConstructorGuard, a marker embedded in domain values
// to tell values built by their constructor apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through a constructor.
// The zero value reports "not constructed".
//
// Example usage:
//
//	type BaseEntity struct {
//	    uuid  kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (e *BaseEntity) Validate() error {
//	    return e.guard.Validate(ErrBaseEntityIsNotConstructed)
//	}
//
// ConstructorGuard is immutable and safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Only constructor functions should call it.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
