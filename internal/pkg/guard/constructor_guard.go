// Package guard provides the ConstructorGuard pattern used by commands and
// queries to detect zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed for a zero-value guard. This ensures validation always fails with
// a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only
// created through their designated constructor functions. Embedding a
// ConstructorGuard in a struct makes a zero-value instance detectable:
// only the constructor sets the internal flag.
//
// Example usage:
//
//	type AuthorizeDeliveryCommand struct {
//	    deliveryID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewAuthorizeDeliveryCommand(id kernel.UUID) (AuthorizeDeliveryCommand, error) {
//	    ...
//	    return AuthorizeDeliveryCommand{deliveryID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AuthorizeDeliveryCommand) Validate() error {
//	    return c.guard.Validate(ErrAuthorizeDeliveryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
