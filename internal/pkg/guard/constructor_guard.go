// Package guard provides a small helper that lets domain objects detect
// whether they were created through their constructor or left as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error, so validation always fails with a
// meaningful message for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed one in a
// domain struct and set it with NewConstructorGuard inside the constructor;
// a zero-value instance of the struct then fails Validate.
//
// Example usage:
//
//	var ErrSessionNotConstructed = errors.New("Session must be created via NewSession")
//
//	type Session struct {
//	    id    kernel.UUID
//	    token string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSession(courierID kernel.UUID) (Session, error) {
//	    return Session{
//	        id:    kernel.NewUUID(),
//	        token: newToken(),
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (s Session) Validate() error {
//	    return s.guard.Validate(ErrSessionNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it inside every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
