// Package types implements the type system for the ceramic programming language:
// interned types, declared objects, lexical scopes and procedure frame layout.
package types

// Type is the interface implemented by all types.
//
// Types are interned by a Table, so two types are identical exactly when
// they are the same pointer.
type Type interface {
	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
