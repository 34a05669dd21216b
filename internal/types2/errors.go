// Package types2 resolves names and checks types for ceramic programs.
//
// Checking runs in two passes. The first resolves every procedure
// signature, so calls may refer to procedures declared later in the file.
// The second walks each body with a stack of lexical scopes, binding names
// to objects and allocating stack slots for locals.
package types2

import (
	"fmt"

	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// Error represents a name resolution or type checking error.
type Error struct {
	Pos syntax.Pos
	Msg string
}

// Error formats the error as "line: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos.Line(), e.Msg)
}

// ErrorHandler is a function called for each type error.
type ErrorHandler func(pos syntax.Pos, msg string)

// bailout is panicked by the checker to unwind after the first error.
type bailout struct{}

// errorf reports a type checking error at the given position and stops
// checking. Every error is fatal.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	c.first = &Error{Pos: pos, Msg: msg}
	if c.conf.Error != nil {
		c.conf.Error(pos, msg)
	}
	panic(bailout{})
}

// mismatch reports that a value of type found appeared where want was
// required.
func (c *Checker) mismatch(pos syntax.Pos, want, found types.Type) {
	c.errorf(pos, "expected %q but found %q", types.TypeString(want), types.TypeString(found))
}

// expectIdentical reports a mismatch at pos unless found is want.
func (c *Checker) expectIdentical(pos syntax.Pos, want, found types.Type) {
	if !types.Identical(want, found) {
		c.mismatch(pos, want, found)
	}
}
