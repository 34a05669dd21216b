package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// call checks a procedure call expression. Any expression of procedure
// type may be called, not only procedure names.
func (c *Checker) call(x *operand, e *syntax.CallExpr) {
	// Evaluate the callee
	c.expr(x, e.Fun)

	sig, ok := x.typ.(*types.Proc)
	if !ok {
		c.errorf(e.Pos(), "cannot call non-procedure type %q", types.TypeString(x.typ))
	}

	c.checkCallArgs(e, sig)

	x.setValue(sig.Result())
}

// checkCallArgs checks the arguments of a call against the callee's
// parameters, left to right.
func (c *Checker) checkCallArgs(e *syntax.CallExpr, sig *types.Proc) {
	if len(e.Args) != sig.NumParams() {
		c.errorf(e.Pos(), "expected %d arguments but found %d", sig.NumParams(), len(e.Args))
	}

	for i, arg := range e.Args {
		var a operand
		c.expr(&a, arg)
		c.expectIdentical(arg.Pos(), sig.Param(i), a.typ)
	}
}
