package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// expr evaluates an expression and sets x to the result.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.exprInternal(x, e)

	// Record type information
	if x.mode != invalid {
		c.recordType(e, x)
	}
}

// exprInternal is the main expression checking function.
func (c *Checker) exprInternal(x *operand, e syntax.Expr) {
	x.mode = invalid
	x.pos = e.Pos()
	x.typ = nil
	x.expr = e

	switch e := e.(type) {
	case *syntax.Name:
		c.ident(x, e)
	case *syntax.BasicLit:
		x.setValue(c.pkg.Types().Int())
	case *syntax.Operation:
		c.binary(x, e)
	case *syntax.AddrExpr:
		c.addr(x, e)
	case *syntax.DerefExpr:
		c.deref(x, e)
	case *syntax.CallExpr:
		c.call(x, e)
	case *syntax.ProcType:
		c.errorf(e.Pos(), "cannot use type expression as value")
	default:
		c.errorf(e.Pos(), "unexpected expression %T", e)
	}
}

// ident evaluates an identifier.
func (c *Checker) ident(x *operand, name *syntax.Name) {
	switch obj := c.resolve(name).(type) {
	case *types.Local:
		x.setVar(obj.Type())
	case *types.ProcObj:
		x.setValue(obj.Signature())
	default:
		c.errorf(name.Pos(), "unexpected object %T", obj)
	}
}

// binary evaluates an arithmetic operation. Both operands must be int.
func (c *Checker) binary(x *operand, e *syntax.Operation) {
	var y operand
	c.expr(x, e.X)
	c.expr(&y, e.Y)

	intType := c.pkg.Types().Int()
	c.expectIdentical(e.X.Pos(), intType, x.typ)
	c.expectIdentical(e.Y.Pos(), intType, y.typ)

	x.setValue(intType)
}

// addr evaluates an address-of expression *e.
func (c *Checker) addr(x *operand, e *syntax.AddrExpr) {
	c.expr(x, e.X)
	if !types.HasValue(x.typ) {
		c.errorf(e.Pos(), "cannot take address of expression without value")
	}
	x.setValue(c.pkg.Types().Pointer(x.typ))
}

// deref evaluates a dereference e^. The result is the pointed-to location.
func (c *Checker) deref(x *operand, e *syntax.DerefExpr) {
	c.expr(x, e.X)
	ptr, ok := x.typ.(*types.Pointer)
	if !ok {
		c.errorf(e.Pos(), "can't dereference non-pointer type %q", types.TypeString(x.typ))
	}
	x.setVar(ptr.Elem())
}
