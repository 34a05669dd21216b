package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// procBody type-checks the body of a procedure. Parameters live in a scope
// of their own that encloses the body block.
func (c *Checker) procBody(proc *types.ProcObj) {
	decl := proc.Decl()

	// Save procedure context
	oldProc := c.proc
	c.proc = proc

	c.openScope(decl, decl.Body.Rbrace, "proc "+proc.Name())
	for i, p := range proc.Params() {
		c.declare(decl.Params[i].Name, p)
	}

	c.blockStmt(decl.Body)

	c.closeScope()

	// Restore procedure context
	c.proc = oldProc
}

// localDecl type-checks a local declaration and allocates its stack slot.
// The initializer is checked before the name is declared, so it cannot
// refer to the variable being declared.
func (c *Checker) localDecl(s *syntax.LocalDecl) {
	var val operand
	if s.Value != nil {
		c.expr(&val, s.Value)
		if !types.HasValue(val.typ) {
			c.errorf(s.Value.Pos(), "cannot initialize variable using expression without value")
		}
	}

	var typ types.Type
	switch {
	case s.Type != nil:
		typ = c.typExpr(s.Type)
		if s.Value != nil {
			c.expectIdentical(s.Value.Pos(), typ, val.typ)
		}
	case s.Value != nil:
		typ = val.typ
	default:
		c.errorf(s.Pos(), "missing type or initializer in local declaration")
	}

	local := c.proc.AddLocal(s.Name.Pos(), s.Name.Value, typ)
	c.declare(s.Name, local)
}
