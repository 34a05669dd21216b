package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// stmts checks a list of statements.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LocalDecl:
		c.localDecl(s)

	case *syntax.ExprStmt:
		c.exprStmt(s)

	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.BlockStmt:
		c.blockStmt(s)

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	default:
		c.errorf(s.Pos(), "unexpected statement %T", s)
	}
}

// exprStmt checks an expression statement.
// Only expressions without a value may stand alone.
func (c *Checker) exprStmt(s *syntax.ExprStmt) {
	var x operand
	c.expr(&x, s.X)
	if types.HasValue(x.typ) {
		c.errorf(s.X.Pos(), "unused expression")
	}
}

// blockStmt checks a block statement.
func (c *Checker) blockStmt(s *syntax.BlockStmt) {
	c.openScope(s, s.Rbrace, "block")
	c.stmts(s.Stmts)
	c.closeScope()
}

// assignStmt checks an assignment. Both sides must have identical types.
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	var lhs, rhs operand
	c.expr(&lhs, s.LHS)
	c.expr(&rhs, s.RHS)
	c.expectIdentical(s.RHS.Pos(), lhs.typ, rhs.typ)
}

// returnStmt checks a return statement against the enclosing procedure's
// result type.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	result := c.proc.Signature().Result()

	if s.Result == nil {
		if result != nil {
			c.errorf(s.Pos(), "missing return value")
		}
		return
	}

	if result == nil {
		c.errorf(s.Pos(), "cannot return value from procedure with no return value")
	}

	var x operand
	c.expr(&x, s.Result)
	c.expectIdentical(s.Result.Pos(), result, x.typ)
}
