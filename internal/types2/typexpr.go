package types2

import (
	"github.com/samber/lo"

	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// typExpr evaluates a type expression and returns the interned type.
// Types share the expression grammar: a name, *T or proc(T, ...) R.
func (c *Checker) typExpr(e syntax.Expr) types.Type {
	var typ types.Type
	tab := c.pkg.Types()

	switch e := e.(type) {
	case *syntax.Name:
		if types.LookupBasic(e.Value) != types.Int {
			c.errorf(e.Pos(), "unknown type %q", e.Value)
		}
		typ = tab.Int()

	case *syntax.AddrExpr:
		typ = tab.Pointer(c.typExpr(e.X))

	case *syntax.ProcType:
		params := lo.Map(e.Params, func(p syntax.Expr, _ int) types.Type {
			return c.typExpr(p)
		})
		var result types.Type
		if e.Result != nil {
			result = c.typExpr(e.Result)
		}
		typ = tab.Proc(params, result)

	default:
		c.errorf(e.Pos(), "cannot use non-type expression as type")
	}

	c.recordType(e, &operand{mode: typexpr, pos: e.Pos(), typ: typ, expr: e})
	return typ
}
