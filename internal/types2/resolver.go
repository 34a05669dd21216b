package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// collectProc resolves the signature of a procedure declaration, creates
// its object with one frame slot per parameter and appends it to the
// package's procedure list. Names are bound later, so a procedure may call
// any procedure of the file regardless of declaration order.
func (c *Checker) collectProc(decl *syntax.ProcDecl) {
	proc := types.NewProcObj(decl)

	params := make([]types.Type, len(decl.Params))
	for i, f := range decl.Params {
		params[i] = c.typExpr(f.Type)
		proc.AddParam(f.Name.Pos(), f.Name.Value, params[i])
	}

	var result types.Type
	if decl.Result != nil {
		result = c.typExpr(decl.Result)
	}

	proc.SetSignature(c.pkg.Types().Proc(params, result))
	c.pkg.AddProc(proc)
}

// resolve resolves a name to an object.
// Reports an error if the name is not visible.
func (c *Checker) resolve(name *syntax.Name) types.Object {
	obj := c.lookup(name.Value)
	if obj == nil {
		c.errorf(name.Pos(), "unknown name %q", name.Value)
	}
	c.recordUse(name, obj)
	return obj
}
