package codegen

import (
	"github.com/you-not-fish/ceramic/internal/abi"
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// genStmt emits code for a single statement.
func (g *generator) genStmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LocalDecl:
		g.localDecl(s)

	case *syntax.AssignStmt:
		g.genAddr(s.LHS)
		g.e.push()
		g.genExpr(s.RHS)
		g.e.pop(abi.Tmp)
		g.e.emitInst("str %s, [%s]", abi.Acc, abi.Tmp)

	case *syntax.ExprStmt:
		g.genExpr(s.X)

	case *syntax.ReturnStmt:
		if s.Result != nil {
			g.genExpr(s.Result)
			g.e.emitInst("mov %s, %s", abi.Ret, abi.Acc)
		}
		g.e.emitInst("b %s", abi.ReturnLabel(g.proc.Name()))

	case *syntax.BlockStmt:
		g.blockStmt(s)

	default:
		g.errorf(s.Pos(), "unexpected statement %T", s)
	}
}

// blockStmt emits the statements of a block in order.
func (g *generator) blockStmt(b *syntax.BlockStmt) {
	for _, s := range b.Stmts {
		g.genStmt(s)
	}
}

// localDecl stores the initial value of a local into its slot. A local
// without initializer starts out zero.
func (g *generator) localDecl(s *syntax.LocalDecl) {
	local, ok := g.info.Defs[s.Name].(*types.Local)
	if !ok {
		g.errorf(s.Name.Pos(), "unresolved local %q", s.Name.Value)
	}

	src := abi.ZR
	if s.Value != nil {
		g.genExpr(s.Value)
		src = abi.Acc
	}
	g.e.emitInst("str %s, [%s, #-%d]", src, abi.FP, local.Offset())
}
