package codegen

import (
	"github.com/you-not-fish/ceramic/internal/abi"
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// binaryInsts maps arithmetic operators to their instructions.
var binaryInsts = map[syntax.Token]string{
	syntax.Add: "add",
	syntax.Sub: "sub",
	syntax.Mul: "mul",
	syntax.Div: "sdiv",
}

// genExpr emits code that leaves the value of e in the accumulator.
func (g *generator) genExpr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.BasicLit:
		g.e.emitInst("mov %s, #%d", abi.Acc, e.Val)

	case *syntax.Name:
		g.genName(e)

	case *syntax.Operation:
		g.genExpr(e.X)
		g.e.push()
		g.genExpr(e.Y)
		g.e.pop(abi.Tmp)
		g.e.emitInst("%s %s, %s, %s", binaryInsts[e.Op], abi.Acc, abi.Tmp, abi.Acc)

	case *syntax.DerefExpr:
		g.genExpr(e.X)
		g.e.emitInst("ldr %s, [%s]", abi.Acc, abi.Acc)

	case *syntax.AddrExpr:
		g.genAddr(e.X)

	case *syntax.CallExpr:
		g.genCall(e)

	default:
		g.errorf(e.Pos(), "unexpected expression %T", e)
	}
}

// genName loads the value a name refers to: a local's slot contents or a
// procedure's address.
func (g *generator) genName(name *syntax.Name) {
	switch obj := g.info.Uses[name].(type) {
	case *types.Local:
		g.e.emitInst("ldr %s, [%s, #-%d]", abi.Acc, abi.FP, obj.Offset())
	case *types.ProcObj:
		sym := abi.SymbolName(obj.Name())
		g.e.emitInst("adrp %s, %s%s", abi.Acc, sym, abi.RelocPage)
		g.e.emitInst("add %s, %s, %s%s", abi.Acc, abi.Acc, sym, abi.RelocPageOff)
	default:
		g.errorf(name.Pos(), "unresolved name %q", name.Value)
	}
}

// genAddr emits code that leaves the address of e in the accumulator.
// The checker marks locals and dereferences as addressable; nothing else
// denotes storage.
func (g *generator) genAddr(e syntax.Expr) {
	if !g.info.Types[e].IsAddressable() {
		g.errorf(e.Pos(), "expression doesn't have an address")
	}
	switch e := e.(type) {
	case *syntax.Name:
		local, ok := g.info.Uses[e].(*types.Local)
		if !ok {
			g.errorf(e.Pos(), "unresolved local %q", e.Value)
		}
		g.e.emitInst("sub %s, %s, #%d", abi.Acc, abi.FP, local.Offset())
	case *syntax.DerefExpr:
		g.genExpr(e.X)
	default:
		g.errorf(e.Pos(), "unexpected addressable expression %T", e)
	}
}

// genCall emits a call. Arguments are evaluated left to right onto the
// operand stack. The callee is evaluated into the accumulator after the
// pushes and before the pops, so the emitted order is: arguments, callee,
// pops into x(n-1) down to x0, blr. A callee that is itself a call, as in
// f()(1), would clobber x0..x7 if the arguments were popped first.
func (g *generator) genCall(call *syntax.CallExpr) {
	n := len(call.Args)
	if n > abi.MaxRegArgs {
		g.errorf(call.Pos(), "too many arguments for register passing")
	}

	for _, arg := range call.Args {
		g.genExpr(arg)
		g.e.push()
	}
	g.genExpr(call.Fun)
	for i := n - 1; i >= 0; i-- {
		g.e.pop(abi.ArgReg(i))
	}

	g.e.emitInst("blr %s", abi.Acc)
	g.e.emitInst("mov %s, %s", abi.Acc, abi.Ret)
}
