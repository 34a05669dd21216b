package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, d := range n.Procs {
			p.print(d)
		}
		p.indent--

	case *ProcDecl:
		p.printf("ProcDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.printf("%s: %s\n", f.Name.Value, ExprString(f.Type))
			}
			p.indent--
		}
		if n.Result != nil {
			p.printf("Result: %s\n", ExprString(n.Result))
		}
		if n.Body != nil {
			p.printf("Body:\n")
			p.indent++
			p.print(n.Body)
			p.indent--
		}
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *LocalDecl:
		p.printf("LocalDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if n.Type != nil {
			p.printf("Type: %s\n", ExprString(n.Type))
		}
		if n.Value != nil {
			p.printf("Value:\n")
			p.indent++
			p.print(n.Value)
			p.indent--
		}
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.printf("LHS:\n")
		p.indent++
		p.print(n.LHS)
		p.indent--
		p.printf("RHS:\n")
		p.indent++
		p.print(n.RHS)
		p.indent--
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s\n", n.pos, n.Value)

	case *Operation:
		p.printf("BinaryOp %s %s\n", n.pos, n.Op)
		p.indent++
		p.printf("X:\n")
		p.indent++
		p.print(n.X)
		p.indent--
		p.printf("Y:\n")
		p.indent++
		p.print(n.Y)
		p.indent--
		p.indent--

	case *AddrExpr:
		p.printf("AddrExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *DerefExpr:
		p.printf("DerefExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.printf("Fun:\n")
		p.indent++
		p.print(n.Fun)
		p.indent--
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *ProcType:
		p.printf("ProcType %s %s\n", n.pos, ExprString(n))

	case *Field:
		p.printf("Field %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Type: %s\n", ExprString(n.Type))
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns the source form of an expression, fully parenthesizing
// nested binary operations.
func ExprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch x := e.(type) {
	case *Name:
		return x.Value
	case *BasicLit:
		return x.Value
	case *Operation:
		return "(" + ExprString(x.X) + " " + x.Op.String() + " " + ExprString(x.Y) + ")"
	case *AddrExpr:
		return "*" + ExprString(x.X)
	case *DerefExpr:
		return ExprString(x.X) + "^"
	case *CallExpr:
		return ExprString(x.Fun) + "(" + strings.Join(lo.Map(x.Args, exprString), ", ") + ")"
	case *ProcType:
		s := "proc(" + strings.Join(lo.Map(x.Params, exprString), ", ") + ")"
		if x.Result != nil {
			s += " " + ExprString(x.Result)
		}
		return s
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// exprString adapts ExprString to lo.Map's iteratee signature.
func exprString(e Expr, _ int) string {
	return ExprString(e)
}
