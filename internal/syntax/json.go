package syntax

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return map[string]interface{}{
			"type":  "File",
			"pos":   n.pos.String(),
			"procs": lo.Map(n.Procs, func(d *ProcDecl, _ int) interface{} { return toJSON(d) }),
		}

	case *ProcDecl:
		m := map[string]interface{}{
			"type":   "ProcDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"params": lo.Map(n.Params, func(f *Field, _ int) interface{} { return toJSON(f) }),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *Field:
		return map[string]interface{}{
			"type":      "Field",
			"pos":       n.pos.String(),
			"name":      n.Name.Value,
			"fieldtype": toJSON(n.Type),
		}

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": lo.Map(n.Stmts, stmtJSON),
		}

	case *LocalDecl:
		m := map[string]interface{}{
			"type": "LocalDecl",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}
		if n.Type != nil {
			m["localtype"] = toJSON(n.Type)
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *AssignStmt:
		return map[string]interface{}{
			"type": "AssignStmt",
			"pos":  n.pos.String(),
			"lhs":  toJSON(n.LHS),
			"rhs":  toJSON(n.RHS),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *Operation:
		return map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *AddrExpr:
		return map[string]interface{}{
			"type": "AddrExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *DerefExpr:
		return map[string]interface{}{
			"type": "DerefExpr",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  toJSON(n.Fun),
			"args": lo.Map(n.Args, exprJSON),
		}

	case *ProcType:
		m := map[string]interface{}{
			"type":   "ProcType",
			"pos":    n.pos.String(),
			"params": lo.Map(n.Params, exprJSON),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func stmtJSON(s Stmt, _ int) interface{} { return toJSON(s) }

func exprJSON(e Expr, _ int) interface{} { return toJSON(e) }
