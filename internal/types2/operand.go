package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid  operandMode = iota // operand is invalid
	novalue                     // operand has no value (call of a procedure without result)
	typexpr                     // operand is a type expression
	variable                    // operand is an addressable location
	value                       // operand is a computed value (not addressable)
)

var modeNames = [...]string{
	invalid:  "invalid",
	novalue:  "no value",
	typexpr:  "type",
	variable: "variable",
	value:    "value",
}

func (m operandMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "mode?"
}

// operand represents the result of evaluating an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	expr syntax.Expr // source expression (for error reporting)
}

// String returns a string representation of the operand for debugging.
func (x *operand) String() string {
	if x.mode == invalid {
		return "invalid operand"
	}
	return x.mode.String() + " of type " + types.TypeString(x.typ)
}

// setVar sets the operand to an addressable location.
func (x *operand) setVar(typ types.Type) {
	x.mode = variable
	x.typ = typ
}

// setValue sets the operand to a computed value. A nil type makes it an
// operand without a value.
func (x *operand) setValue(typ types.Type) {
	x.mode = value
	if !types.HasValue(typ) {
		x.mode = novalue
	}
	x.typ = typ
}
