package types

import (
	"strings"

	"github.com/samber/lo"
)

// Pointer represents a pointer type *T.
type Pointer struct {
	typ
	base Type
}

// Elem returns the base type that the pointer points to.
func (p *Pointer) Elem() Type {
	return p.base
}

// String implements Type.
func (p *Pointer) String() string {
	return "*" + p.base.String()
}

// Proc represents a procedure type: its ordered parameter types and its
// result type. A nil result means the procedure produces no value.
type Proc struct {
	typ
	params []Type
	result Type
}

// Params returns the parameter types.
func (p *Proc) Params() []Type {
	return p.params
}

// NumParams returns the number of parameters.
func (p *Proc) NumParams() int {
	return len(p.params)
}

// Param returns the type of parameter i.
func (p *Proc) Param(i int) Type {
	return p.params[i]
}

// Result returns the result type, or nil if the procedure produces no value.
func (p *Proc) Result() Type {
	return p.result
}

// String implements Type.
func (p *Proc) String() string {
	var buf strings.Builder
	buf.WriteString("proc(")
	buf.WriteString(strings.Join(lo.Map(p.params, func(t Type, _ int) string { return t.String() }), ", "))
	buf.WriteString(")")
	if p.result != nil {
		buf.WriteString(" ")
		buf.WriteString(p.result.String())
	}
	return buf.String()
}
