package types

import (
	"github.com/you-not-fish/ceramic/internal/abi"
	"github.com/you-not-fish/ceramic/internal/syntax"
)

// Object represents a declared entity: a local variable or a procedure.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Local represents a variable that lives in a procedure's stack frame,
// at [x29, #-Offset]. Parameters are locals too: the prologue copies each
// argument register into its parameter's slot.
type Local struct {
	object
	offset  int64
	isParam bool
}

// Offset returns the distance in bytes below the frame pointer.
func (l *Local) Offset() int64 {
	return l.offset
}

// IsParam reports whether the local holds a parameter.
func (l *Local) IsParam() bool {
	return l.isParam
}

// ProcObj represents a declared procedure together with its frame:
// parameters first, then every local declared in its body in source order.
type ProcObj struct {
	object
	sig    *Proc
	decl   *syntax.ProcDecl
	params []*Local
	locals []*Local
}

// NewProcObj creates a new procedure object for decl.
// The signature is set later using SetSignature.
func NewProcObj(decl *syntax.ProcDecl) *ProcObj {
	return &ProcObj{
		object: object{name: decl.Name.Value, pos: decl.Name.Pos()},
		decl:   decl,
	}
}

// Signature returns the procedure type.
func (p *ProcObj) Signature() *Proc {
	return p.sig
}

// SetSignature sets the procedure type.
// This is called during signature collection once the types are resolved.
func (p *ProcObj) SetSignature(sig *Proc) {
	p.sig = sig
	p.typ = sig
}

// Decl returns the declaration the procedure was created from.
func (p *ProcObj) Decl() *syntax.ProcDecl {
	return p.decl
}

// Params returns the parameter locals in declaration order.
func (p *ProcObj) Params() []*Local {
	return p.params
}

// Locals returns every local of the procedure, parameters included,
// in the order their slots were allocated.
func (p *ProcObj) Locals() []*Local {
	return p.locals
}

// AddParam allocates a frame slot for a parameter.
func (p *ProcObj) AddParam(pos syntax.Pos, name string, typ Type) *Local {
	l := p.AddLocal(pos, name, typ)
	l.isParam = true
	p.params = append(p.params, l)
	return l
}

// AddLocal allocates the next frame slot. The first slot is 8 bytes below
// the frame pointer; each further slot is one SlotSize deeper.
func (p *ProcObj) AddLocal(pos syntax.Pos, name string, typ Type) *Local {
	var offset int64 = abi.SlotSize
	if n := len(p.locals); n > 0 {
		offset += p.locals[n-1].offset
	}
	l := &Local{object: object{name: name, typ: typ, pos: pos}, offset: offset}
	p.locals = append(p.locals, l)
	return l
}
