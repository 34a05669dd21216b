package types

import "slices"

// Table interns types: structurally equal types are represented by the same
// pointer, so identity comparison is a complete equality test.
//
// A Table belongs to one compilation. Entries are never evicted.
type Table struct {
	types []Type // every interned type, in creation order
}

// NewTable returns an empty type table.
func NewTable() *Table {
	return &Table{}
}

// Int returns the int type.
func (t *Table) Int() *Basic {
	for _, typ := range t.types {
		if b, ok := typ.(*Basic); ok && b.kind == Int {
			return b
		}
	}
	b := &Basic{kind: Int, name: basicNames[Int]}
	t.types = append(t.types, b)
	return b
}

// Pointer returns the pointer type with the given base type.
func (t *Table) Pointer(base Type) *Pointer {
	for _, typ := range t.types {
		if p, ok := typ.(*Pointer); ok && p.base == base {
			return p
		}
	}
	p := &Pointer{base: base}
	t.types = append(t.types, p)
	return p
}

// Proc returns the procedure type with the given parameter and result types.
// A nil result denotes a procedure without a value.
func (t *Table) Proc(params []Type, result Type) *Proc {
	for _, typ := range t.types {
		if p, ok := typ.(*Proc); ok && p.result == result && slices.Equal(p.params, params) {
			return p
		}
	}
	p := &Proc{params: append([]Type(nil), params...), result: result}
	t.types = append(t.types, p)
	return p
}

// Len returns the number of interned types.
func (t *Table) Len() int {
	return len(t.types)
}

// Types returns the interned types in creation order.
func (t *Table) Types() []Type {
	return t.types
}
