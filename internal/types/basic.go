package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	// Concrete basic types
	Int
)

// Basic represents a basic type. The language has a single one, int,
// a 64-bit signed integer.
type Basic struct {
	typ
	kind BasicKind
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// basicNames maps kinds to the names under which they appear in source.
var basicNames = [...]string{
	Invalid: "invalid type",
	Int:     "int",
}

// LookupBasic returns the kind of the basic type with the given source
// name, or Invalid if there is none.
func LookupBasic(name string) BasicKind {
	for kind, n := range basicNames {
		if BasicKind(kind) != Invalid && n == name {
			return BasicKind(kind)
		}
	}
	return Invalid
}
