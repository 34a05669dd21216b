package types

// Package represents one compilation unit: its type table, its procedures
// in declaration order, and the global scope that binds their names.
type Package struct {
	name  string     // compilation unit name (e.g., the source file name)
	types *Table     // type intern table
	scope *Scope     // global scope
	procs []*ProcObj // procedures in declaration order
}

// NewPackage creates a new package with the given name and an empty type table.
func NewPackage(name string) *Package {
	return &Package{
		name:  name,
		types: NewTable(),
		scope: NewScope(nil, NoPos, NoPos, "global"),
	}
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Types returns the package's type table.
func (p *Package) Types() *Table {
	return p.types
}

// Scope returns the global scope.
func (p *Package) Scope() *Scope {
	return p.scope
}

// AddProc appends proc to the procedure list.
func (p *Package) AddProc(proc *ProcObj) {
	p.procs = append(p.procs, proc)
}

// Procs returns the procedures in declaration order.
func (p *Package) Procs() []*ProcObj {
	return p.procs
}

// String returns the package name.
func (p *Package) String() string {
	return p.name
}
