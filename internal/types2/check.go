package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// Checker is the type checker.
type Checker struct {
	conf *Config
	info *Info
	pkg  *types.Package

	// Current checking context
	scope *types.Scope // current scope

	// Procedure context
	proc *types.ProcObj // procedure whose body is being checked

	first *Error // error that stopped checking
}

// checkFile type-checks a single file and returns the first error.
func (c *Checker) checkFile(file *syntax.File) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			err = c.first
		}
	}()

	c.scope = c.pkg.Scope()

	// Record file scope
	if c.info != nil {
		c.info.Scopes[file] = c.scope
	}

	// Pass 1: resolve every signature.
	for _, decl := range file.Procs {
		c.collectProc(decl)
	}

	// Pass 2: bind procedure names globally, then check each body.
	for _, proc := range c.pkg.Procs() {
		c.declare(proc.Decl().Name, proc)
	}
	for _, proc := range c.pkg.Procs() {
		c.procBody(proc)
	}
	return nil
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(n syntax.Node, end syntax.Pos, comment string) *types.Scope {
	s := types.NewScope(c.scope, n.Pos(), end, comment)
	c.scope = s
	if c.info != nil {
		c.info.Scopes[n] = s
	}
	return s
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares an object in the current scope.
// Reports an error if the name is already visible.
func (c *Checker) declare(name *syntax.Name, obj types.Object) {
	if existing := c.scope.Insert(obj); existing != nil {
		c.errorf(name.Pos(), "%q redeclared", name.Value)
	}
	c.recordDef(name, obj)
}

// recordType records the type information for an expression.
func (c *Checker) recordType(e syntax.Expr, x *operand) {
	if c.info == nil {
		return
	}
	c.info.Types[e] = TypeAndValue{
		Type: x.typ,
		mode: x.mode,
	}
}

// recordDef records the object a declaring name defines.
func (c *Checker) recordDef(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}
