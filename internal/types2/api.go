package types2

import (
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for the error that stops checking.
	// If nil, the error is only returned from Check.
	Error ErrorHandler
}

// Info holds the results of type checking.
type Info struct {
	// Types maps expressions to their type and mode, including
	// type expressions in declarations.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps defining identifiers to their declared objects:
	// procedure names to the ProcObj, parameter and local names to the Local.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to their referenced objects.
	Uses map[*syntax.Name]types.Object

	// Scopes maps AST nodes to their scopes.
	// This includes File, ProcDecl (parameters) and BlockStmt.
	Scopes map[syntax.Node]*types.Scope
}

// TypeAndValue holds the type information for an expression.
type TypeAndValue struct {
	Type types.Type  // expression type (nil if the expression has no value)
	mode operandMode // operand mode
}

// IsVoid reports whether the expression has no value (call of a procedure
// without result).
func (tv TypeAndValue) IsVoid() bool {
	return tv.mode == novalue
}

// IsAddressable reports whether the expression denotes a location: a
// local or a dereference.
func (tv TypeAndValue) IsAddressable() bool {
	return tv.mode == variable
}

// NewInfo returns an Info with all maps allocated.
func NewInfo() *Info {
	return &Info{
		Types:  make(map[syntax.Expr]TypeAndValue),
		Defs:   make(map[*syntax.Name]types.Object),
		Uses:   make(map[*syntax.Name]types.Object),
		Scopes: make(map[syntax.Node]*types.Scope),
	}
}

// Check type-checks a parsed file.
// It returns the package for the file and the first error encountered, if
// any. Checking stops at the first error; the package is then incomplete.
func Check(filename string, file *syntax.File, conf *Config, info *Info) (*types.Package, error) {
	if conf == nil {
		conf = &Config{}
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]TypeAndValue)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
		if info.Scopes == nil {
			info.Scopes = make(map[syntax.Node]*types.Scope)
		}
	}

	c := &Checker{
		conf: conf,
		info: info,
		pkg:  types.NewPackage(filename),
	}

	if err := c.checkFile(file); err != nil {
		return c.pkg, err
	}
	return c.pkg, nil
}
