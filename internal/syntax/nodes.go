package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// All nodes implement the Node interface. Expression, Statement, and Declaration
// nodes further implement their respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
// Type expressions are ordinary expressions; the type checker decides
// whether an expression denotes a type or a value.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// File represents a complete compilation unit.
type File struct {
	node
	Procs []*ProcDecl // procedure declarations in source order
}

// ProcDecl represents a procedure declaration.
// proc Name(Params) Result { Body }
type ProcDecl struct {
	decl
	Name   *Name      // procedure name
	Params []*Field   // parameter list
	Result Expr       // result type (nil for no value)
	Body   *BlockStmt // procedure body
}

// Field represents a parameter: Name : Type
type Field struct {
	node
	Name *Name // parameter name
	Type Expr  // parameter type
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents an integer literal.
type BasicLit struct {
	expr
	Value string // literal text as written
	Val   uint64 // decoded value
}

// Operation represents a binary arithmetic operation: X Op Y
type Operation struct {
	expr
	Op Token // Add, Sub, Mul or Div
	X  Expr  // left operand
	Y  Expr  // right operand
}

// AddrExpr represents an address-of expression: *X
// In type position the same form denotes a pointer type.
type AddrExpr struct {
	expr
	X Expr // operand
}

// DerefExpr represents a dereference: X^
type DerefExpr struct {
	expr
	X Expr // pointer operand
}

// CallExpr represents a procedure call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  Expr   // callee expression
	Args []Expr // argument list
}

// ----------------------------------------------------------------------------
// Type Expressions

// ProcType represents a procedure type: proc(Params) Result
type ProcType struct {
	expr
	Params []Expr // parameter types
	Result Expr   // result type (nil for no value)
}

// ----------------------------------------------------------------------------
// Statements

// LocalDecl represents a local variable declaration: Name : [Type] [= Value]
type LocalDecl struct {
	stmt
	Name  *Name // variable name
	Type  Expr  // explicit type (nil if inferred)
	Value Expr  // initial value (nil if none)
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr // expression
}

// AssignStmt represents an assignment: LHS = RHS
type AssignStmt struct {
	stmt
	LHS Expr // assigned location
	RHS Expr // assigned value
}

// BlockStmt represents a block statement: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt // statements
	Rbrace Pos    // position of closing brace
}

// ReturnStmt represents a return statement: return [Result]
type ReturnStmt struct {
	stmt
	Result Expr // return value (nil for bare return)
}
