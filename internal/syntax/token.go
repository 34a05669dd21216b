// Package syntax implements lexical analysis for the ceramic programming language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name    // identifier: foo, bar, x1
	_Literal // integer literal: 0, 42

	// Keywords
	_Proc
	_Return

	// Operators
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_Caret  // ^
	_Assign // =
	_Colon  // :
	_Semi   // ;
	_Comma  // ,

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }

	tokenCount
)

// tokenNames maps tokens to the short names used in token dumps.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Proc:   "proc",
	_Return: "return",

	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Caret:  "^",
	_Assign: "=",
	_Colon:  ":",
	_Semi:   ";",
	_Comma:  ",",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Describe returns the description of t used in syntax errors:
// "name", "number", "end of file", or the quoted token text.
func (t Token) Describe() string {
	switch t {
	case _EOF:
		return "end of file"
	case _Name:
		return "name"
	case _Literal:
		return "number"
	}
	return fmt.Sprintf("%q", t.String())
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
//
//	1: + -
//	2: * /
func (t Token) Precedence() int {
	switch t {
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	}
	return 0
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsSemi reports whether t is a statement terminator.
func (t Token) IsSemi() bool {
	return t == _Semi
}

// Exported operator tokens for type checker and code generator access
const (
	Add Token = _Add // +
	Sub Token = _Sub // -
	Mul Token = _Mul // *
	Div Token = _Div // /
)

// exprEndTokens is the set of token kinds that may end an expression.
// A newline following one of them terminates the statement.
const exprEndTokens = 1<<_Name | 1<<_Literal | 1<<_Rparen | 1<<_Caret

// endsExpr reports whether t is a member of exprEndTokens.
func endsExpr(t Token) bool {
	return exprEndTokens&(1<<t) != 0
}

// keywords maps keyword strings to their token type.
// Note: "int" is NOT a keyword; it is scanned as _Name and recognised in
// type position by the type checker.
var keywords = map[string]Token{
	"proc":   _Proc,
	"return": _Return,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Lexeme is a single token produced by Tokenize: its kind, the position of
// its first character, and the exact source text.
type Lexeme struct {
	Tok Token
	Pos Pos
	Lit string
}

// String formats the lexeme for debugging.
func (l Lexeme) String() string {
	return fmt.Sprintf("%s %s %q", l.Pos, l.Tok, l.Lit)
}
