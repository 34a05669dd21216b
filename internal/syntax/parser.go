package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// Error represents a lexical or syntax error.
type Error struct {
	Pos Pos
	Msg string
}

// Error formats the error as "line: message", the compiler's diagnostic format.
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos.Line(), e.Msg)
}

// bailout is panicked by the parser to unwind after the first error.
type bailout struct{}

// Parser performs syntax analysis on a ceramic token sequence.
type Parser struct {
	toks []Lexeme
	idx  int // index of the current token in toks

	// Current token info (cached from toks[idx])
	tok Token
	lit string
	pos Pos

	// Error handling
	errh  func(pos Pos, msg string)
	first error // first error encountered
}

// NewParser creates a new Parser for the given token sequence, as produced by
// Tokenize. The errh function, if non-nil, is called with the error that stops
// the parse.
func NewParser(toks []Lexeme, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{
		toks: toks,
		idx:  -1,
		errh: errh,
	}
	p.next() // prime the parser with first token
	return p
}

// Parse tokenizes and parses a complete source file.
func Parse(filename string, src io.Reader, mode ScanMode) (*File, error) {
	toks, err := Tokenize(filename, src, mode)
	if err != nil {
		return nil, err
	}
	p := NewParser(toks, nil)
	f := p.Parse()
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	return f, nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. Past the end of the sequence the parser
// stays on the final EOF token.
func (p *Parser) next() {
	if p.idx+1 < len(p.toks) {
		p.idx++
	}
	if p.idx < 0 {
		// empty sequence: behave as if it held a single EOF token
		p.tok, p.lit, p.pos = _EOF, "", NewPos("", 1, 1)
		return
	}
	t := p.toks[p.idx]
	p.tok, p.lit, p.pos = t.Tok, t.Lit, t.Pos
}

// peek returns the kind of the token after the current one.
func (p *Parser) peek() Token {
	if p.idx+1 < len(p.toks) {
		return p.toks[p.idx+1].Tok
	}
	return _EOF
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(fmt.Sprintf("expected %s, found %s", tok.Describe(), p.tok.Describe()))
	}
}

// expect is like want but returns the position of the expected token.
func (p *Parser) expect(tok Token) Pos {
	pos := p.pos
	p.want(tok)
	return pos
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// syntaxErrorAt reports a syntax error at a specific position and stops the parse.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	p.first = &Error{Pos: pos, Msg: msg}
	if p.errh != nil {
		p.errh(pos, msg)
	}
	panic(bailout{})
}

// FirstError returns the error that stopped the parse, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete source file and returns the AST.
// It returns nil if a syntax error was found; see FirstError.
func (p *Parser) Parse() (f *File) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			f = nil
		}
	}()

	f = &File{}
	f.pos = p.pos

	for !p.tok.IsEOF() {
		if p.tok != _Proc {
			p.syntaxError("expected procedure")
		}
		f.Procs = append(f.Procs, p.procDecl())
	}

	return f
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: p.lit}
	n.pos = p.expect(_Name)
	return n
}

// ----------------------------------------------------------------------------
// Procedure declarations

// procDecl parses: proc Name(params) result { body }
func (p *Parser) procDecl() *ProcDecl {
	d := &ProcDecl{}
	d.pos = p.expect(_Proc)

	d.Name = p.name()
	d.Params = p.paramList()

	// Optional result type
	if p.tok != _Lbrace {
		d.Result = p.typeExpr()
	}

	if p.tok != _Lbrace {
		p.syntaxError("expected procedure body")
	}
	d.Body = p.blockStmt()

	return d
}

// paramList parses (p1 : T1, p2 : T2, ...)
func (p *Parser) paramList() []*Field {
	p.want(_Lparen)

	var params []*Field
	for p.tok != _Rparen {
		f := &Field{}
		f.pos = p.pos
		f.Name = p.name()
		p.want(_Colon)
		f.Type = p.typeExpr()
		params = append(params, f)

		if !p.got(_Comma) {
			break
		}
	}

	p.want(_Rparen)
	return params
}

// typeExpr parses an expression in type position.
// Types share the expression grammar: int, *T, proc(T) R.
func (p *Parser) typeExpr() Expr {
	return p.expr()
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.blockStmt()

	case _Return:
		return p.returnStmt()

	case _Name:
		if p.peek() == _Colon {
			return p.localDecl()
		}
	}
	return p.simpleStmt()
}

// localDecl parses: Name : [Type] [= Value] ;
func (p *Parser) localDecl() *LocalDecl {
	d := &LocalDecl{}
	d.pos = p.pos

	d.Name = p.name()
	p.want(_Colon)

	// Type is optional if there's an initializer
	if p.tok != _Assign && !p.tok.IsSemi() {
		d.Type = p.typeExpr()
	}

	// Optional initializer
	if p.got(_Assign) {
		d.Value = p.expr()
	}

	p.want(_Semi)
	return d
}

// simpleStmt parses an expression statement or assignment.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.expr()

	if p.got(_Assign) {
		s := &AssignStmt{LHS: x}
		s.pos = pos
		s.RHS = p.expr()
		p.want(_Semi)
		return s
	}

	s := &ExprStmt{X: x}
	s.pos = pos
	p.want(_Semi)
	return s
}

// blockStmt parses { stmts... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.expect(_Lbrace)

	for p.tok != _Rbrace && !p.tok.IsEOF() {
		b.Stmts = append(b.Stmts, p.stmt())
	}

	b.Rbrace = p.expect(_Rbrace)
	return b
}

// returnStmt parses: return [expr] ;
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.expect(_Return)

	if !p.tok.IsSemi() {
		s.Result = p.expr()
	}

	p.want(_Semi)
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators all have precedence
// greater than prec. Implements precedence climbing.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.primaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		// Parse right operand with higher precedence (left associative)
		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// primaryExpr parses an operand and any postfix operations.
// Prefix * applies to a whole primary expression, so *p^ is *(p^).
func (p *Parser) primaryExpr() Expr {
	if p.tok == _Mul {
		a := &AddrExpr{}
		a.pos = p.pos
		p.next()
		a.X = p.primaryExpr()
		return a
	}

	x := p.operand()

	// Parse postfix operations: dereference and call
	for {
		switch p.tok {
		case _Caret:
			d := &DerefExpr{X: x}
			d.pos = x.Pos()
			p.next()
			x = d

		case _Lparen:
			x = p.callExpr(x)

		default:
			return x
		}
	}
}

// operand parses an operand (the base of primary expressions).
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		return p.name()

	case _Literal:
		val, err := strconv.ParseUint(p.lit, 10, 64)
		if err != nil {
			p.syntaxError(fmt.Sprintf("integer literal %s out of range", p.lit))
		}
		lit := &BasicLit{Value: p.lit, Val: val}
		lit.pos = p.pos
		p.next()
		return lit

	case _Lparen: // parenthesized expression
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	case _Proc:
		return p.procType()

	default:
		p.syntaxError("expected expression")
		return nil
	}
}

// procType parses proc(T1, T2) R
func (p *Parser) procType() Expr {
	t := &ProcType{}
	t.pos = p.expect(_Proc)

	p.want(_Lparen)
	if p.tok != _Rparen {
		t.Params = p.exprList()
	}
	p.want(_Rparen)

	if startsOperand(p.tok) {
		t.Result = p.primaryExpr()
	}
	return t
}

// startsOperand reports whether tok can begin a primary expression.
func startsOperand(tok Token) bool {
	switch tok {
	case _Name, _Literal, _Mul, _Lparen, _Proc:
		return true
	}
	return false
}

// callExpr parses Fun(args...)
func (p *Parser) callExpr(fun Expr) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	p.want(_Rparen)

	return call
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
