package syntax

import (
	"io"
	"strings"
)

// Scanner performs lexical analysis on ceramic source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // exact source text of the token
	tokPos Pos    // token start position

	// ASI (automatic semicolon insertion) state
	nlsemi bool // whether to insert a semicolon at the next newline

	// Configuration
	asiEnabled bool // whether ASI is enabled (default true, can be disabled with -no-asi)

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	s := &Scanner{
		source:     *newSource(filename, src, errh),
		asiEnabled: true,
	}
	return s
}

// SetASIEnabled enables or disables automatic semicolon insertion.
func (s *Scanner) SetASIEnabled(enabled bool) {
	s.asiEnabled = enabled
}

// Next advances to the next token.
func (s *Scanner) Next() {
	nlsemi := s.nlsemi
	s.nlsemi = false

redo:
	s.skipWhitespace()

	if s.ch == '\n' {
		// A newline after a token that can end an expression becomes ";".
		// The synthetic token keeps the line of the token it follows.
		if s.asiEnabled && nlsemi {
			s.tokPos = s.pos()
			s.tok = _Semi
			s.lit = ";"
			s.nextch()
			return
		}
		s.nextch()
		goto redo
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	default:
		tok, ok := punct[s.ch]
		if !ok {
			s.error("invalid character")
			s.nextch()
			goto redo
		}
		s.tok = tok
		s.lit = string(s.ch)
		s.nextch()
	}

	s.nlsemi = endsExpr(s.tok)
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's source text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips spaces and tabs.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal integer literal.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = _Literal
}

// ScanMode controls optional Tokenize behavior.
type ScanMode uint

const (
	// NoASI disables automatic semicolon insertion at line breaks.
	NoASI ScanMode = 1 << iota
)

// Tokenize scans the complete source into a token sequence ending with a
// single EOF token. The first lexical error stops scanning and is returned
// as an *Error.
func Tokenize(filename string, src io.Reader, mode ScanMode) ([]Lexeme, error) {
	var first *Error
	errh := func(line, col uint32, msg string) {
		if first == nil {
			first = &Error{Pos: NewPos(filename, line, col), Msg: msg}
		}
	}

	s := NewScanner(filename, src, errh)
	s.SetASIEnabled(mode&NoASI == 0)

	var toks []Lexeme
	for {
		s.Next()
		if first != nil {
			return nil, first
		}
		toks = append(toks, Lexeme{Tok: s.tok, Pos: s.tokPos, Lit: s.lit})
		if s.tok.IsEOF() {
			return toks, nil
		}
	}
}
