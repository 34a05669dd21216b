package syntax

import (
	"strings"
	"testing"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		// Special tokens
		{_EOF, "EOF"},

		// Literals
		{_Name, "NAME"},
		{_Literal, "LITERAL"},

		// Keywords
		{_Proc, "proc"},
		{_Return, "return"},

		// Operators
		{_Add, "+"},
		{_Sub, "-"},
		{_Mul, "*"},
		{_Div, "/"},
		{_Caret, "^"},
		{_Assign, "="},
		{_Colon, ":"},
		{_Semi, ";"},
		{_Comma, ","},

		// Delimiters
		{_Lparen, "("},
		{_Rparen, ")"},
		{_Lbrace, "{"},
		{_Rbrace, "}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenStringUnknown(t *testing.T) {
	tok := Token(999)
	got := tok.String()
	if !strings.HasPrefix(got, "token(") {
		t.Errorf("unknown token string = %q, want prefix 'token('", got)
	}
}

func TestTokenDescribe(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "end of file"},
		{_Name, "name"},
		{_Literal, "number"},
		{_Proc, `"proc"`},
		{_Semi, `";"`},
		{_Rparen, `")"`},
		{_Lbrace, `"{"`},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.Describe(); got != tt.want {
				t.Errorf("%v.Describe() = %s, want %s", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		tok  Token
		want int
	}{
		// Non-operators have precedence 0
		{_EOF, 0},
		{_Name, 0},
		{_Literal, 0},
		{_Assign, 0},
		{_Caret, 0},
		{_Lparen, 0},

		{_Add, 1},
		{_Sub, 1},
		{_Mul, 2},
		{_Div, 2},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.Precedence(); got != tt.want {
				t.Errorf("%v.Precedence() = %d, want %d", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenPredicates(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if got := tok.IsEOF(); got != (tok == _EOF) {
			t.Errorf("%v.IsEOF() = %v", tok, got)
		}
		if got := tok.IsSemi(); got != (tok == _Semi) {
			t.Errorf("%v.IsSemi() = %v", tok, got)
		}
	}
}

func TestEndsExpr(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		want := tok == _Name || tok == _Literal || tok == _Rparen || tok == _Caret
		if got := endsExpr(tok); got != want {
			t.Errorf("endsExpr(%v) = %v, want %v", tok, got, want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	keywordTests := []struct {
		ident string
		want  Token
	}{
		{"proc", _Proc},
		{"return", _Return},
	}

	for _, tt := range keywordTests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestLookupKeywordNonKeyword(t *testing.T) {
	// int is resolved by the type checker, not the scanner
	nonKeywords := []string{
		"int", "Proc", "RETURN", "procs",
		"foo", "bar", "_underscore",
	}

	for _, ident := range nonKeywords {
		t.Run(ident, func(t *testing.T) {
			if got := LookupKeyword(ident); got != _Name {
				t.Errorf("LookupKeyword(%q) = %v, want _Name", ident, got)
			}
		})
	}
}

func TestKeywordCount(t *testing.T) {
	if len(keywords) != 2 {
		t.Errorf("keywords map size = %d, want 2", len(keywords))
	}
}

func TestLexemeString(t *testing.T) {
	l := Lexeme{Tok: _Name, Pos: NewPos("a.cer", 3, 7), Lit: "x"}
	if got, want := l.String(), `a.cer:3:7 NAME "x"`; got != want {
		t.Errorf("Lexeme.String() = %q, want %q", got, want)
	}
}
