package syntax

import (
	"strings"
	"testing"
)

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{NewPos("add.cer", 10, 5), "add.cer:10:5"},
		{NewPos("", 10, 5), "10:5"},
		{NewPos("<stdin>", 1, 1), "<stdin>:1:1"},
		{Pos{}, "0:0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("Pos.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPosLineCol(t *testing.T) {
	pos := NewPos("main.cer", 42, 13)
	if pos.Line() != 42 || pos.Col() != 13 {
		t.Errorf("Line(), Col() = %d, %d, want 42, 13", pos.Line(), pos.Col())
	}
}

// Error text carries the line only, whatever the column or file.
func TestErrorUsesLine(t *testing.T) {
	err := &Error{Pos: NewPos("main.cer", 7, 30), Msg: "expected expression"}
	if got, want := err.Error(), "7: expected expression"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// Columns count characters, so a multi-byte rune moves the next token by one.
func TestTokenPosAfterMultiByteRune(t *testing.T) {
	_, err := Tokenize("u.cer", strings.NewReader("x中"), 0)
	if err == nil {
		t.Fatal("expected an invalid character error")
	}
	serr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error %T is not *Error", err)
	}
	if got, want := serr.Pos.String(), "u.cer:1:2"; got != want {
		t.Errorf("error pos = %s, want %s", got, want)
	}
}
