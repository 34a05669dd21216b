package syntax

import "fmt"

// Pos is a position in a compilation unit. Diagnostics report only the
// line; token and AST dumps show the full position.
type Pos struct {
	file string
	line uint32 // 1-based; 0 in the zero Pos
	col  uint32 // 1-based, counted in characters
}

// NewPos returns the position line:col in file.
func NewPos(file string, line, col uint32) Pos {
	return Pos{file: file, line: line, col: col}
}

// Line returns the line number reported in "line: message" diagnostics.
func (p Pos) Line() uint32 { return p.line }

// Col returns the column of p, counted in characters from 1.
func (p Pos) Col() uint32 { return p.col }

// String formats p as file:line:col, or line:col for unnamed input.
func (p Pos) String() string {
	if p.file == "" {
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.file, p.line, p.col)
}
