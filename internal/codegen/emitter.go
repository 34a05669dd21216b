package codegen

import (
	"fmt"
	"io"

	"github.com/you-not-fish/ceramic/internal/abi"
)

// emitter wraps an io.Writer with helpers for emitting AArch64 assembly
// text. It tracks the depth of the operand stack so unbalanced push/pop
// sequences are caught per procedure.
type emitter struct {
	w     io.Writer
	err   error // first write error
	depth int   // values currently pushed on the operand stack
}

// emit writes a formatted line to the output (no indentation).
// Used for directives.
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitLabel writes a label definition.
func (e *emitter) emitLabel(name string) {
	e.emit("%s:", name)
}

// emitInst writes an indented instruction line.
func (e *emitter) emitInst(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, "\t"+format+"\n", args...)
}

// push saves the accumulator on the operand stack. Every push moves sp by
// a full 16 bytes so sp stays aligned at calls.
func (e *emitter) push() {
	e.emitInst("str %s, [%s, #-%d]!", abi.Acc, abi.SP, abi.PushSize)
	e.depth++
}

// pop loads the top of the operand stack into reg.
func (e *emitter) pop(reg string) {
	e.emitInst("ldr %s, [%s], #%d", reg, abi.SP, abi.PushSize)
	e.depth--
}
