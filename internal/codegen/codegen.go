// Package codegen translates checked ceramic procedures into AArch64
// assembly.
//
// Code is generated directly from the syntax tree. Every expression leaves
// its value in the accumulator x9; intermediate values live on an operand
// stack in memory, one 16-byte push per value. Locals and parameters live in
// 8-byte slots below the frame pointer, at the offsets the type checker
// assigned.
package codegen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/you-not-fish/ceramic/internal/abi"
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
	"github.com/you-not-fish/ceramic/internal/types2"
)

// Config specifies the configuration for code generation.
type Config struct {
	// Logger receives the frame layout of each procedure at debug level.
	// If nil, nothing is logged.
	Logger *log.Logger

	// Sizes provides frame size information.
	// If nil, DefaultSizes is used.
	Sizes *types.Sizes
}

// Error represents a code generation error, such as taking the address of
// an expression that has no storage.
type Error struct {
	Pos syntax.Pos
	Msg string
}

// Error formats the error as "line: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos.Line(), e.Msg)
}

// bailout is panicked to unwind after the first error.
type bailout struct{}

type generator struct {
	conf  *Config
	info  *types2.Info
	sizes *types.Sizes
	log   *log.Logger
	e     *emitter

	proc  *types.ProcObj // procedure being generated
	first *Error
}

// Generate writes the assembly for every procedure of pkg to w, in
// declaration order. info must come from a successful types2.Check of the
// same file. Generation stops at the first error.
func Generate(w io.Writer, pkg *types.Package, info *types2.Info, conf *Config) (err error) {
	if conf == nil {
		conf = &Config{}
	}
	g := &generator{
		conf:  conf,
		info:  info,
		sizes: conf.Sizes,
		log:   conf.Logger,
		e:     &emitter{w: w},
	}
	if g.sizes == nil {
		g.sizes = types.DefaultSizes
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			err = g.first
		}
	}()

	for _, proc := range pkg.Procs() {
		g.genProc(proc)
	}
	if g.e.err != nil {
		return fmt.Errorf("writing assembly: %w", g.e.err)
	}
	return nil
}

// errorf reports a generation error at pos and stops generation.
func (g *generator) errorf(pos syntax.Pos, format string, args ...interface{}) {
	g.first = &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	panic(bailout{})
}

// genProc emits one procedure: prologue, parameter spills, body and the
// shared epilogue every return branches to.
func (g *generator) genProc(proc *types.ProcObj) {
	e := g.e
	decl := proc.Decl()
	g.proc = proc

	params := proc.Params()
	if len(params) > abi.MaxRegArgs {
		g.errorf(decl.Name.Pos(), "too many arguments for register passing")
	}

	sym := abi.SymbolName(proc.Name())
	frame := g.sizes.AlignedFrameSize(proc)
	g.logFrame(proc, frame)

	e.emit(".global %s", sym)
	e.emit(".align %d", abi.InstAlign)
	e.emitLabel(sym)

	// Prologue
	e.emitInst("stp %s, %s, [%s, #-%d]!", abi.FP, abi.LR, abi.SP, abi.FrameRecordSize)
	e.emitInst("mov %s, %s", abi.FP, abi.SP)
	e.emitInst("sub %s, %s, #%d", abi.SP, abi.SP, frame)
	for i, p := range params {
		e.emitInst("str %s, [%s, #-%d]", abi.ArgReg(i), abi.FP, p.Offset())
	}

	g.blockStmt(decl.Body)

	// Epilogue
	e.emitLabel(abi.ReturnLabel(proc.Name()))
	e.emitInst("add %s, %s, #%d", abi.SP, abi.SP, frame)
	e.emitInst("ldp %s, %s, [%s], #%d", abi.FP, abi.LR, abi.SP, abi.FrameRecordSize)
	e.emitInst("ret")

	if e.depth != 0 {
		panic(fmt.Sprintf("codegen: operand stack depth %d at end of %s", e.depth, proc.Name()))
	}
	g.proc = nil
}

// logFrame logs the slot assignment of proc.
func (g *generator) logFrame(proc *types.ProcObj, frame int64) {
	l := g.log.With("proc", proc.Name())
	l.Debug("frame", "arch", abi.Arch, "locals", len(proc.Locals()),
		"size", g.sizes.FrameSize(proc), "aligned", frame)
	for _, local := range proc.Locals() {
		l.Debug("slot", "name", local.Name(), "offset", -local.Offset(),
			"type", local.Type(), "param", local.IsParam())
	}
}
