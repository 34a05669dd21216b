// Package abi defines the AArch64 calling-convention and frame constants
// shared by the type checker's frame layout and the code generator.
package abi

import "fmt"

// Target configuration
const (
	// Arch is the target architecture name used in diagnostics and logs.
	Arch = "arm64"

	// InstAlign is the log2 alignment of procedure entry points (.align 2 = 4 bytes).
	InstAlign = 2
)

// Value sizes in bytes. Every value of the language occupies one
// 64-bit slot regardless of its type.
const (
	SizeInt  = 8 // int64_t
	SizePtr  = 8 // pointer
	SizeProc = 8 // code address

	// SlotSize is the size of one local's frame slot.
	SlotSize = 8
)

// Stack layout
const (
	// StackAlign is the required alignment of sp at every call boundary.
	StackAlign = 16

	// FrameRecordSize is the size of the saved x29/x30 pair.
	FrameRecordSize = 16

	// PushSize is the stack space consumed by one operand-stack push.
	// A single 8-byte value is pushed with a full 16-byte adjustment to
	// keep sp aligned.
	PushSize = 16
)

// Registers
const (
	// FP is the frame pointer.
	FP = "x29"

	// LR is the link register.
	LR = "x30"

	// SP is the stack pointer.
	SP = "sp"

	// ZR is the 64-bit zero register.
	ZR = "xzr"

	// Acc is the expression accumulator.
	Acc = "x9"

	// Tmp is the scratch register that receives popped operands.
	Tmp = "x10"

	// Ret is the result register.
	Ret = "x0"
)

// MaxRegArgs is the number of integer argument registers (x0-x7).
const MaxRegArgs = 8

// ArgReg returns the register that carries argument i.
// It panics if i is outside [0, MaxRegArgs).
func ArgReg(i int) string {
	if i < 0 || i >= MaxRegArgs {
		panic(fmt.Sprintf("abi: argument %d has no register", i))
	}
	return fmt.Sprintf("x%d", i)
}
