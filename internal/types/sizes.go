package types

import (
	"github.com/samber/lo"

	"github.com/you-not-fish/ceramic/internal/abi"
	"github.com/you-not-fish/ceramic/internal/syntax"
)

// NoPos is the zero position value.
var NoPos syntax.Pos

// Sizes provides size and alignment calculations for types.
// It uses the abi constants to stay consistent with the code generator.
type Sizes struct{}

// DefaultSizes is the default Sizes implementation.
var DefaultSizes = &Sizes{}

// Sizeof returns the size of type T in bytes.
func (s *Sizes) Sizeof(T Type) int64 {
	switch T.(type) {
	case *Basic:
		return abi.SizeInt
	case *Pointer:
		return abi.SizePtr
	case *Proc:
		return abi.SizeProc
	}
	return 0
}

// FrameSize returns the bytes occupied by the locals of p before stack
// alignment. Each local takes its size rounded up to whole slots.
func (s *Sizes) FrameSize(p *ProcObj) int64 {
	return lo.SumBy(p.locals, func(l *Local) int64 {
		return align(s.Sizeof(l.Type()), abi.SlotSize)
	})
}

// AlignedFrameSize returns the frame size of p rounded up to the stack alignment.
func (s *Sizes) AlignedFrameSize(p *ProcObj) int64 {
	return align(s.FrameSize(p), abi.StackAlign)
}

// align returns x rounded up to a multiple of a.
func align(x, a int64) int64 {
	return (x + a - 1) &^ (a - 1)
}
