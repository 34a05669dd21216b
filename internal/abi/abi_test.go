package abi

import "testing"

func TestArgReg(t *testing.T) {
	for i, want := range []string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7"} {
		if got := ArgReg(i); got != want {
			t.Errorf("ArgReg(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestArgRegOutOfRange(t *testing.T) {
	for _, i := range []int{-1, MaxRegArgs} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ArgReg(%d) did not panic", i)
				}
			}()
			ArgReg(i)
		}()
	}
}

func TestSymbolNames(t *testing.T) {
	if got := SymbolName("main"); got != "_main" {
		t.Errorf("SymbolName(main) = %q, want _main", got)
	}
	if got := ReturnLabel("foo"); got != ".L._foo.return" {
		t.Errorf("ReturnLabel(foo) = %q, want .L._foo.return", got)
	}
}

func TestSizes(t *testing.T) {
	// All values share one slot size; the frame layout relies on it.
	for _, size := range []int{SizeInt, SizePtr, SizeProc} {
		if size != SlotSize {
			t.Errorf("value size %d != SlotSize %d", size, SlotSize)
		}
	}
	if StackAlign%SlotSize != 0 {
		t.Errorf("StackAlign %d is not a multiple of SlotSize %d", StackAlign, SlotSize)
	}
	if PushSize != StackAlign {
		t.Errorf("PushSize %d must keep sp %d-byte aligned", PushSize, StackAlign)
	}
}
