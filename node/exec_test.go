// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package node

import "testing"

// encodeSlotOp builds a raw instruction word that decodes to op at slot,
// with every other slot's field left at whatever OpXORMask implies (";").
func encodeSlotOp(op Op, slot uint8) u32 {
	var field u32
	if slot == 3 {
		field = u32(op) >> lshifts[3]
	} else {
		field = u32(op)
	}
	w := field << rshifts[slot]
	return w ^ OpXORMask
}

// withImmediate clears word's dmask-range bits for slotIdx and sets imm
// in their place, independent of the opcode bits (which live outside
// that range for every slot jump/call/if/-if can occupy).
func withImmediate(word u32, slotIdx uint8, imm u32) u32 {
	dmask := dmasks[slotIdx]
	return (word &^ dmask) | (imm & dmask)
}

func TestJumpSlot1PreservesUpperBits(t *testing.T) {
	// slot 1's dmask (0xff) only spans P's low 8 bits, so bit 9 of P
	// survives the jump; bit 8 (the I/O-range bit) is always forced low.
	n := New()
	n.P = 0x300
	n.I = withImmediate(encodeSlotOp(OpJump, 1), 1, 0x07)
	n.Slot = 2 // next() already advanced slot past the decoded op
	n.execute(OpJump)
	if n.P != 0x207 {
		t.Errorf("P = %#x, want 0x207", n.P)
	}
	if n.Slot != 4 {
		t.Errorf("Slot = %d, want 4 (skip to next fetch)", n.Slot)
	}
}

func TestJumpFromBoot(t *testing.T) {
	n := New()
	n.I = withImmediate(encodeSlotOp(OpJump, 0), 0, 0x07)
	n.Slot = 1
	n.execute(OpJump)
	if n.P != 0x07 {
		t.Errorf("P = %#x, want 0x07", n.P)
	}
}

func TestCallPushesReturnAndJumps(t *testing.T) {
	n := New()
	n.P = 0x0aa
	n.I = withImmediate(encodeSlotOp(OpCall, 0), 0, 0x020)
	n.Slot = 1
	n.execute(OpCall)
	if n.R != 0x0aa {
		t.Errorf("R = %#x, want 0x0aa (return address pushed)", n.R)
	}
	if n.P != 0x020 {
		t.Errorf("P = %#x, want 0x020", n.P)
	}
}

func TestRetPopsReturnStack(t *testing.T) {
	n := New()
	n.pushr(0x0aa)
	n.pushr(0x111)
	n.execute(OpRet)
	if n.P != 0x111 {
		t.Errorf("P = %#x, want 0x111", n.P)
	}
	if n.R != 0x0aa {
		t.Errorf("R = %#x, want 0x0aa", n.R)
	}
}

func TestIfTakesBranchWhenTZero(t *testing.T) {
	n := New()
	n.T = 0
	n.I = withImmediate(encodeSlotOp(OpIf, 0), 0, 0x055)
	n.Slot = 1
	n.execute(OpIf)
	if n.P != 0x055 {
		t.Errorf("P = %#x, want 0x055 (T==0 branches)", n.P)
	}
}

func TestIfFallsThroughWhenTNonzero(t *testing.T) {
	n := New()
	n.T = 1
	beforeP := n.P
	n.I = withImmediate(encodeSlotOp(OpIf, 0), 0, 0x055)
	n.Slot = 1
	n.execute(OpIf)
	if n.P != beforeP {
		t.Errorf("P = %#x, want unchanged %#x", n.P, beforeP)
	}
	if n.Slot != 4 {
		t.Errorf("Slot = %d, want 4", n.Slot)
	}
}

func TestIfNegFallsThroughOnSignBit(t *testing.T) {
	n := New()
	n.T = 0x20000 // sign bit of an 18-bit value
	beforeP := n.P
	n.I = withImmediate(encodeSlotOp(OpIfNeg, 0), 0, 0x033)
	n.Slot = 1
	n.execute(OpIfNeg)
	if n.P != beforeP {
		t.Errorf("P = %#x, want unchanged %#x (sign bit set skips)", n.P, beforeP)
	}
}

func TestUnextLoopsUntilZero(t *testing.T) {
	n := New()
	n.pushr(2)
	n.Slot = 1
	n.execute(OpUnext)
	if n.R != 1 || n.Slot != 0 {
		t.Errorf("R=%#x Slot=%d, want R=1 Slot=0", n.R, n.Slot)
	}
	n.Slot = 1
	n.execute(OpUnext)
	if n.R != 0 || n.Slot != 0 {
		t.Errorf("R=%#x Slot=%d, want R=0 Slot=0", n.R, n.Slot)
	}
	rsp := n.RSP
	n.execute(OpUnext)
	if n.RSP == rsp {
		t.Errorf("RSP unchanged, want popr() to have fired once R hit 0")
	}
}

func TestAddMasksToMaxVal(t *testing.T) {
	n := New()
	n.push(MaxVal)
	n.push(1)
	n.execute(OpAdd)
	if n.T != 0 {
		t.Errorf("T = %#x, want 0 (wrapped at MaxVal+1)", n.T)
	}
}

func TestOrIsActuallyXor(t *testing.T) {
	n := New()
	n.push(0x0f0)
	n.push(0x0ff)
	n.execute(OpOr)
	if n.T != 0x00f {
		t.Errorf("T = %#x, want 0x00f (xor, not or)", n.T)
	}
}

func TestInvComplementsAndMasks(t *testing.T) {
	n := New()
	n.T = 0
	n.execute(OpInv)
	if n.T != MaxVal {
		t.Errorf("T = %#x, want %#x", n.T, u32(MaxVal))
	}
}

func TestShlMasksHighBit(t *testing.T) {
	n := New()
	n.T = MaxVal
	n.execute(OpShl)
	if n.T != MaxVal-1 {
		t.Errorf("T = %#x, want %#x", n.T, u32(MaxVal-1))
	}
}

func TestShrIsArithmetic(t *testing.T) {
	n := New()
	n.T = 0x20000 // negative in 18-bit two's complement
	n.execute(OpShr)
	if n.T&0x20000 == 0 {
		t.Errorf("T = %#x, sign bit should stay set on arithmetic shift", n.T)
	}
}

func TestPushPopOpcodesMoveBetweenStacks(t *testing.T) {
	n := New()
	n.push(0x42)
	n.execute(OpPush) // pushr(pop())
	if n.R != 0x42 {
		t.Errorf("R = %#x, want 0x42", n.R)
	}
	n.execute(OpPop) // push(popr())
	if n.T != 0x42 {
		t.Errorf("T = %#x, want 0x42", n.T)
	}
}

func TestSetBMasksToMaxB(t *testing.T) {
	n := New()
	n.push(0xfffff)
	n.execute(OpSetB)
	if n.B != MaxB {
		t.Errorf("B = %#x, want %#x", n.B, u32(MaxB))
	}
}

func TestStoreAIncAdvancesA(t *testing.T) {
	n := New()
	n.A = 0x000
	n.push(0x123)
	n.execute(OpStoreAInc)
	if n.A != 0x001 {
		t.Errorf("A = %#x, want 0x001", n.A)
	}
	if got := n.Load(0x000); got != 0x123 {
		t.Errorf("Load(0x000) = %#x, want 0x123", got)
	}
}
