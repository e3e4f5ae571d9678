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

// skip abandons the remaining slots of the current instruction word:
// the next next() call will fetch a fresh word.
func (n *Node) skip() {
	n.Slot = 4
}

// dmasks gives jump's destination mask for slots 0, 1 and 2. jump,
// call, if and -if only ever decode from these three slots — slot 3's
// restricted opcode subset (low two bits zero) excludes all of them by
// construction.
var dmasks = [3]u32{0x3ff, 0xff, 0x07}

// jump replaces the low bits of P (as given by dmask for slotIdx) with
// the matching immediate bits of I, preserving whatever page bits of P
// live above the mask, and forces P's I/O-range bit low first.
func (n *Node) jump(slotIdx uint8) {
	dmask := dmasks[slotIdx]
	n.P &^= 0x100
	n.P = (n.P &^ dmask) | (n.I & dmask)
	n.skip()
}

// signExtend18 treats v as a signed 18-bit quantity for 2/'s arithmetic
// shift.
func signExtend18(v u32) int32 {
	if v&0x20000 != 0 {
		return int32(v | 0xfffc0000)
	}
	return int32(v)
}

// execute carries out the effects of op, which must have come from
// DecodeOp/next on this same node, and returns the action the run loop
// should take.
func (n *Node) execute(op Op) Action {
	switch op {
	case OpRet:
		n.P = n.R & MaxP
		n.popr()
		n.skip()

	case OpExec:
		tmp := n.R
		n.R = n.P
		n.P = tmp & MaxP
		n.skip()

	case OpJump:
		n.jump(n.Slot - 1)

	case OpCall:
		n.pushr(n.P)
		n.jump(n.Slot - 1)

	case OpUnext:
		if n.R != 0 {
			n.R--
			n.Slot = 0
		} else {
			n.popr()
		}

	case OpNext:
		if n.R != 0 {
			n.R--
			n.jump(n.Slot - 1)
		} else {
			n.popr()
			n.skip()
		}

	case OpIf:
		if n.T != 0 {
			n.skip()
		} else {
			n.jump(n.Slot - 1)
		}

	case OpIfNeg:
		if n.T&0x20000 != 0 {
			n.skip()
		} else {
			n.jump(n.Slot - 1)
		}

	case OpLoadP:
		n.push(n.loadinc(&n.P))

	case OpLoadAInc:
		n.push(n.loadinc(&n.A))

	case OpLoadB:
		n.push(n.Load(n.B))

	case OpLoadA:
		n.push(n.Load(n.A))

	case OpStoreP:
		n.Store(n.P, n.pop())
		n.P = inc(n.P)

	case OpStoreAInc:
		n.Store(n.A, n.pop())
		n.A = inc(n.A)

	case OpStoreB:
		n.Store(n.B, n.pop())

	case OpStoreA:
		n.Store(n.A, n.pop())

	case OpMuls:
		// reserved; not implemented by the ISA this emulates. no-op.

	case OpShl:
		n.T = (n.T << 1) & MaxVal

	case OpShr:
		n.T = uint32(signExtend18(n.T)>>1) & MaxVal

	case OpInv:
		n.T = ^n.T & MaxVal

	case OpAdd:
		// TODO: add with carry in case of p9 is not modeled.
		n.T = (n.T + n.pops()) & MaxVal

	case OpAnd:
		n.T &= n.pops()

	case OpOr:
		// the ISA names this "or"; the hardware implements XOR.
		n.T ^= n.pops()

	case OpDrop:
		n.pop()

	case OpDup:
		n.push(n.T)

	case OpPop:
		n.push(n.popr())

	case OpOver:
		n.push(n.S)

	case OpA:
		n.push(n.A)

	case OpNop:
		// no effect.

	case OpPush:
		n.pushr(n.pop())

	case OpSetB:
		n.B = n.pop() & MaxB

	case OpSetA:
		n.A = n.pop()
	}

	return ActionContinue
}
