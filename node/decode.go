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

// Each 18-bit instruction word packs up to four opcode slots. rshifts,
// masks and lshifts give the per-slot extraction parameters: slot 3 only
// encodes a 3-bit field, shifted left by two into the high half of the
// 5-bit opcode space, so it can only address opcodes whose low two bits
// are zero (see EncodableInSlot3).
var (
	rshifts = [4]uint{13, 8, 3, 0}
	masks   = [4]u32{0x1f, 0x1f, 0x1f, 0x7}
	lshifts = [4]uint{0, 0, 0, 2}
)

// DecodeOp extracts the opcode at the node's current slot from I. It
// does not itself advance slot; see next() in run.go.
func (n *Node) DecodeOp() Op {
	return decodeSlot(n.I, n.Slot)
}

func decodeSlot(word u32, slot uint8) Op {
	w := word ^ OpXORMask
	return Op(((w >> rshifts[slot]) & masks[slot]) << lshifts[slot])
}
