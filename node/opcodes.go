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

// Op identifies one of the 32 opcodes encodable in a slot. The full set,
// in declaration order, fixes the numeric value of each opcode. OpNames
// is the opEntries table below; the Op constants are a separate iota
// block declared in the same order, and the two lists are kept in step
// by hand.
type Op uint8

var opEntries = []string{
	";", "ex", "jump", "call", "unext", "next", "if", "-if",
	"@p", "@+", "@b", "@", "!p", "!+", "!b", "!",
	"+*", "2*", "2/", "-", "+", "and", "or", "drop",
	"dup", "pop", "over", "a", ".", "push", "b!", "a!",
}

const (
	OpRet Op = iota
	OpExec
	OpJump
	OpCall
	OpUnext
	OpNext
	OpIf
	OpIfNeg
	OpLoadP
	OpLoadAInc
	OpLoadB
	OpLoadA
	OpStoreP
	OpStoreAInc
	OpStoreB
	OpStoreA
	OpMuls
	OpShl
	OpShr
	OpInv
	OpAdd
	OpAnd
	OpOr
	OpDrop
	OpDup
	OpPop
	OpOver
	OpA
	OpNop
	OpPush
	OpSetB
	OpSetA
)

// OpNames maps an opcode's numeric value to its ISA mnemonic, in the
// exact declaration order fixes the 5-bit opcode numbering, matching the
// ISA's own mnemonic table.
var OpNames = opEntries

// String returns the opcode's mnemonic, or "?" for a value outside the
// declared set (decode never produces one, since every 5-bit pattern
// land within 0..31).
func (o Op) String() string {
	if int(o) < len(OpNames) {
		return OpNames[o]
	}
	return "?"
}

// EncodableInSlot3 reports whether op's numeric value has its low two
// bits clear, which is the subset slot 3's 3-bit field (shifted left by
// two) can address.
func EncodableInSlot3(op Op) bool {
	return uint8(op)&0x3 == 0
}
