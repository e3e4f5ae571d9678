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

// Package node emulates a single F18A-style computational node: an
// 18-bit word machine with two hardware stacks, a four-slot packed
// instruction word, and a small RAM/ROM/IO memory map.
package node

// Version is reported by the CLI's -v/--version flag.
const Version = "1.0-go"

const (
	// RAMWords is the number of 18-bit words backing the RAM region.
	RAMWords = 64
	// ROMWords is the number of 18-bit words backing the ROM region.
	ROMWords = 64
	// StackWords is the depth of the data-stack spill ring.
	StackWords = 8
	// RStackWords is the depth of the return-stack spill ring.
	RStackWords = 8

	// IOAddr is the single modeled memory-mapped I/O register's address.
	IOAddr = 0x15d
	// BootAddr is P's value immediately after reset.
	BootAddr = 0x0aa
	// OpXORMask is XORed with a fetched instruction word before slot
	// extraction, so that all-zero memory decodes as a deterministic
	// no-op pattern.
	OpXORMask = 0x15555
	// AddrMask masks an address down to the node's 9-bit address space.
	AddrMask = 0x1ff
	// MaxVal is the largest value an 18-bit word may hold.
	MaxVal = 0x3ffff
	// MaxP is the largest value the 10-bit program counter may hold.
	MaxP = 0x3ff
	// MaxB is the largest value the 9-bit B register may hold.
	MaxB = 0x1ff

	ioResetValue = 0x15555
)

// Node holds all architectural state for one emulated node: the
// registers, the two spill rings, and the RAM/ROM backing the memory
// map. A Node is not safe for concurrent use; see Runner for the
// single-threaded run loop that owns one.
type Node struct {
	P u32 // program counter, 10 bits
	A u32 // address register, full 18-bit container
	B u32 // address register, 9 bits
	T u32 // top of data stack
	S u32 // second of data stack
	R u32 // top of return stack
	I u32 // current instruction word
	IO u32 // latched I/O register

	Slot uint8 // next slot to decode; 4 means "refetch on next next()"

	SP  uint8 // data-stack ring write index, mod StackWords
	RSP uint8 // return-stack ring write index, mod RStackWords

	Stack  [StackWords]u32
	RStack [RStackWords]u32

	RAM [RAMWords]u32
	ROM [ROMWords]u32
}

// u32 is used throughout in place of uint32 to keep register declarations
// terse, matching the original C source's use of a single typedef for
// every architectural register regardless of its declared bit width.
type u32 = uint32

// New returns a freshly reset Node, ready to have a core image loaded.
func New() *Node {
	n := &Node{}
	n.Reset()
	return n
}

// Reset restores the node to its post-boot state: P = BootAddr, slot = 4
// (forcing a fetch on the first step), io latched to its reset pattern,
// B pointed at the I/O address, both stack pointers at 0, and every
// other register and memory word zeroed.
func (n *Node) Reset() {
	n.P = BootAddr
	n.Slot = 4
	n.IO = ioResetValue
	n.B = IOAddr
	n.SP = 0
	n.RSP = 0

	n.R, n.T, n.S, n.I, n.A = 0, 0, 0, 0, 0
	for i := range n.Stack {
		n.Stack[i] = 0
	}
	for i := range n.RStack {
		n.RStack[i] = 0
	}
	for i := range n.RAM {
		n.RAM[i] = 0
	}
	for i := range n.ROM {
		n.ROM[i] = 0
	}
}
