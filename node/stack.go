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

// push advances the data stack: the outgoing S spills into the ring,
// S takes the old T, and T becomes v. The ring has no underflow check;
// pushing past its depth silently overwrites the oldest spilled value.
func (n *Node) push(v u32) {
	n.SP = (n.SP + 1) % StackWords
	n.Stack[n.SP] = n.S
	n.S = n.T
	n.T = v & MaxVal
}

// pop returns the old T, pulling S and then the ring up to fill the gap.
func (n *Node) pop() u32 {
	old := n.T
	n.T = n.S
	n.S = n.Stack[n.SP]
	n.SP = (n.SP + StackWords - 1) % StackWords
	return old
}

// pops pops the second stack element, leaving T untouched.
func (n *Node) pops() u32 {
	old := n.S
	n.S = n.Stack[n.SP]
	n.SP = (n.SP + StackWords - 1) % StackWords
	return old
}

// pushr advances the return stack: the outgoing R spills into the ring
// and R becomes v.
func (n *Node) pushr(v u32) {
	n.RSP = (n.RSP + 1) % RStackWords
	n.RStack[n.RSP] = n.R
	n.R = v & MaxVal
}

// popr pops the return stack, pulling the ring up to fill R.
func (n *Node) popr() u32 {
	old := n.R
	n.R = n.RStack[n.RSP]
	n.RSP = (n.RSP + RStackWords - 1) % RStackWords
	return old
}
