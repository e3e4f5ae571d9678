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

// Package debugger implements the line-oriented REPL used to inspect and
// single-step a node while it runs.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hellige/f18a-go/node"
)

const helpText = `  help, ?: show this message
  continue: resume running
  step [n]: execute a single instruction (or n instructions)
  dump: display the state of the cpu
  print addr [len]: display memory contents in hex
      (addr is hex, len decimal)
  exit, quit: exit emulator
unambiguous abbreviations are recognized (e.g., s for step or con for continue).
`

// prefix reports whether pre is a case-insensitive prefix of full.
func prefix(pre, full string) bool {
	return len(pre) <= len(full) &&
		strings.EqualFold(pre, full[:len(pre)])
}

// matches reports whether tok unambiguously abbreviates full: tok must be
// at least as long as min, and a prefix of full.
func matches(tok, min, full string) bool {
	return prefix(min, tok) && prefix(tok, full)
}

// Debugger is a REPL bound to an input/output pair. The zero value is not
// usable; construct with New.
type Debugger struct {
	in  *bufio.Scanner
	out io.Writer
}

// New builds a Debugger reading commands from in and writing output to out.
func New(in io.Reader, out io.Writer) *Debugger {
	return &Debugger{in: bufio.NewScanner(in), out: out}
}

func (d *Debugger) msg(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format, args...)
}

// Run implements node.Debug: it interacts with the operator until told to
// resume (true) or exit (false).
func (d *Debugger) Run(r *node.Runner) bool {
	d.msg("entering emulator debugger: enter 'h' for help.\n")
	r.Prime()
	d.dumpheader()
	d.dumpstate(r.Node)

	for {
		d.msg(" * ")
		if !d.in.Scan() {
			return false
		}

		fields := strings.Fields(d.in.Text())
		if len(fields) == 0 {
			continue
		}
		tok, rest := fields[0], fields[1:]

		switch {
		case matches(tok, "h", "help"), matches(tok, "?", "?"):
			d.msg(helpText)

		case matches(tok, "con", "continue"):
			return true

		case matches(tok, "s", "step"):
			steps, ok := d.parseStepCount(rest)
			if !ok {
				continue
			}
			for i := uint64(0); i < steps; i++ {
				r.Step()
				r.Prime()
				d.dumpstate(r.Node)
			}

		case matches(tok, "d", "dump"):
			d.dumpheader()
			d.dumpstate(r.Node)

		case matches(tok, "p", "print"):
			d.doPrint(r.Node, rest)

		case matches(tok, "e", "exit"), matches(tok, "q", "quit"):
			return false

		default:
			d.msg("unrecognized or ambiguous command: %s\n", tok)
		}
	}
}

func (d *Debugger) parseStepCount(rest []string) (uint64, bool) {
	if len(rest) == 0 {
		return 1, true
	}
	steps, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		d.msg("argument to 'step' must be a decimal number\n")
		return 0, false
	}
	return steps, true
}

func (d *Debugger) doPrint(n *node.Node, rest []string) {
	if len(rest) == 0 {
		d.msg("print requires an argument\n")
		return
	}
	addr, err := strconv.ParseUint(rest[0], 16, 32)
	if err != nil {
		d.msg("addr argument to 'print' must be a hex number: %s\n", rest[0])
		return
	}
	length := uint64(1)
	if len(rest) > 1 {
		length, err = strconv.ParseUint(rest[1], 10, 16)
		if err != nil {
			d.msg("len argument to 'print' must be a decimal number\n")
			return
		}
	}
	d.dumpram(n, uint32(addr), int(length))
}

func (d *Debugger) dumpheader() {
	d.msg("p   r     t     s     a     b   io    i     @ opcode\n")
	d.msg("--- ----- ----- ----- ----- --- ----- ----- - --------\n")
}

func (d *Debugger) dumpstate(n *node.Node) {
	op := n.DecodeOp()
	d.msg("%03x %05x %05x %05x %05x %03x %05x %05x %d %03x %s\n",
		n.P, n.R, n.T, n.S, n.A, n.B, n.IO, n.I, n.Slot, uint8(op), op.String())

	d.msg("   stack: [%d]", n.SP)
	for i := 0; i < node.StackWords; i++ {
		idx := (int(n.SP) + node.StackWords - i) % node.StackWords
		d.msg(" %05x", n.Stack[idx])
	}
	d.msg("\n")

	d.msg("  rstack: [%d]", n.RSP)
	for i := 0; i < node.RStackWords; i++ {
		idx := (int(n.RSP) + node.RStackWords - i) % node.RStackWords
		d.msg(" %05x", n.RStack[idx])
	}
	d.msg("\n")
}

func (d *Debugger) dumpram(n *node.Node, addr uint32, length int) {
	for length > 0 && addr <= node.AddrMask {
		base := addr &^ 7
		d.msg("\n%02x:", base)
		pad := int(addr % 8)
		d.msg("%*s", 6*pad, "")
		for {
			if node.Present(addr) {
				d.msg(" %05x", n.Load(addr))
			} else {
				d.msg("      ")
			}
			length--
			addr++
			if length == 0 || addr%8 == 0 {
				break
			}
		}
	}
	d.msg("\n")
}
