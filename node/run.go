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

import "sync/atomic"

// Action is returned by Step to tell the run loop what to do next. It is
// currently only ever ActionContinue, but kept as an enum — per the
// original's design notes — so a future opcode can ask for debugger
// entry or halt without a separate out-of-band flag.
type Action int

const (
	ActionContinue Action = iota
	ActionBreak
	ActionExit
)

// Runner owns a Node plus the two sticky flags an embedding host
// toggles from signal handlers: Break (operator wants the debugger) and
// Die (operator wants to terminate). Both are read at most once per
// step and are the only concurrency surface in this package.
type Runner struct {
	Node *Node

	brk int32
	die int32
}

// NewRunner wraps an already-constructed Node.
func NewRunner(n *Node) *Runner {
	return &Runner{Node: n}
}

// SetBreak is called by a signal handler (or the debugger host) to
// request entry to the debugger at the next step boundary.
func (r *Runner) SetBreak() { atomic.StoreInt32(&r.brk, 1) }

// SetDie is called by a signal handler to request the run loop exit
// cleanly at the next step boundary.
func (r *Runner) SetDie() { atomic.StoreInt32(&r.die, 1) }

// Dying reports whether Die has been requested.
func (r *Runner) Dying() bool { return atomic.LoadInt32(&r.die) != 0 }

// TakeBreak reports whether Break has been requested, clearing the flag
// (BREAK is never lost: it fires exactly once per request).
func (r *Runner) TakeBreak() bool {
	return atomic.CompareAndSwapInt32(&r.brk, 1, 0)
}

// next primes I and advances slot, matching the original's next(): if
// slot has run off the end (>3), fetch a fresh instruction word via
// loadinc(P) and restart decoding at slot 0.
func (n *Node) next() Op {
	if n.Slot > 3 {
		n.I = n.loadinc(&n.P)
		n.Slot = 0
	}
	op := decodeSlot(n.I, n.Slot)
	n.Slot++
	return op
}

// Step executes exactly one opcode: decode the op at the current slot,
// advance slot, then execute. Any pending fetch requested by a prior
// skip() is honored by next() at the top of the following Step.
func (r *Runner) Step() Action {
	return r.Node.execute(r.Node.next())
}

// Prime ensures I holds a fetched instruction word before the run loop
// (or the debugger, on a debug-boot entry) displays or decodes state.
// Without this, a fresh Node has slot == 4 and no op has ever been
// fetched, which would make DecodeOp read past the end of the slot
// tables.
func (r *Runner) Prime() {
	if r.Node.Slot > 3 {
		r.Node.I = r.Node.loadinc(&r.Node.P)
		r.Node.Slot = 0
	}
}

// Terminal is the minimal seam the run loop needs into the host's
// terminal mode: Raw for non-blocking/echo-off execution, Cooked for
// blocking/echo-on debugger sessions. Both methods must be idempotent.
// The concrete implementation lives in package term; node does not
// depend on it.
type Terminal interface {
	Raw()
	Cooked()
}

// Debug is the debugger entry point: given the Runner, it interacts
// with the operator and returns true to resume running or false to
// stop. Kept as a function value so this package does not depend on
// package debugger.
type Debug func(r *Runner) (resume bool)

// Run drives the step loop until the debugger (or the Die flag) says
// to stop. If debugBoot is set, the debugger is entered once after the
// priming fetch and before the first step, as the original's
// `if (debugboot) running = f18a_debug(f18a)` does.
func (r *Runner) Run(term Terminal, debug Debug, debugBoot bool) {
	r.Prime()

	running := true
	if debugBoot {
		running = debug(r)
	}

	term.Raw()
	for running && !r.Dying() {
		action := r.Step()
		if action == ActionExit {
			running = false
			break
		}
		if action == ActionBreak || r.TakeBreak() {
			term.Cooked()
			running = debug(r)
			term.Raw()
		}
	}
	term.Cooked()
}
