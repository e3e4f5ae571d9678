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

// Package term toggles the controlling terminal between the run loop's
// raw, non-blocking mode and the debugger's cooked, line-buffered mode.
package term

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"
)

// Host implements node.Terminal against the process's own stdin, putting
// it in raw mode while the node is running free and restoring cooked mode
// whenever the debugger takes over. Raw and Cooked are both idempotent.
type Host struct {
	fd       int
	oldState *xterm.State
}

// NewHost builds a Host bound to stdin. If stdin is not a terminal, the
// returned Host's Raw and Cooked calls are no-ops, matching how the
// original degrades gracefully under a non-interactive session.
func NewHost() *Host {
	return &Host{fd: int(os.Stdin.Fd())}
}

// Raw puts the terminal in raw mode: no line buffering, no local echo.
func (h *Host) Raw() {
	if h.oldState != nil || !xterm.IsTerminal(h.fd) {
		return
	}
	state, err := xterm.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error entering raw terminal mode: %v\n", err)
		fmt.Fprintln(os.Stderr, "continuing without raw terminal support...")
		return
	}
	h.oldState = state
}

// Cooked restores the terminal to its state prior to the last Raw call.
func (h *Host) Cooked() {
	if h.oldState == nil {
		return
	}
	_ = xterm.Restore(h.fd, h.oldState)
	h.oldState = nil
}

// Restore forces the terminal back to its original state regardless of
// which mode it currently believes itself to be in. It is safe to call
// on every exit path, including ones reached before Raw was ever called.
func (h *Host) Restore() {
	h.Cooked()
}

// Noop implements node.Terminal with no effect on the host terminal, for
// tests and other non-interactive hosts.
type Noop struct{}

func (Noop) Raw()    {}
func (Noop) Cooked() {}
