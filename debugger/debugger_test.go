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

package debugger

import (
	"strings"
	"testing"

	"github.com/hellige/f18a-go/node"
)

func TestMatchesUnambiguousAbbreviation(t *testing.T) {
	cases := []struct {
		tok, min, full string
		want           bool
	}{
		{"s", "s", "step", true},
		{"step", "s", "step", true},
		{"st", "s", "step", true},
		{"x", "s", "step", false},
		{"stepp", "s", "step", false},
		{"S", "s", "step", true},
	}
	for _, c := range cases {
		if got := matches(c.tok, c.min, c.full); got != c.want {
			t.Errorf("matches(%q, %q, %q) = %v, want %v",
				c.tok, c.min, c.full, got, c.want)
		}
	}
}

func TestRunQuitReturnsFalse(t *testing.T) {
	in := strings.NewReader("quit\n")
	out := &strings.Builder{}
	d := New(in, out)
	r := node.NewRunner(node.New())
	if resume := d.Run(r); resume {
		t.Error("Run() = true, want false after 'quit'")
	}
}

func TestRunContinueReturnsTrue(t *testing.T) {
	in := strings.NewReader("con\n")
	out := &strings.Builder{}
	d := New(in, out)
	r := node.NewRunner(node.New())
	if resume := d.Run(r); !resume {
		t.Error("Run() = false, want true after 'con'")
	}
}

func TestRunStepAdvancesSlot(t *testing.T) {
	in := strings.NewReader("step\nquit\n")
	out := &strings.Builder{}
	d := New(in, out)
	r := node.NewRunner(node.New())
	r.Prime()
	before := r.Node.Slot
	d.Run(r)
	if r.Node.Slot == before {
		t.Errorf("Slot unchanged after 'step'")
	}
}

func TestRunUnrecognizedCommandReportsError(t *testing.T) {
	in := strings.NewReader("bogus\nquit\n")
	out := &strings.Builder{}
	d := New(in, out)
	r := node.NewRunner(node.New())
	d.Run(r)
	if !strings.Contains(out.String(), "unrecognized or ambiguous command") {
		t.Errorf("output = %q, want a message about the bogus command", out.String())
	}
}

func TestDumpramShowsAbsentRangeBlank(t *testing.T) {
	n := node.New()
	out := &strings.Builder{}
	d := New(strings.NewReader(""), out)
	d.dumpram(n, 0x0f8, 16)
	// 0x100-0x15c is absent (outside ROM and before the I/O register).
	if !strings.Contains(out.String(), "      ") {
		t.Errorf("output = %q, want blank padding for absent addresses", out.String())
	}
}

func TestPrintRejectsNonHexAddr(t *testing.T) {
	out := &strings.Builder{}
	d := New(strings.NewReader(""), out)
	d.doPrint(node.New(), []string{"zz"})
	if !strings.Contains(out.String(), "must be a hex number") {
		t.Errorf("output = %q, want a hex-number error", out.String())
	}
}
