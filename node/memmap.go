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

import "fmt"

// Present reports whether addr is backed by RAM, ROM, or the single
// modeled I/O register. Every other address is absent: loads return 0
// and the debugger renders it blank.
func Present(addr u32) bool {
	addr &= AddrMask
	return addr < 0x100 || addr == IOAddr
}

// Load reads the word at addr through the memory map. Accesses to an
// I/O address other than IOAddr are logged and read as 0, matching the
// original's "io addr access from %x! returning 0..." diagnostic.
func (n *Node) Load(addr u32) u32 {
	addr &= AddrMask
	switch {
	case addr < 0x080:
		return n.RAM[addr&0x3f]
	case addr < 0x100:
		return n.ROM[addr&0x3f]
	case addr == IOAddr:
		return n.IO
	default:
		logger.Log(fmt.Sprintf("io addr access from %#x! returning 0...", addr))
		return 0
	}
}

// Store writes val through the memory map. Writes to ROM are rejected
// and logged; writes to I/O addresses other than IOAddr currently have
// no effect.
func (n *Node) Store(addr, val u32) {
	addr &= AddrMask
	val &= MaxVal
	switch {
	case addr < 0x080:
		n.RAM[addr&0x3f] = val
	case addr < 0x100:
		logger.Log(fmt.Sprintf("attempt to write %#x to rom address %#x", val, addr))
	case addr == IOAddr:
		n.IO = val
	default:
		// no other I/O is modeled; writes are accepted and dropped.
	}
}

// inc applies the shared address-register increment rule used by P and
// A: values in the I/O/ROM range (bit 0x100 set) are left unchanged;
// otherwise the low 7 bits increment with wraparound and the upper bits
// are preserved.
func inc(addr u32) u32 {
	if addr&0x100 != 0 {
		return addr
	}
	l7 := (addr + 1) & 0x7f
	return (addr &^ 0x7f) | l7
}

// loadinc reads through the memory map at *addr, then applies inc to
// *addr.
func (n *Node) loadinc(addr *u32) u32 {
	result := n.Load(*addr)
	*addr = inc(*addr)
	return result
}
