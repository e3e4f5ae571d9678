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

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// LoadCore reads a core image from r: a sequence of 32-bit big-endian
// words. The first up to RAMWords populate RAM, the next up to ROMWords
// populate ROM; a short image leaves the remainder zero. Every word
// with bits set above MaxVal is clipped and reported via the package
// Logger. LoadCore returns the total number of words loaded.
func (n *Node) LoadCore(r io.Reader) (int, error) {
	loaded := 0
	n.RAM = [RAMWords]u32{}
	n.ROM = [ROMWords]u32{}
	for i := 0; i < RAMWords+ROMWords; i++ {
		var buf [4]byte
		_, err := io.ReadFull(r, buf[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("error reading image: %w", err)
		}

		word := binary.BigEndian.Uint32(buf[:])
		if word&^MaxVal != 0 {
			logger.Log(fmt.Sprintf(
				"word at %#x (%#x) has high bits set! clipping to range!", i, word))
			word &= MaxVal
		}

		if i < RAMWords {
			n.RAM[i] = word
		} else {
			n.ROM[i-RAMWords] = word
		}
		loaded++
	}

	logger.Log(fmt.Sprintf("loaded image: %#05x words", loaded))
	return loaded, nil
}
