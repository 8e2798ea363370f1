/*
 * CGM codec - binary command framer.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package frame parses the two-octet CGM command header, short- and
// long-form argument lengths with continuation, and the trailing pad
// byte, yielding (class, id, argument bytes) tuples. It borrows the
// buffer-plus-position bookkeeping the teacher uses to walk a tape or
// card image one logical record at a time (util/tape, util/card), but
// every record here is a command header instead of a block of frames.
package frame

import (
	"errors"
	"fmt"
)

// ErrCorruptHeader is a Fatal-severity condition: the framer could not
// make sense of the next header word.
var ErrCorruptHeader = errors.New("frame: corrupt command header")

// ErrNegativeLength is a Fatal-severity condition: a long-form length
// partition decoded as negative.
var ErrNegativeLength = errors.New("frame: negative argument length")

// EndMetafileClass and EndMetafileID identify the END METAFILE command,
// which terminates a stream (spec §4.2).
const (
	EndMetafileClass = 0
	EndMetafileID    = 2
)

// Command is one framed (class, element id, argument bytes) tuple, at
// the byte offset its header started.
type Command struct {
	Class      int
	ElementID  int
	Args       []byte
	ByteOffset int64
}

// Framer walks a borrowed byte slice, yielding one Command per call to
// Next.
type Framer struct {
	buf []byte
	pos int64
}

// NewFramer returns a Framer over buf.
func NewFramer(buf []byte) *Framer {
	return &Framer{buf: buf}
}

// Done reports whether every byte has been consumed.
func (f *Framer) Done() bool {
	return f.pos >= int64(len(f.buf))
}

// Pos returns the current byte offset.
func (f *Framer) Pos() int64 { return f.pos }

func (f *Framer) take(n int64) ([]byte, error) {
	if f.pos+n > int64(len(f.buf)) {
		return nil, fmt.Errorf("%w: at offset %d need %d, have %d",
			ErrCorruptHeader, f.pos, n, int64(len(f.buf))-f.pos)
	}
	b := f.buf[f.pos : f.pos+n]
	f.pos += n
	return b, nil
}

// Next frames the next command. It returns io.EOF-equivalent behavior
// via Done(); call Next only when !Done(). A Fatal error means the
// framer could not parse the header at all and the caller should stop.
func (f *Framer) Next() (Command, error) {
	offset := f.pos
	header, err := f.take(2)
	if err != nil {
		return Command{}, err
	}
	word := uint16(header[0])<<8 | uint16(header[1])
	class := int((word >> 12) & 0xf)
	id := int((word >> 5) & 0x7f)
	paramLen := int(word & 0x1f)

	var args []byte
	if paramLen == 31 {
		args, err = f.readLongForm()
		if err != nil {
			return Command{}, err
		}
	} else {
		args, err = f.take(int64(paramLen))
		if err != nil {
			return Command{}, err
		}
	}

	if len(args)%2 != 0 {
		if _, err := f.take(1); err != nil {
			return Command{}, fmt.Errorf("%w: missing pad byte after odd-length argument", ErrCorruptHeader)
		}
	}

	return Command{Class: class, ElementID: id, Args: args, ByteOffset: offset}, nil
}

// readLongForm reads one or more 15-bit length partitions, concatenating
// their argument bytes into a single buffer (spec §4.2, Partition in the
// GLOSSARY).
func (f *Framer) readLongForm() ([]byte, error) {
	var out []byte
	for {
		lw, err := f.take(2)
		if err != nil {
			return nil, err
		}
		word := uint16(lw[0])<<8 | uint16(lw[1])
		cont := word&0x8000 != 0
		length := int16(word & 0x7fff)
		if length < 0 {
			return nil, ErrNegativeLength
		}
		part, err := f.take(int64(length))
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
		if !cont {
			return out, nil
		}
	}
}

// IsEndMetafile reports whether c is the END METAFILE command.
func IsEndMetafile(c Command) bool {
	return c.Class == EndMetafileClass && c.ElementID == EndMetafileID
}
