/*
 * CGM codec - precision-aware primitive reader.
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

// Package primitive decodes the integers, reals, VDCs, colors, strings,
// enums, and indices that every command argument buffer is built from,
// borrowing the teacher's buffer-plus-cursor style from util/tape and
// util/card rather than an io.Reader (the argument buffer is already
// fully resident by the time the framer hands it over).
package primitive

import (
	"errors"
	"fmt"
	"math"

	"github.com/gfxcgm/cgm/internal/mstate"
)

// ErrTruncated is returned when fewer bytes remain in the argument
// buffer than a read requires. The command factory returns it as is;
// the orchestrator (cgm.Codec.Decode) records it in a diagnostic that
// carries the command's (class, id, offset).
var ErrTruncated = errors.New("primitive: truncated argument buffer")

// Reader decodes primitives from a borrowed argument slice using the
// precisions currently active in state. It never retains the slice
// beyond the call that owns it.
type Reader struct {
	buf   []byte
	pos   int
	state *mstate.State
}

// NewReader returns a Reader over buf using the precisions in state.
func NewReader(buf []byte, state *mstate.State) *Reader {
	return &Reader{buf: buf, state: state}
}

// Pos returns the current cursor offset into the argument buffer.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Done reports whether the cursor has consumed the whole buffer.
func (r *Reader) Done() bool { return r.pos >= len(r.buf) }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrTruncated, n, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func beUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = (v << 8) | uint64(c)
	}
	return v
}

func precisionBytes(bits int) int { return bits / 8 }

// ReadInt reads a signed integer of IntegerPrecision bits, big-endian
// two's complement.
func (r *Reader) ReadInt() (int64, error) {
	return r.readSigned(r.state.IntegerPrecision)
}

// ReadUint reads an unsigned integer of IntegerPrecision bits.
func (r *Reader) ReadUint() (uint64, error) {
	return r.readUnsigned(r.state.IntegerPrecision)
}

// ReadIndex reads an unsigned index of IndexPrecision bits.
func (r *Reader) ReadIndex() (uint64, error) {
	return r.readUnsigned(r.state.IndexPrecision)
}

// ReadName reads an unsigned name of NamePrecision bits.
func (r *Reader) ReadName() (uint64, error) {
	return r.readUnsigned(r.state.NamePrecision)
}

func (r *Reader) readSigned(bits int) (int64, error) {
	n := precisionBytes(bits)
	b, err := r.take(n)
	if err != nil {
		return 0, err
	}
	v := beUint(b)
	signBit := uint64(1) << (bits - 1)
	if v&signBit != 0 {
		return int64(v) - int64(signBit)<<1, nil
	}
	return int64(v), nil
}

func (r *Reader) readUnsigned(bits int) (uint64, error) {
	n := precisionBytes(bits)
	b, err := r.take(n)
	if err != nil {
		return 0, err
	}
	return beUint(b), nil
}

// ReadColourComponent reads one direct-colour component of
// ColourPrecision bits, unsigned (spec §4.1 read_colour). Used by
// commands whose colour is always direct regardless of the active
// ColourSelectionMode (BACKGROUND COLOUR, AUXILIARY COLOUR, COLOUR
// VALUE EXTENT, COLOUR TABLE), unlike ReadColour which also honors
// Indexed mode.
func (r *Reader) ReadColourComponent() (uint64, error) {
	return r.readUnsigned(r.state.ColourPrecision)
}

// ReadReal reads a real per RealPrecision (spec §4.1).
func (r *Reader) ReadReal() (float64, error) {
	return r.readRealAs(r.state.RealPrecision)
}

func (r *Reader) readRealAs(prec mstate.RealPrecision) (float64, error) {
	switch prec {
	case mstate.Fixed32:
		b, err := r.take(4)
		if err != nil {
			return 0, err
		}
		whole := int16(beUint(b[0:2]))
		frac := uint16(beUint(b[2:4]))
		return float64(whole) + float64(frac)/65536.0, nil
	case mstate.Fixed64:
		b, err := r.take(8)
		if err != nil {
			return 0, err
		}
		whole := int32(beUint(b[0:4]))
		frac := uint32(beUint(b[4:8]))
		return float64(whole) + float64(frac)/4294967296.0, nil
	case mstate.Floating32:
		b, err := r.take(4)
		if err != nil {
			return 0, err
		}
		return float64(math.Float32frombits(uint32(beUint(b)))), nil
	case mstate.Floating64:
		b, err := r.take(8)
		if err != nil {
			return 0, err
		}
		return math.Float64frombits(beUint(b)), nil
	default:
		return 0, fmt.Errorf("primitive: unknown real precision %d", prec)
	}
}

// VDC is a single virtual device coordinate value, read as either an
// integer or a real depending on the active VDC type.
type VDC struct {
	IsReal bool
	Int    int64
	Real   float64
}

// Float64 returns the VDC as a float64 regardless of its representation.
func (v VDC) Float64() float64 {
	if v.IsReal {
		return v.Real
	}
	return float64(v.Int)
}

// ReadVDC reads one VDC value per the active VDCType/VDCIntegerPrecision/
// VDCRealPrecision (spec §4.1).
func (r *Reader) ReadVDC() (VDC, error) {
	if r.state.VDCType == mstate.VDCInteger {
		v, err := r.readSigned(r.state.VDCIntegerPrecision)
		if err != nil {
			return VDC{}, err
		}
		return VDC{Int: v}, nil
	}
	v, err := r.readRealAs(r.state.VDCRealPrecision)
	if err != nil {
		return VDC{}, err
	}
	return VDC{IsReal: true, Real: v}, nil
}

// Point is an ordered pair of VDCs.
type Point struct {
	X, Y VDC
}

// ReadPoint reads a Point (x then y).
func (r *Reader) ReadPoint() (Point, error) {
	x, err := r.ReadVDC()
	if err != nil {
		return Point{}, err
	}
	y, err := r.ReadVDC()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ReadEnum reads a signed 16-bit enum value (fixed precision regardless
// of IntegerPrecision, per spec §4.1).
func (r *Reader) ReadEnum() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return int16(beUint(b)), nil
}

// ReadString reads a Part 3 string: a length byte, or if that byte is
// 255, a long-form 16-bit length with a continuation bit, repeated
// until a partition's high bit is clear. Bytes are returned opaque; no
// transcoding is performed (spec §4.1).
func (r *Reader) ReadString() ([]byte, error) {
	var out []byte
	for {
		lb, err := r.take(1)
		if err != nil {
			return nil, err
		}
		length := int(lb[0])
		if length < 255 {
			b, err := r.take(length)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
			return out, nil
		}
		hb, err := r.take(2)
		if err != nil {
			return nil, err
		}
		word := beUint(hb)
		cont := word&0x8000 != 0
		segLen := int(word & 0x7fff)
		b, err := r.take(segLen)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		if !cont {
			return out, nil
		}
	}
}

// Colour is the decoded sum of an indexed color or a direct component
// tuple (spec §3).
type Colour struct {
	Indexed bool
	Index   uint64
	// Direct component values, in declaration order. 3 for RGB/CIE
	// models, 4 for CMYK.
	Components []uint64
}

// ReadColour reads one color per ColourSelectionMode/ColourModel (spec
// §4.1).
func (r *Reader) ReadColour() (Colour, error) {
	if r.state.ColourSelectionMode == mstate.ColourIndexed {
		n := precisionBytes(r.state.ColourIndexPrecision)
		b, err := r.take(n)
		if err != nil {
			return Colour{}, err
		}
		return Colour{Indexed: true, Index: beUint(b)}, nil
	}
	count := 3
	if r.state.ColourModel == mstate.ColourCMYK {
		count = 4
	}
	comps := make([]uint64, count)
	n := precisionBytes(r.state.ColourPrecision)
	for i := 0; i < count; i++ {
		b, err := r.take(n)
		if err != nil {
			return Colour{}, err
		}
		comps[i] = beUint(b)
	}
	return Colour{Components: comps}, nil
}
