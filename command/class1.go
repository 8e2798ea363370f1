/*
 * CGM codec - Class 1 (Metafile Descriptor) commands.
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

package command

import (
	"github.com/gfxcgm/cgm/internal/mstate"
	"github.com/gfxcgm/cgm/internal/primitive"
	"github.com/gfxcgm/cgm/internal/sdr"
)

// Element ids within Class 1, Metafile Descriptor.
const (
	IDMetafileVersion           = 1
	IDMetafileDescription       = 2
	IDVDCType                   = 3
	IDIntegerPrecision          = 4
	IDRealPrecision             = 5
	IDIndexPrecision            = 6
	IDColourPrecision           = 7
	IDColourIndexPrecision      = 8
	IDMaximumColourIndex        = 9
	IDColourValueExtent         = 10
	IDMetafileElementList       = 11
	IDFontList                  = 12
	IDCharacterSetList          = 13
	IDCharacterCodingAnnouncer  = 14
	IDNamePrecision             = 15
	IDMaximumVDCExtent          = 16
	IDFontProperties            = 17
)

type MetafileVersion struct {
	Header
	Version int64
}

type MetafileDescription struct {
	Header
	Description []byte
}

// VDCTypeCommand is the VDCTYPE command. Overridden is set whenever the
// decoded type is Integer, the case the compatibility override (spec
// §4.3) applies to; whether emission is forced to real depends on the
// emitter's configured VDC mode.
type VDCTypeCommand struct {
	Header
	Type       mstate.VDCType
	Overridden bool
}

type IntegerPrecisionCommand struct {
	Header
	Bits int64
}

type RealPrecisionCommand struct {
	Header
	Precision mstate.RealPrecision
}

type IndexPrecisionCommand struct {
	Header
	Bits int64
}

type ColourPrecisionCommand struct {
	Header
	Bits int64
}

type ColourIndexPrecisionCommand struct {
	Header
	Bits int64
}

type MaximumColourIndex struct {
	Header
	Index int64
}

type ColourValueExtent struct {
	Header
	Min, Max mstate.ColourTriple
}

type MetafileElementList struct {
	Header
	Raw []byte // preserved verbatim; the reference encoder's keyword-choice policy is data-dependent (spec §9 Open Question).
}

type FontList struct {
	Header
	Names [][]byte
}

type CharacterSetList struct {
	Header
	Entries []CharsetEntry
}

// CharsetEntry is one (type, designation) pair of CHARSETLIST.
type CharsetEntry struct {
	Type        int16
	Designation []byte
}

type CharacterCodingAnnouncerCommand struct {
	Header
	Value mstate.CharacterCodingAnnouncer
}

type NamePrecisionCommand struct {
	Header
	Bits int64
}

// MaximumVDCExtent is emitted with the 1-space exception indent (spec
// §4.5 "Exceptions" row), same as every other command in this class.
type MaximumVDCExtent struct {
	Header
	First, Second primitive.Point
}

// FontPropertyPair is one (indicator, SDR priority/value) entry of
// FONTPROPERTIES. The property's value is itself a Structured Data
// Record, walked with package sdr rather than kept as raw bytes (spec
// §9 Open Question: the SDR walker is complete, so this is no longer a
// rendering hole).
type FontPropertyPair struct {
	Indicator int16
	Priority  int64
	Value     []sdr.Item
}

type FontProperties struct {
	Header
	Properties []FontPropertyPair
}

// realPrecisionFor maps a decoded real-precision integer triple
// to the RealPrecision enum per Part 3's fixed four encodings.
func realPrecisionFor(exponent, mantissa int64) mstate.RealPrecision {
	switch {
	case exponent == 9 && mantissa == 23:
		return mstate.Floating32
	case exponent == 12 && mantissa == 52:
		return mstate.Floating64
	case mantissa == 32:
		return mstate.Fixed64
	default:
		return mstate.Fixed32
	}
}

func init() {
	Register(ClassMetafileDescriptor, IDMetafileVersion, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		return MetafileVersion{Header{ClassMetafileDescriptor, IDMetafileVersion}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDMetafileDescription, func(args []byte, state *mstate.State) (Command, error) {
		s, err := readOnlyString(args, state)
		if err != nil {
			return nil, err
		}
		return MetafileDescription{Header{ClassMetafileDescriptor, IDMetafileDescription}, s}, nil
	})

	Register(ClassMetafileDescriptor, IDVDCType, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		t := mstate.VDCType(e)
		state.VDCType = t
		overridden := false
		if t == mstate.VDCInteger {
			overridden = true
			state.VDCTypeOverridden = true
		}
		return VDCTypeCommand{Header{ClassMetafileDescriptor, IDVDCType}, t, overridden}, nil
	})

	Register(ClassMetafileDescriptor, IDIntegerPrecision, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		state.IntegerPrecision = int(v)
		return IntegerPrecisionCommand{Header{ClassMetafileDescriptor, IDIntegerPrecision}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDRealPrecision, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		minVal, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		maxVal, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		digits, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		_ = minVal
		prec := realPrecisionFor(maxVal, digits)
		state.RealPrecision = prec
		return RealPrecisionCommand{Header{ClassMetafileDescriptor, IDRealPrecision}, prec}, nil
	})

	Register(ClassMetafileDescriptor, IDIndexPrecision, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		state.IndexPrecision = int(v)
		return IndexPrecisionCommand{Header{ClassMetafileDescriptor, IDIndexPrecision}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDColourPrecision, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		state.ColourPrecision = int(v)
		return ColourPrecisionCommand{Header{ClassMetafileDescriptor, IDColourPrecision}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDColourIndexPrecision, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		state.ColourIndexPrecision = int(v)
		return ColourIndexPrecisionCommand{Header{ClassMetafileDescriptor, IDColourIndexPrecision}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDMaximumColourIndex, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		return MaximumColourIndex{Header{ClassMetafileDescriptor, IDMaximumColourIndex}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDColourValueExtent, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		minC, err := readTriple(r)
		if err != nil {
			return nil, err
		}
		maxC, err := readTriple(r)
		if err != nil {
			return nil, err
		}
		state.ColourValueExtentMin = minC
		state.ColourValueExtentMax = maxC
		return ColourValueExtent{Header{ClassMetafileDescriptor, IDColourValueExtent}, minC, maxC}, nil
	})

	Register(ClassMetafileDescriptor, IDMetafileElementList, func(args []byte, _ *mstate.State) (Command, error) {
		return MetafileElementList{Header{ClassMetafileDescriptor, IDMetafileElementList}, args}, nil
	})

	Register(ClassMetafileDescriptor, IDFontList, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		var names [][]byte
		for !r.Done() {
			s, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			names = append(names, s)
		}
		return FontList{Header{ClassMetafileDescriptor, IDFontList}, names}, nil
	})

	Register(ClassMetafileDescriptor, IDCharacterSetList, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		var entries []CharsetEntry
		for !r.Done() {
			ty, err := r.ReadEnum()
			if err != nil {
				return nil, err
			}
			s, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			entries = append(entries, CharsetEntry{Type: ty, Designation: s})
		}
		return CharacterSetList{Header{ClassMetafileDescriptor, IDCharacterSetList}, entries}, nil
	})

	Register(ClassMetafileDescriptor, IDCharacterCodingAnnouncer, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		v := mstate.CharacterCodingAnnouncer(e)
		state.CharacterCodingAnnouncer = v
		return CharacterCodingAnnouncerCommand{Header{ClassMetafileDescriptor, IDCharacterCodingAnnouncer}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDNamePrecision, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		state.NamePrecision = int(v)
		return NamePrecisionCommand{Header{ClassMetafileDescriptor, IDNamePrecision}, v}, nil
	})

	Register(ClassMetafileDescriptor, IDMaximumVDCExtent, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		first, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		second, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return MaximumVDCExtent{Header{ClassMetafileDescriptor, IDMaximumVDCExtent}, first, second}, nil
	})

	Register(ClassMetafileDescriptor, IDFontProperties, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		var pairs []FontPropertyPair
		for !r.Done() {
			indicator, err := r.ReadEnum()
			if err != nil {
				return nil, err
			}
			priority, err := r.ReadInt()
			if err != nil {
				return nil, err
			}
			sdrBytes, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			items, err := sdr.Parse(sdrBytes, state)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, FontPropertyPair{Indicator: indicator, Priority: priority, Value: items})
		}
		return FontProperties{Header{ClassMetafileDescriptor, IDFontProperties}, pairs}, nil
	})
}

// readTriple reads a direct-colour (R,G,B) triple at ColourPrecision
// bits per component (spec §4.1 read_colour), used by BACKGROUND
// COLOUR, AUXILIARY COLOUR, and COLOUR VALUE EXTENT — all always
// direct, regardless of the active ColourSelectionMode.
func readTriple(r *primitive.Reader) (mstate.ColourTriple, error) {
	a, err := r.ReadColourComponent()
	if err != nil {
		return mstate.ColourTriple{}, err
	}
	b, err := r.ReadColourComponent()
	if err != nil {
		return mstate.ColourTriple{}, err
	}
	c, err := r.ReadColourComponent()
	if err != nil {
		return mstate.ColourTriple{}, err
	}
	return mstate.ColourTriple{A: uint32(a), B: uint32(b), C: uint32(c)}, nil
}
