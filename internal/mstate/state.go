/*
 * CGM codec - metafile decode state.
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

// Package mstate holds the evolving decode state threaded through the
// primitive reader and every command decoder: the precision and mode
// fields that Part 3 requires be set before the commands that depend on
// them are parsed. It is per-stream and carries no global state, the
// same way the teacher's per-channel chanCtl is owned by one channel and
// never shared.
package mstate

// RealPrecision is the encoding layout for REAL PRECISION and VDC REAL
// PRECISION commands.
type RealPrecision int

const (
	Fixed32 RealPrecision = iota
	Fixed64
	Floating32
	Floating64
)

// VDCType selects whether VDC coordinates are read/emitted as integers
// or reals.
type VDCType int

const (
	VDCInteger VDCType = iota
	VDCReal
)

// ColourModel is the COLOUR MODEL enumeration.
type ColourModel int

const (
	ColourRGB ColourModel = iota
	ColourCIELAB
	ColourCIELUV
	ColourCMYK
	ColourRGBRelated
)

// ColourSelectionMode is the COLOUR SELECTION MODE enumeration.
type ColourSelectionMode int

const (
	ColourIndexed ColourSelectionMode = iota
	ColourDirect
)

// CharacterCodingAnnouncer is the CHARACTER CODING ANNOUNCER enumeration.
type CharacterCodingAnnouncer int

const (
	Basic7Bit CharacterCodingAnnouncer = iota
	Basic8Bit
	Extended7Bit
	Extended8Bit
)

// ColourTriple is an (r, g, b) or (c, m, y) component triple, scaled per
// ColourValueExtent when emitted as direct color.
type ColourTriple struct {
	A, B, C uint32
}

// State is the per-stream metafile decode state. It is read by every
// primitive decode and mutated only by the decoder of the command that
// owns a given field (spec §3 invariant: decoders read, only the owning
// command's decoder writes).
type State struct {
	IntegerPrecision      int                      // 8, 16, 24, or 32 bits.
	RealPrecision         RealPrecision            // Layout of REAL values.
	IndexPrecision        int                       // 8, 16, 24, or 32 bits.
	ColourPrecision       int                       // 8, 16, 24, or 32 bits.
	ColourIndexPrecision  int                       // 8, 16, 24, or 32 bits.
	VDCType               VDCType                   // Integer or Real VDC values.
	VDCIntegerPrecision   int                       // 16, 24, or 32 bits.
	VDCRealPrecision      RealPrecision             // Layout of VDC REAL values.
	ColourModel           ColourModel               // Component interpretation.
	ColourSelectionMode   ColourSelectionMode       // Indexed or Direct.
	ColourValueExtentMin  ColourTriple              // Minimum of the colour value extent.
	ColourValueExtentMax  ColourTriple              // Maximum of the colour value extent.
	NamePrecision         int                       // 8, 16, 24, or 32 bits.
	CharacterCodingAnnouncer CharacterCodingAnnouncer

	// VDCTypeOverridden records that a VDC TYPE of Integer has been
	// decoded, the case the compatibility override (spec §4.3) applies
	// to. Set by the VDC TYPE decoder. The emitter does not read it; it
	// tracks the override itself, according to its configured VDC mode.
	VDCTypeOverridden bool
}

// New returns a State initialized to the Part 3 defaults (spec §3).
func New() *State {
	return &State{
		IntegerPrecision:     16,
		RealPrecision:        Fixed32,
		IndexPrecision:       16,
		ColourPrecision:      8,
		ColourIndexPrecision: 8,
		VDCType:              VDCInteger,
		VDCIntegerPrecision:  16,
		VDCRealPrecision:     Fixed32,
		ColourModel:          ColourRGB,
		ColourSelectionMode:  ColourIndexed,
		ColourValueExtentMin: ColourTriple{0, 0, 0},
		ColourValueExtentMax: ColourTriple{255, 255, 255},
		NamePrecision:        16,
		CharacterCodingAnnouncer: Basic7Bit,
	}
}
