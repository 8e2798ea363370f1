/*
 * CGM codec - clear-text line wrapping writer.
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

// Package emit renders a decoded command list as ISO/IEC 8632-4
// clear-text, token by token, soft-wrapping at a configurable column the
// same way the teacher's disassembler built one text line per decoded
// instruction, except here a single command's tokens may span several
// wrapped lines.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gfxcgm/cgm/internal/mstate"
	"github.com/gfxcgm/cgm/internal/primitive"
)

// lineWriter accumulates one statement's tokens, wrapping onto a new
// line with the class's indent whenever the next token would cross
// wrapColumn. Wrapping only ever happens between tokens.
type lineWriter struct {
	out        *bufio.Writer
	wrapColumn int
	indent     string
	col        int
	err        error
}

func newLineWriter(w io.Writer, wrapColumn int) *lineWriter {
	if wrapColumn <= 0 {
		wrapColumn = 80
	}
	return &lineWriter{out: bufio.NewWriter(w), wrapColumn: wrapColumn}
}

func (lw *lineWriter) flush() error {
	if lw.err != nil {
		return lw.err
	}
	return lw.out.Flush()
}

// begin starts a new statement: writes indent and keyword verbatim. The
// newline ending the previous statement has already been written by end.
func (lw *lineWriter) begin(indent, keyword string) {
	if lw.err != nil {
		return
	}
	lw.indent = indent
	_, lw.err = lw.out.WriteString(indent)
	_, lw.err = lw.out.WriteString(keyword)
	lw.col = len(indent) + len(keyword)
}

// token writes s as the next top-level token, wrapping first if needed.
func (lw *lineWriter) token(s string) {
	if lw.err != nil {
		return
	}
	if lw.col+1+len(s) > lw.wrapColumn {
		_, lw.err = lw.out.WriteString("\n")
		_, lw.err = lw.out.WriteString(lw.indent)
		lw.col = len(lw.indent)
	} else {
		_, lw.err = lw.out.WriteString(" ")
		lw.col++
	}
	_, lw.err = lw.out.WriteString(s)
	lw.col += len(s)
}

// rawAppend appends s to the current token stream without a leading
// space or wrap check, for punctuation glued to the previous token. The
// current formatters append such punctuation inside token instead.
func (lw *lineWriter) rawAppend(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.out.WriteString(s)
	lw.col += len(s)
}

// inlineComment appends " % text %" to the current statement, used by
// INTEGERPREC/INDEXPREC/REALPREC's trailing bit-width annotation (spec
// §4.5). It never wraps: the annotation stays glued to its statement.
func (lw *lineWriter) inlineComment(text string) {
	if lw.err != nil {
		return
	}
	s := " % " + text + " %"
	_, lw.err = lw.out.WriteString(s)
	lw.col += len(s)
}

// end terminates the current statement with `;` and a newline.
func (lw *lineWriter) end() {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.out.WriteString(";\n")
	lw.col = 0
}

// comment writes a standalone `% ... %;` comment line with no indent.
func (lw *lineWriter) comment(text string) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.out, "%% %s %%;\n", text)
	lw.col = 0
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatReal(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// formatVDC renders a VDC value. forceReal is the emitter's running
// VDC-type-override state (spec §4.3): once a decoded VDCTYPE of
// Integer has been seen, subsequent VDC values print as reals with
// four decimals even though they were decoded as plain integers.
func formatVDC(v primitive.VDC, forceReal bool) string {
	if v.IsReal {
		return formatReal(v.Real)
	}
	if forceReal {
		return formatReal(float64(v.Int))
	}
	return formatInt(v.Int)
}

func formatPoint(p primitive.Point, forceReal bool) string {
	return "(" + formatVDC(p.X, forceReal) + "," + formatVDC(p.Y, forceReal) + ")"
}

func formatPoints(pts []primitive.Point, forceReal bool) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatPoint(p, forceReal)
	}
	return strings.Join(parts, " ")
}

func formatString(b []byte) string {
	s := strings.ReplaceAll(string(b), "'", "''")
	return "'" + s + "'"
}

func formatStrings(strs [][]byte) string {
	parts := make([]string, len(strs))
	for i, s := range strs {
		parts[i] = formatString(s)
	}
	return strings.Join(parts, ", ")
}

// scaleComponent maps a raw direct-colour component (0..2^precision-1)
// into [lo, hi] per the active COLOUR VALUE EXTENT (spec §3 Color:
// "Direct values are scaled by colour_value_extent when emitted").
func scaleComponent(raw uint64, precision int, lo, hi uint32) int64 {
	full := (uint64(1) << precision) - 1
	if full == 0 {
		return int64(lo)
	}
	span := int64(hi) - int64(lo)
	return int64(lo) + (int64(raw)*span)/int64(full)
}

// formatColour renders a decoded Colour as its clear-text form: the bare
// index for Indexed, or scaled "R G B" (and a fourth CMYK component
// unscaled) space-separated for Direct (spec §4.5 "Color (direct)").
func formatColour(c primitive.Colour, state *mstate.State) string {
	if c.Indexed {
		return formatInt(int64(c.Index))
	}
	parts := make([]string, len(c.Components))
	triple := [3]uint32{state.ColourValueExtentMin.A, state.ColourValueExtentMin.B, state.ColourValueExtentMin.C}
	upper := [3]uint32{state.ColourValueExtentMax.A, state.ColourValueExtentMax.B, state.ColourValueExtentMax.C}
	for i, raw := range c.Components {
		if i < 3 {
			parts[i] = formatInt(scaleComponent(raw, state.ColourPrecision, triple[i], upper[i]))
		} else {
			parts[i] = formatInt(int64(raw))
		}
	}
	return strings.Join(parts, " ")
}

// formatTriple renders an (A,B,C) component triple unscaled, as used by
// COLRVALUEEXT and BACKCOLR (spec §4.5 "Color (direct)").
func formatTriple(t mstate.ColourTriple) string {
	return formatInt(int64(t.A)) + " " + formatInt(int64(t.B)) + " " + formatInt(int64(t.C))
}

// signedExtent returns the [-2^(bits-1), 2^(bits-1)-1] extent printed by
// INTEGERPREC and INDEXPREC (spec §4.5).
func signedExtent(bits int64) (int64, int64) {
	half := int64(1) << uint(bits-1)
	return -half, half - 1
}

// unsignedMax returns 2^bits - 1, the extent printed by COLRPREC.
func unsignedMax(bits int64) int64 {
	return (int64(1) << uint(bits)) - 1
}

// signedMax returns 2^(bits-1) - 1, the extent printed by COLRINDEXPREC.
func signedMax(bits int64) int64 {
	return (int64(1) << uint(bits-1)) - 1
}

// realPrecLiteral returns the canonical (min, max, digits, annotated
// bits) clear-text quadruple for a REALPREC/VDCREALPREC precision. Only
// Floating32's is given literally by the spec (-511.0000, 511.0000, 7 %
// 10 binary bits %); the other three are modeled on its shape, scaled to
// their own word width.
func realPrecLiteral(prec mstate.RealPrecision) (min, max float64, digits, bits int) {
	switch prec {
	case mstate.Fixed32:
		return -32768.0, 32767.0, 6, 32
	case mstate.Fixed64:
		return -2147483648.0, 2147483647.0, 15, 64
	case mstate.Floating64:
		return -511.0, 511.0, 16, 11
	default: // Floating32
		return -511.0, 511.0, 7, 10
	}
}
