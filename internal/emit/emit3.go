/*
 * CGM codec - Class 3 (Control) clear-text rendering.
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

package emit

import (
	"fmt"

	"github.com/gfxcgm/cgm/command"
)

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func init() {
	register(command.ClassControl, command.IDVDCIntegerPrecisionCtl, "vdcintegerprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.VDCIntegerPrecisionCommand)
		lo, hi := signedExtent(v.Bits)
		c.lw.token(formatInt(lo) + ",")
		c.lw.token(formatInt(hi))
		c.lw.inlineComment(fmt.Sprintf("%d binary bits", v.Bits))
	})

	register(command.ClassControl, command.IDVDCRealPrecisionCtl, "vdcrealprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.VDCRealPrecisionCommand)
		min, max, digits, bits := realPrecLiteral(v.Precision)
		c.lw.token(formatReal(min) + ",")
		c.lw.token(formatReal(max) + ",")
		c.lw.token(formatInt(int64(digits)))
		c.lw.inlineComment(fmt.Sprintf("%d binary bits", bits))
	})

	register(command.ClassControl, command.IDClipIndicator, "clip", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ClipIndicator)
		c.lw.token(onOff(v.Mode == command.ClipOn))
	})

	register(command.ClassControl, command.IDClipRectangle, "cliprect", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ClipRectangle)
		c.lw.token(formatPoint(v.First, c.forceReal))
		c.lw.token(formatPoint(v.Second, c.forceReal))
	})

	register(command.ClassControl, command.IDTransparency, "transparency", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Transparency)
		c.lw.token(onOff(v.Mode == command.TransparencyOn))
	})

	register(command.ClassControl, command.IDAuxiliaryColour, "auxcolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.AuxiliaryColour)
		c.lw.token(formatTriple(v.Colour))
	})

	register(command.ClassControl, command.IDMessage, "message", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Message)
		c.lw.token(onOff(v.Action == 1))
		c.lw.token(formatString(v.Text))
	})
}
