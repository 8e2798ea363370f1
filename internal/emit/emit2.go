/*
 * CGM codec - Class 2 (Picture Descriptor) clear-text rendering.
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
	"github.com/gfxcgm/cgm/command"
)

func scaleModeKeyword(m command.ScalingMode) string {
	if m == command.ScaleModeMetric {
		return "metric"
	}
	return "abstract"
}

func widthSpecKeyword(m command.WidthSpecificationMode) string {
	switch m {
	case command.WidthSpecScaled:
		return "scaled"
	case command.WidthSpecFractional:
		return "fractional"
	default:
		return "abs"
	}
}

func colourSelectionModeKeyword(cmd command.ColourSelectionModeCommand) string {
	if int(cmd.Mode) == 1 {
		return "direct"
	}
	return "indexed"
}

func init() {
	register(command.ClassPictureDescriptor, command.IDScaleMode, "scalemode", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ScaleModeCommand)
		c.lw.token(scaleModeKeyword(v.Mode) + ",")
		if v.Mode == command.ScaleModeMetric {
			c.lw.token(formatReal(v.MetricFactor))
		} else {
			c.lw.token(formatReal(0))
		}
	})

	register(command.ClassPictureDescriptor, command.IDColourSelectionMode, "colrmode", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ColourSelectionModeCommand)
		c.lw.token(colourSelectionModeKeyword(v))
	})

	register(command.ClassPictureDescriptor, command.IDLineWidthSpecMode, "linewidthmode", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineWidthSpecModeCommand)
		c.lw.token(widthSpecKeyword(v.Mode))
	})

	register(command.ClassPictureDescriptor, command.IDMarkerSizeSpecMode, "markersizemode", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MarkerSizeSpecModeCommand)
		c.lw.token(widthSpecKeyword(v.Mode))
	})

	register(command.ClassPictureDescriptor, command.IDEdgeWidthSpecMode, "edgewidthmode", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EdgeWidthSpecModeCommand)
		c.lw.token(widthSpecKeyword(v.Mode))
	})

	register(command.ClassPictureDescriptor, command.IDVDCExtent, "vdcext", func(c *ctx, cmd command.Command) {
		v := cmd.(command.VDCExtent)
		c.lw.token(formatPoint(v.First, c.forceReal))
		c.lw.token(formatPoint(v.Second, c.forceReal))
	})

	register(command.ClassPictureDescriptor, command.IDBackgroundColour, "backcolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.BackgroundColour)
		c.lw.token(formatTriple(v.Colour))
	})
}
