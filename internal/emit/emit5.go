/*
 * CGM codec - Class 5 (Attribute) clear-text rendering.
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

func textPrecisionKeyword(p command.TextPrecisionValue) string {
	switch p {
	case command.TextPrecisionChar:
		return "char"
	case command.TextPrecisionStroke:
		return "stroke"
	default:
		return "string"
	}
}

func textPathKeyword(p command.TextPathValue) string {
	switch p {
	case command.TextPathLeft:
		return "left"
	case command.TextPathUp:
		return "up"
	case command.TextPathDown:
		return "down"
	default:
		return "right"
	}
}

func interiorStyleKeyword(s command.InteriorStyleValue) string {
	switch s {
	case command.InteriorSolid:
		return "solid"
	case command.InteriorPattern:
		return "pattern"
	case command.InteriorHatch:
		return "hatch"
	case command.InteriorEmpty:
		return "empty"
	default:
		return "hollow"
	}
}

func edgeVisibilityKeyword(v command.EdgeVisibilityValue) string {
	return onOff(v == command.EdgeVisibilityOn)
}

func lineCapKeyword(v command.LineCapValue) string {
	switch v {
	case command.LineCapButt:
		return "butt"
	case command.LineCapRound:
		return "round"
	case command.LineCapProjecting:
		return "projecting"
	case command.LineCapTriangle:
		return "triangle"
	default:
		return "unspec"
	}
}

func lineJoinKeyword(v command.LineJoinValue) string {
	switch v {
	case command.LineJoinMitre:
		return "mitre"
	case command.LineJoinRound:
		return "round"
	case command.LineJoinBevel:
		return "bevel"
	default:
		return "unspec"
	}
}

func lineTypeContinuationKeyword(v command.LineTypeContinuationValue) string {
	if v == command.LineTypeContinued {
		return "contd"
	}
	return "notcontd"
}

func interpolatedStyleKeyword(s command.InterpolatedIntStyle) string {
	switch s {
	case command.InterpLinear:
		return "linear"
	case command.InterpRadial:
		return "radial"
	case command.InterpConical:
		return "conical"
	case command.InterpElliptical:
		return "elliptical"
	default:
		return "uniform"
	}
}

func init() {
	register(command.ClassAttribute, command.IDLineBundleIndex, "linebundleindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineBundleIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDLineType, "linetype", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineType)
		c.lw.token(formatInt(v.Type))
	})

	register(command.ClassAttribute, command.IDLineWidth, "linewidth", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineWidth)
		c.lw.token(formatVDC(v.Width, c.forceReal))
	})

	register(command.ClassAttribute, command.IDLineColour, "linecolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineColour)
		c.lw.token(formatColour(v.Colour, c.state))
	})

	register(command.ClassAttribute, command.IDMarkerBundleIndex, "markerbundleindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MarkerBundleIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDMarkerType, "markertype", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MarkerType)
		c.lw.token(formatInt(v.Type))
	})

	register(command.ClassAttribute, command.IDMarkerSize, "markersize", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MarkerSize)
		c.lw.token(formatVDC(v.Size, c.forceReal))
	})

	register(command.ClassAttribute, command.IDMarkerColour, "markercolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MarkerColour)
		c.lw.token(formatColour(v.Colour, c.state))
	})

	register(command.ClassAttribute, command.IDTextBundleIndex, "textbundleindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.TextBundleIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDTextFontIndex, "textfontindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.TextFontIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDTextPrecision, "textprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.TextPrecision)
		c.lw.token(textPrecisionKeyword(v.Precision))
	})

	register(command.ClassAttribute, command.IDCharExpansion, "charexpan", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharExpansion)
		c.lw.token(formatReal(v.Factor))
	})

	register(command.ClassAttribute, command.IDCharSpacing, "charspace", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharSpacing)
		c.lw.token(formatReal(v.Factor))
	})

	register(command.ClassAttribute, command.IDTextColour, "textcolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.TextColour)
		c.lw.token(formatColour(v.Colour, c.state))
	})

	register(command.ClassAttribute, command.IDCharHeight, "charheight", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharHeight)
		c.lw.token(formatVDC(v.Height, c.forceReal))
	})

	register(command.ClassAttribute, command.IDCharOrientation, "charori", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharOrientation)
		c.lw.token(formatVDC(v.UpX, c.forceReal))
		c.lw.token(formatVDC(v.UpY, c.forceReal))
		c.lw.token(formatVDC(v.BaseX, c.forceReal))
		c.lw.token(formatVDC(v.BaseY, c.forceReal))
	})

	register(command.ClassAttribute, command.IDTextPath, "textpath", func(c *ctx, cmd command.Command) {
		v := cmd.(command.TextPath)
		c.lw.token(textPathKeyword(v.Path))
	})

	register(command.ClassAttribute, command.IDTextAlignment, "textalign", func(c *ctx, cmd command.Command) {
		v := cmd.(command.TextAlignment)
		c.lw.token(formatInt(int64(v.Horizontal)))
		c.lw.token(formatInt(int64(v.Vertical)))
		c.lw.token(formatReal(v.ContHoriz))
		c.lw.token(formatReal(v.ContVert))
	})

	register(command.ClassAttribute, command.IDFillBundleIndex, "fillbundleindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.FillBundleIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDInteriorStyle, "intstyle", func(c *ctx, cmd command.Command) {
		v := cmd.(command.InteriorStyle)
		c.lw.token(interiorStyleKeyword(v.Style))
	})

	register(command.ClassAttribute, command.IDFillColour, "fillcolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.FillColour)
		c.lw.token(formatColour(v.Colour, c.state))
	})

	register(command.ClassAttribute, command.IDHatchIndex, "hatchindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.HatchIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDPatternIndex, "patindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.PatternIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDEdgeBundleIndex, "edgebundleindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EdgeBundleIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDEdgeType, "edgetype", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EdgeType)
		c.lw.token(formatInt(v.Type))
	})

	register(command.ClassAttribute, command.IDEdgeWidth, "edgewidth", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EdgeWidth)
		c.lw.token(formatVDC(v.Width, c.forceReal))
	})

	register(command.ClassAttribute, command.IDEdgeColour, "edgecolr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EdgeColour)
		c.lw.token(formatColour(v.Colour, c.state))
	})

	register(command.ClassAttribute, command.IDEdgeVisibility, "edgevis", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EdgeVisibility)
		c.lw.token(edgeVisibilityKeyword(v.Value))
	})

	register(command.ClassAttribute, command.IDLineCap, "linecap", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineCap)
		c.lw.token(lineCapKeyword(v.Value))
	})

	register(command.ClassAttribute, command.IDLineJoin, "linejoin", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineJoin)
		c.lw.token(lineJoinKeyword(v.Value))
	})

	register(command.ClassAttribute, command.IDCharSetIndex, "charsetindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharSetIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDAltCharSetIndex, "altcharsetindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.AltCharSetIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassAttribute, command.IDColourTable, "colrtable", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ColourTable)
		c.lw.token(formatInt(v.StartIndex) + ",")
		for _, col := range v.Colours {
			c.lw.token(formatColour(col, c.state))
		}
	})

	register(command.ClassAttribute, command.IDLineTypeContinuation, "linetypecontinuation", func(c *ctx, cmd command.Command) {
		v := cmd.(command.LineTypeContinuation)
		c.lw.token(lineTypeContinuationKeyword(v.Value))
	})

	register(command.ClassAttribute, command.IDHatchStyleDefinition, "hatchstyledef", func(c *ctx, cmd command.Command) {
		v := cmd.(command.HatchStyleDefinition)
		c.lw.token(formatInt(v.StartIndex) + ",")
		for _, e := range v.Entries {
			c.lw.token(formatInt(int64(e.Style)))
			c.lw.token(formatReal(e.DirX))
			c.lw.token(formatReal(e.DirY))
			c.lw.token(formatReal(e.DutyCycle))
		}
	})

	register(command.ClassAttribute, command.IDGeometricPatternDefinition, "geopatdef", func(c *ctx, cmd command.Command) {
		v := cmd.(command.GeometricPatternDefinition)
		c.lw.token(formatInt(v.Index) + ",")
		c.lw.token(formatInt(v.SegmentIdentifier))
		c.lw.token(formatPoint(v.ReferencePoint, c.forceReal))
		c.lw.token(formatPoint(v.Size1, c.forceReal))
		c.lw.token(formatPoint(v.Size2, c.forceReal))
	})

	register(command.ClassAttribute, command.IDInterpolatedInterior, "interpolatedinterior", func(c *ctx, cmd command.Command) {
		v := cmd.(command.InterpolatedInterior)
		c.lw.token(interpolatedStyleKeyword(v.Style))
		c.lw.token(formatPoint(v.Geometry[0], c.forceReal))
		c.lw.token(formatPoint(v.Geometry[1], c.forceReal))
		for _, s := range v.Stages {
			c.lw.token(formatColour(s.Colour, c.state))
			c.lw.token(formatReal(s.Fraction))
		}
	})
}
