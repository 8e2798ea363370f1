/*
 * CGM codec - Class 4 (Graphical Primitive) clear-text rendering.
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

func textFinalKeyword(f command.TextFinalFlag) string {
	if f == command.TextFinal {
		return "final"
	}
	return "notfinal"
}

func edgeFlagKeyword(f command.PolygonSetEdgeFlag) string {
	switch f {
	case command.EdgeVisible:
		return "vis"
	case command.EdgeCloseInvisible:
		return "closeinvis"
	case command.EdgeCloseVisible:
		return "closevis"
	default:
		return "invis"
	}
}

func init() {
	register(command.ClassGraphicalPrimitive, command.IDPolyline, "line", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Polyline)
		for _, p := range v.Points {
			c.lw.token(formatPoint(p, c.forceReal))
		}
	})

	register(command.ClassGraphicalPrimitive, command.IDDisjointPolyline, "disjtline", func(c *ctx, cmd command.Command) {
		v := cmd.(command.DisjointPolyline)
		for _, p := range v.Points {
			c.lw.token(formatPoint(p, c.forceReal))
		}
	})

	register(command.ClassGraphicalPrimitive, command.IDPolymarker, "marker", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Polymarker)
		for _, p := range v.Points {
			c.lw.token(formatPoint(p, c.forceReal))
		}
	})

	register(command.ClassGraphicalPrimitive, command.IDText, "text", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Text)
		c.lw.token(formatPoint(v.Position, c.forceReal))
		c.lw.token(textFinalKeyword(v.Final) + ",")
		c.lw.token(formatString(v.String))
	})

	register(command.ClassGraphicalPrimitive, command.IDPolygon, "polygon", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Polygon)
		for _, p := range v.Points {
			c.lw.token(formatPoint(p, c.forceReal))
		}
	})

	register(command.ClassGraphicalPrimitive, command.IDPolygonSet, "polygonset", func(c *ctx, cmd command.Command) {
		v := cmd.(command.PolygonSet)
		for _, vx := range v.Vertices {
			c.lw.token(formatPoint(vx.Point, c.forceReal))
			c.lw.token(edgeFlagKeyword(vx.Flag))
		}
	})

	register(command.ClassGraphicalPrimitive, command.IDRectangle, "rect", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Rectangle)
		c.lw.token(formatPoint(v.First, c.forceReal))
		c.lw.token(formatPoint(v.Second, c.forceReal))
	})

	register(command.ClassGraphicalPrimitive, command.IDCircle, "circle", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Circle)
		c.lw.token(formatVDC(v.Centre.X, c.forceReal))
		c.lw.token(formatVDC(v.Centre.Y, c.forceReal))
		c.lw.token(formatVDC(v.Radius, c.forceReal))
	})

	register(command.ClassGraphicalPrimitive, command.IDArc3Pt, "arc3pt", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Arc3Pt)
		c.lw.token(formatPoint(v.P1, c.forceReal))
		c.lw.token(formatPoint(v.P2, c.forceReal))
		c.lw.token(formatPoint(v.P3, c.forceReal))
	})

	register(command.ClassGraphicalPrimitive, command.IDArc3PtClose, "arc3ptclose", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Arc3PtClose)
		c.lw.token(formatPoint(v.P1, c.forceReal))
		c.lw.token(formatPoint(v.P2, c.forceReal))
		c.lw.token(formatPoint(v.P3, c.forceReal))
		c.lw.token(closeTypeKeyword(v.CloseType))
	})

	// arcctr takes the centre and the start/end radius vectors as bare
	// coordinate pairs, per spec §4.5: `arcctr <cx> <cy> <dx1> <dy1> <dx2> <dy2> <radius>;`.
	register(command.ClassGraphicalPrimitive, command.IDArcCentre, "arcctr", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ArcCentre)
		c.lw.token(formatVDC(v.Centre.X, c.forceReal))
		c.lw.token(formatVDC(v.Centre.Y, c.forceReal))
		c.lw.token(formatVDC(v.StartVector.X, c.forceReal))
		c.lw.token(formatVDC(v.StartVector.Y, c.forceReal))
		c.lw.token(formatVDC(v.EndVector.X, c.forceReal))
		c.lw.token(formatVDC(v.EndVector.Y, c.forceReal))
		c.lw.token(formatVDC(v.Radius, c.forceReal))
	})

	register(command.ClassGraphicalPrimitive, command.IDArcCentreClose, "arcctrclose", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ArcCentreClose)
		c.lw.token(formatVDC(v.Centre.X, c.forceReal))
		c.lw.token(formatVDC(v.Centre.Y, c.forceReal))
		c.lw.token(formatVDC(v.StartVector.X, c.forceReal))
		c.lw.token(formatVDC(v.StartVector.Y, c.forceReal))
		c.lw.token(formatVDC(v.EndVector.X, c.forceReal))
		c.lw.token(formatVDC(v.EndVector.Y, c.forceReal))
		c.lw.token(formatVDC(v.Radius, c.forceReal))
		c.lw.token(closeTypeKeyword(v.CloseType))
	})

	register(command.ClassGraphicalPrimitive, command.IDEllipse, "ellipse", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Ellipse)
		c.lw.token(formatVDC(v.Centre.X, c.forceReal))
		c.lw.token(formatVDC(v.Centre.Y, c.forceReal))
		c.lw.token(formatVDC(v.FirstConj.X, c.forceReal))
		c.lw.token(formatVDC(v.FirstConj.Y, c.forceReal))
		c.lw.token(formatVDC(v.SecondConj.X, c.forceReal))
		c.lw.token(formatVDC(v.SecondConj.Y, c.forceReal))
	})

	register(command.ClassGraphicalPrimitive, command.IDPolybezier, "polybezier", func(c *ctx, cmd command.Command) {
		v := cmd.(command.Polybezier)
		c.lw.token(formatInt(int64(v.ContinuityIndicator)) + ",")
		for _, p := range v.Points {
			c.lw.token(formatPoint(p, c.forceReal))
		}
	})

	register(command.ClassGraphicalPrimitive, command.IDEllipticalArc, "ellipsearc", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EllipticalArc)
		c.lw.token(formatPoint(v.Centre, c.forceReal))
		c.lw.token(formatPoint(v.FirstConj, c.forceReal))
		c.lw.token(formatPoint(v.SecondConj, c.forceReal))
		c.lw.token(formatPoint(v.Start, c.forceReal))
		c.lw.token(formatPoint(v.End, c.forceReal))
	})

	register(command.ClassGraphicalPrimitive, command.IDEllipticalArcClose, "ellipsearcclose", func(c *ctx, cmd command.Command) {
		v := cmd.(command.EllipticalArcClose)
		c.lw.token(formatPoint(v.Centre, c.forceReal))
		c.lw.token(formatPoint(v.FirstConj, c.forceReal))
		c.lw.token(formatPoint(v.SecondConj, c.forceReal))
		c.lw.token(formatPoint(v.Start, c.forceReal))
		c.lw.token(formatPoint(v.End, c.forceReal))
		c.lw.token(closeTypeKeyword(v.CloseType))
	})

	register(command.ClassGraphicalPrimitive, command.IDRestrictedText, "restrtext", func(c *ctx, cmd command.Command) {
		v := cmd.(command.RestrictedText)
		c.lw.token(formatVDC(v.DeltaWidth, c.forceReal))
		c.lw.token(formatVDC(v.DeltaHeight, c.forceReal))
		c.lw.token(formatVDC(v.Position.X, c.forceReal))
		c.lw.token(formatVDC(v.Position.Y, c.forceReal))
		c.lw.token(textFinalKeyword(v.Final) + ",")
		c.lw.token(formatString(v.String))
	})
}

// closeTypeKeyword renders the PIE/CHORD close-type enum shared by every
// *CLOSE arc command.
func closeTypeKeyword(closeType int16) string {
	if closeType == 1 {
		return "chord"
	}
	return "pie"
}
