/*
 * CGM codec - Class 4 (Graphical Primitive) commands.
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
)

// Element ids within Class 4, Graphical Primitive.
const (
	IDPolyline          = 1
	IDDisjointPolyline  = 2
	IDPolymarker        = 3
	IDText              = 4
	IDPolygon           = 7
	IDPolygonSet        = 8
	IDCellArray         = 9
	IDRectangle         = 11
	IDCircle            = 12
	IDArc3Pt            = 13
	IDArc3PtClose       = 14
	IDArcCentre         = 15
	IDArcCentreClose    = 16
	IDEllipse           = 17
	IDEllipticalArc     = 18
	IDEllipticalArcClose = 19
	IDPolybezier        = 26
	IDRestrictedText    = 27
)

type Polyline struct {
	Header
	Points []primitive.Point
}

type DisjointPolyline struct {
	Header
	Points []primitive.Point
}

type Polymarker struct {
	Header
	Points []primitive.Point
}

// TextFinalFlag is FINAL/NOT-FINAL for the TEXT command.
type TextFinalFlag int16

const (
	TextNotFinal TextFinalFlag = 0
	TextFinal    TextFinalFlag = 1
)

type Text struct {
	Header
	Position primitive.Point
	Final    TextFinalFlag
	String   []byte
}

type Polygon struct {
	Header
	Points []primitive.Point
}

// PolygonSetEdgeFlag marks a polygon-set vertex's edge-out-visibility.
type PolygonSetEdgeFlag int16

const (
	EdgeInvisible               PolygonSetEdgeFlag = 0
	EdgeVisible                 PolygonSetEdgeFlag = 1
	EdgeCloseInvisible          PolygonSetEdgeFlag = 2
	EdgeCloseVisible            PolygonSetEdgeFlag = 3
)

type PolygonSetVertex struct {
	Point primitive.Point
	Flag  PolygonSetEdgeFlag
}

type PolygonSet struct {
	Header
	Vertices []PolygonSetVertex
}

type Rectangle struct {
	Header
	First, Second primitive.Point
}

type Circle struct {
	Header
	Centre primitive.Point
	Radius primitive.VDC
}

type Arc3Pt struct {
	Header
	P1, P2, P3 primitive.Point
}

type Arc3PtClose struct {
	Header
	P1, P2, P3 primitive.Point
	CloseType  int16
}

// ArcCentre is CIRCULARARCCENTRE: a centre point, the start and end
// vectors of the arc (each a full point, not a single VDC, per spec
// §4.5's ARCCTR form), and the radius.
type ArcCentre struct {
	Header
	Centre      primitive.Point
	StartVector primitive.Point
	EndVector   primitive.Point
	Radius      primitive.VDC
}

type ArcCentreClose struct {
	Header
	Centre      primitive.Point
	StartVector primitive.Point
	EndVector   primitive.Point
	Radius      primitive.VDC
	CloseType   int16
}

type Ellipse struct {
	Header
	Centre      primitive.Point
	FirstConj   primitive.Point
	SecondConj  primitive.Point
}

type Polybezier struct {
	Header
	ContinuityIndicator int16
	Points              []primitive.Point
}

type EllipticalArc struct {
	Header
	Centre     primitive.Point
	FirstConj  primitive.Point
	SecondConj primitive.Point
	Start      primitive.Point
	End        primitive.Point
}

type EllipticalArcClose struct {
	Header
	Centre     primitive.Point
	FirstConj  primitive.Point
	SecondConj primitive.Point
	Start      primitive.Point
	End        primitive.Point
	CloseType  int16
}

// RestrictedText is emitted with the usual class-4 2-space indent; its
// Delta fields bound the character box the string is restricted to
// (spec §4.5 RESTRTEXT row: `<dx> <dy> <x> <y> <final> '<str>'`).
type RestrictedText struct {
	Header
	DeltaWidth, DeltaHeight primitive.VDC
	Position                primitive.Point
	Final                   TextFinalFlag
	String                  []byte
}

func init() {
	Register(ClassGraphicalPrimitive, IDPolyline, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pts, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		return Polyline{Header{ClassGraphicalPrimitive, IDPolyline}, pts}, nil
	})

	Register(ClassGraphicalPrimitive, IDDisjointPolyline, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pts, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		return DisjointPolyline{Header{ClassGraphicalPrimitive, IDDisjointPolyline}, pts}, nil
	})

	Register(ClassGraphicalPrimitive, IDPolymarker, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pts, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		return Polymarker{Header{ClassGraphicalPrimitive, IDPolymarker}, pts}, nil
	})

	Register(ClassGraphicalPrimitive, IDText, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pos, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		final, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return Text{Header{ClassGraphicalPrimitive, IDText}, pos, TextFinalFlag(final), s}, nil
	})

	Register(ClassGraphicalPrimitive, IDPolygon, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pts, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		return Polygon{Header{ClassGraphicalPrimitive, IDPolygon}, pts}, nil
	})

	Register(ClassGraphicalPrimitive, IDPolygonSet, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		var verts []PolygonSetVertex
		for !r.Done() {
			p, err := r.ReadPoint()
			if err != nil {
				return nil, err
			}
			flag, err := r.ReadEnum()
			if err != nil {
				return nil, err
			}
			verts = append(verts, PolygonSetVertex{Point: p, Flag: PolygonSetEdgeFlag(flag)})
		}
		return PolygonSet{Header{ClassGraphicalPrimitive, IDPolygonSet}, verts}, nil
	})

	Register(ClassGraphicalPrimitive, IDRectangle, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		first, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		second, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return Rectangle{Header{ClassGraphicalPrimitive, IDRectangle}, first, second}, nil
	})

	Register(ClassGraphicalPrimitive, IDCircle, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		centre, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		radius, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		return Circle{Header{ClassGraphicalPrimitive, IDCircle}, centre, radius}, nil
	})

	Register(ClassGraphicalPrimitive, IDArc3Pt, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		p1, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		p2, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		p3, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return Arc3Pt{Header{ClassGraphicalPrimitive, IDArc3Pt}, p1, p2, p3}, nil
	})

	Register(ClassGraphicalPrimitive, IDArc3PtClose, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		p1, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		p2, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		p3, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		closeType, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		return Arc3PtClose{Header{ClassGraphicalPrimitive, IDArc3PtClose}, p1, p2, p3, closeType}, nil
	})

	Register(ClassGraphicalPrimitive, IDArcCentre, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		centre, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		startVec, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		endVec, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		radius, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		return ArcCentre{Header{ClassGraphicalPrimitive, IDArcCentre}, centre, startVec, endVec, radius}, nil
	})

	Register(ClassGraphicalPrimitive, IDArcCentreClose, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		centre, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		startVec, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		endVec, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		radius, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		closeType, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		return ArcCentreClose{Header{ClassGraphicalPrimitive, IDArcCentreClose}, centre, startVec, endVec, radius, closeType}, nil
	})

	Register(ClassGraphicalPrimitive, IDEllipse, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		centre, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		first, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		second, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return Ellipse{Header{ClassGraphicalPrimitive, IDEllipse}, centre, first, second}, nil
	})

	Register(ClassGraphicalPrimitive, IDPolybezier, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		ci, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		pts, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		return Polybezier{Header{ClassGraphicalPrimitive, IDPolybezier}, ci, pts}, nil
	})

	Register(ClassGraphicalPrimitive, IDEllipticalArc, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pts, err := readFixedPoints(r, 5)
		if err != nil {
			return nil, err
		}
		return EllipticalArc{Header{ClassGraphicalPrimitive, IDEllipticalArc}, pts[0], pts[1], pts[2], pts[3], pts[4]}, nil
	})

	Register(ClassGraphicalPrimitive, IDEllipticalArcClose, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		pts, err := readFixedPoints(r, 5)
		if err != nil {
			return nil, err
		}
		closeType, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		return EllipticalArcClose{Header{ClassGraphicalPrimitive, IDEllipticalArcClose}, pts[0], pts[1], pts[2], pts[3], pts[4], closeType}, nil
	})

	Register(ClassGraphicalPrimitive, IDRestrictedText, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		dw, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		dh, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		pos, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		final, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return RestrictedText{Header{ClassGraphicalPrimitive, IDRestrictedText}, dw, dh, pos, TextFinalFlag(final), s}, nil
	})
}

func readFixedPoints(r *primitive.Reader, n int) ([]primitive.Point, error) {
	pts := make([]primitive.Point, n)
	for i := 0; i < n; i++ {
		p, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}
