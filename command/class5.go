/*
 * CGM codec - Class 5 (Attribute) commands.
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

// Element ids within Class 5, Attribute.
const (
	IDLineBundleIndex   = 1
	IDLineType          = 2
	IDLineWidth         = 3
	IDLineColour        = 4
	IDMarkerBundleIndex = 5
	IDMarkerType        = 6
	IDMarkerSize        = 7
	IDMarkerColour      = 8
	IDTextBundleIndex   = 9
	IDTextFontIndex     = 10
	IDTextPrecision     = 11
	IDCharExpansion     = 12
	IDCharSpacing       = 13
	IDTextColour        = 14
	IDCharHeight        = 15
	IDCharOrientation   = 16
	IDTextPath          = 17
	IDTextAlignment     = 18
	IDFillBundleIndex   = 20
	IDInteriorStyle     = 21
	IDFillColour        = 22
	IDHatchIndex        = 23
	IDPatternIndex      = 24
	IDEdgeBundleIndex   = 26
	IDEdgeType          = 27
	IDEdgeWidth         = 28
	IDEdgeColour        = 29
	IDEdgeVisibility    = 30
	IDLineCap           = 32
	IDLineJoin          = 33
	IDCharSetIndex      = 34
	IDAltCharSetIndex   = 35
	IDColourTable       = 36
	IDLineTypeContinuation        = 37
	IDHatchStyleDefinition        = 38
	IDGeometricPatternDefinition  = 39
	IDInterpolatedInterior        = 40
)

type LineBundleIndex struct {
	Header
	Index int64
}

type LineType struct {
	Header
	Type int64
}

type LineWidth struct {
	Header
	Width primitive.VDC
}

type LineColour struct {
	Header
	Colour primitive.Colour
}

type MarkerBundleIndex struct {
	Header
	Index int64
}

type MarkerType struct {
	Header
	Type int64
}

type MarkerSize struct {
	Header
	Size primitive.VDC
}

type MarkerColour struct {
	Header
	Colour primitive.Colour
}

type TextBundleIndex struct {
	Header
	Index int64
}

type TextFontIndex struct {
	Header
	Index int64
}

// TextPrecisionValue is the STRING/CHAR/STROKE text-precision enum.
type TextPrecisionValue int16

const (
	TextPrecisionString TextPrecisionValue = 0
	TextPrecisionChar   TextPrecisionValue = 1
	TextPrecisionStroke TextPrecisionValue = 2
)

type TextPrecision struct {
	Header
	Precision TextPrecisionValue
}

type CharExpansion struct {
	Header
	Factor float64
}

type CharSpacing struct {
	Header
	Factor float64
}

type TextColour struct {
	Header
	Colour primitive.Colour
}

type CharHeight struct {
	Header
	Height primitive.VDC
}

type CharOrientation struct {
	Header
	UpX, UpY     primitive.VDC
	BaseX, BaseY primitive.VDC
}

// TextPathValue is the RIGHT/LEFT/UP/DOWN enum for TEXTPATH.
type TextPathValue int16

const (
	TextPathRight TextPathValue = 0
	TextPathLeft  TextPathValue = 1
	TextPathUp    TextPathValue = 2
	TextPathDown  TextPathValue = 3
)

type TextPath struct {
	Header
	Path TextPathValue
}

type TextAlignment struct {
	Header
	Horizontal  int16
	Vertical    int16
	ContHoriz   float64
	ContVert    float64
}

type FillBundleIndex struct {
	Header
	Index int64
}

// InteriorStyleValue is HOLLOW/SOLID/PATTERN/HATCH/EMPTY for INTERIORSTYLE.
type InteriorStyleValue int16

const (
	InteriorHollow InteriorStyleValue = 0
	InteriorSolid  InteriorStyleValue = 1
	InteriorPattern InteriorStyleValue = 2
	InteriorHatch  InteriorStyleValue = 3
	InteriorEmpty  InteriorStyleValue = 4
)

type InteriorStyle struct {
	Header
	Style InteriorStyleValue
}

type FillColour struct {
	Header
	Colour primitive.Colour
}

type HatchIndex struct {
	Header
	Index int64
}

type PatternIndex struct {
	Header
	Index int64
}

type EdgeBundleIndex struct {
	Header
	Index int64
}

type EdgeType struct {
	Header
	Type int64
}

type EdgeWidth struct {
	Header
	Width primitive.VDC
}

type EdgeColour struct {
	Header
	Colour primitive.Colour
}

// EdgeVisibilityValue is OFF/ON for EDGEVIS.
type EdgeVisibilityValue int16

const (
	EdgeVisibilityOff EdgeVisibilityValue = 0
	EdgeVisibilityOn  EdgeVisibilityValue = 1
)

type EdgeVisibility struct {
	Header
	Value EdgeVisibilityValue
}

// LineCapValue is the UNSPECIFIED/BUTT/ROUND/PROJECTING/TRIANGLE enum
// for LINECAP.
type LineCapValue int16

const (
	LineCapUnspecified LineCapValue = 0
	LineCapButt        LineCapValue = 1
	LineCapRound       LineCapValue = 2
	LineCapProjecting  LineCapValue = 3
	LineCapTriangle    LineCapValue = 4
)

type LineCap struct {
	Header
	Value LineCapValue
}

// LineJoinValue is the UNSPECIFIED/MITRE/ROUND/BEVEL enum for LINEJOIN.
type LineJoinValue int16

const (
	LineJoinUnspecified LineJoinValue = 0
	LineJoinMitre       LineJoinValue = 1
	LineJoinRound       LineJoinValue = 2
	LineJoinBevel       LineJoinValue = 3
)

type LineJoin struct {
	Header
	Value LineJoinValue
}

type CharSetIndex struct {
	Header
	Index int64
}

type AltCharSetIndex struct {
	Header
	Index int64
}

// ColourTable starts at StartIndex and lists one direct colour per
// consecutive index thereafter.
type ColourTable struct {
	Header
	StartIndex int64
	Colours    []primitive.Colour
}

// LineTypeContinuationValue is NOTCONTD/CONTD for LINETYPECONTINUATION:
// whether a dash pattern resumes where the previous primitive left off.
type LineTypeContinuationValue int16

const (
	LineTypeNotContinued LineTypeContinuationValue = 0
	LineTypeContinued    LineTypeContinuationValue = 1
)

type LineTypeContinuation struct {
	Header
	Value LineTypeContinuationValue
}

// HatchStyleEntry is one defined hatch style: a direction vector and the
// fraction of each repeat that is drawn.
type HatchStyleEntry struct {
	Style     int16
	DirX      float64
	DirY      float64
	DutyCycle float64
}

// HatchStyleDefinition assigns hatch style entries to consecutive
// indices starting at StartIndex.
type HatchStyleDefinition struct {
	Header
	StartIndex int64
	Entries    []HatchStyleEntry
}

// GeometricPatternDefinition associates a pattern index with a picture
// segment and the cell geometry used to tile it.
type GeometricPatternDefinition struct {
	Header
	Index             int64
	SegmentIdentifier int64
	ReferencePoint    primitive.Point
	Size1, Size2      primitive.Point
}

// InterpolatedIntStyle is the UNIFORM/LINEAR/RADIAL/CONICAL/ELLIPTICAL
// enum for INTERPOLATEDINTERIOR.
type InterpolatedIntStyle int16

const (
	InterpUniform    InterpolatedIntStyle = 0
	InterpLinear     InterpolatedIntStyle = 1
	InterpRadial     InterpolatedIntStyle = 2
	InterpConical    InterpolatedIntStyle = 3
	InterpElliptical InterpolatedIntStyle = 4
)

// InterpolationStage is one (colour, fraction) step of a gradient.
type InterpolationStage struct {
	Colour   primitive.Colour
	Fraction float64
}

// InterpolatedInterior describes a gradient fill: a style, the reference
// geometry the gradient is laid out against, and the colour stages.
type InterpolatedInterior struct {
	Header
	Style      InterpolatedIntStyle
	Geometry   [2]primitive.Point
	Stages     []InterpolationStage
}

func registerIndexAttr(class Class, id int, build func(Header, int64) Command) {
	Register(class, id, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		return build(Header{class, id}, v), nil
	})
}

func registerVDCAttr(class Class, id int, build func(Header, primitive.VDC) Command) {
	Register(class, id, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		v, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		return build(Header{class, id}, v), nil
	})
}

func registerColourAttr(class Class, id int, build func(Header, primitive.Colour) Command) {
	Register(class, id, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		c, err := r.ReadColour()
		if err != nil {
			return nil, err
		}
		return build(Header{class, id}, c), nil
	})
}

func init() {
	registerIndexAttr(ClassAttribute, IDLineBundleIndex, func(h Header, v int64) Command { return LineBundleIndex{h, v} })
	registerIndexAttr(ClassAttribute, IDLineType, func(h Header, v int64) Command { return LineType{h, v} })
	registerVDCAttr(ClassAttribute, IDLineWidth, func(h Header, v primitive.VDC) Command { return LineWidth{h, v} })
	registerColourAttr(ClassAttribute, IDLineColour, func(h Header, c primitive.Colour) Command { return LineColour{h, c} })

	registerIndexAttr(ClassAttribute, IDMarkerBundleIndex, func(h Header, v int64) Command { return MarkerBundleIndex{h, v} })
	registerIndexAttr(ClassAttribute, IDMarkerType, func(h Header, v int64) Command { return MarkerType{h, v} })
	registerVDCAttr(ClassAttribute, IDMarkerSize, func(h Header, v primitive.VDC) Command { return MarkerSize{h, v} })
	registerColourAttr(ClassAttribute, IDMarkerColour, func(h Header, c primitive.Colour) Command { return MarkerColour{h, c} })

	registerIndexAttr(ClassAttribute, IDTextBundleIndex, func(h Header, v int64) Command { return TextBundleIndex{h, v} })
	registerIndexAttr(ClassAttribute, IDTextFontIndex, func(h Header, v int64) Command { return TextFontIndex{h, v} })

	Register(ClassAttribute, IDTextPrecision, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return TextPrecision{Header{ClassAttribute, IDTextPrecision}, TextPrecisionValue(e)}, nil
	})

	Register(ClassAttribute, IDCharExpansion, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		v, err := r.ReadReal()
		if err != nil {
			return nil, err
		}
		return CharExpansion{Header{ClassAttribute, IDCharExpansion}, v}, nil
	})

	Register(ClassAttribute, IDCharSpacing, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		v, err := r.ReadReal()
		if err != nil {
			return nil, err
		}
		return CharSpacing{Header{ClassAttribute, IDCharSpacing}, v}, nil
	})

	registerColourAttr(ClassAttribute, IDTextColour, func(h Header, c primitive.Colour) Command { return TextColour{h, c} })
	registerVDCAttr(ClassAttribute, IDCharHeight, func(h Header, v primitive.VDC) Command { return CharHeight{h, v} })

	Register(ClassAttribute, IDCharOrientation, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		upX, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		upY, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		baseX, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		baseY, err := r.ReadVDC()
		if err != nil {
			return nil, err
		}
		return CharOrientation{Header{ClassAttribute, IDCharOrientation}, upX, upY, baseX, baseY}, nil
	})

	Register(ClassAttribute, IDTextPath, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return TextPath{Header{ClassAttribute, IDTextPath}, TextPathValue(e)}, nil
	})

	Register(ClassAttribute, IDTextAlignment, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		h, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		v, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		ch, err := r.ReadReal()
		if err != nil {
			return nil, err
		}
		cv, err := r.ReadReal()
		if err != nil {
			return nil, err
		}
		return TextAlignment{Header{ClassAttribute, IDTextAlignment}, h, v, ch, cv}, nil
	})

	registerIndexAttr(ClassAttribute, IDFillBundleIndex, func(h Header, v int64) Command { return FillBundleIndex{h, v} })

	Register(ClassAttribute, IDInteriorStyle, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return InteriorStyle{Header{ClassAttribute, IDInteriorStyle}, InteriorStyleValue(e)}, nil
	})

	registerColourAttr(ClassAttribute, IDFillColour, func(h Header, c primitive.Colour) Command { return FillColour{h, c} })
	registerIndexAttr(ClassAttribute, IDHatchIndex, func(h Header, v int64) Command { return HatchIndex{h, v} })
	registerIndexAttr(ClassAttribute, IDPatternIndex, func(h Header, v int64) Command { return PatternIndex{h, v} })

	registerIndexAttr(ClassAttribute, IDEdgeBundleIndex, func(h Header, v int64) Command { return EdgeBundleIndex{h, v} })
	registerIndexAttr(ClassAttribute, IDEdgeType, func(h Header, v int64) Command { return EdgeType{h, v} })
	registerVDCAttr(ClassAttribute, IDEdgeWidth, func(h Header, v primitive.VDC) Command { return EdgeWidth{h, v} })
	registerColourAttr(ClassAttribute, IDEdgeColour, func(h Header, c primitive.Colour) Command { return EdgeColour{h, c} })

	Register(ClassAttribute, IDEdgeVisibility, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return EdgeVisibility{Header{ClassAttribute, IDEdgeVisibility}, EdgeVisibilityValue(e)}, nil
	})

	Register(ClassAttribute, IDLineCap, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return LineCap{Header{ClassAttribute, IDLineCap}, LineCapValue(e)}, nil
	})

	Register(ClassAttribute, IDLineJoin, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return LineJoin{Header{ClassAttribute, IDLineJoin}, LineJoinValue(e)}, nil
	})

	registerIndexAttr(ClassAttribute, IDCharSetIndex, func(h Header, v int64) Command { return CharSetIndex{h, v} })
	registerIndexAttr(ClassAttribute, IDAltCharSetIndex, func(h Header, v int64) Command { return AltCharSetIndex{h, v} })

	Register(ClassAttribute, IDColourTable, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		start, err := r.ReadIndex()
		if err != nil {
			return nil, err
		}
		count := 3
		if state.ColourModel == mstate.ColourCMYK {
			count = 4
		}
		var colours []primitive.Colour
		for !r.Done() {
			comps := make([]uint64, count)
			for i := range comps {
				v, err := r.ReadColourComponent()
				if err != nil {
					return nil, err
				}
				comps[i] = v
			}
			colours = append(colours, primitive.Colour{Components: comps})
		}
		return ColourTable{Header{ClassAttribute, IDColourTable}, int64(start), colours}, nil
	})

	Register(ClassAttribute, IDLineTypeContinuation, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return LineTypeContinuation{Header{ClassAttribute, IDLineTypeContinuation}, LineTypeContinuationValue(e)}, nil
	})

	Register(ClassAttribute, IDHatchStyleDefinition, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		start, err := r.ReadIndex()
		if err != nil {
			return nil, err
		}
		var entries []HatchStyleEntry
		for !r.Done() {
			style, err := r.ReadEnum()
			if err != nil {
				return nil, err
			}
			dx, err := r.ReadReal()
			if err != nil {
				return nil, err
			}
			dy, err := r.ReadReal()
			if err != nil {
				return nil, err
			}
			duty, err := r.ReadReal()
			if err != nil {
				return nil, err
			}
			entries = append(entries, HatchStyleEntry{Style: style, DirX: dx, DirY: dy, DutyCycle: duty})
		}
		return HatchStyleDefinition{Header{ClassAttribute, IDHatchStyleDefinition}, int64(start), entries}, nil
	})

	Register(ClassAttribute, IDGeometricPatternDefinition, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		index, err := r.ReadIndex()
		if err != nil {
			return nil, err
		}
		segID, err := r.ReadName()
		if err != nil {
			return nil, err
		}
		ref, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		size1, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		size2, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return GeometricPatternDefinition{
			Header{ClassAttribute, IDGeometricPatternDefinition},
			int64(index), int64(segID), ref, size1, size2,
		}, nil
	})

	Register(ClassAttribute, IDInterpolatedInterior, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		style, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		p1, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		p2, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		var stages []InterpolationStage
		for !r.Done() {
			c, err := r.ReadColour()
			if err != nil {
				return nil, err
			}
			frac, err := r.ReadReal()
			if err != nil {
				return nil, err
			}
			stages = append(stages, InterpolationStage{Colour: c, Fraction: frac})
		}
		return InterpolatedInterior{
			Header{ClassAttribute, IDInterpolatedInterior},
			InterpolatedIntStyle(style), [2]primitive.Point{p1, p2}, stages,
		}, nil
	})
}
