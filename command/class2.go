/*
 * CGM codec - Class 2 (Picture Descriptor) commands.
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

// Element ids within Class 2, Picture Descriptor.
const (
	IDScaleMode           = 1
	IDColourSelectionMode = 2
	IDLineWidthSpecMode   = 3
	IDMarkerSizeSpecMode  = 4
	IDEdgeWidthSpecMode   = 5
	IDVDCExtent           = 6
	IDBackgroundColour    = 7
)

// ScalingMode is the ABSTRACT/METRIC mode of SCALEMODE.
type ScalingMode int16

const (
	ScaleModeAbstract ScalingMode = 0
	ScaleModeMetric   ScalingMode = 1
)

// WidthSpecificationMode is the ABS/SCALED/FRACTIONAL mode shared by
// LINEWIDTHSPECMODE, MARKERSIZESPECMODE and EDGEWIDTHSPECMODE.
type WidthSpecificationMode int16

const (
	WidthSpecAbsolute   WidthSpecificationMode = 0
	WidthSpecScaled     WidthSpecificationMode = 1
	WidthSpecFractional WidthSpecificationMode = 2
)

type ScaleModeCommand struct {
	Header
	Mode         ScalingMode
	MetricFactor float64
}

type ColourSelectionModeCommand struct {
	Header
	Mode mstate.ColourSelectionMode
}

type LineWidthSpecModeCommand struct {
	Header
	Mode WidthSpecificationMode
}

type MarkerSizeSpecModeCommand struct {
	Header
	Mode WidthSpecificationMode
}

type EdgeWidthSpecModeCommand struct {
	Header
	Mode WidthSpecificationMode
}

type VDCExtent struct {
	Header
	First, Second primitive.Point
}

type BackgroundColour struct {
	Header
	Colour mstate.ColourTriple
}

func init() {
	Register(ClassPictureDescriptor, IDScaleMode, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		mode, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		var factor float64
		if ScalingMode(mode) == ScaleModeMetric {
			factor, err = r.ReadReal()
			if err != nil {
				return nil, err
			}
		}
		return ScaleModeCommand{Header{ClassPictureDescriptor, IDScaleMode}, ScalingMode(mode), factor}, nil
	})

	Register(ClassPictureDescriptor, IDColourSelectionMode, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		mode := mstate.ColourSelectionMode(e)
		state.ColourSelectionMode = mode
		return ColourSelectionModeCommand{Header{ClassPictureDescriptor, IDColourSelectionMode}, mode}, nil
	})

	Register(ClassPictureDescriptor, IDLineWidthSpecMode, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return LineWidthSpecModeCommand{Header{ClassPictureDescriptor, IDLineWidthSpecMode}, WidthSpecificationMode(e)}, nil
	})

	Register(ClassPictureDescriptor, IDMarkerSizeSpecMode, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return MarkerSizeSpecModeCommand{Header{ClassPictureDescriptor, IDMarkerSizeSpecMode}, WidthSpecificationMode(e)}, nil
	})

	Register(ClassPictureDescriptor, IDEdgeWidthSpecMode, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return EdgeWidthSpecModeCommand{Header{ClassPictureDescriptor, IDEdgeWidthSpecMode}, WidthSpecificationMode(e)}, nil
	})

	Register(ClassPictureDescriptor, IDVDCExtent, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		first, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		second, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return VDCExtent{Header{ClassPictureDescriptor, IDVDCExtent}, first, second}, nil
	})

	Register(ClassPictureDescriptor, IDBackgroundColour, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		c, err := readTriple(r)
		if err != nil {
			return nil, err
		}
		return BackgroundColour{Header{ClassPictureDescriptor, IDBackgroundColour}, c}, nil
	})
}
