/*
 * CGM codec - Class 3 (Control) commands.
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

// Element ids within Class 3, Control.
const (
	IDVDCIntegerPrecisionCtl = 1
	IDMessage                = 2
	IDVDCRealPrecisionCtl    = 3
	IDClipIndicator          = 9
	IDClipRectangle          = 10
	IDTransparency           = 16
	IDAuxiliaryColour        = 17
)

// ClipIndicatorMode is ON/OFF for CLIPINDICATOR.
type ClipIndicatorMode int16

const (
	ClipOff ClipIndicatorMode = 0
	ClipOn  ClipIndicatorMode = 1
)

type VDCIntegerPrecisionCommand struct {
	Header
	Bits int64
}

type VDCRealPrecisionCommand struct {
	Header
	Precision mstate.RealPrecision
}

type ClipIndicator struct {
	Header
	Mode ClipIndicatorMode
}

type ClipRectangle struct {
	Header
	First, Second primitive.Point
}

// TransparencyMode is ON/OFF for TRANSPARENCY.
type TransparencyMode int16

const (
	TransparencyOff TransparencyMode = 0
	TransparencyOn  TransparencyMode = 1
)

type Transparency struct {
	Header
	Mode TransparencyMode
}

type AuxiliaryColour struct {
	Header
	Colour mstate.ColourTriple
}

// Message is emitted with the 1-space exception indent (spec §4.5
// "Exceptions" row) even though it belongs to this class.
type Message struct {
	Header
	Action  int16
	Text    []byte
}

func init() {
	Register(ClassControl, IDVDCIntegerPrecisionCtl, func(args []byte, state *mstate.State) (Command, error) {
		v, err := readOnlyInt(args, state)
		if err != nil {
			return nil, err
		}
		state.VDCIntegerPrecision = int(v)
		return VDCIntegerPrecisionCommand{Header{ClassControl, IDVDCIntegerPrecisionCtl}, v}, nil
	})

	Register(ClassControl, IDVDCRealPrecisionCtl, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		if _, err := r.ReadInt(); err != nil {
			return nil, err
		}
		exponent, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		digits, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		prec := realPrecisionFor(exponent, digits)
		state.VDCRealPrecision = prec
		return VDCRealPrecisionCommand{Header{ClassControl, IDVDCRealPrecisionCtl}, prec}, nil
	})

	Register(ClassControl, IDClipIndicator, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return ClipIndicator{Header{ClassControl, IDClipIndicator}, ClipIndicatorMode(e)}, nil
	})

	Register(ClassControl, IDClipRectangle, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		first, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		second, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		return ClipRectangle{Header{ClassControl, IDClipRectangle}, first, second}, nil
	})

	Register(ClassControl, IDTransparency, func(args []byte, state *mstate.State) (Command, error) {
		e, err := readOnlyEnum(args, state)
		if err != nil {
			return nil, err
		}
		return Transparency{Header{ClassControl, IDTransparency}, TransparencyMode(e)}, nil
	})

	Register(ClassControl, IDAuxiliaryColour, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		c, err := readTriple(r)
		if err != nil {
			return nil, err
		}
		return AuxiliaryColour{Header{ClassControl, IDAuxiliaryColour}, c}, nil
	})

	Register(ClassControl, IDMessage, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		action, err := r.ReadEnum()
		if err != nil {
			return nil, err
		}
		text, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return Message{Header{ClassControl, IDMessage}, action, text}, nil
	})
}
