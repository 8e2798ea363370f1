/*
 * CGM codec - Class 0 (Delimiter) commands.
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

import "github.com/gfxcgm/cgm/internal/mstate"

// Element ids within Class 0, Delimiter.
const (
	IDNoOp                             = 0
	IDBegMF                            = 1
	IDEndMF                            = 2
	IDBegPic                           = 3
	IDBegPicBody                       = 4
	IDEndPic                           = 5
	IDBegFigure                        = 8
	IDEndFigure                        = 9
	IDBeginApplicationStructure        = 21
	IDBeginApplicationStructureBody    = 22
	IDEndApplicationStructure          = 23
)

type NoOp struct{ Header }

type BegMF struct {
	Header
	Name []byte
}

type EndMF struct{ Header }

type BegPic struct {
	Header
	Name []byte
}

type BegPicBody struct{ Header }

type EndPic struct{ Header }

type BegFigure struct{ Header }

type EndFigure struct{ Header }

type BeginApplicationStructure struct {
	Header
	StructureType []byte
	Identifier    []byte
}

type BeginApplicationStructureBody struct{ Header }

type EndApplicationStructure struct{ Header }

func init() {
	Register(ClassDelimiter, IDNoOp, func(args []byte, _ *mstate.State) (Command, error) {
		return NoOp{Header{ClassDelimiter, IDNoOp}}, nil
	})
	Register(ClassDelimiter, IDBegMF, func(args []byte, state *mstate.State) (Command, error) {
		name, err := readOnlyString(args, state)
		if err != nil {
			return nil, err
		}
		return BegMF{Header{ClassDelimiter, IDBegMF}, name}, nil
	})
	Register(ClassDelimiter, IDEndMF, func(args []byte, _ *mstate.State) (Command, error) {
		return EndMF{Header{ClassDelimiter, IDEndMF}}, nil
	})
	Register(ClassDelimiter, IDBegPic, func(args []byte, state *mstate.State) (Command, error) {
		name, err := readOnlyString(args, state)
		if err != nil {
			return nil, err
		}
		return BegPic{Header{ClassDelimiter, IDBegPic}, name}, nil
	})
	Register(ClassDelimiter, IDBegPicBody, func(args []byte, _ *mstate.State) (Command, error) {
		return BegPicBody{Header{ClassDelimiter, IDBegPicBody}}, nil
	})
	Register(ClassDelimiter, IDEndPic, func(args []byte, _ *mstate.State) (Command, error) {
		return EndPic{Header{ClassDelimiter, IDEndPic}}, nil
	})
	Register(ClassDelimiter, IDBegFigure, func(args []byte, _ *mstate.State) (Command, error) {
		return BegFigure{Header{ClassDelimiter, IDBegFigure}}, nil
	})
	Register(ClassDelimiter, IDEndFigure, func(args []byte, _ *mstate.State) (Command, error) {
		return EndFigure{Header{ClassDelimiter, IDEndFigure}}, nil
	})
	Register(ClassDelimiter, IDBeginApplicationStructure, func(args []byte, state *mstate.State) (Command, error) {
		r := newReader(args, state)
		structType, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		ident, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return BeginApplicationStructure{Header{ClassDelimiter, IDBeginApplicationStructure}, structType, ident}, nil
	})
	Register(ClassDelimiter, IDBeginApplicationStructureBody, func(args []byte, _ *mstate.State) (Command, error) {
		return BeginApplicationStructureBody{Header{ClassDelimiter, IDBeginApplicationStructureBody}}, nil
	})
	Register(ClassDelimiter, IDEndApplicationStructure, func(args []byte, _ *mstate.State) (Command, error) {
		return EndApplicationStructure{Header{ClassDelimiter, IDEndApplicationStructure}}, nil
	})
}
