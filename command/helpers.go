/*
 * CGM codec - shared decoder helpers.
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

func newReader(args []byte, state *mstate.State) *primitive.Reader {
	return primitive.NewReader(args, state)
}

// readOnlyString decodes an argument buffer that is exactly one string
// with nothing else following it.
func readOnlyString(args []byte, state *mstate.State) ([]byte, error) {
	r := newReader(args, state)
	return r.ReadString()
}

// readOnlyEnum decodes an argument buffer that is exactly one enum.
func readOnlyEnum(args []byte, state *mstate.State) (int16, error) {
	r := newReader(args, state)
	return r.ReadEnum()
}

// readOnlyInt decodes an argument buffer that is exactly one integer.
func readOnlyInt(args []byte, state *mstate.State) (int64, error) {
	r := newReader(args, state)
	return r.ReadInt()
}

// readPoints decodes an argument buffer that is a sequence of points,
// consuming every remaining point (used by LINE, POLYGON, …).
func readPoints(r *primitive.Reader) ([]primitive.Point, error) {
	var pts []primitive.Point
	for !r.Done() {
		p, err := r.ReadPoint()
		if err != nil {
			return pts, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}
