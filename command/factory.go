/*
 * CGM codec - command factory / dispatch table.
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

type key struct {
	class int
	id    int
}

// registry is the single place new command variants are registered
// (spec §4.4): adding a variant means adding its tag, its decoder here,
// and its clear-text emitter in package emit.
var registry = map[key]Decoder{}

// Register adds a decoder for (class, id) to the factory table. It is
// called from each classN.go file's init().
func Register(class Class, id int, dec Decoder) {
	registry[key{int(class), id}] = dec
}

// Decode routes (class, id, argBytes) to its registered decoder,
// falling back to Unknown for any (class, id) the factory does not
// recognize or whose decoder fails on truncated input. The returned
// error, when non-nil, is the truncation error the caller should turn
// into an Unsupported diagnostic; the Command itself is always usable.
func Decode(class, id int, args []byte, state *mstate.State) (Command, error) {
	dec, ok := registry[key{class, id}]
	if !ok {
		return Unknown{Header: Header{ClassCode: Class(class), ElementID: id}, Bytes: args}, nil
	}
	cmd, err := dec(args, state)
	if err != nil {
		return Unknown{Header: Header{ClassCode: Class(class), ElementID: id}, Bytes: args}, err
	}
	return cmd, nil
}

// Known reports whether (class, id) has a registered decoder.
func Known(class, id int) bool {
	_, ok := registry[key{class, id}]
	return ok
}
