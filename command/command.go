/*
 * CGM codec - command model.
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

// Package command holds the tagged sum of decoded CGM command variants
// and the factory that builds them from framed argument bytes. It plays
// the role the teacher gives its Device interface (emu/device): a small
// shared contract every concrete unit satisfies, looked up from a
// dispatch table keyed by (class, id) the way emu/sys_channel keys its
// device table by address instead of using virtual dispatch.
package command

import "github.com/gfxcgm/cgm/internal/mstate"

// Class identifies which of the ten command classes a command belongs
// to (spec §3).
type Class int

const (
	ClassDelimiter Class = iota
	ClassMetafileDescriptor
	ClassPictureDescriptor
	ClassControl
	ClassGraphicalPrimitive
	ClassAttribute
	ClassEscape
	ClassExternal
	ClassSegment
	ClassApplicationStructure
)

// Header is embedded in every command variant and carries the fields
// common to all of them.
type Header struct {
	ClassCode Class
	ElementID int
}

// Command is the tagged-sum contract every decoded command variant
// satisfies. Commands are created once by the factory, never mutated
// afterward, and owned exclusively by the command list that holds them.
type Command interface {
	Class() int
	ID() int
}

func (h Header) Class() int { return int(h.ClassCode) }
func (h Header) ID() int    { return h.ElementID }

// Unknown preserves the raw argument bytes of a command the factory has
// no decoder for, verbatim (spec §8 property 3).
type Unknown struct {
	Header
	Bytes []byte
}

// Decoder decodes one command's argument bytes into a Command, mutating
// state if (and only if) this command owns part of the metafile state.
type Decoder func(args []byte, state *mstate.State) (Command, error)
