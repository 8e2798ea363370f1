/*
 * CGM codec - clear-text emitter core and Class 0 (Delimiter) rendering.
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
	"fmt"
	"io"
	"strings"

	"github.com/gfxcgm/cgm/command"
	"github.com/gfxcgm/cgm/config"
	"github.com/gfxcgm/cgm/internal/mstate"
)

// key mirrors the command factory's dispatch key so every formatter is
// looked up the same way its decoder was.
type key struct {
	class int
	id    int
}

// ctx is threaded through every formatter: the line writer, the running
// metafile state (mutated the same way decode mutates it, so colour
// scaling and precision-dependent formatting stay in step with the
// command stream), and the VDC-type-override flag (spec §4.3).
type ctx struct {
	lw        *lineWriter
	state     *mstate.State
	forceReal bool
}

// formatter renders one decoded command's statement body (everything
// after the keyword, before the terminator).
type formatter func(c *ctx, cmd command.Command)

var registry = map[key]formatter{}

// keywordOf names the clear-text keyword for a registered (class, id),
// used both to start the statement and to look up indent exceptions.
var keywordOf = map[key]string{}

func register(class command.Class, id int, keyword string, f formatter) {
	k := key{int(class), id}
	registry[k] = f
	keywordOf[k] = keyword
}

// exceptionIndent holds the commands the spec calls out as always using
// the 1-space metafile-descriptor indent regardless of their class.
var exceptionIndent = map[string]bool{
	"message": true,
}

func indentFor(class command.Class, keyword string) string {
	if exceptionIndent[keyword] {
		return " "
	}
	switch class {
	case command.ClassDelimiter:
		return ""
	case command.ClassMetafileDescriptor:
		return " "
	default:
		return "  "
	}
}

func upperKeyword(class command.Class, keyword string) string {
	if class == command.ClassDelimiter {
		return strings.ToUpper(keyword)
	}
	return keyword
}

// Emitter renders a decoded command list as Part 4 clear-text onto a
// caller-provided sink (spec §4.5).
type Emitter struct {
	settings config.Settings
}

// NewEmitter returns an Emitter configured by settings.
func NewEmitter(settings config.Settings) *Emitter {
	return &Emitter{settings: settings}
}

// Emit writes every command in cmds to w, in order, never reordering
// (spec §5).
func (e *Emitter) Emit(w io.Writer, cmds []command.Command) error {
	lw := newLineWriter(w, int(e.settings.WrapColumn))
	c := &ctx{lw: lw, state: mstate.New()}
	for _, cmd := range cmds {
		applyState(c, cmd, e.settings.VDCMode)
		e.emitOne(c, cmd)
	}
	return lw.flush()
}

func (e *Emitter) emitOne(c *ctx, cmd command.Command) {
	k := key{cmd.Class(), cmd.ID()}
	f, ok := registry[k]
	if !ok {
		e.emitUnknown(c.lw, cmd)
		return
	}
	keyword := keywordOf[k]
	class := command.Class(cmd.Class())
	c.lw.begin(indentFor(class, keyword), upperKeyword(class, keyword))
	f(c, cmd)
	c.lw.end()
}

func (e *Emitter) emitUnknown(lw *lineWriter, cmd command.Command) {
	if !e.settings.EmitUnknownAsComment {
		return
	}
	lw.comment(fmt.Sprintf("Unknown command: Class=%d, ID=%d", cmd.Class(), cmd.ID()))
}

// applyState mirrors, on the emit side, every metafile-state mutation
// the decoder performs (spec §4.3), so precision-dependent formatting
// (colour scaling, VDC override) tracks the command stream the same way
// during emission as it did during decode.
func applyState(c *ctx, cmd command.Command, vdcMode config.VDCMode) {
	switch v := cmd.(type) {
	case command.IntegerPrecisionCommand:
		c.state.IntegerPrecision = int(v.Bits)
	case command.IndexPrecisionCommand:
		c.state.IndexPrecision = int(v.Bits)
	case command.ColourPrecisionCommand:
		c.state.ColourPrecision = int(v.Bits)
	case command.ColourIndexPrecisionCommand:
		c.state.ColourIndexPrecision = int(v.Bits)
	case command.NamePrecisionCommand:
		c.state.NamePrecision = int(v.Bits)
	case command.RealPrecisionCommand:
		c.state.RealPrecision = v.Precision
	case command.VDCIntegerPrecisionCommand:
		c.state.VDCIntegerPrecision = int(v.Bits)
	case command.VDCRealPrecisionCommand:
		c.state.VDCRealPrecision = v.Precision
	case command.ColourValueExtent:
		c.state.ColourValueExtentMin = v.Min
		c.state.ColourValueExtentMax = v.Max
	case command.ColourSelectionModeCommand:
		c.state.ColourSelectionMode = v.Mode
	case command.VDCTypeCommand:
		c.state.VDCType = v.Type
		if v.Type == mstate.VDCInteger && vdcMode == config.ForceRealVdcOnEmit {
			c.forceReal = true
		}
	}
}

func init() {
	register(command.ClassDelimiter, command.IDNoOp, "NOOP", func(c *ctx, cmd command.Command) {})

	register(command.ClassDelimiter, command.IDBegMF, "BEGMF", func(c *ctx, cmd command.Command) {
		v := cmd.(command.BegMF)
		c.lw.token(formatString(v.Name))
	})

	register(command.ClassDelimiter, command.IDEndMF, "ENDMF", func(c *ctx, cmd command.Command) {})

	register(command.ClassDelimiter, command.IDBegPic, "BEGPIC", func(c *ctx, cmd command.Command) {
		v := cmd.(command.BegPic)
		c.lw.token(formatString(v.Name))
	})

	register(command.ClassDelimiter, command.IDBegPicBody, "BEGPICBODY", func(c *ctx, cmd command.Command) {})
	register(command.ClassDelimiter, command.IDEndPic, "ENDPIC", func(c *ctx, cmd command.Command) {})
	register(command.ClassDelimiter, command.IDBegFigure, "BEGFIGURE", func(c *ctx, cmd command.Command) {})
	register(command.ClassDelimiter, command.IDEndFigure, "ENDFIGURE", func(c *ctx, cmd command.Command) {})

	register(command.ClassDelimiter, command.IDBeginApplicationStructure, "BEGAPS", func(c *ctx, cmd command.Command) {
		v := cmd.(command.BeginApplicationStructure)
		c.lw.token(formatString(v.StructureType))
		c.lw.token(formatString(v.Identifier))
	})

	register(command.ClassDelimiter, command.IDBeginApplicationStructureBody, "APSBODY", func(c *ctx, cmd command.Command) {})
	register(command.ClassDelimiter, command.IDEndApplicationStructure, "ENDAPS", func(c *ctx, cmd command.Command) {})
}
