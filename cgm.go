/*
 * CGM codec - file orchestrator.
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

// Package cgm drives the binary-to-clear-text CGM codec end to end:
// frame, decode, and emit (spec §2 item 8, §6). It plays the role the
// teacher's internal/cpu plays for sys_channel — the single place that
// wires the lower-level pieces (framer, factory, emitter) into one
// reusable driver, leaving the outer CLI (cmd/cgmtext) a thin wrapper.
package cgm

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gfxcgm/cgm/command"
	"github.com/gfxcgm/cgm/config"
	"github.com/gfxcgm/cgm/diag"
	"github.com/gfxcgm/cgm/internal/emit"
	"github.com/gfxcgm/cgm/internal/frame"
	"github.com/gfxcgm/cgm/internal/mstate"
)

// Codec decodes and emits CGM streams under one set of settings,
// optionally forwarding diagnostics to a logger as they are produced.
type Codec struct {
	settings config.Settings
	logger   *slog.Logger
}

// New returns a Codec configured by settings.
func New(settings config.Settings) *Codec {
	return &Codec{settings: settings}
}

// WithLogger attaches logger so every diagnostic is both returned and
// logged live, at a level derived from its severity. Returns c for
// chaining.
func (c *Codec) WithLogger(logger *slog.Logger) *Codec {
	c.logger = logger
	return c
}

// Decode frames and decodes every command in data, in declared order
// (spec §5 Invariant: command order preserved). It stops early only on
// a Fatal framer condition (corrupt header, negative partition length);
// every command decoded before the fault is returned alongside it.
func (c *Codec) Decode(data []byte) ([]command.Command, *diag.Collector, error) {
	collector := diag.NewCollector(c.logger)
	state := mstate.New()
	f := frame.NewFramer(data)

	var cmds []command.Command
	for !f.Done() {
		fc, err := f.Next()
		if err != nil {
			collector.Add(diag.Fatal, -1, -1, f.Pos(), "%v", err)
			return cmds, collector, fmt.Errorf("cgm: decode at offset %d: %w", f.Pos(), err)
		}

		known := command.Known(fc.Class, fc.ElementID)
		cmd, decErr := command.Decode(fc.Class, fc.ElementID, fc.Args, state)
		switch {
		case decErr != nil:
			collector.Add(diag.Unsupported, fc.Class, fc.ElementID, fc.ByteOffset, "%v", decErr)
		case !known:
			collector.Add(diag.Unimplemented, fc.Class, fc.ElementID, fc.ByteOffset,
				"no decoder registered for class=%d id=%d", fc.Class, fc.ElementID)
		default:
			if v, ok := cmd.(command.VDCTypeCommand); ok && v.Overridden && c.settings.VDCMode == config.ForceRealVdcOnEmit {
				collector.Add(diag.Info, fc.Class, fc.ElementID, fc.ByteOffset,
					"VDC type Integer decoded; clear-text emission will force real per the compatibility override")
			}
		}

		cmds = append(cmds, cmd)
		if frame.IsEndMetafile(fc) {
			if !f.Done() {
				collector.Add(diag.Info, -1, -1, f.Pos(),
					"%d trailing byte(s) after END METAFILE ignored", int64(len(data))-f.Pos())
			}
			break
		}
	}

	return cmds, collector, nil
}

// EmitClearText renders cmds as ISO/IEC 8632-4 clear-text onto w, under
// c's settings.
func (c *Codec) EmitClearText(w io.Writer, cmds []command.Command) error {
	return emit.NewEmitter(c.settings).Emit(w, cmds)
}

// Convert reads a full binary CGM stream from r, decodes it, and writes
// its clear-text rendering to w — the composition the spec's file
// orchestrator names (§2 item 8). The returned Collector holds every
// diagnostic from the decode pass even when err is non-nil; it is nil
// only when reading r fails, before decoding starts.
func (c *Codec) Convert(r io.Reader, w io.Writer) (*diag.Collector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cgm: read input: %w", err)
	}

	cmds, collector, err := c.Decode(data)
	if err != nil {
		return collector, err
	}
	if err := c.EmitClearText(w, cmds); err != nil {
		return collector, fmt.Errorf("cgm: emit clear text: %w", err)
	}
	return collector, nil
}
