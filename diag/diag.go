/*
 * CGM codec - diagnostic channel.
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

// Package diag holds the severity-tagged diagnostic messages the decoder
// and emitter accumulate while walking a metafile.
package diag

import (
	"context"
	"fmt"
	"log/slog"
)

// Severity classifies how serious a diagnostic is, per the decoder's
// error-handling contract: nothing but Fatal halts the decode.
type Severity int

const (
	// Info records expected, by-design behavior such as the VDC-type
	// compatibility override.
	Info Severity = iota
	// Unsupported marks a command whose precision or mode the decoder
	// cannot interpret; the command is materialized as Unknown.
	Unsupported
	// Unimplemented marks a known (class, id) with no decoder yet; the
	// command is materialized as Unknown.
	Unimplemented
	// Fatal marks a framer invariant violation; decode halts at that byte.
	Fatal
)

// String renders the severity the way it appears in a diagnostic line.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Unsupported:
		return "unsupported"
	case Unimplemented:
		return "unimplemented"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Level maps a Severity onto the slog level used when a Collector has a
// logger attached.
func (s Severity) Level() slog.Level {
	switch s {
	case Info:
		return slog.LevelInfo
	case Unsupported, Unimplemented:
		return slog.LevelWarn
	case Fatal:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Diagnostic is one message produced during decode or emit.
type Diagnostic struct {
	Severity   Severity
	Class      int    // Command class, -1 if not applicable.
	ID         int    // Element id, -1 if not applicable.
	ByteOffset int64  // Offset into the input stream, -1 if not applicable.
	Message    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: class=%d id=%d offset=%d: %s",
		d.Severity, d.Class, d.ID, d.ByteOffset, d.Message)
}

// Collector accumulates diagnostics in order and optionally forwards them
// to an slog.Logger as they arrive. The zero value is ready to use.
type Collector struct {
	items  []Diagnostic
	logger *slog.Logger
}

// NewCollector returns a Collector that also forwards every diagnostic to
// logger. A nil logger disables forwarding.
func NewCollector(logger *slog.Logger) *Collector {
	return &Collector{logger: logger}
}

// Add records a diagnostic and forwards it to the attached logger, if any.
func (c *Collector) Add(sev Severity, class, id int, offset int64, format string, args ...any) {
	d := Diagnostic{
		Severity:   sev,
		Class:      class,
		ID:         id,
		ByteOffset: offset,
		Message:    fmt.Sprintf(format, args...),
	}
	c.items = append(c.items, d)
	if c.logger != nil {
		c.logger.Log(context.Background(), sev.Level(), d.Message,
			slog.Int("class", class), slog.Int("id", id), slog.Int64("offset", offset))
	}
}

// Info records an Info-severity diagnostic not tied to a specific command.
func (c *Collector) Info(format string, args ...any) {
	c.Add(Info, -1, -1, -1, format, args...)
}

// Diagnostics returns every diagnostic recorded so far, in order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.items
}

// HasFatal reports whether any recorded diagnostic was Fatal.
func (c *Collector) HasFatal() bool {
	for _, d := range c.items {
		if d.Severity == Fatal {
			return true
		}
	}
	return false
}
