/*
 * CGM codec - structured data record parser.
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

// Package sdr implements the recursive Structured Data Record parser
// used by FONT PROPERTIES and APPLICATION STRUCTURE ATTRIBUTE: a nested
// (type, count, values...) stream keyed by ISO 8632-3 Table 7 data type
// codes, read with the same primitive.Reader and metafile precisions
// active when the owning command was parsed (spec §3, §4.1, §9).
package sdr

import (
	"fmt"

	"github.com/gfxcgm/cgm/internal/mstate"
	"github.com/gfxcgm/cgm/internal/primitive"
)

// TypeCode is an ISO 8632-3 Table 7 SDR member type.
type TypeCode int

const (
	TypeSDR       TypeCode = 1 // Nested SDR.
	TypeColourIdx TypeCode = 2
	TypeColour    TypeCode = 3
	TypeString    TypeCode = 4
	TypeStringFix TypeCode = 5
	TypeEnum      TypeCode = 7
	TypeIndex     TypeCode = 8
	TypeInt       TypeCode = 9
	TypeReal      TypeCode = 10
	TypeVDC       TypeCode = 14
	TypeName      TypeCode = 15
)

// Item is one (type, count, values) member of an SDR.
type Item struct {
	Type   TypeCode
	Count  int
	Values []any // one entry per value; nested Items for TypeSDR.
}

// Parse decodes a full SDR envelope: a sequence of (16-bit type code,
// 16-bit count, value...) members until buf is exhausted.
func Parse(buf []byte, state *mstate.State) ([]Item, error) {
	r := primitive.NewReader(buf, state)
	return parseItems(r, state)
}

func parseItems(r *primitive.Reader, state *mstate.State) ([]Item, error) {
	var items []Item
	for !r.Done() {
		item, err := parseOne(r, state)
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseOne(r *primitive.Reader, state *mstate.State) (Item, error) {
	typeVal, err := r.ReadEnum()
	if err != nil {
		return Item{}, fmt.Errorf("sdr: read type code: %w", err)
	}
	countVal, err := r.ReadEnum()
	if err != nil {
		return Item{}, fmt.Errorf("sdr: read count: %w", err)
	}
	t := TypeCode(typeVal)
	count := int(countVal)
	if count < 0 {
		return Item{}, fmt.Errorf("sdr: negative count %d for type %d", count, t)
	}

	values := make([]any, 0, count)
	for i := 0; i < count; i++ {
		v, err := readValue(r, state, t)
		if err != nil {
			return Item{}, fmt.Errorf("sdr: value %d of type %d: %w", i, t, err)
		}
		values = append(values, v)
	}
	return Item{Type: t, Count: count, Values: values}, nil
}

func readValue(r *primitive.Reader, state *mstate.State, t TypeCode) (any, error) {
	switch t {
	case TypeSDR:
		nested, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return Parse(nested, state)
	case TypeColourIdx:
		return r.ReadColour()
	case TypeColour:
		return r.ReadColour()
	case TypeString, TypeStringFix:
		return r.ReadString()
	case TypeEnum:
		return r.ReadEnum()
	case TypeIndex:
		return r.ReadIndex()
	case TypeInt:
		return r.ReadInt()
	case TypeReal:
		return r.ReadReal()
	case TypeVDC:
		return r.ReadVDC()
	case TypeName:
		return r.ReadName()
	default:
		return nil, fmt.Errorf("sdr: unknown type code %d", t)
	}
}
