/*
 * CGM codec - Class 1 (Metafile Descriptor) clear-text rendering.
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
	"strings"
	"unicode"

	"github.com/gfxcgm/cgm/command"
	"github.com/gfxcgm/cgm/internal/mstate"
	"github.com/gfxcgm/cgm/internal/sdr"
)

func vdcTypeKeyword(t mstate.VDCType, forceReal bool) string {
	if t == mstate.VDCInteger && forceReal {
		return "real"
	}
	if t == mstate.VDCInteger {
		return "integer"
	}
	return "real"
}

func characterCodingKeyword(v mstate.CharacterCodingAnnouncer) string {
	switch v {
	case mstate.Basic8Bit:
		return "basic8bit"
	case mstate.Extended7Bit:
		return "extended7bit"
	case mstate.Extended8Bit:
		return "extended8bit"
	default:
		return "basic7bit"
	}
}

// mfElemListToken resolves the spec §9 Open Question: when the raw
// MFELEMLIST argument decodes as a plain printable string, its content
// is used as the keyword; otherwise the raw bytes are rendered as
// space-separated decimal octet pairs, the documented numeric fallback.
func mfElemListToken(raw []byte) string {
	if s, ok := decodeSingleString(raw); ok && isPrintableASCII(s) {
		return formatString(s)
	}
	var pairs []string
	for i := 0; i+1 < len(raw); i += 2 {
		pairs = append(pairs, fmt.Sprintf("%d %d", raw[i], raw[i+1]))
	}
	return strings.Join(pairs, " ")
}

func decodeSingleString(raw []byte) ([]byte, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	l := int(raw[0])
	if l == 255 || l+1 != len(raw) {
		return nil, false
	}
	return raw[1:], true
}

func isPrintableASCII(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, r := range string(b) {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// formatSDRItems renders a parsed Structured Data Record compactly:
// "type:count:v1,v2,..." per member, nested SDRs in braces.
func formatSDRItems(items []sdr.Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = formatSDRItem(it)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func formatSDRItem(it sdr.Item) string {
	vals := make([]string, len(it.Values))
	for i, v := range it.Values {
		switch vv := v.(type) {
		case []sdr.Item:
			vals[i] = formatSDRItems(vv)
		default:
			vals[i] = fmt.Sprintf("%v", vv)
		}
	}
	return fmt.Sprintf("%d:%d:%s", it.Type, it.Count, strings.Join(vals, ","))
}

func init() {
	register(command.ClassMetafileDescriptor, command.IDMetafileVersion, "mfversion", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MetafileVersion)
		c.lw.token(formatInt(v.Version))
	})

	register(command.ClassMetafileDescriptor, command.IDMetafileDescription, "mfdesc", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MetafileDescription)
		c.lw.token(formatString(v.Description))
	})

	register(command.ClassMetafileDescriptor, command.IDVDCType, "vdctype", func(c *ctx, cmd command.Command) {
		v := cmd.(command.VDCTypeCommand)
		c.lw.token(vdcTypeKeyword(v.Type, c.forceReal))
	})

	register(command.ClassMetafileDescriptor, command.IDIntegerPrecision, "integerprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.IntegerPrecisionCommand)
		lo, hi := signedExtent(v.Bits)
		c.lw.token(formatInt(lo) + ",")
		c.lw.token(formatInt(hi))
		c.lw.inlineComment(fmt.Sprintf("%d binary bits", v.Bits))
	})

	register(command.ClassMetafileDescriptor, command.IDRealPrecision, "realprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.RealPrecisionCommand)
		min, max, digits, bits := realPrecLiteral(v.Precision)
		c.lw.token(formatReal(min) + ",")
		c.lw.token(formatReal(max) + ",")
		c.lw.token(formatInt(int64(digits)))
		c.lw.inlineComment(fmt.Sprintf("%d binary bits", bits))
	})

	register(command.ClassMetafileDescriptor, command.IDIndexPrecision, "indexprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.IndexPrecisionCommand)
		lo, hi := signedExtent(v.Bits)
		c.lw.token(formatInt(lo) + ",")
		c.lw.token(formatInt(hi))
		c.lw.inlineComment(fmt.Sprintf("%d binary bits", v.Bits))
	})

	register(command.ClassMetafileDescriptor, command.IDColourPrecision, "colrprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ColourPrecisionCommand)
		c.lw.token(formatInt(unsignedMax(v.Bits)))
	})

	register(command.ClassMetafileDescriptor, command.IDColourIndexPrecision, "colrindexprec", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ColourIndexPrecisionCommand)
		c.lw.token(formatInt(signedMax(v.Bits)))
	})

	register(command.ClassMetafileDescriptor, command.IDMaximumColourIndex, "maxcolrindex", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MaximumColourIndex)
		c.lw.token(formatInt(v.Index))
	})

	register(command.ClassMetafileDescriptor, command.IDColourValueExtent, "colrvalueext", func(c *ctx, cmd command.Command) {
		v := cmd.(command.ColourValueExtent)
		c.lw.token(formatTriple(v.Min) + ",")
		c.lw.token(formatTriple(v.Max))
	})

	register(command.ClassMetafileDescriptor, command.IDMetafileElementList, "mfelemlist", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MetafileElementList)
		c.lw.token(mfElemListToken(v.Raw))
	})

	register(command.ClassMetafileDescriptor, command.IDFontList, "fontlist", func(c *ctx, cmd command.Command) {
		v := cmd.(command.FontList)
		c.lw.token(formatStrings(v.Names))
	})

	register(command.ClassMetafileDescriptor, command.IDCharacterSetList, "charsetlist", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharacterSetList)
		for _, e := range v.Entries {
			c.lw.token(formatInt(int64(e.Type)))
			c.lw.token(formatString(e.Designation))
		}
	})

	register(command.ClassMetafileDescriptor, command.IDCharacterCodingAnnouncer, "charcoding", func(c *ctx, cmd command.Command) {
		v := cmd.(command.CharacterCodingAnnouncerCommand)
		c.lw.token(characterCodingKeyword(v.Value))
	})

	register(command.ClassMetafileDescriptor, command.IDNamePrecision, "nameprecision", func(c *ctx, cmd command.Command) {
		v := cmd.(command.NamePrecisionCommand)
		lo, hi := signedExtent(v.Bits)
		c.lw.token(formatInt(lo) + ",")
		c.lw.token(formatInt(hi))
		c.lw.inlineComment(fmt.Sprintf("%d binary bits", v.Bits))
	})

	register(command.ClassMetafileDescriptor, command.IDMaximumVDCExtent, "maxvdcext", func(c *ctx, cmd command.Command) {
		v := cmd.(command.MaximumVDCExtent)
		c.lw.token(formatPoint(v.First, c.forceReal))
		c.lw.token(formatPoint(v.Second, c.forceReal))
	})

	register(command.ClassMetafileDescriptor, command.IDFontProperties, "fontprops", func(c *ctx, cmd command.Command) {
		v := cmd.(command.FontProperties)
		for _, p := range v.Properties {
			c.lw.token(formatInt(int64(p.Indicator)))
			c.lw.token(formatInt(p.Priority))
			c.lw.token(formatSDRItems(p.Value))
		}
	})
}
