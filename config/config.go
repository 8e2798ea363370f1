/*
 * CGM codec - settings.
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

// Package config holds the codec's recognized settings and their YAML
// persistence, the way the rest of the pack loads a small structured
// lookup/config file with gopkg.in/yaml.v3 rather than a hand-rolled
// parser.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// VDCMode selects how a decoded VDC TYPE of Integer is handled on emit.
type VDCMode int

const (
	// ForceRealVdcOnEmit is the default: VDC TYPE Integer is recorded as
	// decoded but printed as real, and every later VDC value is printed
	// as a real, matching the ISO reference implementation's
	// interoperability workaround. Decoding is unaffected: integer VDC
	// values are still read at the VDC integer precision.
	ForceRealVdcOnEmit VDCMode = iota
	// PreserveVdcType disables the override: the decoded VDC type and
	// integer VDC values are printed as-is in clear text.
	PreserveVdcType
)

// String renders the mode the way it appears in a YAML file.
func (m VDCMode) String() string {
	if m == PreserveVdcType {
		return "preserve"
	}
	return "force-real"
}

// MarshalYAML implements yaml.Marshaler.
func (m VDCMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *VDCMode) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "preserve":
		*m = PreserveVdcType
	case "force-real", "":
		*m = ForceRealVdcOnEmit
	default:
		return fmt.Errorf("config: unknown vdc_mode %q", s)
	}
	return nil
}

// Settings is the single settings struct recognized by the codec (see
// spec §9 Configuration).
type Settings struct {
	VDCMode              VDCMode `yaml:"vdc_mode"`
	WrapColumn           uint16  `yaml:"wrap_column"`
	EmitUnknownAsComment bool    `yaml:"emit_unknown_as_comment"`
}

// Default returns the documented default settings: ForceRealVdcOnEmit,
// wrap column 80, unknown commands emitted as comments.
func Default() Settings {
	return Settings{
		VDCMode:              ForceRealVdcOnEmit,
		WrapColumn:           80,
		EmitUnknownAsComment: true,
	}
}

// Load reads Settings from a YAML file at path, filling any field absent
// from the file with its documented default.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as YAML.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
