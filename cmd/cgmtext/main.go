/*
 * cgmtext - CLI front end for the CGM binary-to-clear-text codec.
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

// cgmtext is a thin driver around package cgm: read a binary CGM file,
// decode it, and write its clear-text rendering. It is explicitly an
// external collaborator, not part of the codec core (spec §1 Out of
// scope), kept as small as the teacher's own main.go is around
// internal/cpu.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gfxcgm/cgm"
	"github.com/gfxcgm/cgm/config"
	"github.com/gfxcgm/cgm/diag"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "Settings file (YAML). Defaults applied for any field left unset.")
	output := pflag.StringP("output", "o", "", "Output file. Defaults to stdout.")
	preserveVDC := pflag.BoolP("preserve-vdc-type", "p", false, "Disable the VDC-type compatibility override; emit decoded VDC type as-is.")
	wrapColumn := pflag.Uint16P("wrap-column", "w", 0, "Clear-text line wrap column. 0 keeps the config/default value.")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress diagnostic logging to stderr.")
	help := pflag.BoolP("help", "h", false, "Show usage")
	pflag.Parse()

	if *help {
		usage()
		return
	}
	if pflag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	settings := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		settings = loaded
	}
	if *preserveVDC {
		settings.VDCMode = config.PreserveVdcType
	}
	if *wrapColumn != 0 {
		settings.WrapColumn = *wrapColumn
	}

	in, err := os.Open(pflag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer in.Close()

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	codec := cgm.New(settings)
	if !*quiet {
		logger := slog.New(diag.NewHandler(os.Stderr, slog.LevelInfo))
		codec = codec.WithLogger(logger)
	}

	collector, err := codec.Convert(in, out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if collector != nil && collector.HasFatal() {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "cgmtext: convert a binary CGM metafile to ISO/IEC 8632-4 clear-text\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n\tcgmtext [flags] <input.cgm>\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	pflag.PrintDefaults()
}
