// seehuhn.de/go/fingerpaint - a multi-touch finger painting engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command doodle replays a pointer event script through the painting
// engine and writes the resulting picture.
//
// Usage:
//
//	doodle -script testdata/scenarios.json -name single_zigzag -o zigzag.png
//	doodle -script s.json -o page.pdf
//	doodle -script s.json -gallery ~/Pictures
//
// The output format is chosen by the file extension: .png, .jpg, .jpeg or
// .pdf.  Event scripts are written by the testcases/export command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/export"
	"seehuhn.de/go/fingerpaint/testcases"
)

func main() {
	script := flag.String("script", "", "event script to replay (\"-\" for stdin)")
	name := flag.String("name", "", "scenario to replay (default: the first one)")
	out := flag.String("o", "", "output file (.png, .jpg, .jpeg or .pdf)")
	gallery := flag.String("gallery", "", "save the picture as JPEG into this directory")
	quality := flag.Int("quality", export.DefaultQuality, "JPEG quality")
	list := flag.Bool("list", false, "list the scenarios in the script and exit")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fingerpaint.SetLogger(logger)

	if err := run(*script, *name, *out, *gallery, *quality, *list, logger); err != nil {
		logger.Error("doodle failed", "error", err)
		os.Exit(1)
	}
}

func run(script, name, out, gallery string, quality int, list bool, logger *slog.Logger) error {
	if script == "" {
		return errors.New("no event script given (use -script)")
	}
	scenarios, err := readScript(script)
	if err != nil {
		return err
	}

	if list {
		for _, sc := range scenarios {
			fmt.Printf("%s\t%dx%d\t%d steps\n", sc.Name, sc.Width, sc.Height, len(sc.Steps))
		}
		return nil
	}

	sc, err := pick(scenarios, name)
	if err != nil {
		return err
	}
	if out == "" && gallery == "" {
		return errors.New("no output given (use -o or -gallery)")
	}

	style := sc.Style()
	e := fingerpaint.New(sc.Width, sc.Height,
		fingerpaint.WithColor(style.Color),
		fingerpaint.WithWidth(int(style.Width)))
	sc.Replay(e)
	img := e.Snapshot()
	logger.Debug("scenario replayed", "name", sc.Name, "steps", len(sc.Steps), "live", e.Live())

	if gallery != "" {
		g := &export.Gallery{Dir: gallery, Quality: quality}
		fname, err := g.Save(img)
		if err != nil {
			return err
		}
		logger.Info("picture saved", "file", fname)
	}

	if out != "" {
		if err := writeOutput(out, img, quality); err != nil {
			return fmt.Errorf("%s: %w", out, err)
		}
		logger.Info("picture written", "file", out)
	}
	return nil
}

func readScript(script string) ([]testcases.Scenario, error) {
	var r io.Reader = os.Stdin
	if script != "-" {
		f, err := os.Open(script)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	scenarios, err := testcases.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", script, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", script)
	}
	return scenarios, nil
}

func pick(scenarios []testcases.Scenario, name string) (testcases.Scenario, error) {
	if name == "" {
		return scenarios[0], nil
	}
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return testcases.Scenario{}, fmt.Errorf("scenario %q not found", name)
}

func writeOutput(out string, img *canvas.Image, quality int) (err error) {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".png":
		encode = func(w io.Writer) error { return export.EncodePNG(w, img) }
	case ".jpg", ".jpeg":
		encode = func(w io.Writer) error { return export.EncodeJPEG(w, img, quality) }
	case ".pdf":
		encode = func(w io.Writer) error { return export.Print(w, img, nil) }
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}
