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

// Command genpdf generates reference images for the engine tests.
// It replays each scenario, draws the resulting strokes into a PDF, and
// renders the PDF to a PNG using Ghostscript.  Run from the module root
// directory.
package main

import (
	"fmt"
	stdcolor "image/color"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/input"
	"seehuhn.de/go/fingerpaint/stroke"
	"seehuhn.de/go/fingerpaint/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, sc := range testcases.List() {
		if sc.Style().Color.A() != 255 {
			// Translucent strokes cannot be expressed as a grey level.
			continue
		}

		pdfPath := filepath.Join(refDir, sc.Name+".pdf")
		pngPath := filepath.Join(refDir, sc.Name+".png")

		if err := generatePDF(sc, pdfPath); err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}
		if err := renderPNG(pdfPath, pngPath); err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}
	}
}

// recorder collects the strokes of a scenario in the order they reach
// the surface.
type recorder struct {
	proc    *input.Processor
	strokes []*path.Data
}

func newRecorder(sc testcases.Scenario) *recorder {
	rec := &recorder{}
	rec.proc = input.NewProcessor(stroke.NewRegistry(), rec)
	rec.proc.Style = sc.Style()
	return rec
}

func (rec *recorder) Stroke(p *path.Data, _ canvas.Style) {
	rec.strokes = append(rec.strokes, p)
}

func (rec *recorder) OnEvent(ev input.Event) {
	rec.proc.Handle(ev)
}

func (rec *recorder) Clear() {
	rec.proc.Registry.Clear()
	rec.strokes = nil
}

// result returns the committed strokes followed by the live ones.
func (rec *recorder) result() []*path.Data {
	res := rec.strokes
	rec.proc.Registry.ForEach(func(_ int, l *stroke.Live) {
		res = append(res, l.Path)
	})
	return res
}

func generatePDF(sc testcases.Scenario, pdfPath string) error {
	rec := newRecorder(sc)
	sc.Replay(rec)

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(sc.Width),
		URy: float64(sc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(sc.Width), float64(sc.Height))
	page.Fill()

	// PDF origin is bottom-left; the engine uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(sc.Height)})

	style := sc.Style()
	grey := stdcolor.GrayModel.Convert(style.Color).(stdcolor.Gray)
	page.SetStrokeColor(color.DeviceGray(float64(grey.Y) / 255))
	page.SetLineWidth(style.Width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, p := range rec.result() {
		// PDF doesn't support quadratic Bézier curves
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		if len(p.Cmds) == 1 {
			// A lone MoveTo paints nothing in PDF; a zero-length line
			// with round caps gives the dot.
			page.LineTo(p.Coords[0].X, p.Coords[0].Y)
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
