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

package export

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/draw"
)

// PrintOptions controls the page layout of [Print].
type PrintOptions struct {
	// PageSize is a paper size name understood by gofpdf, for example
	// "A4" or "Letter".  The default is "A4".
	PageSize string

	// Landscape selects landscape orientation.
	Landscape bool

	// Margin is the minimum distance between the picture and the page
	// edges, in millimetres.  The default is 10.
	Margin float64

	// DPI is the resolution at which the picture is embedded.
	// The default is 150.
	DPI float64
}

func (o *PrintOptions) withDefaults() PrintOptions {
	res := *o
	if res.PageSize == "" {
		res.PageSize = "A4"
	}
	if res.Margin == 0 {
		res.Margin = 10
	}
	if res.DPI == 0 {
		res.DPI = 150
	}
	return res
}

// Print writes a one-page PDF document showing img.  The picture is scaled
// to fill the printable area of the page as far as possible while keeping
// its aspect ratio, and is centred on the page.
func Print(w io.Writer, img image.Image, opts *PrintOptions) error {
	if opts == nil {
		opts = &PrintOptions{}
	}
	o := opts.withDefaults()

	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("print: empty image")
	}

	orientation := "P"
	if o.Landscape {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", o.PageSize, "")
	pdf.SetMargins(o.Margin, o.Margin, o.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	if pdf.Err() {
		return fmt.Errorf("print: %w", pdf.Error())
	}

	pageW, pageH := pdf.GetPageSize()
	x, y, pw, ph := fit(b.Dx(), b.Dy(), pageW, pageH, o.Margin)
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("print: margin %gmm leaves no printable area", o.Margin)
	}

	// Resample to the output resolution, so that the document size does not
	// depend on the canvas size.
	const mmPerInch = 25.4
	dw := max(1, int(math.Round(pw/mmPerInch*o.DPI)))
	dh := max(1, int(math.Round(ph/mmPerInch*o.DPI)))
	scaled := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)

	buf := &bytes.Buffer{}
	if err := EncodePNG(buf, scaled); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", imgOpts, buf)
	pdf.ImageOptions("canvas", x, y, pw, ph, false, imgOpts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

// fit returns the position and size of a w×h picture scaled to fit into
// the page with the given margin, centred on the page.
func fit(w, h int, pageW, pageH, margin float64) (x, y, pw, ph float64) {
	availW := pageW - 2*margin
	availH := pageH - 2*margin
	scale := min(availW/float64(w), availH/float64(h))
	pw = float64(w) * scale
	ph = float64(h) * scale
	return (pageW - pw) / 2, (pageH - ph) / 2, pw, ph
}
