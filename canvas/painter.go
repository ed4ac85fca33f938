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

package canvas

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/fingerpaint/raster"
)

// Painter strokes paths onto images.  The zero value is ready to use.
// A Painter keeps its rasteriser between calls and is not safe for
// concurrent use.
type Painter struct {
	// Flatness is the curve approximation tolerance in pixels.
	// Zero selects the rasteriser default.
	Flatness float64

	r *raster.Rasteriser
}

// Stroke rasterises p with style s and composites the result onto dst,
// using source-over blending with the style colour.  The alpha of the
// colour is multiplied by the pixel coverage.  Output is clipped to dst.
func (pt *Painter) Stroke(dst *Image, p *path.Data, s Style) {
	if p == nil || len(p.Cmds) == 0 || s.Color.A() == 0 {
		return
	}

	clip := rect.Rect{URx: float64(dst.Width), URy: float64(dst.Height)}
	if pt.r == nil {
		pt.r = raster.NewRasteriser(clip)
	} else {
		pt.r.Reset(clip)
	}
	if pt.Flatness > 0 {
		pt.r.Flatness = pt.Flatness
	}
	pt.r.Width = s.Width
	pt.r.Cap = s.Cap

	alpha := float32(s.Color.A()) / 255
	sr := float32(s.Color.R())
	sg := float32(s.Color.G())
	sb := float32(s.Color.B())
	pt.r.Stroke(p, func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Width+xMin : y*dst.Width+xMin+len(coverage)]
		for i, c := range coverage {
			row[i] = blend(row[i], sr, sg, sb, alpha*c)
		}
	})
}

// blend composites a source colour with opacity a over d.
func blend(d ARGB, sr, sg, sb, a float32) ARGB {
	switch {
	case a <= 0:
		return d
	case a >= 1:
		return NewARGB(255, uint8(sr), uint8(sg), uint8(sb))
	}

	da := float32(d.A()) / 255
	k := da * (1 - a)
	outA := a + k
	if outA <= 0 {
		return Transparent
	}
	ch := func(s float32, dc uint8) uint8 {
		return to8((s*a + float32(dc)*k) / outA)
	}
	return NewARGB(to8(outA*255), ch(sr, d.R()), ch(sg, d.G()), ch(sb, d.B()))
}

// to8 rounds v to the nearest value in [0, 255].
func to8(v float32) uint8 {
	v += 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
