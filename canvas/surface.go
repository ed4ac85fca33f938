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
	"fmt"
	"image"

	"seehuhn.de/go/geom/path"
)

// Surface is the persistent pixel buffer which holds all committed strokes.
// A new surface is opaque white.
type Surface struct {
	img     *Image
	painter Painter
}

// NewSurface returns a white surface of the given size.
// Both dimensions must be positive.
func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

// Resize discards the current contents and allocates a new white buffer.
// Both dimensions must be positive.
func (s *Surface) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("canvas: invalid surface size %dx%d", w, h))
	}
	s.img = NewImage(w, h)
}

// ClearWhite fills the surface with opaque white.
func (s *Surface) ClearWhite() {
	s.img.Fill(White)
}

// Stroke rasterises p onto the surface.  An empty path is a no-op.
func (s *Surface) Stroke(p *path.Data, style Style) {
	s.painter.Stroke(s.img, p, style)
}

// SetFlatness sets the curve approximation tolerance used by Stroke.
func (s *Surface) SetFlatness(flatness float64) {
	s.painter.Flatness = flatness
}

// Blit copies the surface pixels to dst.  Only the region where both
// buffers overlap is written.
func (s *Surface) Blit(dst *Image) {
	w := min(s.img.Width, dst.Width)
	h := min(s.img.Height, dst.Height)
	for y := range h {
		copy(dst.Pix[y*dst.Width:y*dst.Width+w], s.img.Pix[y*s.img.Width:])
	}
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Pixels returns the surface buffer.  The caller must not modify it.
func (s *Surface) Pixels() *Image {
	return s.img
}
