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

// Package canvas implements the raster side of the painting engine: ARGB
// pixel buffers, stroke compositing, and the persistent drawing surface.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"slices"
)

// Image is a row-major ARGB pixel buffer with the origin at the top-left
// corner.  The pixel at (x, y) is Pix[y*Width+x].
//
// Image implements [image.Image], so it can be passed to the encoders of
// the standard library directly.
type Image struct {
	Width, Height int
	Pix           []ARGB
}

// NewImage allocates a w×h image filled with opaque white.
// The dimensions must not be negative.
func NewImage(w, h int) *Image {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("canvas: invalid image size %dx%d", w, h))
	}
	img := &Image{Width: w, Height: h, Pix: make([]ARGB, w*h)}
	img.Fill(White)
	return img
}

// Fill sets every pixel to c.
func (img *Image) Fill(c ARGB) {
	for i := range img.Pix {
		img.Pix[i] = c
	}
}

// ARGBAt returns the pixel at (x, y), or Transparent outside the image.
func (img *Image) ARGBAt(x, y int) ARGB {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Transparent
	}
	return img.Pix[y*img.Width+x]
}

// SetARGB sets the pixel at (x, y).  Points outside the image are ignored.
func (img *Image) SetARGB(x, y int, c ARGB) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.Pix[y*img.Width+x] = c
}

// At implements the [image.Image] interface.
func (img *Image) At(x, y int) color.Color {
	return img.ARGBAt(x, y)
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return ARGBModel
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	return &Image{Width: img.Width, Height: img.Height, Pix: slices.Clone(img.Pix)}
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(other *Image) bool {
	return img.Width == other.Width && img.Height == other.Height &&
		slices.Equal(img.Pix, other.Pix)
}

// IsUniform reports whether every pixel equals c.
func (img *Image) IsUniform(c ARGB) bool {
	for _, p := range img.Pix {
		if p != c {
			return false
		}
	}
	return true
}
