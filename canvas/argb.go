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
	"image/color"
)

// ARGB is a non-premultiplied colour with the byte layout 0xAARRGGBB.
type ARGB uint32

// Common colours.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xFF000000
	White       ARGB = 0xFFFFFFFF
)

// NewARGB packs the four channels into an ARGB value.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(a)<<24 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// A returns the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// RGBA implements the [color.Color] interface.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ARGBModel converts arbitrary colours to ARGB.
var ARGBModel color.Model = color.ModelFunc(argbModel)

func argbModel(c color.Color) color.Color {
	if c, ok := c.(ARGB); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewARGB(n.A, n.R, n.G, n.B)
}
