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

import "seehuhn.de/go/pdf/graphics"

// Style describes how paths are stroked.  Joins are always round and
// strokes are always anti-aliased.
type Style struct {
	Color ARGB

	// Width is the stroke width in pixels.  Must be positive.
	Width float64

	Cap graphics.LineCapStyle
}

// DefaultStyle returns the initial stroke style: opaque black, five pixels
// wide, with round caps.
func DefaultStyle() Style {
	return Style{
		Color: Black,
		Width: 5,
		Cap:   graphics.LineCapRound,
	}
}
