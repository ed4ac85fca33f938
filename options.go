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

package fingerpaint

import (
	"fmt"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/input"
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := fingerpaint.New(800, 600,
//	    fingerpaint.WithColor(0xFFCC0000),
//	    fingerpaint.WithWidth(12))
type Option func(*options)

type options struct {
	color     canvas.ARGB
	width     int
	tolerance float64
	flatness  float64
}

func defaultOptions() options {
	return options{
		color:     canvas.Black,
		width:     5,
		tolerance: input.DefaultTolerance,
	}
}

// WithColor sets the initial stroke colour, in the form 0xAARRGGBB.
func WithColor(c canvas.ARGB) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithWidth sets the initial stroke width in pixels.
// The width must be at least 1.
func WithWidth(w int) Option {
	return func(o *options) {
		checkWidth(w)
		o.width = w
	}
}

// WithTouchTolerance sets the distance, in pixels, which a contact must
// move in x or in y before a new segment is added to its stroke.
// The tolerance must not be negative.
func WithTouchTolerance(t float64) Option {
	return func(o *options) {
		if t < 0 {
			panic(fmt.Sprintf("fingerpaint: invalid touch tolerance %g", t))
		}
		o.tolerance = t
	}
}

// WithFlatness sets the curve approximation tolerance, in pixels, used
// when strokes are rasterised.  Zero selects the default.
func WithFlatness(f float64) Option {
	return func(o *options) {
		if f < 0 {
			panic(fmt.Sprintf("fingerpaint: invalid flatness %g", f))
		}
		o.flatness = f
	}
}

func checkWidth(w int) {
	if w < 1 {
		panic(fmt.Sprintf("fingerpaint: invalid stroke width %d", w))
	}
}
