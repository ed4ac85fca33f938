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

// Package fingerpaint implements a multi-touch stroke engine for finger
// painting.
//
// An [Engine] receives normalised pointer events from the host.  Each
// contact draws its own stroke, which is smoothed with quadratic Bézier
// segments while the finger moves and committed to a persistent raster
// surface when the finger is lifted.  [Engine.Render] combines the
// committed surface with all strokes still in progress.
//
// The engine is single-threaded: the host must not call its methods
// concurrently.
package fingerpaint

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
