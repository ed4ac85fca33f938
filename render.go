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
	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/stroke"
)

// Render draws the current picture into target: the committed surface,
// overlaid with every stroke in progress in the current style.  If target
// has a different size, only the overlapping region is drawn.
//
// Render does not change the state of the engine.
func (e *Engine) Render(target *canvas.Image) {
	e.surface.Blit(target)
	style := e.proc.Style
	e.registry.ForEach(func(_ int, l *stroke.Live) {
		e.live.Stroke(target, l.Path, style)
	})
}

// Snapshot returns a new image with the current picture, as drawn by
// Render.  The caller owns the returned image.
func (e *Engine) Snapshot() *canvas.Image {
	b := e.surface.Bounds()
	img := canvas.NewImage(b.Dx(), b.Dy())
	e.Render(img)
	return img
}
