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
	"image"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/input"
	"seehuhn.de/go/fingerpaint/internal/logging"
	"seehuhn.de/go/fingerpaint/stroke"
)

// Engine turns pointer events into strokes on a raster surface.
//
// Strokes in progress are kept as paths, one per contact.  When a contact
// is lifted, its path is rasterised onto the surface and discarded.
type Engine struct {
	surface  *canvas.Surface
	registry *stroke.Registry
	proc     *input.Processor

	// live draws strokes in progress during rendering.
	live canvas.Painter
}

// New returns an engine with a white w×h surface.
// Both dimensions must be positive.
func New(w, h int, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	surface := canvas.NewSurface(w, h)
	surface.SetFlatness(o.flatness)
	registry := stroke.NewRegistry()

	proc := input.NewProcessor(registry, surface)
	proc.Style.Color = o.color
	proc.Style.Width = float64(o.width)
	proc.Tolerance = o.tolerance

	return &Engine{
		surface:  surface,
		registry: registry,
		proc:     proc,
		live:     canvas.Painter{Flatness: o.flatness},
	}
}

// Resize discards all strokes, including the ones in progress, and
// allocates a new white surface.  Both dimensions must be positive.
func (e *Engine) Resize(w, h int) {
	if n := e.registry.Len(); n > 0 {
		logging.Get().Debug("resize drops strokes in progress", "count", n)
	}
	e.registry.Clear()
	e.surface.Resize(w, h)
}

// Bounds returns the pixel rectangle of the surface.
func (e *Engine) Bounds() image.Rectangle {
	return e.surface.Bounds()
}

// OnEvent processes a single pointer event.
func (e *Engine) OnEvent(ev input.Event) {
	e.proc.Handle(ev)
}

// Clear discards all strokes, including the ones in progress, and fills
// the surface with white.
func (e *Engine) Clear() {
	e.registry.Clear()
	e.surface.ClearWhite()
}

// SetColor sets the stroke colour, in the form 0xAARRGGBB.  The new colour
// applies to strokes in progress as well.
func (e *Engine) SetColor(c canvas.ARGB) {
	e.proc.Style.Color = c
}

// Color returns the current stroke colour.
func (e *Engine) Color() canvas.ARGB {
	return e.proc.Style.Color
}

// SetWidth sets the stroke width in pixels.  The width must be at least 1.
func (e *Engine) SetWidth(w int) {
	checkWidth(w)
	e.proc.Style.Width = float64(w)
}

// Width returns the current stroke width in pixels.
func (e *Engine) Width() int {
	return int(e.proc.Style.Width)
}

// Style returns the current stroke style.
func (e *Engine) Style() canvas.Style {
	return e.proc.Style
}

// Live returns the number of strokes in progress.
func (e *Engine) Live() int {
	return e.registry.Len()
}
