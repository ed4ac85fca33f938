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

// Package stroke keeps track of the strokes which are currently being
// drawn, one per pointer.
//
// Each stroke is smoothed incrementally: a new sample appends a quadratic
// Bézier segment whose control point is the previous sample and whose end
// point is the midpoint between the previous and the new sample.  Appending
// a segment never depends on future samples.
package stroke

import (
	"image"
	"maps"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Live is a stroke in progress.
type Live struct {
	// Path starts with a MoveTo, followed by QuadTo segments.
	Path *path.Data

	// Last is the most recent sample incorporated into Path, truncated to
	// integer pixel coordinates.
	Last image.Point
}

// Registry maps pointer identifiers to their live strokes.
// Every entry holds a non-empty path.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	live map[int]*Live
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[int]*Live)}
}

// Begin starts a new stroke for pid at (x, y).  If pid already has a live
// stroke, the stroke is discarded and restarted; this handles identifiers
// reused after a missed up event.  The return value reports whether an
// existing stroke was reset.
func (r *Registry) Begin(pid int, x, y float64) (reset bool) {
	if r.live == nil {
		r.live = make(map[int]*Live)
	}

	l, reset := r.live[pid]
	if reset {
		l.Path.Cmds = l.Path.Cmds[:0]
		l.Path.Coords = l.Path.Coords[:0]
	} else {
		l = &Live{Path: &path.Data{}}
		r.live[pid] = l
	}
	l.Path = l.Path.MoveTo(vec.Vec2{X: x, Y: y})
	l.Last = image.Point{X: int(x), Y: int(y)}
	return reset
}

// Extend appends a smoothed segment towards (x, y) to the stroke of pid.
// The pointer must have a live stroke.
func (r *Registry) Extend(pid int, x, y float64) {
	l, ok := r.live[pid]
	if !ok {
		panic("stroke: Extend called for pointer without live stroke")
	}

	ctrl := vec.Vec2{X: float64(l.Last.X), Y: float64(l.Last.Y)}
	end := vec.Vec2{X: (ctrl.X + x) / 2, Y: (ctrl.Y + y) / 2}
	l.Path = l.Path.QuadTo(ctrl, end)
	l.Last = image.Point{X: int(x), Y: int(y)}
}

// End removes the stroke of pid and returns its path.
// If pid has no live stroke, nil is returned.
func (r *Registry) End(pid int) *path.Data {
	l, ok := r.live[pid]
	if !ok {
		return nil
	}
	delete(r.live, pid)
	return l.Path
}

// Lookup returns the live stroke of pid, or nil.
// The caller must not modify the returned value.
func (r *Registry) Lookup(pid int) *Live {
	return r.live[pid]
}

// Len returns the number of live strokes.
func (r *Registry) Len() int {
	return len(r.live)
}

// ForEach calls fn for every live stroke, in increasing order of pointer
// identifiers.  fn must not modify the registry.
func (r *Registry) ForEach(fn func(pid int, l *Live)) {
	for _, pid := range slices.Sorted(maps.Keys(r.live)) {
		fn(pid, r.live[pid])
	}
}

// Clear discards all live strokes.
func (r *Registry) Clear() {
	clear(r.live)
}

// Segments returns the number of QuadTo segments in p.
func Segments(p *path.Data) int {
	n := 0
	for _, cmd := range p.Cmds {
		if cmd == path.CmdQuadTo {
			n++
		}
	}
	return n
}
