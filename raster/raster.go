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

// Package raster converts paths in device space into anti-aliased
// per-pixel coverage values.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts paths to pixel coverage: the fraction of each pixel's
// area covered by the filled or stroked shape, from 0 (outside) to 1
// (inside).  Paths are given in device coordinates, one unit per pixel,
// with the origin at the top-left corner of the clip rectangle's pixel grid.
//
// Internal buffers grow as needed but never shrink, so that a Rasteriser
// reused for many paths reaches a steady state without allocations.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip bounds the output.  Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in pixels.
	// Must be positive.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the style of stroke end points.  Joins are always round.
	Cap graphics.LineCapStyle

	cover  []float32 // per-pixel change of winding, reused as output
	area   []float32 // per-pixel partial area
	edges  []edge
	active []int // indices into edges crossing the current scanline

	segs    []strokeSegment // flattened segments of the current stroke subpath
	outline []vec.Vec2      // outline polygon under construction

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept for reuse.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.segs = r.segs[:0]
	r.outline = r.outline[:0]
	r.bboxEmpty = true
}

// FillNonZero fills the path using the nonzero winding rule.  Open subpaths
// are closed implicitly.  The emit callback receives coverage row by row;
// its slice argument is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	var current, start vec.Vec2
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[i]
			start = current
			i++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[i])
			current = p.Coords[i]
			i++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[i], p.Coords[i+1], r.addEdge)
			current = p.Coords[i+1]
			i += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[i], p.Coords[i+1], p.Coords[i+2], r.addEdge)
			current = p.Coords[i+2]
			i += 3

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.fillEdges(emit)
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and calls emit for each of them.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// The maximal distance between the curve and its chord is |P0-2P1+P2|/4.
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()

	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for k := 1; k <= n; k++ {
		t := float64(k) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for k := 1; k <= n; k++ {
		t := float64(k) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// startEdges empties the edge list before a new path is collected.
func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge appends the segment p0→p1 to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	xLo, xHi := min(p0.X, p1.X), max(p0.X, p1.X)
	yLo, yHi := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = xLo, xHi
		r.bboxYMin, r.bboxYMax = yLo, yHi
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, xLo)
	r.bboxXMax = max(r.bboxXMax, xHi)
	r.bboxYMin = min(r.bboxYMin, yLo)
	r.bboxYMax = max(r.bboxYMax, yHi)
}

// pixelBounds returns the integer bounding box of the collected edges,
// clamped to the clip rectangle.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.bboxEmpty || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation model:
//
// Each pixel of a scanline has two accumulators:
//   cover: signed vertical extent of the edges crossing the pixel
//   area:  the part of cover which lies to the right of the crossing
//
// integrateNonZero sweeps the scanline from left to right.  The coverage
// of a pixel is the running sum of cover over all pixels to its left plus
// its own area.  Taking the absolute value and clamping to 1 implements the
// nonzero winding rule.

// fillEdges sweeps the collected edges scanline by scanline, using an
// active edge list, and emits the resulting coverage.
func (r *Rasteriser) fillEdges(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) {
			e := &r.edges[next]
			if min(e.y0, e.y1) >= yBot {
				break
			}
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if accumulateEdge(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds the contribution of e within scanline y to the
// accumulators.  The buffers are indexed by x-xMin.  Contributions left of
// xMin are folded into the first pixel, contributions right of xMax are
// dropped.  The return value reports whether anything was added.
func accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixLeft >= xMax:
		return false
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return true
	case pixLeft == pixRight:
		addSpan(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	if pixLeft < xMin {
		// Everything left of xMin goes into the first pixel at once.
		yLeft := yTop
		if xBot < xTop {
			yLeft = yBot
		}
		yClip := min(max(e.y0+dydx*(float64(xMin)-e.x0), yTop), yBot)
		c := sign * float32(math.Abs(yClip-yLeft))
		cover[0] += c
		area[0] += c
		pixLeft = xMin
	}
	for pix := pixLeft; pix <= pixRight && pix < xMax; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addSpan(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
	return true
}

// addSpan accumulates the part of e between yTop and yBot, which lies
// inside pixel column pix.
func addSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		idx := pix - xMin
		cover[idx] += c
		area[idx] += c * float32(1-frac)
	}
}

// integrateNonZero converts the accumulators of one scanline into
// coverage values, in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]

		if v < 0 {
			v = -v
		}
		if v < coverageEpsilon {
			v = 0
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or nil
// if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	// 0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// coverageEpsilon absorbs rounding residue of the running sum, which
	// would otherwise leave tiny non-zero coverage to the right of shapes.
	coverageEpsilon = 1e-5

	// minArcSegments is the smallest number of chords used for a circle.
	minArcSegments = 8

	// collinearityThreshold is the cross product of two unit tangents
	// below which a corner is treated as straight.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path turning back on itself.
	cuspCosineThreshold = -0.9999
)
