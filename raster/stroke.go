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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a stroked subpath.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, 90° CCW from T
	Len  float64
}

// Stroke renders the outline of the path using Width and Cap, with round
// joins between segments.  The emit callback receives coverage row by row;
// its slice argument is only valid during the call.
//
// Each subpath is converted into one closed outline polygon: forward along
// the +N side, back along the -N side, with round joins on the outer side
// of every corner.  All outlines are filled together with the nonzero
// rule.  Where a stroke crosses itself, boundary pixels of the crossing
// may receive more than their exact share.  A subpath without extent
// produces a dot of diameter Width if Cap is round, and nothing otherwise.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	d := r.Width / 2
	if d <= 0 || len(p.Cmds) == 0 {
		return
	}

	r.segs = r.segs[:0]
	var current, start vec.Vec2
	inSubpath := false
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				r.strokeSubpath(start, d, false)
			}
			current = p.Coords[i]
			start = current
			inSubpath = true
			i++

		case path.CmdLineTo:
			if inSubpath {
				r.addStrokeSegment(current, p.Coords[i])
				current = p.Coords[i]
			}
			i++

		case path.CmdQuadTo:
			if inSubpath {
				r.flattenQuadratic(current, p.Coords[i], p.Coords[i+1], r.addStrokeSegment)
				current = p.Coords[i+1]
			}
			i += 2

		case path.CmdCubeTo:
			if inSubpath {
				r.flattenCubic(current, p.Coords[i], p.Coords[i+1], p.Coords[i+2], r.addStrokeSegment)
				current = p.Coords[i+2]
			}
			i += 3

		case path.CmdClose:
			if inSubpath {
				if current != start {
					r.addStrokeSegment(current, start)
				}
				r.strokeSubpath(start, d, true)
				current = start
				inSubpath = false
			}
		}
	}
	if inSubpath {
		r.strokeSubpath(start, d, false)
	}

	r.fillEdges(emit)
}

// addStrokeSegment appends the segment a→b to the current subpath.
// Segments shorter than zeroLengthThreshold are dropped.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	length := v.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{
		A:   a,
		B:   b,
		T:   t,
		N:   vec.Vec2{X: -t.Y, Y: t.X},
		Len: length,
	})
}

// strokeSubpath converts the segments collected in r.segs into outline
// edges and empties the segment list.  The start point is used for
// subpaths without segments.
func (r *Rasteriser) strokeSubpath(start vec.Vec2, d float64, closed bool) {
	segs := r.segs
	r.segs = r.segs[:0]

	if len(segs) == 0 {
		if r.Cap == graphics.LineCapRound {
			dir := vec.Vec2{X: 1}
			r.outline = append(r.outline[:0], start.Add(dir.Mul(d)))
			r.addArc(start, d, dir, -2*math.Pi)
			r.addPolygon(r.outline)
		}
		return
	}

	n := len(segs)
	if closed {
		// Outer and inner boundary are separate loops of opposite
		// orientation.
		r.outline = r.outline[:0]
		for k := range n {
			r.addCorner(segs[k].B, &segs[k], &segs[(k+1)%n], d, true)
		}
		r.addPolygon(r.outline)

		r.outline = r.outline[:0]
		for k := n - 1; k >= 0; k-- {
			r.addCorner(segs[k].A, &segs[(k+n-1)%n], &segs[k], d, false)
		}
		r.addPolygon(r.outline)
		return
	}

	first, last := &segs[0], &segs[n-1]
	r.outline = r.outline[:0]

	r.addCap(first.A, first.T.Mul(-1), d)
	r.outline = append(r.outline, first.A.Add(first.N.Mul(d)))
	for k := 0; k+1 < n; k++ {
		r.addCorner(segs[k].B, &segs[k], &segs[k+1], d, true)
	}
	r.outline = append(r.outline, last.B.Add(last.N.Mul(d)))

	r.addCap(last.B, last.T, d)
	r.outline = append(r.outline, last.B.Sub(last.N.Mul(d)))
	for k := n - 1; k > 0; k-- {
		r.addCorner(segs[k].A, &segs[k-1], &segs[k], d, false)
	}
	r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)))

	r.addPolygon(r.outline)
}

// addCorner adds the outline points at the vertex P between the segments
// s1 and s2, on the +N side when walking forward and on the -N side when
// walking backward.  The outer side of the corner gets a round join, the
// inner side is cut off where the two offset lines meet.
func (r *Rasteriser) addCorner(P vec.Vec2, s1, s2 *strokeSegment, d float64, forward bool) {
	cos := s1.T.Dot(s2.T)
	sin := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X

	// u and v are the offset directions before and after the corner,
	// in the order the outline visits them.
	var u, v vec.Vec2
	if forward {
		u, v = s1.N, s2.N
	} else {
		u, v = s2.N.Mul(-1), s1.N.Mul(-1)
		sin = -sin
	}
	// From here on, sin > 0 means that this side is the inner side.

	switch {
	case cos < cuspCosineThreshold:
		// The path doubles back: half a circle around the tip.
		r.outline = append(r.outline, P.Add(u.Mul(d)))
		r.addArc(P, d, u, -math.Pi)
		r.outline = append(r.outline, P.Add(v.Mul(d)))

	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, P.Add(u.Mul(d)), P.Add(v.Mul(d)))

	case sin < 0:
		r.outline = append(r.outline, P.Add(u.Mul(d)))
		r.addArc(P, d, u, -math.Acos(min(cos, 1)))
		r.outline = append(r.outline, P.Add(v.Mul(d)))

	default:
		// The inner offset lines meet at distance d·tan(θ/2) from P along
		// both segments.  If that is too far for neighbouring corners to
		// stay apart, the outline is routed through P instead.
		if t := d * sin / (1 + cos); t <= min(s1.Len, s2.Len)/2 {
			w := u.Add(v)
			w = w.Mul(1 / w.Length())
			r.outline = append(r.outline, P.Add(w.Mul(d/math.Sqrt((1+cos)/2))))
		} else {
			r.outline = append(r.outline, P.Add(u.Mul(d)), P, P.Add(v.Mul(d)))
		}
	}
}

// addCap adds the cap at the end point P of a subpath.  T is the outward
// tangent.  The outline point P+N·d, where N is the normal of T, precedes
// the cap and P-N·d follows it.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// half circle through P+T·d
		r.addArc(P, d, N, -math.Pi)
	}
}

// addArc appends the points of a circular arc around centre, starting in
// direction startDir and turning by the given angle.  The start point
// itself is not added.
func (r *Rasteriser) addArc(centre vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	n := sweepSegments(radius, r.Flatness, sweep)
	for k := 1; k <= n; k++ {
		phi := sweep * float64(k) / float64(n)
		cos, sin := math.Cos(phi), math.Sin(phi)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, centre.Add(dir.Mul(radius)))
	}
}

// addPolygon adds the closed polygon through pts to the edge list.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for j := 1; j < len(pts); j++ {
		r.addEdge(pts[j-1], pts[j])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// arcSegments returns the number of chords needed to approximate a full
// circle of the given radius within the flatness tolerance.
//
// A chord subtending the angle θ deviates from the circle by at most
// r(1-cos(θ/2)).  Setting this equal to the tolerance ε gives
// θ = 2 acos(1-ε/r).
func arcSegments(radius, flatness float64) int {
	if radius <= flatness {
		return minArcSegments
	}
	step := 2 * math.Acos(1-flatness/radius)
	if step <= 0 || math.IsNaN(step) {
		return minArcSegments
	}
	return max(int(math.Ceil(2*math.Pi/step)), minArcSegments)
}

// sweepSegments returns the number of chords used for an arc turning by
// the given angle.
func sweepSegments(radius, flatness, sweep float64) int {
	full := float64(arcSegments(radius, flatness))
	return max(int(math.Ceil(full*math.Abs(sweep)/(2*math.Pi))), 1)
}
