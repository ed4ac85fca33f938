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
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/input"
	"seehuhn.de/go/fingerpaint/stroke"
	"seehuhn.de/go/fingerpaint/testcases"
)

func down(pid int, x, y float64) input.Event   { return input.DownEvent(pid, x, y) }
func up(pid int, x, y float64) input.Event     { return input.UpEvent(pid, x, y) }
func cancel(pid int, x, y float64) input.Event { return input.CancelEvent(pid, x, y) }

func move(pid int, x, y float64) input.Event {
	return input.MoveEvent(input.Pointer{ID: pid, X: x, Y: y})
}

func committed(e *Engine) *canvas.Image {
	return e.surface.Pixels()
}

func nonWhite(img *canvas.Image) int {
	n := 0
	for _, c := range img.Pix {
		if c != canvas.White {
			n++
		}
	}
	return n
}

func TestNewDefaults(t *testing.T) {
	e := New(100, 80)
	if e.Color() != canvas.Black || e.Width() != 5 {
		t.Errorf("initial style: colour %s width %d", e.Color(), e.Width())
	}
	if e.Live() != 0 {
		t.Errorf("%d live strokes", e.Live())
	}
	if b := e.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("bounds %v", b)
	}
	if !e.Snapshot().IsUniform(canvas.White) {
		t.Error("new canvas is not white")
	}
}

func TestOptions(t *testing.T) {
	e := New(50, 50, WithColor(0x80112233), WithWidth(12), WithTouchTolerance(3), WithFlatness(0.1))
	if e.Color() != 0x80112233 || e.Width() != 12 {
		t.Errorf("style: colour %s width %d", e.Color(), e.Width())
	}

	e.OnEvent(down(1, 10, 10))
	e.OnEvent(move(1, 14, 10))
	if l := e.registry.Lookup(1); stroke.Segments(l.Path) != 1 {
		t.Error("touch tolerance not applied")
	}

	for name, opt := range map[string]Option{
		"width":     WithWidth(0),
		"tolerance": WithTouchTolerance(-1),
		"flatness":  WithFlatness(-0.5),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("invalid %s option did not panic", name)
				}
			}()
			New(10, 10, opt)
		}()
	}
}

// A tap leaves a round dot.
func TestTap(t *testing.T) {
	e := New(100, 100)
	e.OnEvent(down(1, 50, 50))
	e.OnEvent(up(1, 50, 50))

	if e.Live() != 0 {
		t.Fatalf("%d live strokes after up", e.Live())
	}
	surf := committed(e)
	for _, p := range [][2]int{{49, 49}, {50, 50}, {49, 50}, {50, 49}} {
		if c := surf.ARGBAt(p[0], p[1]); c != canvas.Black {
			t.Errorf("pixel %v = %s, want black", p, c)
		}
	}
	if n := nonWhite(surf); n < 16 || n > 36 {
		t.Errorf("dot covers %d pixels", n)
	}
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			a := int(surf.ARGBAt(50+dx, 50+dy).R())
			b := int(surf.ARGBAt(49-dx, 49-dy).R())
			if a-b > 1 || b-a > 1 {
				t.Errorf("dot not symmetric at offset (%d,%d): %d vs %d", dx, dy, a, b)
			}
		}
	}
	if !e.Snapshot().Equal(surf) {
		t.Error("snapshot differs from surface")
	}
}

// A drag past the threshold.
func TestDrag(t *testing.T) {
	e := New(100, 100)
	e.OnEvent(down(1, 10, 50))
	l := e.registry.Lookup(1)
	if l == nil || len(l.Path.Cmds) != 1 || l.Path.Coords[0] != (vec.Vec2{X: 10, Y: 50}) {
		t.Fatalf("after down: %v", l)
	}

	e.OnEvent(move(1, 25, 50))
	if stroke.Segments(l.Path) != 1 ||
		l.Path.Coords[1] != (vec.Vec2{X: 10, Y: 50}) ||
		l.Path.Coords[2] != (vec.Vec2{X: 17.5, Y: 50}) {
		t.Fatalf("after move: %v", l.Path.Coords)
	}
	if l.Last.X != 25 || l.Last.Y != 50 {
		t.Errorf("last point %v", l.Last)
	}
	if nonWhite(committed(e)) != 0 {
		t.Error("live stroke drawn to the surface")
	}
	if c := e.Snapshot().ARGBAt(14, 50); c != canvas.Black {
		t.Errorf("live stroke not rendered: %s", c)
	}

	e.OnEvent(up(1, 40, 50))
	if e.Live() != 0 {
		t.Error("stroke still live after up")
	}
	surf := committed(e)
	if c := surf.ARGBAt(14, 50); c != canvas.Black {
		t.Errorf("committed stroke missing: %s", c)
	}
	// The up position is not part of the stroke.
	if c := surf.ARGBAt(30, 50); c != canvas.White {
		t.Errorf("pixel (30,50) = %s, want white", c)
	}
}

// Jitter below the threshold leaves only the dot.
func TestJitter(t *testing.T) {
	tap := New(100, 100)
	tap.OnEvent(down(1, 50, 50))
	tap.OnEvent(up(1, 50, 50))

	e := New(100, 100)
	e.OnEvent(down(1, 50, 50))
	e.OnEvent(move(1, 55, 54))
	e.OnEvent(move(1, 52, 53))
	if l := e.registry.Lookup(1); stroke.Segments(l.Path) != 0 || l.Last.X != 50 || l.Last.Y != 50 {
		t.Fatalf("jitter changed the stroke: %v, last %v", l.Path.Cmds, l.Last)
	}
	e.OnEvent(up(1, 52, 53))

	if !committed(e).Equal(committed(tap)) {
		t.Error("jittered tap differs from a plain tap")
	}
}

// Two fingers draw independently.
func TestTwoStrokes(t *testing.T) {
	e := New(100, 100)
	e.OnEvent(down(1, 10, 10))
	e.OnEvent(down(2, 90, 10))
	e.OnEvent(input.MoveEvent(
		input.Pointer{ID: 1, X: 25, Y: 10},
		input.Pointer{ID: 2, X: 75, Y: 10}))
	e.OnEvent(up(2, 75, 10))

	if e.Live() != 1 || e.registry.Lookup(1) == nil {
		t.Fatalf("live strokes after first up: %d", e.Live())
	}
	surf := committed(e)
	if surf.ARGBAt(85, 10) != canvas.Black || surf.ARGBAt(14, 10) != canvas.White {
		t.Error("surface should hold stroke 2 only")
	}
	if e.Snapshot().ARGBAt(14, 10) != canvas.Black {
		t.Error("live stroke 1 not rendered")
	}

	e.OnEvent(move(1, 40, 10))
	e.OnEvent(up(1, 40, 10))
	surf = committed(e)
	for _, x := range []int{14, 30, 85} {
		if surf.ARGBAt(x, 10) != canvas.Black {
			t.Errorf("pixel (%d,10) not painted", x)
		}
	}
	if e.Live() != 0 {
		t.Error("strokes left after both ups")
	}
}

// A cancelled stroke is not committed.
func TestCancel(t *testing.T) {
	e := New(100, 100)
	e.OnEvent(down(1, 10, 10))
	e.OnEvent(move(1, 30, 30))
	e.OnEvent(cancel(1, 30, 30))

	if e.Live() != 0 || !committed(e).IsUniform(canvas.White) {
		t.Error("cancelled stroke left traces")
	}
	e.OnEvent(cancel(1, 30, 30))
}

// Clearing during a live stroke.
func TestClearLive(t *testing.T) {
	e := New(100, 100)
	e.OnEvent(down(1, 10, 10))
	e.OnEvent(move(1, 50, 50))
	e.Clear()

	if e.Live() != 0 || !committed(e).IsUniform(canvas.White) {
		t.Fatal("clear did not reset the engine")
	}
	e.OnEvent(up(1, 50, 50))
	if !e.Snapshot().IsUniform(canvas.White) {
		t.Error("up after clear painted something")
	}
}

func TestClear(t *testing.T) {
	e := New(60, 60)
	e.OnEvent(down(1, 10, 10))
	e.OnEvent(move(1, 40, 40))
	e.OnEvent(up(1, 40, 40))
	e.OnEvent(down(2, 50, 10))

	e.Clear()
	once := e.Snapshot()
	e.Clear()
	if !once.IsUniform(canvas.White) || !e.Snapshot().Equal(once) || e.Live() != 0 {
		t.Error("clear is not idempotent")
	}
}

func TestResize(t *testing.T) {
	e := New(50, 50)
	e.OnEvent(down(1, 10, 10))
	e.OnEvent(move(1, 40, 40))
	e.OnEvent(up(1, 40, 40))
	e.OnEvent(down(2, 5, 5))

	e.Resize(80, 30)
	if e.Live() != 0 {
		t.Error("resize kept strokes in progress")
	}
	e.OnEvent(move(1, 60, 20))
	e.OnEvent(up(2, 60, 20))
	e.Resize(80, 30)

	img := e.Snapshot()
	if img.Width != 80 || img.Height != 30 || !img.IsUniform(canvas.White) {
		t.Errorf("canvas after resize: %dx%d, uniform white %t", img.Width, img.Height, img.IsUniform(canvas.White))
	}

	defer func() {
		if recover() == nil {
			t.Error("Resize(0, 10) did not panic")
		}
	}()
	e.Resize(0, 10)
}

func TestStyleAccessors(t *testing.T) {
	e := New(10, 10)
	for _, c := range []canvas.ARGB{0, 0x12345678, canvas.White, 0xFFFF0000} {
		e.SetColor(c)
		if e.Color() != c {
			t.Errorf("SetColor(%s): Color() = %s", c, e.Color())
		}
	}
	for _, w := range []int{1, 2, 5, 100} {
		e.SetWidth(w)
		if e.Width() != w {
			t.Errorf("SetWidth(%d): Width() = %d", w, e.Width())
		}
	}
	if s := e.Style(); s.Width != 100 || s.Color != 0xFFFF0000 {
		t.Errorf("style %v", s)
	}

	defer func() {
		if recover() == nil {
			t.Error("SetWidth(0) did not panic")
		}
	}()
	e.SetWidth(0)
}

func TestStyleAppliesToLiveStrokes(t *testing.T) {
	e := New(100, 100)
	e.OnEvent(down(1, 10, 50))
	e.OnEvent(move(1, 40, 50))

	e.SetColor(0xFF0000FF)
	if c := e.Snapshot().ARGBAt(20, 50); c != 0xFF0000FF {
		t.Errorf("live stroke rendered as %s", c)
	}
	e.OnEvent(up(1, 40, 50))
	if c := committed(e).ARGBAt(20, 50); c != 0xFF0000FF {
		t.Errorf("stroke committed as %s", c)
	}
}

func TestSnapshotPure(t *testing.T) {
	e := New(100, 100)
	s, ok := testcases.Find("multi_crossing")
	if !ok {
		t.Fatal("scenario multi_crossing not found")
	}
	s.Replay(e)
	e.OnEvent(down(7, 20, 80))
	e.OnEvent(move(7, 60, 60))
	e.OnEvent(down(3, 80, 20))
	e.OnEvent(move(3, 20, 20))

	surface := committed(e).Clone()
	coords := map[int][]vec.Vec2{}
	e.registry.ForEach(func(pid int, l *stroke.Live) {
		coords[pid] = append([]vec.Vec2(nil), l.Path.Coords...)
	})
	style := e.Style()

	first := e.Snapshot()
	second := e.Snapshot()
	if !first.Equal(second) {
		t.Error("repeated snapshots differ")
	}
	if !committed(e).Equal(surface) {
		t.Error("snapshot changed the surface")
	}
	if e.Style() != style || e.Live() != len(coords) {
		t.Error("snapshot changed the engine state")
	}
	e.registry.ForEach(func(pid int, l *stroke.Live) {
		if len(l.Path.Coords) != len(coords[pid]) {
			t.Errorf("snapshot changed stroke %d", pid)
		}
	})

	// The returned image is owned by the caller.
	first.Fill(canvas.Black)
	if !e.Snapshot().Equal(second) {
		t.Error("snapshot shares memory with the engine")
	}
}

func TestRenderClipped(t *testing.T) {
	e := New(100, 100)
	s, ok := testcases.Find("single_off_canvas")
	if !ok {
		t.Fatal("scenario single_off_canvas not found")
	}
	s.Replay(e)
	e.OnEvent(down(1, -30, -30))
	e.OnEvent(move(1, 150, 150))

	full := e.Snapshot()

	small := canvas.NewImage(40, 30)
	e.Render(small)
	large := canvas.NewImage(130, 120)
	large.Fill(canvas.Transparent)
	e.Render(large)

	for y := range 30 {
		for x := range 40 {
			if small.ARGBAt(x, y) != full.ARGBAt(x, y) {
				t.Fatalf("small render differs at (%d,%d)", x, y)
			}
		}
	}
	for y := range 100 {
		for x := range 100 {
			if large.ARGBAt(x, y) != full.ARGBAt(x, y) {
				t.Fatalf("large render differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestScenariosBalanced(t *testing.T) {
	for _, sc := range testcases.List() {
		t.Run(sc.Name, func(t *testing.T) {
			style := sc.Style()
			e := New(sc.Width, sc.Height, WithColor(style.Color), WithWidth(int(style.Width)))
			sc.Replay(e)
			if e.Live() != 0 {
				t.Errorf("%d strokes left after replay", e.Live())
			}
			if !e.Snapshot().Equal(committed(e)) {
				t.Error("snapshot differs from the surface without live strokes")
			}
		})
	}
}

func TestLogger(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Error("Logger returned nil")
	}
}
