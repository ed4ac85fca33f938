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

package input

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/internal/logging"
	"seehuhn.de/go/fingerpaint/stroke"
)

type committed struct {
	path  *path.Data
	style canvas.Style
}

type recorder struct {
	strokes []committed
}

func (r *recorder) Stroke(p *path.Data, s canvas.Style) {
	r.strokes = append(r.strokes, committed{p, s})
}

func newTestProcessor() (*Processor, *recorder) {
	rec := &recorder{}
	return NewProcessor(stroke.NewRegistry(), rec), rec
}

func segments(p *Processor, pid int) int {
	l := p.Registry.Lookup(pid)
	if l == nil {
		return -1
	}
	return stroke.Segments(l.Path)
}

func TestTapCommitsDot(t *testing.T) {
	p, rec := newTestProcessor()
	p.Handle(DownEvent(1, 50, 50))
	p.Handle(UpEvent(1, 50, 50))

	if p.Registry.Len() != 0 {
		t.Errorf("registry has %d entries after up", p.Registry.Len())
	}
	if len(rec.strokes) != 1 {
		t.Fatalf("got %d commits, want 1", len(rec.strokes))
	}
	c := rec.strokes[0]
	if len(c.path.Cmds) != 1 || c.path.Cmds[0] != path.CmdMoveTo {
		t.Errorf("committed path %v, want a single MoveTo", c.path.Cmds)
	}
	if c.style != canvas.DefaultStyle() {
		t.Errorf("committed with style %v", c.style)
	}
}

func TestMoveGate(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		extend bool
	}{
		{"dx=10", 60, 50, true},
		{"dx=-10", 40, 50, true},
		{"dy=10", 50, 60, true},
		{"dx=9.999 dy=9.999", 59.999, 59.999, false},
		{"dx=-9.999 dy=-9.999", 40.001, 40.001, false},
		{"no move", 50, 50, false},
		{"dx=15", 65, 50, true},
		{"diagonal 9", 59, 59, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestProcessor()
			p.Handle(DownEvent(1, 50, 50))
			p.Handle(MoveEvent(Pointer{ID: 1, X: tc.x, Y: tc.y}))

			want := 0
			if tc.extend {
				want = 1
			}
			if got := segments(p, 1); got != want {
				t.Errorf("got %d segments, want %d", got, want)
			}
			last := p.Registry.Lookup(1).Last
			if tc.extend && (last.X != int(tc.x) || last.Y != int(tc.y)) {
				t.Errorf("last point %v not updated", last)
			}
			if !tc.extend && (last.X != 50 || last.Y != 50) {
				t.Errorf("last point moved to %v", last)
			}
		})
	}
}

func TestJitterSuppressed(t *testing.T) {
	p, rec := newTestProcessor()
	p.Handle(DownEvent(1, 50, 50))
	p.Handle(MoveEvent(Pointer{ID: 1, X: 55, Y: 54}))
	p.Handle(MoveEvent(Pointer{ID: 1, X: 52, Y: 53}))
	if got := segments(p, 1); got != 0 {
		t.Errorf("jitter added %d segments", got)
	}
	p.Handle(UpEvent(1, 52, 53))

	if len(rec.strokes) != 1 || len(rec.strokes[0].path.Cmds) != 1 {
		t.Fatalf("expected a single dot, got %v", rec.strokes)
	}
}

func TestCustomTolerance(t *testing.T) {
	p, _ := newTestProcessor()
	p.Tolerance = 3
	p.Handle(DownEvent(1, 50, 50))
	p.Handle(MoveEvent(Pointer{ID: 1, X: 53, Y: 50}))
	if got := segments(p, 1); got != 1 {
		t.Errorf("got %d segments, want 1", got)
	}
}

func TestTwoPointers(t *testing.T) {
	p, rec := newTestProcessor()
	p.Handle(DownEvent(1, 10, 10))
	p.Handle(DownEvent(2, 90, 10))
	p.Handle(MoveEvent(Pointer{ID: 1, X: 25, Y: 10}, Pointer{ID: 2, X: 75, Y: 10}))
	p.Handle(UpEvent(2, 75, 10))

	if len(rec.strokes) != 1 || rec.strokes[0].path.Coords[0].X != 90 {
		t.Fatalf("after first up: %d commits", len(rec.strokes))
	}
	if p.Registry.Len() != 1 || segments(p, 1) != 1 {
		t.Fatalf("stroke 1 disturbed: len=%d segments=%d", p.Registry.Len(), segments(p, 1))
	}

	p.Handle(MoveEvent(Pointer{ID: 1, X: 40, Y: 10}))
	p.Handle(UpEvent(1, 40, 10))
	if len(rec.strokes) != 2 || stroke.Segments(rec.strokes[1].path) != 2 {
		t.Fatalf("after second up: %d commits", len(rec.strokes))
	}
	if p.Registry.Len() != 0 {
		t.Error("registry not empty")
	}
}

func TestCancel(t *testing.T) {
	p, rec := newTestProcessor()
	p.Handle(DownEvent(1, 10, 10))
	p.Handle(MoveEvent(Pointer{ID: 1, X: 30, Y: 30}))
	p.Handle(CancelEvent(1, 30, 30))

	if p.Registry.Len() != 0 || len(rec.strokes) != 0 {
		t.Errorf("cancel left %d strokes and %d commits", p.Registry.Len(), len(rec.strokes))
	}

	// cancel without live strokes is a no-op
	p.Handle(CancelEvent(1, 30, 30))
}

func TestUnknownPointers(t *testing.T) {
	p, rec := newTestProcessor()
	p.Handle(MoveEvent(Pointer{ID: 5, X: 100, Y: 100}))
	p.Handle(UpEvent(5, 100, 100))
	if p.Registry.Len() != 0 || len(rec.strokes) != 0 {
		t.Error("events for unknown pointers changed state")
	}

	p.Handle(DownEvent(1, 0, 0))
	p.Handle(MoveEvent(Pointer{ID: 5, X: 100, Y: 100}, Pointer{ID: 1, X: 20, Y: 0}))
	if segments(p, 1) != 1 || p.Registry.Lookup(5) != nil {
		t.Error("unknown pointer in a move event affected other strokes")
	}
}

func TestDuplicateDownResets(t *testing.T) {
	p, rec := newTestProcessor()
	p.Handle(DownEvent(1, 10, 10))
	p.Handle(MoveEvent(Pointer{ID: 1, X: 30, Y: 10}))
	p.Handle(DownEvent(1, 60, 60))
	if segments(p, 1) != 0 {
		t.Error("duplicate down did not reset the stroke")
	}
	p.Handle(UpEvent(1, 60, 60))
	if len(rec.strokes) != 1 || rec.strokes[0].path.Coords[0].X != 60 {
		t.Error("reset stroke not committed from the new start")
	}
}

func TestPrimaryIndex(t *testing.T) {
	p, _ := newTestProcessor()
	ev := Event{
		Kind:     Down,
		Pointers: []Pointer{{ID: 1, X: 10, Y: 10}, {ID: 2, X: 50, Y: 50}},
		Primary:  1,
	}
	p.Handle(ev)
	if p.Registry.Lookup(2) == nil || p.Registry.Lookup(1) != nil {
		t.Error("down did not use the primary pointer")
	}
}

func TestPreconditions(t *testing.T) {
	cases := map[string]Event{
		"primary too large": {Kind: Down, Pointers: []Pointer{{ID: 1}}, Primary: 1},
		"negative primary":  {Kind: Up, Pointers: []Pointer{{ID: 1}}, Primary: -1},
		"no pointers":       {Kind: Cancel},
		"zero kind":         {Pointers: []Pointer{{ID: 1}}},
		"unknown kind":      {Kind: 17, Pointers: []Pointer{{ID: 1}}},
	}
	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			p, _ := newTestProcessor()
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			p.Handle(ev)
		})
	}
}

func TestAnomaliesLogged(t *testing.T) {
	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer logging.Set(nil)

	p, _ := newTestProcessor()
	p.Handle(UpEvent(8, 0, 0))
	p.Handle(DownEvent(1, 0, 0))
	p.Handle(DownEvent(1, 0, 0))

	out := buf.String()
	for _, msg := range []string{"up for unknown pointer", "pid=8", "duplicate pointer down"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output %q lacks %q", out, msg)
		}
	}
}

func TestParseKind(t *testing.T) {
	for k := Down; k <= Cancel; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("hover"); err == nil {
		t.Error("ParseKind accepted an unknown kind")
	}
}
