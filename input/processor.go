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
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/internal/logging"
	"seehuhn.de/go/fingerpaint/stroke"
)

// DefaultTolerance is the default movement threshold in pixels.
const DefaultTolerance = 10

// Committer receives finished strokes.  [canvas.Surface] implements this
// interface.
type Committer interface {
	Stroke(p *path.Data, s canvas.Style)
}

// Processor drives a stroke registry from pointer events.
//
// Samples closer to the previous sample of the same contact than Tolerance
// in both coordinates are discarded, to suppress jitter.  Finished strokes
// are passed to Target.
type Processor struct {
	Registry *stroke.Registry
	Target   Committer

	// Style is used when a stroke is committed.
	Style canvas.Style

	// Tolerance is the movement threshold in pixels.  A sample is used if
	// it differs from the previous sample by at least Tolerance in x or
	// in y.
	Tolerance float64
}

// NewProcessor returns a processor with the default style and tolerance.
func NewProcessor(reg *stroke.Registry, target Committer) *Processor {
	return &Processor{
		Registry:  reg,
		Target:    target,
		Style:     canvas.DefaultStyle(),
		Tolerance: DefaultTolerance,
	}
}

// Handle dispatches ev to the handler for its kind.
// Unknown event kinds cause a panic.
func (p *Processor) Handle(ev Event) {
	switch ev.Kind {
	case Down:
		p.OnDown(ev)
	case Move:
		p.OnMove(ev)
	case Up:
		p.OnUp(ev)
	case Cancel:
		p.OnCancel(ev)
	default:
		panic(fmt.Sprintf("input: invalid event kind %d", int(ev.Kind)))
	}
}

// OnDown starts a stroke for the primary contact.  If the contact already
// has a live stroke, the stroke is restarted.
func (p *Processor) OnDown(ev Event) {
	ptr := ev.primary()
	if p.Registry.Begin(ptr.ID, ptr.X, ptr.Y) {
		logging.Get().Debug("duplicate pointer down, stroke restarted", "pid", ptr.ID)
	}
}

// OnMove extends the strokes of all listed contacts which moved far enough.
// Contacts without a live stroke are skipped.
func (p *Processor) OnMove(ev Event) {
	for _, ptr := range ev.Pointers {
		l := p.Registry.Lookup(ptr.ID)
		if l == nil {
			logging.Get().Debug("move for unknown pointer ignored", "pid", ptr.ID)
			continue
		}

		dx := math.Abs(ptr.X - float64(l.Last.X))
		dy := math.Abs(ptr.Y - float64(l.Last.Y))
		if dx >= p.Tolerance || dy >= p.Tolerance {
			p.Registry.Extend(ptr.ID, ptr.X, ptr.Y)
		}
	}
}

// OnUp ends the stroke of the primary contact and commits it to Target.
// Contacts without a live stroke are ignored.
func (p *Processor) OnUp(ev Event) {
	ptr := ev.primary()
	finished := p.Registry.End(ptr.ID)
	if finished == nil {
		logging.Get().Debug("up for unknown pointer ignored", "pid", ptr.ID)
		return
	}
	if p.Target != nil {
		p.Target.Stroke(finished, p.Style)
	}
}

// OnCancel discards the stroke of the primary contact without committing
// it.
func (p *Processor) OnCancel(ev Event) {
	ptr := ev.primary()
	if p.Registry.End(ptr.ID) == nil {
		logging.Get().Debug("cancel for unknown pointer ignored", "pid", ptr.ID)
	}
}
