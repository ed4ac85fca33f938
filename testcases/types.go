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

// Package testcases defines pointer event scripts for testing the
// painting engine.  The same scripts drive the unit tests, the reference
// image generator, and the doodle command.
package testcases

import (
	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/input"
)

// Host is the part of the engine which a scenario drives.
type Host interface {
	OnEvent(ev input.Event)
	Clear()
}

// Step is one action of a scenario.
type Step interface {
	Apply(h Host)
}

// EventStep delivers a pointer event.
type EventStep struct {
	input.Event
}

// Apply implements the [Step] interface.
func (s EventStep) Apply(h Host) {
	h.OnEvent(s.Event)
}

// ClearStep clears the canvas, as triggered by a shake of the device.
type ClearStep struct{}

// Apply implements the [Step] interface.
func (ClearStep) Apply(h Host) {
	h.Clear()
}

// Scenario is a scripted drawing session.
type Scenario struct {
	Name        string      // lowercase a-z, 0-9 and _ only
	Width       int         // canvas width in pixels
	Height      int         // canvas height in pixels
	Color       canvas.ARGB // stroke colour (zero value means opaque black)
	StrokeWidth int         // stroke width in pixels (zero value means 5)
	Steps       []Step
}

// Style returns the stroke style of the scenario, with defaults applied.
func (s *Scenario) Style() canvas.Style {
	style := canvas.DefaultStyle()
	if s.Color != 0 {
		style.Color = s.Color
	}
	if s.StrokeWidth != 0 {
		style.Width = float64(s.StrokeWidth)
	}
	return style
}

// Replay applies all steps of the scenario to h.
func (s *Scenario) Replay(h Host) {
	for _, step := range s.Steps {
		step.Apply(h)
	}
}

func pt(pid int, x, y float64) input.Pointer {
	return input.Pointer{ID: pid, X: x, Y: y}
}

func down(pid int, x, y float64) Step {
	return EventStep{input.DownEvent(pid, x, y)}
}

func move(pointers ...input.Pointer) Step {
	return EventStep{input.MoveEvent(pointers...)}
}

func up(pid int, x, y float64) Step {
	return EventStep{input.UpEvent(pid, x, y)}
}

func cancel(pid int, x, y float64) Step {
	return EventStep{input.CancelEvent(pid, x, y)}
}

// drag returns a down event at the first point, moves through the
// remaining points, and an up event at the last point.
func drag(pid int, pts ...float64) []Step {
	steps := []Step{down(pid, pts[0], pts[1])}
	for i := 2; i+1 < len(pts); i += 2 {
		steps = append(steps, move(pt(pid, pts[i], pts[i+1])))
	}
	n := len(pts)
	return append(steps, up(pid, pts[n-2], pts[n-1]))
}
