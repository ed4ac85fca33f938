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

// Package shake detects shake gestures in accelerometer data.  A host
// typically clears the canvas when a shake is reported.
package shake

// StandardGravity is the acceleration due to gravity at the earth's
// surface, in m/s².
const StandardGravity = 9.80665

// DefaultThreshold is the default value of Detector.Threshold.
const DefaultThreshold = 100000

// Detector reports a shake when the squared magnitude of the acceleration
// vector jumps.  For consecutive samples with squared magnitudes last and
// current, the score is current*(current-last), and a shake is reported
// when the score exceeds Threshold.
//
// While suspended, for example because the host shows a dialog, samples
// are ignored entirely.
type Detector struct {
	Threshold float64

	current, last float64
	score         float64
	suspended     bool
}

// NewDetector returns a detector with the default threshold, in the state
// of a device at rest.
func NewDetector() *Detector {
	d := &Detector{Threshold: DefaultThreshold}
	d.Reset()
	return d
}

// Reset restores the initial state.  The threshold and the suspension
// state are not changed.
func (d *Detector) Reset() {
	d.current = StandardGravity
	d.last = StandardGravity
	d.score = 0
}

// Sample processes one accelerometer reading, in m/s², and reports whether
// it completes a shake.
func (d *Detector) Sample(x, y, z float64) bool {
	if d.suspended {
		return false
	}
	d.last = d.current
	d.current = x*x + y*y + z*z
	d.score = d.current * (d.current - d.last)
	return d.score > d.Threshold
}

// Score returns the score of the most recent sample.
func (d *Detector) Score() float64 {
	return d.score
}

// Suspend stops the detector from processing samples.
func (d *Detector) Suspend() {
	d.suspended = true
}

// Resume undoes the effect of Suspend.
func (d *Detector) Resume() {
	d.suspended = false
}

// Suspended reports whether the detector is suspended.
func (d *Detector) Suspended() bool {
	return d.suspended
}
