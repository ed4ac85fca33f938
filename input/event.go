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

// Package input turns a stream of pointer events into strokes.
package input

import "fmt"

// Kind is the type of a pointer event.
type Kind int

// These are the supported event kinds.
const (
	Down Kind = iota + 1
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts the result of [Kind.String] back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k := Down; k <= Cancel; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// Pointer is the position of one contact, in floating point pixels
// relative to the top-left corner of the drawing area.
type Pointer struct {
	ID   int
	X, Y float64
}

// Event is a normalised pointer event.
//
// A Move event lists the current positions of any number of contacts.
// Down, Up and Cancel events refer to the contact Pointers[Primary].
type Event struct {
	Kind     Kind
	Pointers []Pointer
	Primary  int
}

// primary returns the contact which caused a Down, Up or Cancel event.
func (ev *Event) primary() Pointer {
	if ev.Primary < 0 || ev.Primary >= len(ev.Pointers) {
		panic(fmt.Sprintf("input: primary index %d out of range for %d pointers",
			ev.Primary, len(ev.Pointers)))
	}
	return ev.Pointers[ev.Primary]
}

// DownEvent returns a Down event for a single contact.
func DownEvent(pid int, x, y float64) Event {
	return Event{Kind: Down, Pointers: []Pointer{{ID: pid, X: x, Y: y}}}
}

// MoveEvent returns a Move event reporting the given contacts.
func MoveEvent(pointers ...Pointer) Event {
	return Event{Kind: Move, Pointers: pointers}
}

// UpEvent returns an Up event for a single contact.
func UpEvent(pid int, x, y float64) Event {
	return Event{Kind: Up, Pointers: []Pointer{{ID: pid, X: x, Y: y}}}
}

// CancelEvent returns a Cancel event for a single contact.
func CancelEvent(pid int, x, y float64) Event {
	return Event{Kind: Cancel, Pointers: []Pointer{{ID: pid, X: x, Y: y}}}
}
