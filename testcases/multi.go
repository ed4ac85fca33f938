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

package testcases

// multiCases contains scenarios with several fingers on the canvas.
var multiCases = []Scenario{
	{
		Name:   "two_strokes",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 10),
			down(2, 90, 10),
			move(pt(1, 25, 10), pt(2, 75, 10)),
			up(2, 75, 10),
			move(pt(1, 40, 10)),
			up(1, 40, 10),
		},
	},
	{
		Name:   "crossing",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 10),
			down(2, 90, 10),
			down(3, 50, 90),
			move(pt(1, 30, 30), pt(2, 70, 30), pt(3, 50, 70)),
			move(pt(1, 50, 50), pt(2, 50, 50), pt(3, 50, 50)),
			move(pt(1, 70, 70), pt(2, 30, 70), pt(3, 50, 30)),
			up(3, 50, 30),
			move(pt(1, 90, 90), pt(2, 10, 90)),
			up(1, 90, 90),
			up(2, 10, 90),
		},
	},
	{
		Name:   "reused_id",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 20),
			move(pt(1, 50, 20)),
			// the up event for the first stroke was lost
			down(1, 10, 80),
			move(pt(1, 50, 80)),
			move(pt(1, 90, 80)),
			up(1, 90, 80),
		},
	},
	{
		Name:   "cancel_one",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 30),
			down(2, 10, 70),
			move(pt(1, 50, 30), pt(2, 50, 70)),
			move(pt(1, 90, 30), pt(2, 90, 70)),
			cancel(2, 90, 70),
			up(1, 90, 30),
		},
	},
	{
		Name:   "large",
		Width:  512,
		Height: 512,
		Steps: []Step{
			down(1, 20, 20),
			down(2, 492, 20),
			move(pt(1, 120, 140), pt(2, 392, 140)),
			move(pt(1, 220, 260), pt(2, 292, 260)),
			move(pt(1, 320, 380), pt(2, 192, 380)),
			move(pt(1, 420, 480), pt(2, 92, 480)),
			up(1, 420, 480),
			up(2, 92, 480),
		},
	},
}
