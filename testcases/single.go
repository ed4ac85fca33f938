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

// singleCases contains scenarios with one finger at a time.
var singleCases = []Scenario{
	{
		Name:   "tap",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 50, 50),
			up(1, 50, 50),
		},
	},
	{
		Name:   "drag",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 50),
			move(pt(1, 25, 50)),
			up(1, 40, 50),
		},
	},
	{
		Name:   "jitter",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 50, 50),
			move(pt(1, 55, 54)),
			move(pt(1, 52, 53)),
			up(1, 52, 53),
		},
	},
	{
		Name:   "cancel",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 10),
			move(pt(1, 30, 30)),
			cancel(1, 30, 30),
		},
	},
	{
		Name:   "clear_live",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 10, 10),
			move(pt(1, 50, 50)),
			ClearStep{},
			up(1, 50, 50),
		},
	},
	{
		Name:   "clear_then_draw",
		Width:  100,
		Height: 100,
		Steps: append(append(
			drag(1, 10, 10, 30, 30, 50, 50, 70, 70),
			ClearStep{}),
			drag(1, 10, 90, 30, 70, 50, 50)...),
	},
	{
		Name:   "zigzag",
		Width:  100,
		Height: 100,
		Steps: drag(1,
			10, 20, 25, 80, 40, 20, 55, 80, 70, 20, 85, 80, 90, 50),
	},
	{
		Name:   "spiral",
		Width:  100,
		Height: 100,
		Steps: drag(1,
			50, 50, 62, 50, 62, 62, 38, 62, 38, 38, 74, 38, 74, 74,
			26, 74, 26, 26, 86, 26, 86, 86, 14, 86, 14, 14),
	},
	{
		Name:   "off_canvas",
		Width:  100,
		Height: 100,
		Steps: drag(1,
			-20, 50, 0, 45, 30, 40, 60, 60, 90, 55, 130, 50),
	},
}
