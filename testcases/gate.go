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

// gateCases exercise the jitter threshold of ten pixels.
var gateCases = []Scenario{
	{
		Name:   "threshold",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 20, 50),
			move(pt(1, 30, 50)),
			move(pt(1, 40, 50)),
			move(pt(1, 50, 50)),
			up(1, 50, 50),
		},
	},
	{
		Name:   "below_threshold",
		Width:  100,
		Height: 100,
		Steps: []Step{
			down(1, 20, 50),
			move(pt(1, 29.999, 59.999)),
			up(1, 29.999, 59.999),
		},
	},
	{
		Name:   "slow_drag",
		Width:  100,
		Height: 100,
		Steps: drag(1,
			10, 50, 13, 50, 16, 50, 19, 50, 22, 50, 25, 50, 28, 50, 31, 50,
			34, 50, 37, 50, 40, 50, 43, 50, 46, 50, 49, 50, 52, 50, 55, 50,
			58, 50, 61, 50, 64, 50, 67, 50, 70, 50),
	},
	{
		Name:   "vertical",
		Width:  100,
		Height: 100,
		Steps: drag(1,
			50, 10, 51, 20, 49, 30, 50, 40, 52, 50, 48, 60, 50, 70, 50, 80),
	},
}
