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

// styleCases vary the stroke colour and width.
var styleCases = []Scenario{
	{
		Name:        "wide",
		Width:       100,
		Height:      100,
		StrokeWidth: 20,
		Steps:       drag(1, 20, 20, 50, 30, 80, 20, 70, 60, 30, 80),
	},
	{
		Name:        "hairline",
		Width:       100,
		Height:      100,
		StrokeWidth: 1,
		Steps:       drag(1, 10, 10, 40, 25, 70, 10, 90, 40, 60, 90),
	},
	{
		Name:   "grey",
		Width:  100,
		Height: 100,
		Color:  0xFF808080,
		Steps:  drag(1, 10, 50, 30, 30, 50, 50, 70, 70, 90, 50),
	},
	{
		Name:        "translucent",
		Width:       100,
		Height:      100,
		Color:       0x80CC2200,
		StrokeWidth: 12,
		Steps: append(
			drag(1, 10, 30, 50, 30, 90, 30),
			drag(2, 10, 70, 50, 40, 90, 70)...),
	},
	{
		Name:        "wide_dot",
		Width:       100,
		Height:      100,
		StrokeWidth: 40,
		Steps:       drag(1, 50, 50, 50, 50),
	},
}
