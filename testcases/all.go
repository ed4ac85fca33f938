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

import (
	"maps"
	"slices"
)

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]Scenario{
	"single": singleCases,
	"multi":  multiCases,
	"gate":   gateCases,
	"style":  styleCases,
}

// List returns all scenarios, ordered by category, with the category
// prepended to each name.
func List() []Scenario {
	var res []Scenario
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, sc := range All[category] {
			sc.Name = category + "_" + sc.Name
			res = append(res, sc)
		}
	}
	return res
}

// Find returns the scenario with the given prefixed name, as used by
// [List].
func Find(name string) (Scenario, bool) {
	for _, sc := range List() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}
