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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/fingerpaint/canvas"
	"seehuhn.de/go/fingerpaint/input"
)

// ErrBadScript is returned by Decode for malformed event scripts.
var ErrBadScript = errors.New("malformed event script")

type jsonFile struct {
	Scenarios []jsonScenario `json:"scenarios"`
}

type jsonScenario struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Color       string     `json:"color,omitempty"`
	StrokeWidth int        `json:"stroke_width,omitempty"`
	Steps       []jsonStep `json:"steps"`
}

type jsonStep struct {
	Kind     string        `json:"kind"`
	Pointers []jsonPointer `json:"pointers,omitempty"`
	Primary  int           `json:"primary,omitempty"`
}

type jsonPointer struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

const kindClear = "clear"

// Limits for the canvas size of decoded scripts.
const (
	maxCanvasSide   = 16384
	maxCanvasPixels = 1 << 26
)

// Encode writes the scenarios to w as an indented JSON event script.
func Encode(w io.Writer, scenarios []Scenario) error {
	var out jsonFile
	for _, sc := range scenarios {
		js := jsonScenario{
			Name:        sc.Name,
			Width:       sc.Width,
			Height:      sc.Height,
			StrokeWidth: sc.StrokeWidth,
		}
		if sc.Color != 0 {
			if sc.Color.A() == 0 {
				return fmt.Errorf("%s: invisible colour %s", sc.Name, sc.Color)
			}
			js.Color = sc.Color.String()
		}
		for i, step := range sc.Steps {
			switch step := step.(type) {
			case EventStep:
				jst := jsonStep{Kind: step.Kind.String(), Primary: step.Primary}
				for _, p := range step.Pointers {
					jst.Pointers = append(jst.Pointers, jsonPointer{ID: p.ID, X: p.X, Y: p.Y})
				}
				js.Steps = append(js.Steps, jst)
			case ClearStep:
				js.Steps = append(js.Steps, jsonStep{Kind: kindClear})
			default:
				return fmt.Errorf("%s: step %d: unsupported step type %T", sc.Name, i, step)
			}
		}
		out.Scenarios = append(out.Scenarios, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Decode reads an event script written by Encode.  Errors caused by the
// contents of the script wrap ErrBadScript.
func Decode(r io.Reader) ([]Scenario, error) {
	var in jsonFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScript, err)
	}

	res := make([]Scenario, 0, len(in.Scenarios))
	for _, js := range in.Scenarios {
		sc, err := fromJSON(js)
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %q: %v", ErrBadScript, js.Name, err)
		}
		res = append(res, sc)
	}
	return res, nil
}

func fromJSON(js jsonScenario) (Scenario, error) {
	sc := Scenario{
		Name:        js.Name,
		Width:       js.Width,
		Height:      js.Height,
		StrokeWidth: js.StrokeWidth,
	}
	if sc.Width <= 0 || sc.Height <= 0 ||
		sc.Width > maxCanvasSide || sc.Height > maxCanvasSide ||
		sc.Width*sc.Height > maxCanvasPixels {
		return sc, fmt.Errorf("invalid canvas size %dx%d", sc.Width, sc.Height)
	}
	if sc.StrokeWidth < 0 {
		return sc, fmt.Errorf("invalid stroke width %d", sc.StrokeWidth)
	}
	if js.Color != "" {
		c, err := parseColor(js.Color)
		if err != nil {
			return sc, err
		}
		if c.A() == 0 {
			// Zero would select the default colour.
			return sc, fmt.Errorf("invisible colour %q", js.Color)
		}
		sc.Color = c
	}

	for i, jst := range js.Steps {
		if jst.Kind == kindClear {
			sc.Steps = append(sc.Steps, ClearStep{})
			continue
		}
		kind, err := input.ParseKind(jst.Kind)
		if err != nil {
			return sc, fmt.Errorf("step %d: %w", i, err)
		}
		ev := input.Event{Kind: kind, Primary: jst.Primary}
		for _, p := range jst.Pointers {
			ev.Pointers = append(ev.Pointers, input.Pointer{ID: p.ID, X: p.X, Y: p.Y})
		}
		if kind != input.Move && (ev.Primary < 0 || ev.Primary >= len(ev.Pointers)) {
			return sc, fmt.Errorf("step %d: primary index %d out of range", i, ev.Primary)
		}
		sc.Steps = append(sc.Steps, EventStep{ev})
	}
	return sc, nil
}

// parseColor parses colours of the form "#AARRGGBB".
func parseColor(s string) (canvas.ARGB, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 8 {
		return 0, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q", s)
	}
	return canvas.ARGB(v), nil
}
