// seehuhn.de/go/sketch - a freehand drawing surface
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

import "math"

var dotCases = []Scenario{
	{
		Name: "small", Width: 64, Height: 64, BrushWidth: 5,
		Events: []Event{Down{}, Move{32, 32}, Up{}},
	},
	{
		Name: "large", Width: 64, Height: 64, BrushWidth: 30,
		Events: []Event{Down{}, Move{32, 32}, Up{}},
	},
	{
		Name: "subpixel", Width: 64, Height: 64, BrushWidth: 7,
		Events: []Event{Down{}, Move{20.3, 40.7}, Up{}},
	},
	{
		Name: "repeated", Width: 64, Height: 64, BrushWidth: 9,
		Events: []Event{Down{}, Move{32, 32}, Move{32, 32}, Move{32, 32}, Up{}},
	},
}

var lineCases = []Scenario{
	{
		Name: "horizontal", Width: 64, Height: 64, BrushWidth: 8,
		Events: []Event{Down{}, Move{10, 32}, Move{54, 32}, Up{}},
	},
	{
		Name: "vertical", Width: 64, Height: 64, BrushWidth: 3,
		Events: []Event{Down{}, Move{32.5, 8}, Move{32.5, 56}, Up{}},
	},
	{
		Name: "diagonal", Width: 64, Height: 64, BrushWidth: 5,
		Events: []Event{Down{}, Move{8, 56}, Move{56, 8}, Up{}},
	},
	{
		Name: "fine_steps", Width: 64, Height: 64, BrushWidth: 6,
		Events: concat(
			[]Event{Down{}, Move{8, 20}},
			Moves(8, 20, 56, 44, 40),
			[]Event{Up{}},
		),
	},
	{
		Name: "corner", Width: 64, Height: 64, BrushWidth: 10,
		Events: []Event{Down{}, Move{10, 50}, Move{32, 14}, Move{54, 50}, Up{}},
	},
}

var curveCases = []Scenario{
	{
		Name: "circle", Width: 64, Height: 64, BrushWidth: 4,
		Events: concat(
			[]Event{Down{}},
			arcMoves(32, 32, 20, 0, 2*math.Pi, 48),
			[]Event{Up{}},
		),
	},
	{
		Name: "spiral", Width: 96, Height: 96, BrushWidth: 3,
		Events: concat(
			[]Event{Down{}},
			spiralMoves(48, 48, 4, 40, 3, 150),
			[]Event{Up{}},
		),
	},
	{
		Name: "zigzag", Width: 96, Height: 64, BrushWidth: 5,
		Events: []Event{
			Down{},
			Move{8, 48}, Move{24, 16}, Move{40, 48}, Move{56, 16}, Move{72, 48}, Move{88, 16},
			Up{},
		},
	},
}

var dragCases = []Scenario{
	{
		Name: "hover_only", Width: 64, Height: 64, BrushWidth: 8,
		Events: Moves(8, 8, 56, 56, 12),
	},
	{
		Name: "leave_mid_stroke", Width: 64, Height: 64, BrushWidth: 6,
		Events: concat(
			[]Event{Down{}, Move{8, 16}},
			Moves(8, 16, 40, 16, 4),
			[]Event{Leave{}},
			Moves(40, 16, 40, 56, 4),
		),
	},
	{
		Name: "two_strokes", Width: 64, Height: 64, BrushWidth: 6,
		Events: []Event{
			Down{}, Move{8, 16}, Move{56, 16}, Up{},
			Move{56, 48},
			Down{}, Move{8, 48}, Move{56, 48}, Up{},
		},
	},
	{
		Name: "repeated_up", Width: 64, Height: 64, BrushWidth: 6,
		Events: []Event{
			Up{}, Leave{}, Down{}, Move{16, 32}, Move{48, 32}, Up{}, Up{}, Leave{},
			Move{48, 56},
		},
	},
	{
		Name: "down_twice", Width: 64, Height: 64, BrushWidth: 6,
		Events: []Event{
			Down{}, Move{8, 16}, Move{56, 16},
			Down{}, Move{8, 48}, Move{56, 48}, Up{},
		},
	},
}

var widthCases = []Scenario{
	{
		Name: "change_mid_stroke", Width: 96, Height: 64, BrushWidth: 2,
		Events: []Event{
			Down{}, Move{8, 32}, Move{32, 32},
			SetWidth{12}, Move{56, 32},
			SetWidth{24}, Move{80, 32},
			Up{},
		},
	},
	{
		Name: "thin", Width: 64, Height: 64, BrushWidth: 1,
		Events: concat(
			[]Event{Down{}},
			arcMoves(32, 32, 24, 0, math.Pi, 30),
			[]Event{Up{}},
		),
	},
}

var canvasCases = []Scenario{
	{
		Name: "crossing_edges", Width: 64, Height: 64, BrushWidth: 10,
		Events: []Event{Down{}, Move{-10, 20}, Move{74, 20}, Move{74, 44}, Move{-10, 44}, Up{}},
	},
	{
		Name: "corner_dot", Width: 64, Height: 64, BrushWidth: 20,
		Events: []Event{Down{}, Move{0, 0}, Up{}, Down{}, Move{64, 64}, Up{}},
	},
}

func concat(parts ...[]Event) []Event {
	var evs []Event
	for _, p := range parts {
		evs = append(evs, p...)
	}
	return evs
}

// arcMoves returns n+1 Move events along a circular arc, including both
// end points.
func arcMoves(cx, cy, r, phi0, phi1 float64, n int) []Event {
	evs := make([]Event, n+1)
	for i := range evs {
		phi := phi0 + (phi1-phi0)*float64(i)/float64(n)
		evs[i] = Move{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
	}
	return evs
}

// spiralMoves returns n+1 Move events along an Archimedean spiral.
func spiralMoves(cx, cy, rMin, rMax, turns float64, n int) []Event {
	evs := make([]Event, n+1)
	for i := range evs {
		t := float64(i) / float64(n)
		r := rMin + t*(rMax-rMin)
		phi := 2 * math.Pi * turns * t
		evs[i] = Move{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
	}
	return evs
}
