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

// Package testcases defines scripted pointer sessions for the drawing
// tests, together with a reference model of the strokes they produce.
//
// The scenarios are shared by the package tests and by the commands in the
// subdirectories, which export them to JSON and render reference images
// with an independent PDF renderer.
package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// Scenario is a sequence of input events applied to a blank canvas.
type Scenario struct {
	Name       string  // lowercase a-z and _ only
	Width      int     // canvas width in pixels
	Height     int     // canvas height in pixels
	BrushWidth float64 // initial brush width
	Events     []Event
}

// Event is a single input event.
type Event interface {
	isEvent()
}

// Down presses the pointer button.
type Down struct{}

// Up releases the pointer button.
type Up struct{}

// Leave moves the pointer out of the drawing area.
type Leave struct{}

// Move moves the pointer to (X, Y).
type Move struct {
	X, Y float64
}

// SetWidth changes the brush width.
type SetWidth struct {
	Width float64
}

func (Down) isEvent()     {}
func (Up) isEvent()       {}
func (Leave) isEvent()    {}
func (Move) isEvent()     {}
func (SetWidth) isEvent() {}

// Segment is a straight piece of a stroke, drawn with round caps.  A
// segment with A == B is a dot.
type Segment struct {
	A, B  vec.Vec2
	Width float64
}

// Segments returns the segments which a drawing session must paint, in
// order, when events are applied starting with the given brush width.
func Segments(width float64, events []Event) []Segment {
	var segs []Segment
	var last vec.Vec2
	dragging, hasLast := false, false
	for _, ev := range events {
		switch ev := ev.(type) {
		case Down:
			dragging, hasLast = true, false
		case Up, Leave:
			dragging, hasLast = false, false
		case SetWidth:
			width = ev.Width
		case Move:
			if !dragging {
				continue
			}
			p := vec.Vec2{X: ev.X, Y: ev.Y}
			from := p
			if hasLast {
				from = last
			}
			segs = append(segs, Segment{A: from, B: p, Width: width})
			last, hasLast = p, true
		}
	}
	return segs
}

// Moves returns Move events along the straight line from (x0,y0) to
// (x1,y1), in n equal steps, excluding the start point.
func Moves(x0, y0, x1, y1 float64, n int) []Event {
	evs := make([]Event, n)
	for i := range n {
		t := float64(i+1) / float64(n)
		evs[i] = Move{X: x0 + t*(x1-x0), Y: y0 + t*(y1-y0)}
	}
	return evs
}
