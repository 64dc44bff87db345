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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is the fraction of a pixel's area inside the painted shape, from
// 0 to 1. Results are delivered row by row through an [EmitFunc]; the caller
// decides how coverage is composited onto pixels.
package raster

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EmitFunc receives the coverage of one pixel row. Only the non-zero part of
// the row is passed: coverage[i] belongs to pixel (xMin+i, y). The slice is
// owned by the Rasteriser and is valid only during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser fills and strokes paths. One instance should be reused for many
// paths; its internal buffers grow as needed and are never released, so that
// steady-state drawing does not allocate.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. It must be non-singular.
	CTM matrix.Matrix

	// Clip is the device-space output rectangle, with integer coordinates.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, allowed when
	// curves and arcs are replaced by straight segments.
	Flatness float64

	// Width is the stroke width in user-space units. Must be positive.
	Width float64

	edges  []edge
	active []int
	cover  []float32 // per-pixel change of the winding carry
	area   []float32 // per-pixel signed area right of the crossing edges

	bboxEmpty                  bool
	bxMin, bxMax, byMin, byMax float64

	segs      []segment  // flattened segments of the current subpath
	polys     []vec.Vec2 // stroke outline pieces, stored back to back
	polyStart []int      // start index of each piece in polys
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.segs = r.segs[:0]
	r.polys = r.polys[:0]
	r.polyStart = r.polyStart[:0]
}

// toDevice applies the full CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of v after applying the linear part of
// the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}.Length()
}

const (
	// defaultFlatness matches the usual PDF viewer setting; deviations of
	// a quarter pixel are not visible.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the vertical extent below which an edge
	// cannot change coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a stroke segment has
	// no direction and is dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the cross product of unit tangents below
	// which two segments are treated as one straight line.
	collinearityThreshold = 1e-6
)
