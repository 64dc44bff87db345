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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// segment is a flattened piece of a stroked subpath, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// Stroke paints the outline of p with line width Width.  Caps and joins
// are round.
//
// The outline is assembled from simple pieces: one quadrilateral per
// segment, plus a disk at every join and at both ends of open subpaths.  All pieces are given
// the same orientation and are filled together with the nonzero winding
// rule, so that regions covered by several pieces are painted once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.polys = r.polys[:0]
	r.polyStart = r.polyStart[:0]

	var cur, start vec.Vec2
	open := false  // a subpath has been started
	drawn := false // the subpath contains a drawing command
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.strokeSubpath(start, drawn, false)
			}
			cur = p.Coords[k]
			start = cur
			r.segs = r.segs[:0]
			open, drawn = true, false
			k++
		case path.CmdLineTo:
			if open {
				r.addSegment(cur, p.Coords[k])
				drawn = true
			}
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addSegment)
				drawn = true
			}
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
				drawn = true
			}
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open {
				r.addSegment(cur, start)
				r.strokeSubpath(start, true, true)
				r.segs = r.segs[:0]
				open, drawn = false, false
			}
			cur = start
		}
	}
	if open {
		r.strokeSubpath(start, drawn, false)
	}

	if len(r.polyStart) == 0 {
		return
	}
	r.beginEdges()
	for i, s := range r.polyStart {
		end := len(r.polys)
		if i+1 < len(r.polyStart) {
			end = r.polyStart[i+1]
		}
		poly := r.polys[s:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

// addSegment appends a stroke segment, dropping pieces without direction.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeSubpath adds the outline pieces of the subpath in r.segs.
// A subpath which was drawn but has no segment of positive length is a
// single point at start and becomes a disk.
func (r *Rasteriser) strokeSubpath(start vec.Vec2, drawn, closed bool) {
	d := r.Width / 2
	segs := r.segs
	if len(segs) == 0 {
		if drawn {
			r.addDisk(start, d)
		}
		return
	}

	for i := range segs {
		s := &segs[i]
		r.addPolygon(
			s.A.Add(s.N.Mul(d)),
			s.B.Add(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)),
			s.A.Sub(s.N.Mul(d)),
		)
		if i > 0 {
			r.addJoin(&segs[i-1], s, d)
		}
	}

	first, last := &segs[0], &segs[len(segs)-1]
	if closed {
		r.addJoin(last, first, d)
		return
	}
	r.addDisk(first.A, d)
	r.addDisk(last.B, d)
}

// addJoin adds the corner geometry where segment a ends and b begins.
// Straight continuations need none.
func (r *Rasteriser) addJoin(a, b *segment, d float64) {
	cos := a.T.Dot(b.T)
	sin := a.T.X*b.T.Y - a.T.Y*b.T.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}
	r.addDisk(a.B, d)
}

// addDisk adds a polygon approximating the disk of the given radius.
// The vertex count follows from Flatness; the polygon radius is enlarged
// slightly so that its area equals the area of the disk.
func (r *Rasteriser) addDisk(center vec.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}))

	n := minDiskVertices
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}
	alpha := 2 * math.Pi / float64(n)
	rr := radius * math.Sqrt(alpha/math.Sin(alpha))

	s := len(r.polys)
	for i := range n {
		sin, cos := math.Sincos(float64(i) * alpha)
		r.polys = append(r.polys, center.Add(vec.Vec2{X: rr * cos, Y: rr * sin}))
	}
	r.closePolygon(s)
}

// addPolygon adds a stroke outline piece.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	s := len(r.polys)
	r.polys = append(r.polys, pts...)
	r.closePolygon(s)
}

// closePolygon finishes the piece starting at r.polys[s].  Pieces are
// normalised to positive signed area; degenerate pieces are dropped.
func (r *Rasteriser) closePolygon(s int) {
	poly := r.polys[s:]
	var area float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	switch {
	case len(poly) < 3 || area == 0:
		r.polys = r.polys[:s]
		return
	case area < 0:
		slices.Reverse(poly)
	}
	r.polyStart = append(r.polyStart, s)
}

// minDiskVertices is the smallest number of vertices used for a disk.
const minDiskVertices = 8
