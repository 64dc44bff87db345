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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.addPathEdges(p)
	r.scan(emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPathEdges walks p, flattens curves, and adds the edges of all
// subpaths. Open subpaths are closed implicitly.
func (r *Rasteriser) addPathEdges(p *path.Data) {
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(a.X, b.X), max(a.X, b.X)
		r.byMin, r.byMax = min(a.Y, b.Y), max(a.Y, b.Y)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, a.X, b.X)
	r.bxMax = max(r.bxMax, a.X, b.X)
	r.byMin = min(r.byMin, a.Y, b.Y)
	r.byMax = max(r.byMax, a.Y, b.Y)
}

// pixelBounds returns the integer pixel range touched by the collected
// edges, clamped to the clip rectangle.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.bboxEmpty || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan converts the collected edges into coverage, one scanline at a time,
// keeping a list of the edges which intersect the current row.
//
// For every pixel two values are accumulated: cover is the signed vertical
// extent of the edges crossing the pixel, area is the part of that extent
// weighted by the fraction of the pixel right of the crossing.  Walking the
// row from left to right, the coverage of pixel i is carry+area[i], after
// which cover[i] is added to the carry.
func (r *Rasteriser) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers, which are indexed by x-xMin.  It reports whether e intersects
// the scanline.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixLeft == pixRight {
		r.deposit(pixLeft, sign*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns; split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	if pixLeft < xMin {
		// The part left of the buffer only feeds the carry.
		yEnter := min(max(e.y0+dydx*(float64(xMin)-e.x0), yTop), yBot)
		lo, hi := yTop, yEnter
		if xa > xb {
			lo, hi = yEnter, yBot
		}
		if hi > lo {
			r.deposit(xMin-1, sign*float32(hi-lo), 0, xMin, xMax)
		}
	}
	for pix := max(pixLeft, xMin); pix <= min(pixRight, xMax-1); pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.deposit(pix, sign*float32(hi-lo), e.xAt((lo+hi)/2), xMin, xMax)
	}
	return true
}

// deposit adds a vertical extent v crossing pixel column pix at horizontal
// position x.  Crossings left of the buffer count as full coverage from the
// first pixel on; crossings right of it are irrelevant.
func (r *Rasteriser) deposit(pix int, v float32, x float64, xMin, xMax int) {
	if pix >= xMax {
		return
	}
	if pix < xMin {
		r.cover[0] += v
		r.area[0] += v
		return
	}
	i := pix - xMin
	r.cover[i] += v
	r.area[i] += v * float32(1-(x-float64(pix)))
}

func integrateNonZero(cover, area []float32) {
	var carry float32
	for i := range cover {
		c := carry + area[i]
		carry += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// trimZeros returns the part of row between the first and the last non-zero
// entry, together with its offset.  An all-zero row yields nil.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row) - 1
	for row[hi] == 0 {
		hi--
	}
	return row[lo : hi+1], lo
}

// flattenQuadratic replaces a quadratic Bézier curve by straight segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces a cubic Bézier curve by straight segments.  The
// number of segments follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}
