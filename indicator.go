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

package sketch

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/surface"
)

// DefaultOutline is the line width of the indicator circle.
const DefaultOutline = 1.0

// BrushIndicator shows the size of the brush as a circle around the
// pointer.  It owns an overlay surface which holds nothing but the most
// recent circle.
type BrushIndicator struct {
	// Outline is the line width used to draw the circle.  It does not
	// depend on the brush width.
	Outline float64

	surface *surface.Surface
	brush   *Brush
	r       *raster.Rasteriser
	ring    path.Data
}

// NewBrushIndicator returns an indicator which draws onto s.
func NewBrushIndicator(s *surface.Surface, b *Brush) *BrushIndicator {
	return &BrushIndicator{
		Outline: DefaultOutline,
		surface: s,
		brush:   b,
		r:       raster.NewRasteriser(s.Clip()),
	}
}

// Surface returns the overlay surface.
func (bi *BrushIndicator) Surface() *surface.Surface {
	return bi.surface
}

// Update erases the overlay and draws a circle of radius Width/2 around
// (x, y), in the brush colour.  The circle is a ring of width Outline,
// centred on the radius.
func (bi *BrushIndicator) Update(x, y float64) {
	bi.surface.Clear()

	rad := bi.brush.Width / 2
	if math.IsNaN(rad) || rad <= 0 {
		return
	}
	c := vec.Vec2{X: x, Y: y}
	bi.ring.Cmds = bi.ring.Cmds[:0]
	bi.ring.Coords = bi.ring.Coords[:0]
	addCircle(&bi.ring, c, rad+bi.Outline/2, 1)
	if inner := rad - bi.Outline/2; inner > 0 {
		addCircle(&bi.ring, c, inner, -1)
	}

	bi.surface.Paint(bi.brush.Color, func(emit raster.EmitFunc) {
		bi.r.FillNonZero(&bi.ring, emit)
	})
}

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// addCircle appends a closed circle to p.  With dir = -1 the circle runs
// the opposite way round, which cuts a hole under the nonzero rule.
func addCircle(p *path.Data, c vec.Vec2, r, dir float64) {
	k := kappa * r
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dir*dy}
	}

	p.MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		Close()
}
