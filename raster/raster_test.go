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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// grid collects emitted coverage into a dense w×h buffer.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *grid) sum() float64 {
	var s float64
	for _, c := range g.pix {
		s += float64(c)
	}
	return s
}

func (g *grid) clip() rect.Rect {
	return rect.Rect{URx: float64(g.w), URy: float64(g.h)}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	g := newGrid(10, 1)
	r := NewRasteriser(g.clip())
	r.FillNonZero(triangle, g.emit)

	const epsilon = 1e-6
	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := g.at(x, 0); math.Abs(float64(got-want)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, got)
		}
	}
}

func TestRectangleInteriorIsOpaque(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(pt(2, 2)).
		LineTo(pt(8, 2)).
		LineTo(pt(8, 8)).
		LineTo(pt(2, 8)).
		Close()

	g := newGrid(10, 10)
	r := NewRasteriser(g.clip())
	r.FillNonZero(square, g.emit)

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 8 && y >= 2 && y < 8
			got := g.at(x, y)
			if inside && got < 0.999 {
				t.Errorf("pixel (%d,%d): coverage %.4f, want 1", x, y, got)
			}
			if !inside && got != 0 {
				t.Errorf("pixel (%d,%d): coverage %.4f, want 0", x, y, got)
			}
		}
	}
}

func TestFillNonZero(t *testing.T) {
	// two nested squares with the same orientation
	same := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).Close().
		MoveTo(pt(3, 3)).LineTo(pt(7, 3)).LineTo(pt(7, 7)).LineTo(pt(3, 7)).Close()

	g := newGrid(10, 10)
	r := NewRasteriser(g.clip())
	r.FillNonZero(same, g.emit)
	if got := g.at(5, 5); got < 0.999 {
		t.Errorf("same orientation: centre coverage %.4f, want 1", got)
	}

	// the inner square reversed cuts a hole
	hole := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).Close().
		MoveTo(pt(3, 3)).LineTo(pt(3, 7)).LineTo(pt(7, 7)).LineTo(pt(7, 3)).Close()

	g = newGrid(10, 10)
	r.FillNonZero(hole, g.emit)
	if got := g.at(5, 5); got != 0 {
		t.Errorf("reversed: centre coverage %.4f, want 0", got)
	}
	if got := g.at(1, 5); got < 0.999 {
		t.Errorf("reversed: ring coverage %.4f, want 1", got)
	}
	if got := g.sum(); math.Abs(got-84) > 1e-4 {
		t.Errorf("reversed: covered area %.4f, want 84", got)
	}
}

func TestClipOutsideShape(t *testing.T) {
	// The shape extends left of and above the clip rectangle.
	square := (&path.Data{}).
		MoveTo(pt(-5, -5)).
		LineTo(pt(4, -5)).
		LineTo(pt(4, 4)).
		LineTo(pt(-5, 4)).
		Close()

	g := newGrid(8, 8)
	r := NewRasteriser(g.clip())
	r.FillNonZero(square, g.emit)

	for y := range 8 {
		for x := range 8 {
			inside := x < 4 && y < 4
			got := g.at(x, y)
			if inside && got < 0.999 {
				t.Errorf("pixel (%d,%d): coverage %.4f, want 1", x, y, got)
			}
			if !inside && got != 0 {
				t.Errorf("pixel (%d,%d): coverage %.4f, want 0", x, y, got)
			}
		}
	}
}

func TestDiagonalLeftOfClip(t *testing.T) {
	// A slanted left edge which starts outside the clip rectangle must
	// still produce the correct carry for the visible pixels.
	p := (&path.Data{}).
		MoveTo(pt(-4, 0)).
		LineTo(pt(6, 0)).
		LineTo(pt(6, 4)).
		LineTo(pt(4, 4)).
		Close()

	g := newGrid(6, 4)
	r := NewRasteriser(g.clip())
	r.FillNonZero(p, g.emit)

	// The left edge runs from (-4,0) to (4,4): x = 2y-4.
	for y := range 4 {
		for x := range 6 {
			// exact coverage of the region x' ≥ 2y'-4 inside the pixel
			want := pixelRightOfLine(x, y)
			if got := g.at(x, y); math.Abs(float64(got)-want) > 1e-5 {
				t.Errorf("pixel (%d,%d): coverage %.4f, want %.4f", x, y, got, want)
			}
		}
	}
}

// pixelRightOfLine integrates the area of pixel (x,y) which satisfies
// x' ≥ 2y'-4, numerically.
func pixelRightOfLine(x, y int) float64 {
	const n = 2000
	var a float64
	for i := range n {
		yy := float64(y) + (float64(i)+0.5)/n
		edge := 2*yy - 4
		a += min(max(float64(x+1)-edge, 0), 1)
	}
	return a / n
}

func TestTransformedFill(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(2, 0)).
		LineTo(pt(2, 2)).
		LineTo(pt(0, 2)).
		Close()

	g := newGrid(10, 10)
	r := NewRasteriser(g.clip())
	r.CTM = matrix.Matrix{2, 0, 0, 2, 3, 3}
	r.FillNonZero(square, g.emit)

	if got := g.sum(); math.Abs(got-16) > 1e-4 {
		t.Errorf("covered area %.4f, want 16", got)
	}
	if got := g.at(3, 3); got < 0.999 {
		t.Errorf("pixel (3,3): coverage %.4f, want 1", got)
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.Width = 7
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Flatness = 1

	clip := rect.Rect{URx: 8, URy: 8}
	r.Reset(clip)
	if r.Width != 1 || r.CTM != matrix.Identity || r.Flatness != defaultFlatness {
		t.Errorf("Reset kept parameters: %+v", r)
	}
	if r.Clip != clip {
		t.Errorf("Reset: clip %v, want %v", r.Clip, clip)
	}
}
