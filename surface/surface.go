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

// Package surface implements the pixel layers which strokes and overlays are
// painted into.
//
// A [Surface] is an RGBA image together with a scratch coverage mask.  Shapes
// are painted by rasterising them into the mask and compositing a solid
// colour through it, source-over.  The surface records which pixels changed,
// so that hosts can copy only the modified part to the screen.
package surface

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch/raster"
)

// Surface is a transparent-initialised RGBA pixel layer.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	img   *image.RGBA
	mask  *image.Alpha
	src   *image.Uniform
	dirty image.Rectangle
}

// New allocates a transparent w×h surface with origin (0,0).
func New(w, h int) *Surface {
	b := image.Rect(0, 0, w, h)
	return &Surface{
		img:  image.NewRGBA(b),
		mask: image.NewAlpha(b),
		src:  image.NewUniform(color.Transparent),
	}
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// Clip returns the bounds as a rasteriser clip rectangle.
func (s *Surface) Clip() rect.Rect {
	b := s.img.Rect
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Image returns the backing image.  Callers may read it, but should modify
// it only through the surface methods, or the dirty region goes stale.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
	s.dirty = s.img.Rect
}

// Paint composites c over the surface, weighted by the coverage which render
// passes to its emit function.  Pixels without coverage are left unchanged.
func (s *Surface) Paint(c color.Color, render func(emit raster.EmitFunc)) {
	var touched image.Rectangle
	render(func(y, xMin int, coverage []float32) {
		row := s.mask.Pix[s.mask.PixOffset(xMin, y):]
		for i, v := range coverage {
			row[i] = uint8(min(255, int(v*256)))
		}
		touched = touched.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	touched = touched.Intersect(s.img.Rect)
	if touched.Empty() {
		return
	}

	s.src.C = c
	draw.DrawMask(s.img, touched, s.src, image.Point{}, s.mask, touched.Min, draw.Over)

	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		i := s.mask.PixOffset(touched.Min.X, y)
		clear(s.mask.Pix[i : i+touched.Dx()])
	}
	s.dirty = s.dirty.Union(touched)
}

// Dirty returns the union of all regions changed since the last call to
// TakeDirty.
func (s *Surface) Dirty() image.Rectangle {
	return s.dirty
}

// TakeDirty returns the changed region and resets it to empty.
func (s *Surface) TakeDirty() image.Rectangle {
	d := s.dirty
	s.dirty = image.Rectangle{}
	return d
}

// IsBlank reports whether every pixel is transparent.
func (s *Surface) IsBlank() bool {
	for _, b := range s.img.Pix {
		if b != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two surfaces have the same size and pixel content.
func (s *Surface) Equal(other *Surface) bool {
	return s.img.Rect == other.img.Rect && bytes.Equal(s.img.Pix, other.img.Pix)
}

// At returns the colour of the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}
