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
	"image/color"
	"math"
	"strconv"

	"seehuhn.de/go/sketch/surface"
)

// Router connects the input events of a host to the stroke renderer and
// the brush indicator, and holds the brush configuration shared by both.
//
// Pointer coordinates are in pixels, relative to the top-left corner of the
// drawing area.  Both surfaces must cover the same area.
type Router struct {
	Strokes   *StrokeRenderer
	Indicator *BrushIndicator

	// OnWidthChange, if set, is called with the new width readout whenever
	// the width changes.
	OnWidthChange func(readout string)

	brush      Brush
	background color.NRGBA
	minWidth   float64
	maxWidth   float64
}

// NewRouter returns a router which draws strokes onto canvas and the brush
// indicator onto overlay.
func NewRouter(canvas, overlay *surface.Surface, opts ...Option) *Router {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !isFinite(o.minWidth) || o.minWidth <= 0 {
		o.minWidth = DefaultMinWidth
	}
	if !isFinite(o.maxWidth) {
		o.maxWidth = max(o.minWidth, DefaultMaxWidth)
	}
	if o.maxWidth < o.minWidth {
		o.maxWidth = o.minWidth
	}
	if math.IsNaN(o.width) {
		o.width = DefaultWidth
	}

	r := &Router{
		background: o.background,
		minWidth:   o.minWidth,
		maxWidth:   o.maxWidth,
	}
	r.brush = Brush{
		Color: o.color,
		Width: r.clampWidth(o.width),
	}
	r.Strokes = NewStrokeRenderer(canvas, &r.brush)
	r.Indicator = NewBrushIndicator(overlay, &r.brush)
	if o.outline > 0 && isFinite(o.outline) {
		r.Indicator.Outline = o.outline
	}
	return r
}

// PointerDown starts a stroke.
func (r *Router) PointerDown() {
	r.Strokes.BeginStroke()
}

// PointerMove extends the current stroke, if any, and moves the brush
// indicator to (x, y).
func (r *Router) PointerMove(x, y float64) {
	r.Strokes.ExtendStroke(x, y)
	r.Indicator.Update(x, y)
}

// PointerUp ends the current stroke.
func (r *Router) PointerUp() {
	r.Strokes.EndStroke()
}

// PointerLeave is called when the pointer leaves the drawing area.  It ends
// the current stroke, exactly like PointerUp.
func (r *Router) PointerLeave() {
	r.Strokes.EndStroke()
}

// SelectColor sets the brush colour for everything drawn from now on.
// The alpha channel of c is ignored.
func (r *Router) SelectColor(c color.Color) {
	r.brush.Color = toNRGBA(c)
	Logger().Debug("colour selected", "color", FormatColor(r.brush.Color))
}

// SelectColorHex sets the brush colour from a string like "#ff0000".
func (r *Router) SelectColorHex(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	r.SelectColor(c)
	return nil
}

// SetWidth sets the brush width, clamped to the width range.  NaN is
// ignored.
func (r *Router) SetWidth(w float64) {
	if math.IsNaN(w) {
		return
	}
	r.brush.Width = r.clampWidth(w)
	readout := r.WidthReadout()
	Logger().Debug("width changed", "width", readout)
	if r.OnWidthChange != nil {
		r.OnWidthChange(readout)
	}
}

// WidthReadout returns the current brush width as text.
func (r *Router) WidthReadout() string {
	return strconv.FormatFloat(r.brush.Width, 'f', -1, 64)
}

// WidthRange returns the smallest and largest brush width.
func (r *Router) WidthRange() (lo, hi float64) {
	return r.minWidth, r.maxWidth
}

// UseEraser sets the brush colour to the background colour.  Strokes
// painted afterwards cover what is underneath; nothing is removed from the
// surface.
func (r *Router) UseEraser() {
	r.brush.Color = r.background
	Logger().Debug("eraser selected")
}

// Clear erases all strokes.
func (r *Router) Clear() {
	r.Strokes.ClearAll()
}

// Brush returns the current brush.
func (r *Router) Brush() Brush {
	return r.brush
}

// Background returns the colour used by the eraser.
func (r *Router) Background() color.NRGBA {
	return r.background
}

func (r *Router) clampWidth(w float64) float64 {
	return min(max(w, r.minWidth), r.maxWidth)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
