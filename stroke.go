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
	"github.com/google/uuid"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/surface"
)

// StrokeRenderer paints freehand strokes onto a persistent surface.
//
// A stroke is opened by BeginStroke and closed by EndStroke.  In between,
// every call to ExtendStroke paints one straight segment from the previous
// point to the new one.  Only this newest segment is rasterised, so the cost
// of a move does not grow with the length of the stroke.  Segments have
// round caps, which makes consecutive segments join smoothly.
type StrokeRenderer struct {
	surface *surface.Surface
	brush   *Brush
	r       *raster.Rasteriser
	seg     path.Data

	dragging bool
	last     vec.Vec2
	hasLast  bool

	id       uuid.UUID
	segments int
}

// NewStrokeRenderer returns a renderer which paints onto s using the colour
// and width in b.  The surface is not cleared.
func NewStrokeRenderer(s *surface.Surface, b *Brush) *StrokeRenderer {
	return &StrokeRenderer{
		surface: s,
		brush:   b,
		r:       raster.NewRasteriser(s.Clip()),
	}
}

// Surface returns the persistent drawing surface.
func (sr *StrokeRenderer) Surface() *surface.Surface {
	return sr.surface
}

// BeginStroke starts a new stroke.  Existing strokes stay on the surface.
// If a stroke is already in progress, it is replaced by the new one.
func (sr *StrokeRenderer) BeginStroke() {
	sr.dragging = true
	sr.hasLast = false
	sr.id = uuid.New()
	sr.segments = 0
	Logger().Debug("stroke begin", "stroke", sr.id)
}

// ExtendStroke moves the stroke to (x, y).  The first call after
// BeginStroke paints a dot of the brush width at (x, y); every later call
// paints a segment from the previous point.  Outside of a stroke, the call
// has no effect.
func (sr *StrokeRenderer) ExtendStroke(x, y float64) {
	if !sr.dragging {
		return
	}

	p := vec.Vec2{X: x, Y: y}
	from := p
	if sr.hasLast {
		from = sr.last
	}

	sr.seg.Cmds = sr.seg.Cmds[:0]
	sr.seg.Coords = sr.seg.Coords[:0]
	sr.seg.MoveTo(from).LineTo(p)

	sr.r.Width = sr.brush.Width
	sr.surface.Paint(sr.brush.Color, func(emit raster.EmitFunc) {
		sr.r.Stroke(&sr.seg, emit)
	})

	sr.last = p
	sr.hasLast = true
	sr.segments++
}

// EndStroke finishes the current stroke.  Calling EndStroke when no stroke
// is in progress has no effect.
func (sr *StrokeRenderer) EndStroke() {
	if sr.dragging {
		Logger().Debug("stroke end", "stroke", sr.id, "segments", sr.segments)
	}
	sr.dragging = false
	sr.hasLast = false
}

// ClearAll erases all strokes.  The surface returns to its initial,
// transparent state.  A stroke in progress continues with its next move.
func (sr *StrokeRenderer) ClearAll() {
	sr.surface.Clear()
	Logger().Debug("surface cleared")
}

// Dragging reports whether a stroke is in progress.
func (sr *StrokeRenderer) Dragging() bool {
	return sr.dragging
}

// LastPoint returns the end of the most recent segment of the current
// stroke.  The second result is false if no segment has been drawn since
// the stroke began, or if no stroke is in progress.
func (sr *StrokeRenderer) LastPoint() (vec.Vec2, bool) {
	return sr.last, sr.hasLast
}

// StrokeID identifies the current or most recent stroke.  It is the zero
// UUID before the first stroke.
func (sr *StrokeRenderer) StrokeID() uuid.UUID {
	return sr.id
}
