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

package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/surface"
)

// pad shows the stroke and indicator surfaces stacked on a background, and
// forwards mouse events to the router.
type pad struct {
	widget.BaseWidget

	router    *sketch.Router
	strokes   *canvas.Raster
	indicator *canvas.Raster
	bg        *canvas.Rectangle
	pressed   bool
}

var (
	_ fyne.Widget       = (*pad)(nil)
	_ fyne.Draggable    = (*pad)(nil)
	_ desktop.Mouseable = (*pad)(nil)
	_ desktop.Hoverable = (*pad)(nil)
)

func newPad(router *sketch.Router) *pad {
	p := &pad{
		router:    router,
		strokes:   newLayer(router.Strokes.Surface()),
		indicator: newLayer(router.Indicator.Surface()),
		bg:        canvas.NewRectangle(router.Background()),
	}
	b := router.Strokes.Surface().Bounds()
	p.bg.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	p.ExtendBaseWidget(p)
	return p
}

func newLayer(s *surface.Surface) *canvas.Raster {
	r := canvas.NewRasterFromImage(s.Image())
	r.ScaleMode = canvas.ImageScalePixels
	b := s.Bounds()
	r.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	return r
}

func (p *pad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(p.bg, p.strokes, p.indicator))
}

// toPixels converts a widget position into surface pixels.
func (p *pad) toPixels(pos fyne.Position) (float64, float64) {
	b := p.router.Strokes.Surface().Bounds()
	size := p.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return float64(pos.X), float64(pos.Y)
	}
	x := float64(pos.X) * float64(b.Dx()) / float64(size.Width)
	y := float64(pos.Y) * float64(b.Dy()) / float64(size.Height)
	return x, y
}

// flush redraws the layers which have changed.
func (p *pad) flush() {
	if !p.router.Strokes.Surface().TakeDirty().Empty() {
		p.strokes.Refresh()
	}
	if !p.router.Indicator.Surface().TakeDirty().Empty() {
		p.indicator.Refresh()
	}
}

func (p *pad) move(pos fyne.Position) {
	p.router.PointerMove(p.toPixels(pos))
	p.flush()
}

func (p *pad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	// Painting starts with the next move.
	p.pressed = true
	p.router.PointerDown()
}

func (p *pad) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.pressed = false
	p.router.PointerUp()
}

func (p *pad) Dragged(e *fyne.DragEvent) {
	p.move(e.Position)
}

func (p *pad) DragEnd() {
	p.pressed = false
	p.router.PointerUp()
}

func (p *pad) MouseIn(e *desktop.MouseEvent) {
	p.move(e.Position)
}

func (p *pad) MouseMoved(e *desktop.MouseEvent) {
	// While the button is held, moves arrive through Dragged.
	if p.pressed {
		return
	}
	p.move(e.Position)
}

func (p *pad) MouseOut() {
	p.pressed = false
	p.router.PointerLeave()
}

// swatch shows the current brush colour.
type swatch struct {
	rect *canvas.Rectangle
}

func newSwatch(c color.Color) *swatch {
	r := canvas.NewRectangle(c)
	r.SetMinSize(fyne.NewSize(32, 32))
	r.StrokeColor = color.Gray{Y: 150}
	r.StrokeWidth = 1
	return &swatch{rect: r}
}

func (s *swatch) setColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}
