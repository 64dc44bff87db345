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

//go:build js && wasm

// Command sketchwasm runs the drawing surface in a web browser.
//
// The page must provide two stacked canvas elements inside a common
// container, a colour input, a range input with a readout element, and
// clear and eraser buttons; see index.html.  The canvas size and the
// initial brush can be set with the URL parameters w, h, color and width,
// and debug=1 enables debug logging on the browser console.
package main

import (
	"image"
	"log/slog"
	"os"
	"strconv"
	"syscall/js"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/surface"
)

// layer mirrors a surface into a canvas element.
type layer struct {
	surface *surface.Surface
	canvas  js.Value
	ctx     js.Value
	buf     []byte
}

func newLayer(doc js.Value, id string, s *surface.Surface) *layer {
	canvas := doc.Call("getElementById", id)
	b := s.Bounds()
	canvas.Set("width", b.Dx())
	canvas.Set("height", b.Dy())
	return &layer{
		surface: s,
		canvas:  canvas,
		ctx:     canvas.Call("getContext", "2d"),
	}
}

// flush copies the changed part of the surface to the canvas.
func (l *layer) flush() {
	r := l.surface.TakeDirty()
	if r.Empty() {
		return
	}
	img := l.surface.Image().SubImage(r).(*image.RGBA)
	rowLen := 4 * r.Dx()
	n := rowLen * r.Dy()
	if cap(l.buf) < n {
		l.buf = make([]byte, n)
	}
	buf := l.buf[:n]
	for y := range r.Dy() {
		copy(buf[y*rowLen:(y+1)*rowLen], img.Pix[y*img.Stride:])
	}

	data := l.ctx.Call("createImageData", r.Dx(), r.Dy())
	js.CopyBytesToJS(data.Get("data"), buf)
	l.ctx.Call("putImageData", data, r.Min.X, r.Min.Y)
}

func main() {
	cfg := configFromURL()
	level := cfg.SlogLevel()
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts, err := cfg.RouterOptions()
	if err != nil {
		slog.Error("invalid settings, using defaults", "error", err)
		cfg = config.Default()
		opts, _ = cfg.RouterOptions()
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	router := sketch.NewRouter(surface.New(w, h), surface.New(w, h), opts...)

	doc := js.Global().Get("document")
	strokes := newLayer(doc, "draw-area", router.Strokes.Surface())
	indicator := newLayer(doc, "line-width-indicator", router.Indicator.Surface())
	area := doc.Call("getElementById", "layered-canvas-area")
	area.Get("style").Set("background", cfg.Canvas.Background)

	flush := func() {
		strokes.flush()
		indicator.flush()
	}

	// position converts the client coordinates of a mouse event into
	// canvas pixels.
	position := func(e js.Value) (float64, float64) {
		rect := strokes.canvas.Call("getBoundingClientRect")
		sx := float64(w) / rect.Get("width").Float()
		sy := float64(h) / rect.Get("height").Float()
		x := (e.Get("clientX").Float() - rect.Get("left").Float()) * sx
		y := (e.Get("clientY").Float() - rect.Get("top").Float()) * sy
		return x, y
	}

	listen(area, "mousedown", func(js.Value) {
		router.PointerDown()
	})
	listen(area, "mouseup", func(js.Value) {
		router.PointerUp()
	})
	listen(area, "mouseout", func(js.Value) {
		router.PointerLeave()
	})
	listen(area, "mousemove", func(e js.Value) {
		router.PointerMove(position(e))
		flush()
	})

	picker := doc.Call("getElementById", "color-picker")
	picker.Set("value", sketch.FormatColor(router.Brush().Color))
	listen(picker, "change", func(js.Value) {
		if err := router.SelectColorHex(picker.Get("value").String()); err != nil {
			slog.Warn("colour ignored", "error", err)
		}
	})

	readout := doc.Call("getElementById", "line-width")
	router.OnWidthChange = func(s string) {
		readout.Set("innerText", s)
	}
	slider := doc.Call("getElementById", "range-selector")
	lo, hi := router.WidthRange()
	slider.Set("min", lo)
	slider.Set("max", hi)
	slider.Set("value", router.Brush().Width)
	readout.Set("innerText", router.WidthReadout())
	listen(slider, "input", func(js.Value) {
		v, err := strconv.ParseFloat(slider.Get("value").String(), 64)
		if err != nil {
			return
		}
		router.SetWidth(v)
	})

	listen(doc.Call("getElementById", "clear-button"), "click", func(js.Value) {
		router.Clear()
		flush()
	})
	listen(doc.Call("getElementById", "eraser-button"), "click", func(js.Value) {
		router.UseEraser()
	})

	select {}
}

// listen registers a handler for a DOM event.  Handlers live for the
// lifetime of the page and are never released.
func listen(target js.Value, event string, handle func(e js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		handle(e)
		return nil
	}))
}

// configFromURL reads the settings from the query string of the page.
func configFromURL() *config.Config {
	cfg := config.Default()
	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	get := func(key string) (string, bool) {
		if !params.Call("has", key).Bool() {
			return "", false
		}
		return params.Call("get", key).String(), true
	}

	if s, ok := get("w"); ok {
		if v, err := strconv.Atoi(s); err == nil {
			cfg.Canvas.Width = v
		}
	}
	if s, ok := get("h"); ok {
		if v, err := strconv.Atoi(s); err == nil {
			cfg.Canvas.Height = v
		}
	}
	if s, ok := get("color"); ok {
		cfg.Brush.Color = s
	}
	if s, ok := get("width"); ok {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.Brush.Width = v
		}
	}
	if s, ok := get("debug"); ok && s != "0" {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid URL parameters, using defaults", "error", err)
		return config.Default()
	}
	return cfg
}
