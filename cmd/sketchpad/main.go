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

// Command sketchpad runs the drawing surface in a desktop window.
//
// Usage:
//
//	sketchpad [-config file.toml] [-debug]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/surface"
)

func main() {
	configFile := flag.String("config", "", "read settings from this TOML file")
	debug := flag.Bool("debug", false, "log stroke and control events")
	flag.Parse()

	if err := run(*configFile, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "sketchpad:", err)
		os.Exit(1)
	}
}

func run(configFile string, debug bool) error {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	level := cfg.SlogLevel()
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)

	opts, err := cfg.RouterOptions()
	if err != nil {
		return err
	}
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	router := sketch.NewRouter(surface.New(w, h), surface.New(w, h), opts...)
	logger.Info("canvas ready", "width", w, "height", h)

	a := app.New()
	win := a.NewWindow("Sketchpad")

	board := newPad(router)
	toolbar := newToolbar(router, board, win)
	win.SetContent(container.NewBorder(toolbar, nil, nil, nil, container.NewCenter(board)))
	win.ShowAndRun()
	return nil
}

// newToolbar builds the brush controls.
func newToolbar(router *sketch.Router, p *pad, win fyne.Window) fyne.CanvasObject {
	swatch := newSwatch(router.Brush().Color)
	colorButton := widget.NewButton("Colour…", func() {
		picker := dialog.NewColorPicker("Brush colour", "", func(c color.Color) {
			router.SelectColor(c)
			swatch.setColor(router.Brush().Color)
		}, win)
		picker.Show()
	})

	readout := widget.NewLabel(router.WidthReadout())
	router.OnWidthChange = readout.SetText

	lo, hi := router.WidthRange()
	slider := widget.NewSlider(lo, hi)
	slider.Step = 1
	slider.SetValue(router.Brush().Width)
	slider.OnChanged = router.SetWidth

	eraser := widget.NewButton("Eraser", func() {
		router.UseEraser()
		swatch.setColor(router.Brush().Color)
	})
	clearButton := widget.NewButton("Clear", func() {
		router.Clear()
		p.flush()
	})

	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(200, 35)), slider)
	return container.NewHBox(
		swatch.rect,
		colorButton,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderBox,
		readout,
		widget.NewSeparator(),
		eraser,
		clearButton,
		layout.NewSpacer(),
	)
}
