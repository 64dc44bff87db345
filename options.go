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

	"golang.org/x/image/colornames"
)

// Option configures a [Router] during creation.
type Option func(*routerOptions)

type routerOptions struct {
	color      color.NRGBA
	width      float64
	minWidth   float64
	maxWidth   float64
	background color.NRGBA
	outline    float64
}

// Default values of the brush controls.
const (
	DefaultWidth    = 5.0
	DefaultMinWidth = 1.0
	DefaultMaxWidth = 100.0
)

func defaultOptions() routerOptions {
	return routerOptions{
		color:      color.NRGBA{A: 255},
		width:      DefaultWidth,
		minWidth:   DefaultMinWidth,
		maxWidth:   DefaultMaxWidth,
		background: toNRGBA(colornames.White),
		outline:    DefaultOutline,
	}
}

// WithColor sets the initial brush colour.  The default is black.
func WithColor(c color.Color) Option {
	return func(o *routerOptions) {
		o.color = toNRGBA(c)
	}
}

// WithWidth sets the initial brush width.  It is clamped to the width
// range; NaN selects [DefaultWidth].
func WithWidth(w float64) Option {
	return func(o *routerOptions) {
		o.width = w
	}
}

// WithWidthRange sets the range of the width control.  Widths passed to
// [Router.SetWidth] are clamped to [lo, hi].  A bound which is not finite,
// or a lower bound which is not positive, is replaced by its default.
func WithWidthRange(lo, hi float64) Option {
	return func(o *routerOptions) {
		o.minWidth, o.maxWidth = lo, hi
	}
}

// WithBackground sets the colour which the eraser paints with.  It should
// match the colour the host shows behind the drawing surface.  The default
// is white.
func WithBackground(c color.Color) Option {
	return func(o *routerOptions) {
		o.background = toNRGBA(c)
	}
}

// WithIndicatorOutline sets the line width of the brush indicator circle.
func WithIndicatorOutline(w float64) Option {
	return func(o *routerOptions) {
		o.outline = w
	}
}
