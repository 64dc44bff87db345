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
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Brush is the colour and width applied to new strokes and to the
// indicator circle.  A single Brush is shared by pointer between the
// [StrokeRenderer] and the [BrushIndicator]; changes take effect with the
// next segment or indicator update and never affect existing pixels.
type Brush struct {
	// Color is always opaque.
	Color color.NRGBA

	// Width is the stroke diameter in pixels.
	Width float64
}

// ErrInvalidColor is returned for colour strings which cannot be parsed.
var ErrInvalidColor = errors.New("invalid colour")

// ParseColor parses a colour in one of the forms "#rgb" or "#rrggbb".
// The leading "#" is optional.  The result is opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var scale uint64
	switch len(hex) {
	case 3:
		scale = 17
	case 6:
		scale = 1
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	if scale == 17 {
		return color.NRGBA{
			R: uint8((v >> 8 & 0xf) * scale),
			G: uint8((v >> 4 & 0xf) * scale),
			B: uint8((v & 0xf) * scale),
			A: 255,
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// FormatColor returns c as "#rrggbb".  Alpha is ignored.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// toNRGBA converts an arbitrary colour to the brush representation.
// Alpha is dropped.
func toNRGBA(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}
