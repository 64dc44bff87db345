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

// Package sketch implements a freehand drawing surface with a live brush
// preview.
//
// Drawing uses two layers.  A [StrokeRenderer] owns the persistent layer:
// while a drag is active, every pointer move adds one straight segment with
// round caps from the previous pointer position, so that the segments fuse
// into a smooth line.  A [BrushIndicator] owns a transparent overlay which
// is erased and repainted on every pointer move, showing a thin circle with
// the diameter of the current brush.  The two layers are stacked by the
// host; they are never composited onto each other.
//
// A [Router] translates pointer and control events into calls on both
// components and keeps the shared [Brush] configuration.  All types in
// this package are meant to be used from a single event-handling
// goroutine.
package sketch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
