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
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/sketch/surface"
)

const testSize = 100

func newTestRouter(opts ...Option) *Router {
	return NewRouter(surface.New(testSize, testSize), surface.New(testSize, testSize), opts...)
}

func snapshot(s *surface.Surface) []byte {
	return bytes.Clone(s.Image().Pix)
}

// paintedWithin checks that every pixel of s with non-zero alpha has its
// centre within distance r of (cx, cy).
func paintedWithin(t *testing.T, s *surface.Surface, cx, cy, r float64) {
	t.Helper()
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.At(x, y).A == 0 {
				continue
			}
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) > r {
				t.Errorf("pixel (%d,%d) painted, %.2f away from (%g,%g)",
					x, y, math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy), cx, cy)
			}
		}
	}
}

func TestExtendWithoutBegin(t *testing.T) {
	r := newTestRouter()
	sr := r.Strokes
	for i := range 20 {
		sr.ExtendStroke(float64(i*5), float64(i*3))
	}
	if !sr.Surface().IsBlank() {
		t.Error("ExtendStroke without BeginStroke painted")
	}
	if !sr.Surface().Dirty().Empty() {
		t.Errorf("dirty region %v", sr.Surface().Dirty())
	}
	if _, ok := sr.LastPoint(); ok {
		t.Error("LastPoint set outside of a stroke")
	}
}

func TestSinglePointStroke(t *testing.T) {
	r := newTestRouter(WithWidth(5))
	sr := r.Strokes

	sr.BeginStroke()
	sr.ExtendStroke(10, 10)
	sr.EndStroke()

	s := sr.Surface()
	for _, p := range []image.Point{{9, 9}, {10, 9}, {9, 10}, {10, 10}} {
		if got := s.At(p.X, p.Y); got.A != 255 {
			t.Errorf("pixel %v = %v, want opaque", p, got)
		}
	}
	paintedWithin(t, s, 10, 10, 2.5+math.Sqrt2/2)

	if _, ok := sr.LastPoint(); ok {
		t.Error("LastPoint still set after EndStroke")
	}
	if sr.Dragging() {
		t.Error("still dragging after EndStroke")
	}
}

func TestHorizontalSegment(t *testing.T) {
	r := newTestRouter(WithWidth(5))
	sr := r.Strokes

	sr.BeginStroke()
	sr.ExtendStroke(0, 0)
	sr.ExtendStroke(10, 0)
	sr.EndStroke()

	s := sr.Surface()
	for x := range 10 {
		for y := range 2 {
			if got := s.At(x, y); got.A != 255 {
				t.Errorf("pixel (%d,%d) = %v, want opaque", x, y, got)
			}
		}
	}
	// Outside the stroke width, including the round cap at (10,0), nothing
	// may change.
	for y := range testSize {
		for x := range testSize {
			if y < 3 && x < 13 {
				continue
			}
			if got := s.At(x, y); got != (color.RGBA{}) {
				t.Errorf("pixel (%d,%d) = %v outside the stroke", x, y, got)
			}
		}
	}
}

func TestIndicatorShowsOneCircle(t *testing.T) {
	r := newTestRouter(WithWidth(10))
	bi := r.Indicator

	bi.Update(5, 5)
	bi.Update(50, 50)

	s := bi.Surface()
	// radius, half the outline, and a pixel diagonal
	paintedWithin(t, s, 50, 50, 5+0.5+math.Sqrt2)
	if got := s.At(55, 50); got.A == 0 {
		t.Errorf("no circle at (55,50)")
	}
	if got := s.At(50, 50); got.A != 0 {
		t.Errorf("circle is filled: centre %v", got)
	}

	// idempotence
	other := newTestRouter(WithWidth(10))
	other.Indicator.Update(50, 50)
	other.Indicator.Update(50, 50)
	if !s.Equal(other.Indicator.Surface()) {
		t.Error("overlay differs from a single update at the same point")
	}
}

func TestClearAllRestoresBlank(t *testing.T) {
	r := newTestRouter()
	r.PointerDown()
	for i := range 30 {
		r.PointerMove(float64(10+i), float64(20+2*i))
	}
	r.PointerUp()
	r.SetWidth(30)
	r.SelectColor(color.NRGBA{R: 200, G: 30, B: 90, A: 255})
	r.PointerDown()
	r.PointerMove(80, 10)
	r.PointerMove(10, 80)
	r.PointerUp()

	if r.Strokes.Surface().IsBlank() {
		t.Fatal("nothing was drawn")
	}
	r.Clear()
	if !r.Strokes.Surface().Equal(surface.New(testSize, testSize)) {
		t.Error("surface differs from the initial state after Clear")
	}
}

func TestLeaveEndsStroke(t *testing.T) {
	r := newTestRouter()
	r.PointerDown()
	r.PointerMove(10, 10)
	r.PointerMove(20, 20)
	r.PointerLeave()

	if r.Strokes.Dragging() {
		t.Error("still dragging after PointerLeave")
	}
	if _, ok := r.Strokes.LastPoint(); ok {
		t.Error("LastPoint still set after PointerLeave")
	}

	before := snapshot(r.Strokes.Surface())
	r.PointerMove(60, 60)
	r.PointerMove(70, 30)
	if !bytes.Equal(before, snapshot(r.Strokes.Surface())) {
		t.Error("moves after PointerLeave painted")
	}

	// a new stroke does not continue from the old position
	r.PointerDown()
	r.PointerMove(90, 90)
	r.PointerUp()
	if got := r.Strokes.Surface().At(80, 80); got.A != 0 {
		t.Errorf("new stroke was connected to the old one: %v", got)
	}
}

func TestIndicatorRadius(t *testing.T) {
	for _, outline := range []float64{1, 3} {
		for _, w := range []float64{16, 24, 41} {
			r := newTestRouter(WithIndicatorOutline(outline))
			r.SetWidth(w)
			r.Indicator.Update(50, 50)

			s := r.Indicator.Surface()
			var sum, weight float64
			for y := range testSize {
				for x := range testSize {
					a := float64(s.At(x, y).A) / 255
					sum += a * math.Hypot(float64(x)+0.5-50, float64(y)+0.5-50)
					weight += a
				}
			}
			if weight == 0 {
				t.Fatalf("outline %g width %g: nothing drawn", outline, w)
			}
			if got := sum / weight; math.Abs(got-w/2) > 0.15 {
				t.Errorf("outline %g width %g: mean radius %.3f, want %.3f", outline, w, got, w/2)
			}
		}
	}
}

func TestEndStrokeIdempotent(t *testing.T) {
	r := newTestRouter()
	r.PointerUp()
	r.PointerLeave()
	r.PointerDown()
	r.PointerMove(10, 10)
	r.PointerUp()
	r.PointerUp()
	r.PointerLeave()
	if r.Strokes.Dragging() {
		t.Error("dragging after repeated EndStroke")
	}
}

func TestBeginKeepsSurface(t *testing.T) {
	r := newTestRouter()
	r.PointerDown()
	r.PointerMove(20, 20)
	r.PointerUp()
	before := snapshot(r.Strokes.Surface())

	r.PointerDown()
	if !bytes.Equal(before, snapshot(r.Strokes.Surface())) {
		t.Error("BeginStroke changed the surface")
	}
}

func TestStrokeIDs(t *testing.T) {
	r := newTestRouter()
	first := r.Strokes.StrokeID()
	r.PointerDown()
	a := r.Strokes.StrokeID()
	r.PointerUp()
	r.PointerDown()
	b := r.Strokes.StrokeID()
	if a == first || a == b {
		t.Errorf("stroke ids not distinct: %v %v %v", first, a, b)
	}
}

func TestIncrementalPaint(t *testing.T) {
	// each move touches only the neighbourhood of the newest segment
	r := newTestRouter(WithWidth(4))
	r.PointerDown()
	r.PointerMove(10, 10)
	r.PointerMove(40, 10)
	r.Strokes.Surface().TakeDirty()

	r.PointerMove(40, 20)
	got := r.Strokes.Surface().TakeDirty()
	want := image.Rect(37, 7, 43, 23)
	if !got.In(want) {
		t.Errorf("dirty region %v, want within %v", got, want)
	}
}

func TestColorChangeNotRetroactive(t *testing.T) {
	r := newTestRouter(WithWidth(6), WithColor(color.NRGBA{R: 255, A: 255}))
	r.PointerDown()
	r.PointerMove(20, 20)
	r.PointerMove(30, 20)
	r.PointerUp()

	r.SelectColor(color.NRGBA{B: 255, A: 255})
	if got := r.Strokes.Surface().At(25, 20); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("existing stroke changed to %v", got)
	}

	r.PointerDown()
	r.PointerMove(20, 60)
	r.PointerUp()
	if got := r.Strokes.Surface().At(20, 60); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("new stroke has colour %v", got)
	}
}

func TestEraser(t *testing.T) {
	r := newTestRouter(WithWidth(10))
	r.PointerDown()
	r.PointerMove(20, 50)
	r.PointerMove(80, 50)
	r.PointerUp()

	r.UseEraser()
	if r.Brush().Color != r.Background() {
		t.Errorf("eraser colour %v, background %v", r.Brush().Color, r.Background())
	}
	r.PointerDown()
	r.PointerMove(50, 30)
	r.PointerMove(50, 70)
	r.PointerUp()

	if got := r.Strokes.Surface().At(50, 50); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("erased pixel %v, want background white", got)
	}
	if got := r.Strokes.Surface().At(25, 50); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel outside the eraser %v, want black", got)
	}
}

func TestSetWidth(t *testing.T) {
	r := newTestRouter(WithWidthRange(1, 50))
	var readouts []string
	r.OnWidthChange = func(s string) {
		readouts = append(readouts, s)
	}

	r.SetWidth(12)
	r.SetWidth(2.5)
	r.SetWidth(500)
	r.SetWidth(0)
	r.SetWidth(math.NaN())

	want := []string{"12", "2.5", "50", "1"}
	if len(readouts) != len(want) {
		t.Fatalf("readouts %q, want %q", readouts, want)
	}
	for i := range want {
		if readouts[i] != want[i] {
			t.Errorf("readout %d: %q, want %q", i, readouts[i], want[i])
		}
	}
	if r.Brush().Width != 1 || r.WidthReadout() != "1" {
		t.Errorf("width %g, readout %q", r.Brush().Width, r.WidthReadout())
	}
}

func TestWidthAffectsNextSegment(t *testing.T) {
	r := newTestRouter(WithWidth(2))
	r.PointerDown()
	r.PointerMove(10, 50)
	r.PointerMove(30, 50)
	r.SetWidth(20)
	r.PointerMove(50, 50)
	r.PointerUp()

	s := r.Strokes.Surface()
	if got := s.At(20, 56); got.A != 0 {
		t.Errorf("first segment is wider than 2: %v", got)
	}
	if got := s.At(40, 56); got.A != 255 {
		t.Errorf("second segment is narrower than 20: %v", got)
	}
}

func TestSelectColorHex(t *testing.T) {
	r := newTestRouter()
	if err := r.SelectColorHex("#00ff00"); err != nil {
		t.Fatal(err)
	}
	if got := r.Brush().Color; got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("colour %v", got)
	}
	if err := r.SelectColorHex("green"); err == nil {
		t.Error("invalid colour accepted")
	}
	if got := r.Brush().Color; got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("invalid colour changed the brush to %v", got)
	}
}

func TestDefaults(t *testing.T) {
	r := newTestRouter()
	b := r.Brush()
	if b.Color != (color.NRGBA{A: 255}) || b.Width != DefaultWidth {
		t.Errorf("default brush %+v", b)
	}
	if lo, hi := r.WidthRange(); lo != DefaultMinWidth || hi != DefaultMaxWidth {
		t.Errorf("default range %g..%g", lo, hi)
	}
	if r.Background() != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("background %v", r.Background())
	}
	if r.Indicator.Outline != DefaultOutline {
		t.Errorf("outline %g", r.Indicator.Outline)
	}
}

func TestNotFiniteOptions(t *testing.T) {
	r := newTestRouter(
		WithWidth(math.NaN()),
		WithWidthRange(math.NaN(), math.Inf(1)),
		WithIndicatorOutline(math.Inf(1)),
	)
	if w := r.Brush().Width; w != DefaultWidth {
		t.Errorf("width %g, want %g", w, DefaultWidth)
	}
	if lo, hi := r.WidthRange(); lo != DefaultMinWidth || hi != DefaultMaxWidth {
		t.Errorf("range %g..%g", lo, hi)
	}
	if r.Indicator.Outline != DefaultOutline {
		t.Errorf("outline %g", r.Indicator.Outline)
	}

	r.PointerDown()
	r.PointerMove(30, 50)
	r.PointerMove(70, 50)
	r.PointerUp()
	if r.Strokes.Surface().IsBlank() {
		t.Error("no stroke drawn")
	}
	if r.Indicator.Surface().IsBlank() {
		t.Error("no indicator drawn")
	}
}

func TestBrushIsOpaque(t *testing.T) {
	r := newTestRouter(WithColor(color.NRGBA{B: 255, A: 10}))
	if got := r.Brush().Color; got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("initial colour %v", got)
	}

	r.SelectColor(color.NRGBA{R: 255, A: 128})
	if got := r.Brush().Color; got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("selected colour %v", got)
	}
	r.PointerDown()
	r.PointerMove(20, 50)
	r.PointerMove(40, 50)
	r.PointerMove(60, 50)
	r.PointerUp()
	// the joint at (40,50) is covered by two segments
	for _, x := range []int{30, 40, 50} {
		if got := r.Strokes.Surface().At(x, 50); got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("pixel (%d,50) is %v", x, got)
		}
	}
}

func TestPressWithoutMove(t *testing.T) {
	r := newTestRouter(WithWidth(20))
	r.PointerMove(50, 50)
	r.PointerDown()
	r.PointerUp()
	if !r.Strokes.Surface().IsBlank() {
		t.Error("a press without movement painted")
	}
}
