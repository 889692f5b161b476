package uielements

import (
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// recordedOp is a snapshot of one renderer invocation.
type recordedOp struct {
	kind      string // "stroke" or "fill"
	lineWidth float64
	color     gg.RGBA
	points    []gg.Point // on-curve and control points, in path order
}

func (op recordedOp) bbox() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range op.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// recordingRenderer captures stroke and fill calls instead of rasterizing.
type recordingRenderer struct {
	ops []recordedOp
}

func (r *recordingRenderer) Fill(_ *gg.Pixmap, path *gg.Path, paint *gg.Paint) error {
	r.record("fill", path, paint)
	return nil
}

func (r *recordingRenderer) Stroke(_ *gg.Pixmap, path *gg.Path, paint *gg.Paint) error {
	r.record("stroke", path, paint)
	return nil
}

func (r *recordingRenderer) record(kind string, path *gg.Path, paint *gg.Paint) {
	op := recordedOp{kind: kind, lineWidth: paint.LineWidth}
	if sp, ok := paint.Pattern.(*gg.SolidPattern); ok {
		op.color = sp.Color
	}
	path.Iterate(func(verb gg.PathVerb, coords []float64) {
		switch verb {
		case gg.MoveTo:
			op.points = append(op.points, gg.Pt(coords[0], coords[1]))
		case gg.LineTo:
			op.points = append(op.points, gg.Pt(coords[0], coords[1]))
		case gg.QuadTo:
			op.points = append(op.points, gg.Pt(coords[0], coords[1]), gg.Pt(coords[2], coords[3]))
		case gg.CubicTo:
			op.points = append(op.points, gg.Pt(coords[0], coords[1]), gg.Pt(coords[2], coords[3]), gg.Pt(coords[4], coords[5]))
		}
	})
	r.ops = append(r.ops, op)
}

// recordDraw renders the checkbox through a recording renderer and returns
// the captured operations.
func recordDraw(t *testing.T, c *Checkbox, bounds Rect) []recordedOp {
	t.Helper()
	rec := &recordingRenderer{}
	dc := gg.NewContext(int(bounds.MaxX()), int(bounds.MaxY()), gg.WithRenderer(rec))
	defer dc.Close()
	c.Draw(dc, bounds)
	return rec.ops
}

func approxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func rectApproxEq(a, b Rect, eps float64) bool {
	return approxEq(a.X, b.X, eps) && approxEq(a.Y, b.Y, eps) &&
		approxEq(a.W, b.W, eps) && approxEq(a.H, b.H, eps)
}

func TestDrawBorderInset(t *testing.T) {
	bounds := NewRect(0, 0, 100, 100)
	for _, style := range []BorderStyle{BorderSquare, BorderCircle} {
		for _, width := range []float64{2, 4, 7} {
			t.Run(fmt.Sprintf("%s_width_%v", style, width), func(t *testing.T) {
				c := NewCheckbox(
					WithBorderStyle(style),
					WithBorderLineWidth(width),
					WithHapticFeedback(false),
				)
				ops := recordDraw(t, c, bounds)
				if len(ops) == 0 {
					t.Fatal("no operations recorded")
				}
				want := bounds.Inset(width / 2)
				if got := ops[0].bbox(); !rectApproxEq(got, want, 1e-9) {
					t.Errorf("border path bbox = %+v, want inset %+v", got, want)
				}
			})
		}
	}
}

func TestDrawSquareBorderStrokeThenFill(t *testing.T) {
	stroke := gg.RGB(0.1, 0.2, 0.3)
	fill := gg.RGBA{R: 0.9, G: 0.8, B: 0.7, A: 0.5}
	c := NewCheckbox(WithHapticFeedback(false))
	c.SetUncheckedBorderColor(stroke)
	c.SetUncheckedFillColor(fill)

	ops := recordDraw(t, c, NewRect(0, 0, 64, 64))
	if len(ops) != 2 {
		t.Fatalf("recorded %d operations, want 2 (stroke then fill)", len(ops))
	}
	if ops[0].kind != "stroke" || ops[1].kind != "fill" {
		t.Fatalf("operation order = [%s %s], want [stroke fill]", ops[0].kind, ops[1].kind)
	}
	if ops[0].color != stroke {
		t.Errorf("stroke color = %v, want %v", ops[0].color, stroke)
	}
	if ops[1].color != fill {
		t.Errorf("fill color = %v, want %v", ops[1].color, fill)
	}
	// Same path: the fill paints over the inner half of the stroke.
	if !rectApproxEq(ops[0].bbox(), ops[1].bbox(), 1e-9) {
		t.Error("stroke and fill must share the same inset path")
	}
}

func TestDrawCheckedUsesCheckedColors(t *testing.T) {
	stroke := gg.RGB(0, 0.6, 0)
	fill := gg.RGBA{R: 0, G: 0.6, B: 0, A: 0.25}
	c := NewCheckbox(WithHapticFeedback(false))
	c.SetCheckedBorderColor(stroke)
	c.SetCheckedFillColor(fill)
	c.SetChecked(true)

	ops := recordDraw(t, c, NewRect(0, 0, 64, 64))
	if len(ops) < 2 {
		t.Fatalf("recorded %d operations, want border stroke+fill and a glyph", len(ops))
	}
	if ops[0].color != stroke {
		t.Errorf("stroke color = %v, want checked border color %v", ops[0].color, stroke)
	}
	if ops[1].color != fill {
		t.Errorf("fill color = %v, want checked fill color %v", ops[1].color, fill)
	}
}

func TestDrawCircleBorderHalfStrokeWidth(t *testing.T) {
	// The circle border strokes at half the configured width; the square
	// border uses it unchanged.
	square := NewCheckbox(WithBorderLineWidth(4), WithHapticFeedback(false))
	circle := NewCheckbox(WithBorderStyle(BorderCircle), WithBorderLineWidth(4), WithHapticFeedback(false))

	squareOps := recordDraw(t, square, NewRect(0, 0, 64, 64))
	circleOps := recordDraw(t, circle, NewRect(0, 0, 64, 64))

	if got := squareOps[0].lineWidth; got != 4 {
		t.Errorf("square border stroke width = %v, want 4", got)
	}
	if got := circleOps[0].lineWidth; got != 2 {
		t.Errorf("circle border stroke width = %v, want 2", got)
	}
}

func TestDrawUncheckedHasNoCheckmark(t *testing.T) {
	for _, style := range []CheckmarkStyle{CheckmarkSquare, CheckmarkCircle, CheckmarkCross, CheckmarkTick} {
		t.Run(style.String(), func(t *testing.T) {
			c := NewCheckbox(WithCheckmarkStyle(style), WithHapticFeedback(false))
			ops := recordDraw(t, c, NewRect(0, 0, 64, 64))
			if len(ops) != 2 {
				t.Errorf("unchecked draw recorded %d operations, want border stroke+fill only", len(ops))
			}
		})
	}
}

func TestCheckmarkRectCenteredForSizes(t *testing.T) {
	bounds := NewRect(0, 0, 80, 60)
	for _, s := range []float64{0.1, 0.25, 0.5, 0.75, 1.0} {
		c := NewCheckbox(WithCheckmarkSize(s), WithHapticFeedback(false))
		got := c.checkmarkRect(bounds)
		want := NewRect((80-80*s)/2, (60-60*s)/2, 80*s, 60*s)
		if !rectApproxEq(got, want, 1e-9) {
			t.Errorf("checkmarkRect(size=%v) = %+v, want %+v", s, got, want)
		}
	}
}

func TestDrawTickScenario(t *testing.T) {
	// bounds (0,0,100,100), size 0.5: glyph rect (25,25,50,50), polyline at
	// the fixed fractional offsets, stroke width 2.
	c := NewCheckbox(WithCheckmarkStyle(CheckmarkTick), WithHapticFeedback(false))
	c.SetChecked(true)

	ops := recordDraw(t, c, NewRect(0, 0, 100, 100))
	if len(ops) != 3 {
		t.Fatalf("recorded %d operations, want border stroke+fill plus tick stroke", len(ops))
	}
	tick := ops[2]
	if tick.kind != "stroke" {
		t.Fatalf("glyph operation = %s, want stroke", tick.kind)
	}
	if !approxEq(tick.lineWidth, 2.0, 1e-9) {
		t.Errorf("tick stroke width = %v, want 2.0", tick.lineWidth)
	}
	want := []gg.Point{
		gg.Pt(25+2.344, 25+31.774),
		gg.Pt(25+17.448, 25+47.581),
		gg.Pt(25+47.656, 25+2.420),
	}
	if len(tick.points) != len(want) {
		t.Fatalf("tick polyline has %d points, want %d", len(tick.points), len(want))
	}
	for i, p := range want {
		if !approxEq(tick.points[i].X, p.X, 1e-3) || !approxEq(tick.points[i].Y, p.Y, 1e-3) {
			t.Errorf("tick point %d = %v, want %v", i, tick.points[i], p)
		}
	}
}

func TestDrawCrossScenario(t *testing.T) {
	c := NewCheckbox(WithCheckmarkStyle(CheckmarkCross), WithHapticFeedback(false))
	c.SetChecked(true)

	ops := recordDraw(t, c, NewRect(0, 0, 100, 100))
	if len(ops) != 3 {
		t.Fatalf("recorded %d operations, want 3", len(ops))
	}
	cross := ops[2]
	if cross.kind != "stroke" {
		t.Fatalf("glyph operation = %s, want stroke", cross.kind)
	}
	if !approxEq(cross.lineWidth, 1.0, 1e-9) {
		t.Errorf("cross stroke width = %v, want 1.0 (size 0.5 doubled)", cross.lineWidth)
	}
	// Two diagonals over the 50x50 glyph rect at (25,25).
	want := []gg.Point{
		gg.Pt(25+0.0625*50, 25+0.06452*50),
		gg.Pt(25+0.9375*50, 25+0.93548*50),
		gg.Pt(25+0.9375*50, 25+0.06452*50),
		gg.Pt(25+0.0625*50, 25+0.93548*50),
	}
	if len(cross.points) != len(want) {
		t.Fatalf("cross has %d points, want %d", len(cross.points), len(want))
	}
	for i, p := range want {
		if !approxEq(cross.points[i].X, p.X, 1e-9) || !approxEq(cross.points[i].Y, p.Y, 1e-9) {
			t.Errorf("cross point %d = %v, want %v", i, cross.points[i], p)
		}
	}
}

func TestDrawFilledGlyphRects(t *testing.T) {
	wantRect := NewRect(25, 25, 50, 50)
	for _, style := range []CheckmarkStyle{CheckmarkSquare, CheckmarkCircle} {
		t.Run(style.String(), func(t *testing.T) {
			c := NewCheckbox(WithCheckmarkStyle(style), WithHapticFeedback(false))
			c.SetChecked(true)
			ops := recordDraw(t, c, NewRect(0, 0, 100, 100))
			if len(ops) != 3 {
				t.Fatalf("recorded %d operations, want 3", len(ops))
			}
			glyph := ops[2]
			if glyph.kind != "fill" {
				t.Fatalf("glyph operation = %s, want fill", glyph.kind)
			}
			if got := glyph.bbox(); !rectApproxEq(got, wantRect, 1e-9) {
				t.Errorf("glyph bbox = %+v, want %+v", got, wantRect)
			}
		})
	}
}

func TestDrawNilContextNoOp(t *testing.T) {
	c := NewCheckbox(WithHapticFeedback(false))
	c.SetChecked(true)
	c.Draw(nil, NewRect(0, 0, 64, 64)) // must not panic
}

// drawToImage renders the checkbox with the real software renderer.
func drawToImage(c *Checkbox, size int) *image.RGBA {
	dc := gg.NewContext(size, size)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	c.Draw(dc, NewRect(0, 0, float64(size), float64(size)))
	src := dc.Image()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, src.At(x, y))
		}
	}
	return img
}

func TestRenderedCheckmarkAppearsOnlyWhenChecked(t *testing.T) {
	// Dark glyph on a white surface: the glyph center darkens only while
	// checked.
	darkAt := func(img *image.RGBA, x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r < 0x4000 && g < 0x4000 && b < 0x4000
	}

	c := NewCheckbox(WithCheckmarkStyle(CheckmarkSquare), WithHapticFeedback(false))
	c.SetCheckmarkColor(gg.RGB(0, 0, 0))
	c.SetUncheckedBorderColor(gg.RGB(1, 1, 1))
	c.SetCheckedBorderColor(gg.RGB(1, 1, 1))

	unchecked := drawToImage(c, 64)
	if darkAt(unchecked, 32, 32) {
		t.Error("unchecked render has glyph pixels at the center")
	}

	c.SetChecked(true)
	checked := drawToImage(c, 64)
	if !darkAt(checked, 32, 32) {
		t.Error("checked render missing glyph pixels at the center")
	}
}

func TestRepeatedSetCheckedRendersIdentically(t *testing.T) {
	c := NewCheckbox(WithHapticFeedback(false))
	c.SetChecked(true)
	first := drawToImage(c, 48)

	// Re-assigning the current value schedules a redraw whose output is
	// pixel-identical.
	c.SetChecked(true)
	second := drawToImage(c, 48)

	if len(first.Pix) != len(second.Pix) {
		t.Fatal("image sizes differ")
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("pixel data differs at byte %d", i)
		}
	}
}

func BenchmarkDrawCheckedTick(b *testing.B) {
	c := NewCheckbox(WithHapticFeedback(false))
	c.SetChecked(true)
	dc := gg.NewContext(64, 64)
	defer dc.Close()
	bounds := NewRect(0, 0, 64, 64)
	b.ReportAllocs()
	for b.Loop() {
		c.Draw(dc, bounds)
	}
}
