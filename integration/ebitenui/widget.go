package ebitenui

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	uielements "github.com/techiesanjaypathak/UIElements"
)

// Common errors returned by Widget operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ebitenui: invalid dimensions")

	// ErrNilCheckbox is returned when a nil control is passed.
	ErrNilCheckbox = errors.New("ebitenui: nil checkbox")
)

// Widget hosts a Checkbox at a fixed position inside an Ebitengine game.
//
// The widget owns an offscreen gg context sized to the control. The control's
// invalidate hook marks the widget dirty; the next Draw repaints the
// offscreen surface (base coat, then the control) and uploads it to an
// ebiten image. Clean frames reuse the uploaded image.
type Widget struct {
	box *uielements.Checkbox

	x, y          float64
	width, height int

	dc     *gg.Context
	img    *ebiten.Image
	dirty  bool
	closed bool

	input PointerInput
}

// NewWidget creates a widget hosting box at (x, y) with the given pixel size.
// The control's invalidate hook is pointed at the widget.
func NewWidget(box *uielements.Checkbox, x, y float64, width, height int) (*Widget, error) {
	if box == nil {
		return nil, ErrNilCheckbox
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	w := &Widget{
		box:    box,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		dc:     gg.NewContext(width, height),
		dirty:  true,
		input:  ebitenPointerInput{},
	}
	box.SetInvalidate(w.Invalidate)
	return w, nil
}

// SetInput replaces the pointer input source. Tests use this to inject
// doubles; a nil input restores the Ebitengine default.
func (w *Widget) SetInput(in PointerInput) {
	if in == nil {
		in = ebitenPointerInput{}
	}
	w.input = in
}

// Checkbox returns the hosted control.
func (w *Widget) Checkbox() *uielements.Checkbox { return w.box }

// Bounds returns the widget's visual bounds in screen coordinates.
// The tappable area extends beyond it by the control's touch radius.
func (w *Widget) Bounds() uielements.Rect {
	return uielements.NewRect(w.x, w.y, float64(w.width), float64(w.height))
}

// Invalidate marks the offscreen surface stale. The control calls this on
// every state or style mutation; hosts may also call it directly after an
// external change.
func (w *Widget) Invalidate() {
	w.dirty = true
}

// Update processes pointer input for the current tick. A release inside the
// control's enlarged hit area toggles it.
func (w *Widget) Update() {
	if w.closed {
		return
	}
	if !w.input.JustReleased() {
		return
	}
	cx, cy := w.input.CursorPosition()
	w.box.Tap(gg.Pt(float64(cx), float64(cy)), w.Bounds())
}

// Draw paints the widget onto screen, repainting the offscreen surface first
// if the control invalidated since the last frame.
func (w *Widget) Draw(screen *ebiten.Image) {
	if w.closed {
		return
	}
	if w.dirty || w.img == nil {
		w.redraw()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w.x, w.y)
	screen.DrawImage(w.img, op)
}

// redraw repaints the offscreen surface and uploads it.
// The surface is cleared with the control's background color first; the
// control itself paints only border and glyph.
func (w *Widget) redraw() {
	w.dc.ClearWithColor(w.box.CheckboxBackgroundColor())
	w.box.Draw(w.dc, uielements.NewRect(0, 0, float64(w.width), float64(w.height)))
	w.img = ebiten.NewImageFromImage(w.dc.Image())
	w.dirty = false
}

// Close releases the offscreen context. After Close, Update and Draw are
// silent no-ops. Close is idempotent.
func (w *Widget) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.dc.Close()
}
