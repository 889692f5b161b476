package uielements

import "github.com/gogpu/gg"

// Checkbox is a tappable boolean control with a configurable border shape,
// fill, and checkmark glyph.
//
// A Checkbox owns its checked state and style. It renders itself through
// Draw, decides tap eligibility through HitTest, and flips state through
// Toggle; the host delivers input, supplies the drawing surface, and
// repaints when the invalidate hook fires. One instance backs one on-screen
// control; there is no pooling or reuse contract.
//
// Checkbox is NOT safe for concurrent use. The host is expected to serialize
// layout, draw, and input events, as UI frameworks do.
type Checkbox struct {
	checked bool

	checkmarkStyle       CheckmarkStyle
	borderStyle          BorderStyle
	borderLineWidth      float64
	checkmarkSize        float64
	borderCornerRadius   float64
	increasedTouchRadius float64

	uncheckedBorderColor gg.RGBA
	checkedBorderColor   gg.RGBA
	checkmarkColor       gg.RGBA
	backgroundColor      gg.RGBA
	checkedFillColor     gg.RGBA
	uncheckedFillColor   gg.RGBA

	hapticsEnabled bool
	impact         ImpactGenerator

	onValueChanged func(checked bool)
	listeners      []func(checked bool)

	invalidate func()
}

// NewCheckbox creates an unchecked Checkbox with the default style.
//
// The border and checkmark colors default to the ambient tint in effect at
// construction time. The snapshot is not a live binding: a later SetTint does
// not repaint existing controls. When haptic feedback is enabled (the
// default), the impact generator is primed so the first toggle fires with low
// latency.
func NewCheckbox(opts ...Option) *Checkbox {
	tint := Tint()
	c := &Checkbox{
		checkmarkStyle:       CheckmarkTick,
		borderStyle:          BorderSquare,
		borderLineWidth:      DefaultBorderLineWidth,
		checkmarkSize:        DefaultCheckmarkSize,
		borderCornerRadius:   DefaultBorderCornerRadius,
		increasedTouchRadius: DefaultIncreasedTouchRadius,

		uncheckedBorderColor: tint,
		checkedBorderColor:   tint,
		checkmarkColor:       tint,
		backgroundColor:      gg.RGB(1, 1, 1),
		checkedFillColor:     gg.RGBA{},
		uncheckedFillColor:   gg.RGBA{},

		hapticsEnabled: true,
		impact:         NopImpactGenerator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hapticsEnabled {
		c.impact.Prepare()
	}
	return c
}

// requestRedraw asks the host to repaint the control.
func (c *Checkbox) requestRedraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

// SetInvalidate registers the host's redraw hook. Every state or style
// mutation calls the hook, including mutations that store an unchanged value.
func (c *Checkbox) SetInvalidate(fn func()) {
	c.invalidate = fn
}

// Checked reports the current toggle state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the toggle state directly, without firing OnValueChanged,
// listeners, or haptics. A redraw is requested even when the value is
// unchanged; the rendered output is then identical to before.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
	c.requestRedraw()
}

// Toggle flips the checked state as a user tap does: the new value is stored,
// OnValueChanged and every registered listener receive it, and with haptics
// enabled one impact pulse fires followed by a re-prime for the next tap.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	c.requestRedraw()
	if c.onValueChanged != nil {
		c.onValueChanged(c.checked)
	}
	for _, fn := range c.listeners {
		fn(c.checked)
	}
	if c.hapticsEnabled {
		c.impact.Trigger()
		c.impact.Prepare()
	}
}

// Tap hit-tests p against bounds and, when inside the enlarged hit area,
// toggles the control. It reports whether the tap was handled.
func (c *Checkbox) Tap(p Point, bounds Rect) bool {
	if !c.HitTest(p, bounds) {
		return false
	}
	c.Toggle()
	return true
}

// HitTest reports whether p falls within bounds expanded outward by
// IncreasedTouchRadius on all four sides. The hit area is rectangular
// regardless of the border style, so a circular control still has an
// enlarged rectangular tap target.
func (c *Checkbox) HitTest(p Point, bounds Rect) bool {
	return bounds.Expand(c.increasedTouchRadius).Contains(p)
}

// AddValueChangedListener registers an additional observer invoked after
// every user-initiated toggle, after OnValueChanged.
func (c *Checkbox) AddValueChangedListener(fn func(checked bool)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// SetOnValueChanged sets the primary toggle observer.
func (c *Checkbox) SetOnValueChanged(fn func(checked bool)) {
	c.onValueChanged = fn
}

// CheckmarkStyle returns the glyph style drawn when checked.
func (c *Checkbox) CheckmarkStyle() CheckmarkStyle { return c.checkmarkStyle }

// SetCheckmarkStyle sets the glyph style and requests a redraw.
func (c *Checkbox) SetCheckmarkStyle(s CheckmarkStyle) {
	c.checkmarkStyle = s
	c.requestRedraw()
}

// BorderStyle returns the outer border shape.
func (c *Checkbox) BorderStyle() BorderStyle { return c.borderStyle }

// SetBorderStyle sets the outer border shape and requests a redraw.
func (c *Checkbox) SetBorderStyle(s BorderStyle) {
	c.borderStyle = s
	c.requestRedraw()
}

// BorderLineWidth returns the border stroke width.
func (c *Checkbox) BorderLineWidth() float64 { return c.borderLineWidth }

// SetBorderLineWidth sets the border stroke width and requests a redraw.
// Negative widths are stored as-is; rendering degrades but does not fail.
func (c *Checkbox) SetBorderLineWidth(w float64) {
	if w < 0 {
		Logger().Debug("negative border line width", "width", w)
	}
	c.borderLineWidth = w
	c.requestRedraw()
}

// CheckmarkSize returns the checkmark fraction of the control's bounds.
func (c *Checkbox) CheckmarkSize() float64 { return c.checkmarkSize }

// SetCheckmarkSize sets the checkmark fraction and requests a redraw.
// Values outside (0, 1] are stored as-is; rendering degrades but does not
// fail.
func (c *Checkbox) SetCheckmarkSize(s float64) {
	if s <= 0 || s > 1 {
		Logger().Debug("checkmark size outside (0, 1]", "size", s)
	}
	c.checkmarkSize = s
	c.requestRedraw()
}

// BorderCornerRadius returns the corner radius of the square border variant.
func (c *Checkbox) BorderCornerRadius() float64 { return c.borderCornerRadius }

// SetBorderCornerRadius sets the square border corner radius and requests a
// redraw. The circle border variant ignores it.
func (c *Checkbox) SetBorderCornerRadius(r float64) {
	c.borderCornerRadius = r
	c.requestRedraw()
}

// IncreasedTouchRadius returns the extra hit-area margin.
func (c *Checkbox) IncreasedTouchRadius() float64 { return c.increasedTouchRadius }

// SetIncreasedTouchRadius sets the extra hit-area margin. The visual bounds
// are unaffected, so no redraw is requested.
func (c *Checkbox) SetIncreasedTouchRadius(r float64) {
	c.increasedTouchRadius = r
}

// UncheckedBorderColor returns the border stroke color while unchecked.
func (c *Checkbox) UncheckedBorderColor() gg.RGBA { return c.uncheckedBorderColor }

// SetUncheckedBorderColor sets the unchecked border stroke color and
// requests a redraw.
func (c *Checkbox) SetUncheckedBorderColor(col gg.RGBA) {
	c.uncheckedBorderColor = col
	c.requestRedraw()
}

// CheckedBorderColor returns the border stroke color while checked.
func (c *Checkbox) CheckedBorderColor() gg.RGBA { return c.checkedBorderColor }

// SetCheckedBorderColor sets the checked border stroke color and requests a
// redraw.
func (c *Checkbox) SetCheckedBorderColor(col gg.RGBA) {
	c.checkedBorderColor = col
	c.requestRedraw()
}

// CheckmarkColor returns the glyph color.
func (c *Checkbox) CheckmarkColor() gg.RGBA { return c.checkmarkColor }

// SetCheckmarkColor sets the glyph color and requests a redraw.
func (c *Checkbox) SetCheckmarkColor(col gg.RGBA) {
	c.checkmarkColor = col
	c.requestRedraw()
}

// CheckboxBackgroundColor returns the base-coat color. Draw itself paints
// only border and glyph; hosts clear the surface with this color first.
func (c *Checkbox) CheckboxBackgroundColor() gg.RGBA { return c.backgroundColor }

// SetCheckboxBackgroundColor sets the base-coat color and requests a redraw.
func (c *Checkbox) SetCheckboxBackgroundColor(col gg.RGBA) {
	c.backgroundColor = col
	c.requestRedraw()
}

// CheckedFillColor returns the border fill color while checked.
func (c *Checkbox) CheckedFillColor() gg.RGBA { return c.checkedFillColor }

// SetCheckedFillColor sets the checked border fill color and requests a
// redraw.
func (c *Checkbox) SetCheckedFillColor(col gg.RGBA) {
	c.checkedFillColor = col
	c.requestRedraw()
}

// UncheckedFillColor returns the border fill color while unchecked.
func (c *Checkbox) UncheckedFillColor() gg.RGBA { return c.uncheckedFillColor }

// SetUncheckedFillColor sets the unchecked border fill color and requests a
// redraw.
func (c *Checkbox) SetUncheckedFillColor(col gg.RGBA) {
	c.uncheckedFillColor = col
	c.requestRedraw()
}

// HapticFeedbackEnabled reports whether toggles fire a tactile pulse.
func (c *Checkbox) HapticFeedbackEnabled() bool { return c.hapticsEnabled }

// SetHapticFeedbackEnabled enables or disables the tactile pulse on toggle.
// Enabling primes the impact generator for the next tap.
func (c *Checkbox) SetHapticFeedbackEnabled(enabled bool) {
	c.hapticsEnabled = enabled
	if enabled {
		c.impact.Prepare()
	}
}
