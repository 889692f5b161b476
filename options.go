package uielements

// Option configures a Checkbox during creation.
// Use functional options to customize construction:
//
//	box := uielements.NewCheckbox(
//		uielements.WithBorderStyle(uielements.BorderCircle),
//		uielements.WithCheckmarkStyle(uielements.CheckmarkCross),
//	)
//
// Everything an Option sets can also be changed later through the
// corresponding setter; options exist so a fully-styled control can be built
// in one expression.
type Option func(*Checkbox)

// WithCheckmarkStyle sets the glyph drawn when the control is checked.
func WithCheckmarkStyle(s CheckmarkStyle) Option {
	return func(c *Checkbox) {
		c.checkmarkStyle = s
	}
}

// WithBorderStyle sets the outer border shape.
func WithBorderStyle(s BorderStyle) Option {
	return func(c *Checkbox) {
		c.borderStyle = s
	}
}

// WithBorderLineWidth sets the border stroke width.
func WithBorderLineWidth(w float64) Option {
	return func(c *Checkbox) {
		c.borderLineWidth = w
	}
}

// WithCheckmarkSize sets the checkmark fraction of the control's bounds.
// Valid values are in (0, 1].
func WithCheckmarkSize(s float64) Option {
	return func(c *Checkbox) {
		c.checkmarkSize = s
	}
}

// WithBorderCornerRadius sets the corner radius of the square border variant.
func WithBorderCornerRadius(r float64) Option {
	return func(c *Checkbox) {
		c.borderCornerRadius = r
	}
}

// WithIncreasedTouchRadius sets the extra margin added to the tappable hit
// area beyond the visual bounds.
func WithIncreasedTouchRadius(r float64) Option {
	return func(c *Checkbox) {
		c.increasedTouchRadius = r
	}
}

// WithHapticFeedback enables or disables the tactile pulse on toggle.
func WithHapticFeedback(enabled bool) Option {
	return func(c *Checkbox) {
		c.hapticsEnabled = enabled
	}
}

// WithImpactGenerator injects the host's haptic implementation.
// Use this for platforms with a tactile API, or for test doubles.
// A nil generator restores the default no-op implementation.
func WithImpactGenerator(g ImpactGenerator) Option {
	return func(c *Checkbox) {
		if g == nil {
			g = NopImpactGenerator{}
		}
		c.impact = g
	}
}

// WithOnValueChanged sets the primary toggle observer.
func WithOnValueChanged(fn func(checked bool)) Option {
	return func(c *Checkbox) {
		c.onValueChanged = fn
	}
}

// WithInvalidate registers the host's redraw hook at construction time.
func WithInvalidate(fn func()) Option {
	return func(c *Checkbox) {
		c.invalidate = fn
	}
}
