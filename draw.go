package uielements

import "github.com/gogpu/gg"

// Fractional glyph coordinates within the checkmark's bounding rectangle.
const (
	crossMinX = 0.0625
	crossMinY = 0.06452
	crossMaxX = 0.9375
	crossMaxY = 0.93548

	tickStartX = 0.04688
	tickStartY = 0.63548
	tickMidX   = 0.34896
	tickMidY   = 0.95161
	tickEndX   = 0.95312
	tickEndY   = 0.04839
)

// Stroke width multipliers applied to CheckmarkSize.
const (
	crossStrokeScale = 2.0
	tickStrokeScale  = 4.0
)

// Draw renders the control into bounds on dc. The border is always drawn;
// the checkmark glyph only while the control is checked. A nil context is a
// silent no-op so hosts may call Draw during teardown.
func (c *Checkbox) Draw(dc *gg.Context, bounds Rect) {
	if dc == nil {
		return
	}
	c.drawBorder(dc, bounds)
	if c.checked {
		c.drawCheckmark(dc, bounds)
	}
}

// drawBorder strokes and then fills the border path, inset by half the
// border line width so the stroke is fully contained within bounds. The fill
// is painted after the stroke over the same path and covers the inner half
// of the stroke; the original control layers it this way.
func (c *Checkbox) drawBorder(dc *gg.Context, bounds Rect) {
	stroke, fill := c.uncheckedBorderColor, c.uncheckedFillColor
	if c.checked {
		stroke, fill = c.checkedBorderColor, c.checkedFillColor
	}

	inset := bounds.Inset(c.borderLineWidth / 2)
	switch c.borderStyle {
	case BorderCircle:
		center := inset.Center()
		dc.DrawEllipse(center.X, center.Y, inset.W/2, inset.H/2)
		// The circle border strokes at half the configured width.
		dc.SetLineWidth(c.borderLineWidth / 2)
	default:
		dc.DrawRoundedRectangle(inset.X, inset.Y, inset.W, inset.H, c.borderCornerRadius)
		dc.SetLineWidth(c.borderLineWidth)
	}

	dc.SetStrokeBrush(gg.Solid(stroke))
	if err := dc.StrokePreserve(); err != nil {
		Logger().Warn("border stroke failed", "err", err)
	}
	dc.SetFillBrush(gg.Solid(fill))
	if err := dc.Fill(); err != nil {
		Logger().Warn("border fill failed", "err", err)
	}
}

// checkmarkRect returns the glyph's bounding rectangle: CheckmarkSize times
// the bounds' max coordinates, centered within bounds.
func (c *Checkbox) checkmarkRect(bounds Rect) Rect {
	w := bounds.MaxX() * c.checkmarkSize
	h := bounds.MaxY() * c.checkmarkSize
	return Rect{
		X: bounds.X + (bounds.W-w)/2,
		Y: bounds.Y + (bounds.H-h)/2,
		W: w,
		H: h,
	}
}

// drawCheckmark draws the glyph selected by CheckmarkStyle inside the
// centered glyph rectangle, in the checkmark color.
func (c *Checkbox) drawCheckmark(dc *gg.Context, bounds Rect) {
	r := c.checkmarkRect(bounds)

	switch c.checkmarkStyle {
	case CheckmarkSquare:
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.SetFillBrush(gg.Solid(c.checkmarkColor))
		if err := dc.Fill(); err != nil {
			Logger().Warn("checkmark fill failed", "err", err)
		}

	case CheckmarkCircle:
		center := r.Center()
		dc.DrawEllipse(center.X, center.Y, r.W/2, r.H/2)
		dc.SetFillBrush(gg.Solid(c.checkmarkColor))
		if err := dc.Fill(); err != nil {
			Logger().Warn("checkmark fill failed", "err", err)
		}

	case CheckmarkCross:
		dc.DrawLine(r.X+crossMinX*r.W, r.Y+crossMinY*r.H, r.X+crossMaxX*r.W, r.Y+crossMaxY*r.H)
		dc.DrawLine(r.X+crossMaxX*r.W, r.Y+crossMinY*r.H, r.X+crossMinX*r.W, r.Y+crossMaxY*r.H)
		dc.SetLineWidth(c.checkmarkSize * crossStrokeScale)
		dc.SetStrokeBrush(gg.Solid(c.checkmarkColor))
		if err := dc.Stroke(); err != nil {
			Logger().Warn("checkmark stroke failed", "err", err)
		}

	case CheckmarkTick:
		dc.MoveTo(r.X+tickStartX*r.W, r.Y+tickStartY*r.H)
		dc.LineTo(r.X+tickMidX*r.W, r.Y+tickMidY*r.H)
		dc.LineTo(r.X+tickEndX*r.W, r.Y+tickEndY*r.H)
		dc.SetLineWidth(c.checkmarkSize * tickStrokeScale)
		dc.SetStrokeBrush(gg.Solid(c.checkmarkColor))
		if err := dc.Stroke(); err != nil {
			Logger().Warn("checkmark stroke failed", "err", err)
		}
	}
}
