package uielements

import "github.com/gogpu/gg"

// Point is the 2D point type used throughout the package.
// It is gg's point so host code can pass coordinates without conversion.
type Point = gg.Point

// Rect is an axis-aligned rectangle with float64 coordinates.
// gg exposes only a float Point; the int-based image.Rectangle is too coarse
// for half-pixel insets, so the control carries its own rectangle type.
type Rect struct {
	X, Y, W, H float64
}

// NewRect is a convenience function to create a Rect.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MinX returns the smallest x coordinate of the rectangle.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the smallest y coordinate of the rectangle.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the largest x coordinate of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the largest y coordinate of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return gg.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Inset returns the rectangle shrunk by d on every side.
// A negative d grows the rectangle.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Expand returns the rectangle grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return r.Inset(-d)
}

// Contains reports whether p lies inside the rectangle.
// Points exactly on an edge are inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}
