package uielements

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.MinX() != 10 || r.MinY() != 20 {
		t.Errorf("Min = (%v, %v), want (10, 20)", r.MinX(), r.MinY())
	}
	if r.MaxX() != 40 || r.MaxY() != 60 {
		t.Errorf("Max = (%v, %v), want (40, 60)", r.MaxX(), r.MaxY())
	}
	if c := r.Center(); c.X != 25 || c.Y != 40 {
		t.Errorf("Center() = %v, want (25, 40)", c)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		d    float64
		want Rect
	}{
		{"positive", NewRect(0, 0, 100, 100), 1, NewRect(1, 1, 98, 98)},
		{"negative grows", NewRect(10, 10, 20, 20), -5, NewRect(5, 5, 30, 30)},
		{"zero", NewRect(3, 4, 5, 6), 0, NewRect(3, 4, 5, 6)},
		{"half pixel", NewRect(0, 0, 10, 10), 0.5, NewRect(0.5, 0.5, 9, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.d); got != tt.want {
				t.Errorf("Inset(%v) = %+v, want %+v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	want := NewRect(5, 5, 30, 30)
	if got := r.Expand(5); got != want {
		t.Errorf("Expand(5) = %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", gg.Pt(5, 5), true},
		{"top-left corner", gg.Pt(0, 0), true},
		{"bottom-right corner", gg.Pt(10, 10), true},
		{"on right edge", gg.Pt(10, 5), true},
		{"just outside right", gg.Pt(10.001, 5), false},
		{"just outside top", gg.Pt(5, -0.001), false},
		{"far outside", gg.Pt(-50, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
