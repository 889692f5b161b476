package uielements

import (
	"sync/atomic"

	"github.com/gogpu/gg"
)

// defaultTint is the ambient accent color in effect when the package loads.
var defaultTint = gg.RGBA{R: 0, G: 0.478, B: 1, A: 1}

// tintPtr stores the ambient tint. Accessed atomically so that SetTint can be
// called while controls are being constructed elsewhere.
var tintPtr atomic.Pointer[gg.RGBA]

func init() {
	t := defaultTint
	tintPtr.Store(&t)
}

// SetTint sets the ambient tint color. NewCheckbox snapshots the tint into a
// control's border and checkmark colors at construction time; changing the
// tint later does not repaint existing controls.
func SetTint(c gg.RGBA) {
	tintPtr.Store(&c)
}

// Tint returns the current ambient tint color.
func Tint() gg.RGBA {
	return *tintPtr.Load()
}
