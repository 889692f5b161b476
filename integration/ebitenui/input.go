package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput supplies pointer state to a Widget.
// It exists for dependency injection: the default implementation reads
// Ebitengine state, tests supply doubles.
type PointerInput interface {
	// CursorPosition returns the pointer position in screen coordinates.
	CursorPosition() (int, int)

	// JustReleased reports whether the primary pointer was released in the
	// current tick. Widgets toggle on release, not on press.
	JustReleased() bool
}

// ebitenPointerInput reads the real Ebitengine cursor and mouse state.
type ebitenPointerInput struct{}

func (ebitenPointerInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenPointerInput) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
