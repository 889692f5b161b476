// Package ebitenui hosts uielements controls inside an Ebitengine game loop.
//
// A Widget pairs a control with a screen position and size. It renders the
// control into an offscreen gg context only when the control invalidates
// itself, uploads the result to an ebiten image, and feeds pointer releases
// to the control's hit test:
//
//	box := uielements.NewCheckbox()
//	w, err := ebitenui.NewWidget(box, 40, 40, 64, 64)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// In the game's Update:
//	w.Update()
//
//	// In the game's Draw:
//	w.Draw(screen)
//
// Pointer input is read through the PointerInput interface; the default
// implementation uses the Ebitengine cursor and mouse button state, and
// tests inject doubles via SetInput.
//
// Widget is NOT safe for concurrent use. Call Update and Draw from the game
// loop goroutine, as Ebitengine requires.
package ebitenui
