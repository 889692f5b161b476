// Package uielements provides small interactive visual controls rendered
// with the gg 2D graphics library.
//
// # Overview
//
// The package currently contains one control: Checkbox, a tappable boolean
// control with a configurable border shape, fill, and checkmark glyph. The
// control owns its own state and style; it draws itself onto any *gg.Context
// and leaves display, input delivery, and invalidation to the embedding host.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/techiesanjaypathak/UIElements"
//	)
//
//	box := uielements.NewCheckbox(
//		uielements.WithBorderStyle(uielements.BorderCircle),
//		uielements.WithOnValueChanged(func(checked bool) {
//			// react to toggles
//		}),
//	)
//
//	dc := gg.NewContext(64, 64)
//	box.Draw(dc, uielements.NewRect(0, 0, 64, 64))
//	dc.SavePNG("checkbox.png")
//
// # Hosting
//
// A control is host-agnostic: rendering takes an explicit drawing context and
// bounds, hit-testing takes an explicit point and bounds, and redraws are
// requested through an invalidate hook registered by the host. The
// integration/ebitenui package hosts a Checkbox inside an Ebitengine game
// loop; other hosts only need to wire those three calls.
//
// # State and redraws
//
// Property mutation goes through explicit setters that store the value and
// request a redraw, so the "set property, then repaint" contract is visible in
// the API rather than hidden behind property observation. All operations are
// synchronous and are expected to run on the host's UI goroutine; a Checkbox
// is not safe for concurrent use.
package uielements

// Version is the current version of the library.
const Version = "0.2.0"
