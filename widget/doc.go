// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements generic widgets on top of package ui.
// Every widget is declared by calling Show on its props on the tree
// being built by the calling goroutine:
//
//	widget.UniformPad(8).Show(func() {
//		widget.Row().Show(func() {
//			widget.Label{Text: "hello"}.Show()
//		})
//	})
//
// The widgets only implement layout, clip and input policy; drawing
// is limited to filled rectangles and text handed to a ui.Canvas.
package widget
