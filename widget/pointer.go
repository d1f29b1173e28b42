// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"treeui.org/f32"
	"treeui.org/gesture"
	"treeui.org/io/event"
	"treeui.org/io/pointer"
	"treeui.org/ui"
)

// Pointer reports the pointer activity over its children.
type Pointer struct {
	// Button is the button that presses and clicks. The zero value
	// means pointer.ButtonPrimary.
	Button pointer.Button
}

// PointerWidget is the widget declared by Pointer.
type PointerWidget struct {
	ui.Base
	click   gesture.Click
	scroll  gesture.Scroll
	clicked bool
	outside bool
}

// PointerResponse is the pointer activity since the previous
// declaration.
type PointerResponse struct {
	Hovering bool
	// Down reports whether the button was pressed inside and is
	// still held.
	Down bool
	// Clicked reports whether the button was pressed and released
	// inside.
	Clicked bool
	// ClickedOutside reports whether the button was pressed outside.
	ClickedOutside bool
	// Scroll is the scroll distance accumulated over the widget.
	Scroll f32.Point
}

// Show declares the widget and returns the activity recorded since
// its previous declaration.
func (p Pointer) Show(children func()) PointerResponse {
	return ui.Do[PointerWidget](p, children).Respond()
}

func (w *PointerWidget) Update(p Pointer) {
	w.click.Button = p.Button
}

func (w *PointerWidget) Interest() event.Interest {
	return event.MouseInside | event.MouseOutside | event.MouseScroll
}

func (w *PointerWidget) Event(ctx ui.EventContext, e event.Event) event.Response {
	if w.scroll.Update(e) {
		return event.Sink
	}
	if ev, ok := w.click.Update(e); ok {
		switch ev.Type {
		case gesture.TypeClick:
			w.clicked = true
		case gesture.TypeOutside:
			w.outside = true
		}
	}
	if w.click.Claims(e) {
		return event.Sink
	}
	return event.Bubble
}

// Respond returns the recorded activity and clears clicks and
// scrolling.
func (w *PointerWidget) Respond() PointerResponse {
	r := PointerResponse{
		Hovering:       w.click.Hovered(),
		Down:           w.click.Pressed(),
		Clicked:        w.clicked,
		ClickedOutside: w.outside,
		Scroll:         w.scroll.Take(),
	}
	w.clicked = false
	w.outside = false
	return r
}
