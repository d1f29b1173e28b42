// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept the pointer events a widget receives from the input
dispatcher and detect higher level actions such as clicks and
scrolling.
*/
package gesture

import (
	"treeui.org/f32"
	"treeui.org/io/event"
	"treeui.org/io/pointer"
)

// Click detects click gestures in the form of ClickEvents.
type Click struct {
	// Button is the button that clicks. The zero value means
	// pointer.ButtonPrimary.
	Button pointer.Button

	hovered bool
	pressed bool
}

type ClickState uint8

// ClickEvent represent a click action.
type ClickEvent struct {
	Type     ClickType
	Position f32.Point
}

type ClickType uint8

// Scroll accumulates scroll distances until they are taken.
type Scroll struct {
	delta f32.Point
}

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when the pointer is hovering over the
	// widget.
	StateFocused
	// StatePressed is reported when the button was pressed over the
	// widget and not yet released.
	StatePressed
)

const (
	// TypePress is reported when the button is pressed inside.
	TypePress ClickType = iota
	// TypeClick is reported when a press inside is released inside.
	TypeClick
	// TypeCancel is reported when a press inside is released outside.
	TypeCancel
	// TypeOutside is reported when the button is pressed outside.
	TypeOutside
)

func (c *Click) button() pointer.Button {
	if c.Button == 0 {
		return pointer.ButtonPrimary
	}
	return c.Button
}

// State reports the click state.
func (c *Click) State() ClickState {
	switch {
	case c.pressed:
		return StatePressed
	case c.hovered:
		return StateFocused
	default:
		return StateNormal
	}
}

// Hovered reports whether the pointer is over the widget.
func (c *Click) Hovered() bool {
	return c.hovered
}

// Pressed reports whether the button was pressed inside and is still
// held.
func (c *Click) Pressed() bool {
	return c.pressed
}

// Update feeds e to the gesture and returns the click event it
// completes, if any.
func (c *Click) Update(e event.Event) (ClickEvent, bool) {
	switch e := e.(type) {
	case pointer.Enter:
		c.hovered = true
	case pointer.Leave:
		c.hovered = false
	case pointer.ButtonChanged:
		if e.Button != c.button() {
			break
		}
		ev := ClickEvent{Position: e.Position}
		switch {
		case e.Down && e.Inside:
			c.pressed = true
			ev.Type = TypePress
		case e.Down:
			ev.Type = TypeOutside
		case !c.pressed:
			return ClickEvent{}, false
		case e.Inside:
			c.pressed = false
			ev.Type = TypeClick
		default:
			c.pressed = false
			ev.Type = TypeCancel
		}
		return ev, true
	}
	return ClickEvent{}, false
}

// Claims reports whether e is a button event the gesture consumes.
func (c *Click) Claims(e event.Event) bool {
	b, ok := e.(pointer.ButtonChanged)
	return ok && b.Inside && b.Button == c.button()
}

// Update adds the distance of a scroll event and reports whether e
// was one.
func (s *Scroll) Update(e event.Event) bool {
	sc, ok := e.(pointer.Scroll)
	if ok {
		s.delta = s.delta.Add(sc.Delta)
	}
	return ok
}

// Take returns and clears the accumulated distance.
func (s *Scroll) Take() f32.Point {
	d := s.delta
	s.delta = f32.Point{}
	return d
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	case TypeCancel:
		return "TypeCancel"
	case TypeOutside:
		return "TypeOutside"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
