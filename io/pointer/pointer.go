// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer buttons and the pointer events
// exchanged between the host, the input dispatcher and widgets.
package pointer

import (
	"fmt"

	"treeui.org/f32"
)

// Button identifies a mouse button.
type Button uint8

// ButtonState is the per-frame state of a button. JustDown and JustUp
// last exactly one frame, letting widgets tell "became pressed this
// frame" apart from "still held".
type ButtonState uint8

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Button = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

const (
	Up ButtonState = iota
	JustDown
	Down
	JustUp
)

// Host events, fed to the input dispatcher by the windowing layer.

// Move reports the pointer position in physical pixels.
type Move struct {
	Position f32.Point
}

// Exit reports that the pointer left the window.
type Exit struct{}

// Press reports a button transition.
type Press struct {
	Button Button
	Down   bool
}

// Wheel reports a scroll of the mouse wheel or touchpad.
type Wheel struct {
	Delta f32.Point
}

// Widget events, synthesized by the input dispatcher.

// Enter is delivered when the pointer starts hitting a widget.
type Enter struct{}

// Leave is delivered when the pointer stops hitting a widget.
type Leave struct{}

// ButtonChanged is delivered on the frame a button becomes JustDown or
// JustUp. Inside reports whether the pointer hit the receiving widget.
type ButtonChanged struct {
	Button   Button
	Down     bool
	Inside   bool
	Position f32.Point
}

// Moved is delivered to widgets with MouseMove interest that the
// pointer moved over.
type Moved struct {
	Position f32.Point
}

// Scroll is delivered to hit widgets with MouseScroll interest.
type Scroll struct {
	Delta f32.Point
}

// Press advances s for a button press.
func (s ButtonState) Press() ButtonState {
	switch s {
	case Down, JustDown:
		return s
	default:
		return JustDown
	}
}

// Release advances s for a button release. A release before a press
// settled gives JustUp; the dispatcher still delivers both changes.
func (s ButtonState) Release() ButtonState {
	switch s {
	case Up, JustUp:
		return s
	default:
		return JustUp
	}
}

// Settle advances the one-frame states JustDown and JustUp to Down
// and Up.
func (s ButtonState) Settle() ButtonState {
	switch s {
	case JustDown:
		return Down
	case JustUp:
		return Up
	default:
		return s
	}
}

// IsDown reports whether the button is held.
func (s ButtonState) IsDown() bool {
	return s == JustDown || s == Down
}

// Changed reports whether s is one of the one-frame transition states.
func (s ButtonState) Changed() bool {
	return s == JustDown || s == JustUp
}

func (s ButtonState) String() string {
	switch s {
	case Up:
		return "Up"
	case JustDown:
		return "JustDown"
	case Down:
		return "Down"
	case JustUp:
		return "JustUp"
	default:
		panic("unknown ButtonState")
	}
}

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "ButtonPrimary"
	case ButtonSecondary:
		return "ButtonSecondary"
	case ButtonTertiary:
		return "ButtonTertiary"
	default:
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
}

func (Move) ImplementsEvent()          {}
func (Exit) ImplementsEvent()          {}
func (Press) ImplementsEvent()         {}
func (Wheel) ImplementsEvent()         {}
func (Enter) ImplementsEvent()         {}
func (Leave) ImplementsEvent()         {}
func (ButtonChanged) ImplementsEvent() {}
func (Moved) ImplementsEvent()         {}
func (Scroll) ImplementsEvent()        {}
