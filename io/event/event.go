// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

import "strings"

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Interest is the set of event kinds a widget wants delivered.
type Interest uint8

// Response is a widget's answer to an event.
type Response uint8

const (
	// MouseInside delivers pointer events while the pointer is
	// inside the widget.
	MouseInside Interest = 1 << iota
	// MouseOutside delivers button events that happen while the
	// pointer is outside the widget.
	MouseOutside
	// MouseMove delivers pointer movement inside the widget.
	MouseMove
	// MouseScroll delivers wheel events inside the widget.
	MouseScroll
	// Focus delivers focus changes.
	Focus
	// FocusedKeyboard delivers key and text events while the widget
	// has focus.
	FocusedKeyboard
)

// MouseAll is the set of pointer-related interests. Widgets declaring
// any of them take part in hit testing.
const MouseAll = MouseInside | MouseOutside | MouseMove | MouseScroll

const (
	// Bubble lets the event continue to other widgets.
	Bubble Response = iota
	// Sink consumes the event.
	Sink
)

// Contain reports whether i contains all of the interests in o.
func (i Interest) Contain(o Interest) bool {
	return i&o == o
}

// Intersects reports whether i and o share any interest.
func (i Interest) Intersects(o Interest) bool {
	return i&o != 0
}

func (i Interest) String() string {
	var strs []string
	for it := Interest(1); it != 0 && it <= FocusedKeyboard; it <<= 1 {
		if i&it != 0 {
			strs = append(strs, it.string())
		}
	}
	return strings.Join(strs, "|")
}

func (i Interest) string() string {
	switch i {
	case MouseInside:
		return "MouseInside"
	case MouseOutside:
		return "MouseOutside"
	case MouseMove:
		return "MouseMove"
	case MouseScroll:
		return "MouseScroll"
	case Focus:
		return "Focus"
	case FocusedKeyboard:
		return "FocusedKeyboard"
	default:
		panic("unknown Interest")
	}
}

func (r Response) String() string {
	switch r {
	case Bubble:
		return "Bubble"
	case Sink:
		return "Sink"
	default:
		panic("unknown Response")
	}
}
