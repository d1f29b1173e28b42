// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level: window geometry and display scale.
package system

import (
	"treeui.org/f32"
)

// ViewportEvent reports the window's drawable area in physical pixels.
type ViewportEvent struct {
	Rect f32.Rectangle
}

// ScaleEvent reports the number of physical pixels per logical pixel.
type ScaleEvent struct {
	Factor float32
}

func (ViewportEvent) ImplementsEvent() {}
func (ScaleEvent) ImplementsEvent()    {}
