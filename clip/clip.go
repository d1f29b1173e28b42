// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip resolves declarative clip logic into concrete clip
rectangles.

A widget declares how its clip relates to rectangles that are only
known once layout has finished: its parent's clip, its parent's
rectangle, its own rectangle and the viewport. Resolve turns the
declaration into a rectangle given those four values.

Contain logic also produces an offset that moves the widget back
inside a bounding rectangle. The offset is always applied before the
clip is computed, which keeps popups and tooltips on screen.
*/
package clip

import (
	"fmt"

	"treeui.org/f32"
)

// Source names a rectangle known at clip resolution time.
type Source uint8

// Operand is a rectangle reference used by Logic.
type Operand struct {
	Source Source
	// Rect is the rectangle of a Value operand.
	Rect f32.Rectangle
}

// Logic is a declarative clip. The zero Logic is Pass.
type Logic struct {
	kind kind
	a, b Operand
}

// Context holds the concrete rectangles available to Resolve.
type Context struct {
	ParentClip f32.Rectangle
	ParentRect f32.Rectangle
	LayoutRect f32.Rectangle
	Viewport   f32.Rectangle
}

type kind uint8

const (
	// SourceParentClip is the clip of the parent widget.
	SourceParentClip Source = iota
	// SourceParentRect is the rectangle of the parent widget.
	SourceParentRect
	// SourceLayoutRect is the rectangle of the widget itself.
	SourceLayoutRect
	// SourceViewport is the viewport.
	SourceViewport
	// SourceValue is an explicit rectangle.
	SourceValue
)

const (
	kindPass kind = iota
	kindConstrain
	kindContain
	kindOverride
)

var (
	ParentClip = Operand{Source: SourceParentClip}
	ParentRect = Operand{Source: SourceParentRect}
	LayoutRect = Operand{Source: SourceLayoutRect}
	Viewport   = Operand{Source: SourceViewport}
)

// Value returns an operand for an explicit rectangle.
func Value(r f32.Rectangle) Operand {
	return Operand{Source: SourceValue, Rect: r}
}

// Pass inherits the parent's clip unmodified.
func Pass() Logic {
	return Logic{}
}

// Constrain clips to the intersection of a and b.
func Constrain(a, b Operand) Logic {
	return Logic{kind: kindConstrain, a: a, b: b}
}

// Contain moves it inside parent without resizing it, then clips to
// the intersection of the moved rectangle and parent.
func Contain(it, parent Operand) Logic {
	return Logic{kind: kindContain, a: it, b: parent}
}

// Override clips to r regardless of the surroundings. An empty r
// hides the widget.
func Override(r f32.Rectangle) Logic {
	return Logic{kind: kindOverride, a: Value(r)}
}

// Rect returns the rectangle o refers to in ctx.
func (ctx Context) Rect(o Operand) f32.Rectangle {
	switch o.Source {
	case SourceParentClip:
		return ctx.ParentClip
	case SourceParentRect:
		return ctx.ParentRect
	case SourceLayoutRect:
		return ctx.LayoutRect
	case SourceViewport:
		return ctx.Viewport
	case SourceValue:
		return o.Rect
	default:
		panic("unknown clip source")
	}
}

// Offset returns the offset to apply to the widget's position. It is
// non-zero only for Contain logic.
func (l Logic) Offset(ctx Context) f32.Point {
	if l.kind != kindContain {
		return f32.Point{}
	}
	return ContainOffset(ctx.Rect(l.a), ctx.Rect(l.b))
}

// Resolve returns the offset to apply to the widget and its clip
// rectangle. For Contain logic the offset moves the widget's layout
// rectangle before the clip is computed from the moved rectangle.
func (l Logic) Resolve(ctx Context) (f32.Point, f32.Rectangle) {
	switch l.kind {
	case kindPass:
		return f32.Point{}, ctx.ParentClip
	case kindConstrain:
		return f32.Point{}, ctx.Rect(l.a).Intersect(ctx.Rect(l.b))
	case kindContain:
		off := l.Offset(ctx)
		it := ctx.Rect(l.a).Add(off)
		if l.a.Source == SourceLayoutRect {
			ctx.LayoutRect = it
		}
		return off, it.Intersect(ctx.Rect(l.b))
	case kindOverride:
		return f32.Point{}, l.a.Rect
	default:
		panic("unknown clip logic")
	}
}

// ContainOffset returns the offset that moves it inside parent on
// every axis where it is no larger than parent.
func ContainOffset(it, parent f32.Rectangle) f32.Point {
	offMin := it.Min.Sub(parent.Min).Min(f32.Point{})
	offMax := parent.Max.Sub(it.Max).Min(f32.Point{})
	return offMin.Neg().Add(offMax)
}

func (s Source) String() string {
	switch s {
	case SourceParentClip:
		return "ParentClip"
	case SourceParentRect:
		return "ParentRect"
	case SourceLayoutRect:
		return "LayoutRect"
	case SourceViewport:
		return "Viewport"
	case SourceValue:
		return "Value"
	default:
		panic("unknown clip source")
	}
}

func (o Operand) String() string {
	if o.Source == SourceValue {
		return o.Rect.String()
	}
	return o.Source.String()
}

func (l Logic) String() string {
	switch l.kind {
	case kindPass:
		return "Pass"
	case kindConstrain:
		return fmt.Sprintf("Constrain(%v, %v)", l.a, l.b)
	case kindContain:
		return fmt.Sprintf("Contain(%v, %v)", l.a, l.b)
	case kindOverride:
		return fmt.Sprintf("Override(%v)", l.a)
	default:
		panic("unknown clip logic")
	}
}
