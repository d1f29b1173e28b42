// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"treeui.org/f32"
	"treeui.org/layout"
	"treeui.org/ui"
)

// Stack lays out its children on top of each other at its origin.
// Children may be smaller than the minimum constraints of the
// Stack.
type Stack struct{}

// StackWidget is the widget declared by Stack.
type StackWidget struct {
	ui.Base
}

// Align positions its children within the space available to it.
// On an unbounded axis Align is as large as its largest child.
type Align struct {
	Direction layout.Direction
}

// AlignWidget is the widget declared by Align.
type AlignWidget struct {
	ui.Base
	props Align
}

// Offset moves its children without changing its own size.
type Offset struct {
	Offset f32.Point
}

// OffsetWidget is the widget declared by Offset.
type OffsetWidget struct {
	ui.Base
	props Offset
}

func (s Stack) Show(children func()) {
	ui.Do[StackWidget](s, children)
}

func (w *StackWidget) Update(Stack) {}

func (w *StackWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	return w.Base.Layout(ctx, cs.Loosen())
}

func (a Align) Show(children func()) {
	ui.Do[AlignWidget](a, children)
}

func (w *AlignWidget) Update(a Align) {
	w.props = a
}

func (w *AlignWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	children := ctx.Children()
	sizes := make([]f32.Point, len(children))
	var size f32.Point
	for i, c := range children {
		sizes[i] = ctx.Calculate(c, cs.Loosen())
		size = size.Max(sizes[i])
	}
	if cs.IsBoundedAxis(layout.Horizontal) {
		size.X = cs.Max.X
	}
	if cs.IsBoundedAxis(layout.Vertical) {
		size.Y = cs.Max.Y
	}
	for i, c := range children {
		ctx.SetPos(c, w.props.Direction.Position(size, sizes[i]))
	}
	return size
}

func (o Offset) Show(children func()) {
	ui.Do[OffsetWidget](o, children)
}

func (w *OffsetWidget) Update(o Offset) {
	w.props = o
}

func (w *OffsetWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	size := w.Base.Layout(ctx, cs)
	for _, c := range ctx.Children() {
		ctx.SetPos(c, w.props.Offset)
	}
	return size
}
