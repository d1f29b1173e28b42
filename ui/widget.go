// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"treeui.org/f32"
	"treeui.org/io/event"
	"treeui.org/layout"
)

// Widget is the behavior stored in every node of the tree.
//
// Layout returns the size of the widget within cs and positions the
// widget's children with LayoutContext.SetPos. The returned size is
// clamped to cs. Paint draws the widget and usually its children.
// Event receives the events matching the widget's Interest.
//
// Embed Base to get default implementations of all methods.
type Widget interface {
	Layout(ctx LayoutContext, cs layout.Constraints) f32.Point
	Paint(ctx PaintContext)
	Event(ctx EventContext, e event.Event) event.Response
	Interest() event.Interest
	// Flex returns the weight and fit used by flex containers. A
	// zero weight means the widget is not flexible.
	Flex() (float32, layout.FlexFit)
}

// PropsWidget is a Widget declared with props of type P. Update is
// called with the props of every declaration, including the first.
type PropsWidget[P any] interface {
	Widget
	Update(props P)
}

// Base implements Widget with a layout that stacks the children at
// the widget's origin.
type Base struct{}

var _ Widget = Base{}

// Layout lays out every child with cs and returns the largest child
// size.
func (Base) Layout(ctx LayoutContext, cs layout.Constraints) f32.Point {
	var size f32.Point
	for _, c := range ctx.Children() {
		size = size.Max(ctx.Calculate(c, cs))
	}
	return size
}

// Paint paints the children in order.
func (Base) Paint(ctx PaintContext) {
	for _, c := range ctx.Children() {
		ctx.Paint(c)
	}
}

func (Base) Event(ctx EventContext, e event.Event) event.Response {
	return event.Bubble
}

func (Base) Interest() event.Interest {
	return 0
}

func (Base) Flex() (float32, layout.FlexFit) {
	return 0, layout.Loose
}

// rootWidget is the widget of the root node. It covers the whole
// viewport.
type rootWidget struct {
	Base
}

func (r *rootWidget) Layout(ctx LayoutContext, cs layout.Constraints) f32.Point {
	r.Base.Layout(ctx, cs)
	return cs.Max
}
