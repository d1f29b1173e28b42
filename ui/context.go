// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image/color"

	"treeui.org/clip"
	"treeui.org/f32"
	"treeui.org/layout"
)

// LayoutContext is passed to Widget.Layout.
type LayoutContext struct {
	Dom    *Dom
	Layout *LayoutDom
	Input  *Input
	// ID is the node being laid out.
	ID NodeID
}

// PaintContext is passed to Widget.Paint.
type PaintContext struct {
	Dom    *Dom
	Layout *LayoutDom
	Canvas Canvas
	ID     NodeID
}

// EventContext is passed to Widget.Event.
type EventContext struct {
	Dom    *Dom
	Layout *LayoutDom
	Input  *Input
	ID     NodeID
}

// Canvas is implemented by the paint backend. Rectangles are in
// viewport coordinates and drawing outside clip is discarded.
type Canvas interface {
	FillRect(r, clip f32.Rectangle, c color.NRGBA)
	Text(pos f32.Point, clip f32.Rectangle, s string, c color.NRGBA)
}

// Children returns the children of the node being laid out.
func (ctx LayoutContext) Children() []NodeID {
	return ctx.Dom.Children(ctx.ID)
}

// Widget returns the widget of node id, or nil.
func (ctx LayoutContext) Widget(id NodeID) Widget {
	if n := ctx.Dom.Get(id); n != nil {
		return n.widget
	}
	return nil
}

// Calculate lays out the node id within cs and returns its size.
func (ctx LayoutContext) Calculate(id NodeID, cs layout.Constraints) f32.Point {
	return ctx.Layout.Calculate(ctx.Dom, ctx.Input, id, cs)
}

// SetPos places the child id at pos relative to the node being laid
// out. It must be called after the child is calculated.
func (ctx LayoutContext) SetPos(id NodeID, pos f32.Point) {
	ctx.Layout.SetPos(id, pos)
}

// SetClip sets the clip logic of the node being laid out.
func (ctx LayoutContext) SetClip(l clip.Logic) {
	ctx.Layout.SetClip(ctx.ID, l)
}

// Children returns the children of the node being painted.
func (ctx PaintContext) Children() []NodeID {
	return ctx.Dom.Children(ctx.ID)
}

// Node returns the layout of the node being painted.
func (ctx PaintContext) Node() *LayoutNode {
	return ctx.Layout.Get(ctx.ID)
}

// Paint paints the node id if it was laid out this frame.
func (ctx PaintContext) Paint(id NodeID) {
	n := ctx.Dom.Get(id)
	if n == nil || ctx.Layout.Get(id) == nil {
		return
	}
	ctx.ID = id
	n.widget.Paint(ctx)
}

// Node returns the layout of the node receiving the event.
func (ctx EventContext) Node() *LayoutNode {
	return ctx.Layout.Get(ctx.ID)
}

// Focus requests keyboard focus for the node receiving the event.
func (ctx EventContext) Focus() {
	ctx.Input.SetFocus(ctx.ID)
}
